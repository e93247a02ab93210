package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/render"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/services"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/utils"
)

func newTestServer(t *testing.T) (*Server, *services.ViewState) {
	t.Helper()
	r, err := render.NewRenderer(640, 400, "png")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	state := services.NewViewState()
	s, err := New(services.NewRegistry(), state, r, utils.NewLoggerWithLevel("error"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, state
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func selectTab(s *Server, tab string) *httptest.ResponseRecorder {
	form := url.Values{"tab": {tab}}
	req := httptest.NewRequest(http.MethodPost, "/select", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(s, req)
}

func TestDashboardStartsOnOverview(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Eagle Mountain Real Estate Market Analysis",
		`value="overview" class="active"`,
		"Sold (Historical)",
		"/charts/status-distribution",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestSelectSwitchesTab(t *testing.T) {
	s, state := newTestServer(t)

	rec := selectTab(s, "sold")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if state.Active() != models.TabSalesAnalysis {
		t.Errorf("active tab: got %q", state.Active())
	}

	body := do(s, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	if !strings.Contains(body, "Historical Sales Distribution") {
		t.Error("page did not switch to the sales view")
	}
}

func TestSelectIgnoresUnknownTab(t *testing.T) {
	s, state := newTestServer(t)
	selectTab(s, "active")

	rec := selectTab(s, "nonexistent")
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status: got %d, want 303", rec.Code)
	}
	if state.Active() != models.TabActiveListings {
		t.Errorf("active tab changed to %q", state.Active())
	}
}

func TestTabPermalinkDoesNotChangeState(t *testing.T) {
	s, state := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/tabs/insights", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Market Recommendations") {
		t.Error("insights page missing recommendations")
	}
	if state.Active() != models.TabOverview {
		t.Errorf("permalink changed active tab to %q", state.Active())
	}

	rec = do(s, httptest.NewRequest(http.MethodGet, "/tabs/bogus", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown tab status: got %d, want 404", rec.Code)
	}
}

func TestViewAPI(t *testing.T) {
	s, _ := newTestServer(t)
	selectTab(s, "active")

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/view", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp struct {
		Tab  string `json:"tab"`
		View struct {
			CountByRange models.ChartProjection `json:"count_by_range"`
		} `json:"view"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Tab != "active" {
		t.Errorf("tab: got %q, want active", resp.Tab)
	}
	if n := len(resp.View.CountByRange.Rows); n != 12 {
		t.Errorf("rows: got %d, want 12", n)
	}
}

func TestChartEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/charts/"+services.ChartSoldByRange, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type: got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("body is not a PNG")
	}

	rec = do(s, httptest.NewRequest(http.MethodGet, "/charts/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown chart status: got %d, want 404", rec.Code)
	}
}

func currentTab(t *testing.T, s *Server) string {
	t.Helper()
	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/view", nil))
	var resp struct {
		Tab string `json:"tab"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Tab
}

func TestViewFollowsControllerUnderConcurrentSelections(t *testing.T) {
	r, err := render.NewRenderer(640, 400, "png")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	state := services.NewViewState()

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	state.Subscribe(func(tab models.Tab) {
		if tab == models.TabActiveListings {
			once.Do(func() { close(entered) })
			<-release
		}
	})

	s, err := New(services.NewRegistry(), state, r, utils.NewLoggerWithLevel("error"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		state.SelectTab(models.TabActiveListings)
	}()
	<-entered
	if got := currentTab(t, s); got != string(state.Active()) {
		t.Errorf("mid-notification view %q, controller %q", got, state.Active())
	}
	go func() {
		defer wg.Done()
		state.SelectTab(models.TabSalesAnalysis)
	}()
	close(release)
	wg.Wait()

	if state.Active() != models.TabSalesAnalysis {
		t.Fatalf("active tab: got %q, want sold", state.Active())
	}
	if got := currentTab(t, s); got != string(models.TabSalesAnalysis) {
		t.Errorf("view tab: got %q, controller says sold", got)
	}
	body := do(s, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	if !strings.Contains(body, `value="sold" class="active"`) {
		t.Error("page does not highlight the controller's tab")
	}
}
