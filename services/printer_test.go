package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

func TestPrinterOverview(t *testing.T) {
	reg := NewRegistry()
	var buf bytes.Buffer

	view := mustCompose(t, models.TabOverview, reg)
	if err := NewReportPrinter(&buf).Print(reg.Header(), view); err != nil {
		t.Fatalf("Print: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Eagle Mountain Real Estate Market Analysis",
		"Market Overview",
		"Sold (Historical)",
		"14,755",
		"$587,116",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrinterInsights(t *testing.T) {
	reg := NewRegistry()
	var buf bytes.Buffer

	view := mustCompose(t, models.TabMarketInsights, reg)
	if err := NewReportPrinter(&buf).Print(reg.Header(), view); err != nil {
		t.Fatalf("Print: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "High Expiration Rate") || !strings.Contains(out, "For Buyers") {
		t.Errorf("insights output incomplete:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Under Contract", 16); got != "Under Contract" {
		t.Errorf("short string changed: %q", got)
	}
	if got := truncate("a very long category label", 10); got != "a very ..." {
		t.Errorf("truncate: got %q", got)
	}
}
