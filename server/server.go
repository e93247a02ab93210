// Package server mounts the dashboard on an Echo HTTP server.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/render"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/services"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/utils"
)

// Server serves the dashboard page, its chart images and a JSON view API.
type Server struct {
	echo     *echo.Echo
	registry *services.Registry
	state    *services.ViewState
	renderer *render.Renderer
	logger   *utils.Logger
}

// New checks that the initial view composes and builds the router. Every
// request for the dashboard composes from the controller's active tab.
func New(reg *services.Registry, state *services.ViewState, renderer *render.Renderer, logger *utils.Logger) (*Server, error) {
	s := &Server{
		echo:     echo.New(),
		registry: reg,
		state:    state,
		renderer: renderer,
		logger:   logger.With("server"),
	}

	if _, err := services.Compose(state.Active(), reg); err != nil {
		return nil, err
	}
	state.Subscribe(s.onSelect)

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Debug("%s %s → %d (%v)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.getDashboard)
	s.echo.POST("/select", s.postSelect)
	s.echo.GET("/tabs/:tab", s.getTabPage)
	s.echo.GET("/charts/:id", s.getChart)
	s.echo.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	api := s.echo.Group("/api")
	api.GET("/view", s.getCurrentView)
	api.GET("/view/:tab", s.getTabView)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("Dashboard listening on %s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) onSelect(tab models.Tab) {
	s.logger.Info("Active tab is now %s", tab.Label())
}

func (s *Server) currentView() (models.ViewDescriptor, error) {
	return services.Compose(s.state.Active(), s.registry)
}

func (s *Server) getDashboard(c echo.Context) error {
	view, err := s.currentView()
	if err != nil {
		return err
	}
	return s.renderPage(c, view)
}

func (s *Server) postSelect(c echo.Context) error {
	raw := c.FormValue("tab")
	tab, _ := models.ParseTab(raw)
	if !s.state.SelectTab(tab) {
		s.logger.Warn("Ignoring selection of unknown tab %q", raw)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) getTabPage(c echo.Context) error {
	view, err := s.composeParam(c)
	if err != nil {
		return err
	}
	return s.renderPage(c, view)
}

func (s *Server) getCurrentView(c echo.Context) error {
	view, err := s.currentView()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse(view))
}

func (s *Server) getTabView(c echo.Context) error {
	view, err := s.composeParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse(view))
}

func (s *Server) getChart(c echo.Context) error {
	chart, err := services.ChartByID(s.registry, c.Param("id"))
	if errors.Is(err, services.ErrUnknownChart) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown chart")
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, chart); err != nil {
		s.logger.Error("Chart %s failed: %v", chart.ID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "chart rendering failed")
	}
	return c.Blob(http.StatusOK, s.renderer.ContentType(), buf.Bytes())
}

func (s *Server) composeParam(c echo.Context) (models.ViewDescriptor, error) {
	tab, ok := models.ParseTab(c.Param("tab"))
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "unknown tab")
	}
	return services.Compose(tab, s.registry)
}

func (s *Server) renderPage(c echo.Context, view models.ViewDescriptor) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(s.registry.Header(), view)); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func viewResponse(view models.ViewDescriptor) map[string]any {
	return map[string]any{
		"tab":   view.Tab(),
		"label": view.Tab().Label(),
		"view":  view,
	}
}
