package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/config"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/render"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/server"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/services"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/snapshot"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/storage"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/utils"
)

func main() {
	printTab := flag.String("print", "", "print one tab (overview|active|sold|insights) to stdout and exit")
	snap := flag.Bool("snapshot", false, "capture every configured tab as a PNG and exit")
	flag.Parse()

	cfg := config.Load()
	logger := utils.NewLoggerWithLevel(cfg.LogLevel)

	registry := services.NewRegistry()
	if err := registry.Validate(); err != nil {
		logger.Error("Dataset registry is inconsistent: %v", err)
		os.Exit(1)
	}

	if *printTab != "" {
		if err := printReport(registry, *printTab); err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
		return
	}

	renderer, err := render.NewRenderer(cfg.ChartWidth, cfg.ChartHeight, cfg.ChartFormat)
	if err != nil {
		logger.Error("Invalid chart settings: %v", err)
		os.Exit(1)
	}

	srv, err := server.New(registry, services.NewViewState(), renderer, logger)
	if err != nil {
		logger.Error("Failed to build dashboard: %v", err)
		os.Exit(1)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.HTTPAddr)
	}()

	if *snap {
		code := runSnapshot(cfg, srv, logger)
		os.Exit(code)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	case sig := <-sigChan:
		logger.Info("Received %v, shutting down", sig)
		shutdown(srv, logger)
	}
}

func printReport(registry *services.Registry, raw string) error {
	tab, ok := models.ParseTab(raw)
	if !ok {
		return fmt.Errorf("unknown tab %q", raw)
	}
	view, err := services.Compose(tab, registry)
	if err != nil {
		return err
	}
	return services.NewReportPrinter(os.Stdout).Print(registry.Header(), view)
}

func runSnapshot(cfg *config.Config, srv *server.Server, logger *utils.Logger) int {
	defer shutdown(srv, logger)

	baseURL := localURL(cfg.HTTPAddr)
	ready := &utils.RetryConfig{MaxAttempts: 10, BaseDelay: 200 * time.Millisecond, Logger: logger}
	if err := ready.Do("wait-for-server", func() error { return ping(baseURL + "/healthz") }); err != nil {
		logger.Error("Dashboard never became ready: %v", err)
		return 1
	}

	writer, err := storage.NewFileWriter(cfg.SnapshotDir)
	if err != nil {
		logger.Error("Failed to prepare snapshot dir: %v", err)
		return 1
	}
	defer writer.Close()

	results, err := snapshot.New(cfg, baseURL, writer, logger).Run(context.Background())
	if err != nil {
		logger.Error("Snapshot failed: %v", err)
		return 1
	}

	logger.Info("Captured %d tabs into %s: %s", len(results), cfg.SnapshotDir, strings.Join(writer.Written(), ", "))
	return 0
}

func ping(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

// localURL turns a listen address like ":8080" into a dialable base URL.
func localURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}
	return "http://" + addr
}

func shutdown(srv *server.Server, logger *utils.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed: %v", err)
	}
}
