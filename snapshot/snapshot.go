// Package snapshot captures full-page screenshots of dashboard tabs with a
// headless browser.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/config"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/storage"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/utils"
)

// Result describes one captured tab.
type Result struct {
	Tab  models.Tab
	URL  string
	Path string
}

// Capturer drives the browser over a running dashboard.
type Capturer struct {
	cfg     *config.Config
	baseURL string
	logger  *utils.Logger
	writer  storage.SnapshotWriter
	pool    *utils.WorkerPool
	visited *utils.URLSet
	retry   *utils.RetryConfig

	mu      sync.Mutex
	results []Result
	errs    []error
}

// New creates a Capturer for the dashboard served at baseURL.
func New(cfg *config.Config, baseURL string, writer storage.SnapshotWriter, logger *utils.Logger) *Capturer {
	return &Capturer{
		cfg:     cfg,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With("snapshot"),
		writer:  writer,
		pool:    utils.NewWorkerPool(cfg.MaxConcurrency, cfg.RateLimitMs),
		visited: utils.NewURLSet(),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		},
	}
}

// Plan resolves the configured tab ids into unique, valid tabs with their
// page URLs. Unknown ids are skipped.
func (c *Capturer) Plan(ids []string) []Result {
	var plan []Result
	for _, id := range ids {
		tab, ok := models.ParseTab(id)
		if !ok {
			c.logger.Warn("Skipping unknown tab %q", id)
			continue
		}
		url := c.baseURL + "/tabs/" + string(tab)
		if !c.visited.Add(url) {
			continue
		}
		plan = append(plan, Result{Tab: tab, URL: url})
	}
	return plan
}

// Run captures every configured tab and returns the stored snapshots.
func (c *Capturer) Run(ctx context.Context) ([]Result, error) {
	plan := c.Plan(c.cfg.SnapshotTabs)
	if len(plan) == 0 {
		return nil, fmt.Errorf("snapshot: no valid tabs configured")
	}

	chromeBin := findChromeBinary(c.cfg.ChromeBin)
	c.logger.Info("Capturing %d tabs from %s (browser: %s)", len(plan), c.baseURL, chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1440, 900),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	// Start the browser once so tab contexts share it.
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("snapshot: start browser: %w", err)
	}

	for _, item := range plan {
		item := item
		c.pool.Submit(func() {
			path, err := c.captureTab(browserCtx, item)
			c.mu.Lock()
			defer c.mu.Unlock()
			if err != nil {
				c.logger.Error("Tab %s failed: %v", item.Tab, err)
				c.errs = append(c.errs, err)
				return
			}
			item.Path = path
			c.results = append(c.results, item)
			c.logger.Info("Saved %s → %s", item.Tab, path)
		})
	}
	c.pool.Wait()

	if len(c.errs) > 0 {
		return c.results, fmt.Errorf("snapshot: %d of %d tabs failed: %w", len(c.errs), len(plan), c.errs[0])
	}
	return c.results, nil
}

func (c *Capturer) captureTab(browserCtx context.Context, item Result) (string, error) {
	var shot []byte

	err := c.retry.Do("capture-"+string(item.Tab), func() error {
		ctx, cancel := chromedp.NewContext(browserCtx)
		defer cancel()

		ctx, cancelTimeout := context.WithTimeout(ctx, time.Duration(c.cfg.PageTimeoutSecs)*time.Second)
		defer cancelTimeout()

		return chromedp.Run(ctx,
			chromedp.Navigate(item.URL),
			chromedp.WaitVisible(activeTabSelector(item.Tab), chromedp.ByQuery),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.FullScreenshot(&shot, 90),
		)
	})
	if err != nil {
		return "", err
	}
	return c.writer.Write(FileName(item.Tab), shot)
}

// activeTabSelector matches the highlighted button of tab.
func activeTabSelector(tab models.Tab) string {
	return fmt.Sprintf(`button[value="%s"].active`, tab)
}

// FileName is the snapshot file for tab.
func FileName(tab models.Tab) string {
	return string(tab) + ".png"
}

// findChromeBinary locates Chrome/Chromium binary.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
