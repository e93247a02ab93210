package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "CHART_WIDTH", "CHART_FORMAT", "SNAPSHOT_TABS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr: got %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.ChartWidth != 640 {
		t.Errorf("ChartWidth: got %d, want 640", cfg.ChartWidth)
	}
	if cfg.ChartFormat != "png" {
		t.Errorf("ChartFormat: got %q, want png", cfg.ChartFormat)
	}
	if len(cfg.SnapshotTabs) != 4 {
		t.Errorf("SnapshotTabs: got %v, want all four tabs", cfg.SnapshotTabs)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("CHART_WIDTH", "800")
	t.Setenv("CHART_HEIGHT", "not-a-number")
	t.Setenv("SNAPSHOT_TABS", " sold , ,insights")

	cfg := Load()
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr: got %q", cfg.HTTPAddr)
	}
	if cfg.ChartWidth != 800 {
		t.Errorf("ChartWidth: got %d, want 800", cfg.ChartWidth)
	}
	if cfg.ChartHeight != 400 {
		t.Errorf("ChartHeight: got %d, want fallback 400", cfg.ChartHeight)
	}
	if want := []string{"sold", "insights"}; !reflect.DeepEqual(cfg.SnapshotTabs, want) {
		t.Errorf("SnapshotTabs: got %v, want %v", cfg.SnapshotTabs, want)
	}
}
