package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skimtui/skim/internal/window"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != window.DefaultPageSize || cfg.Buffer != window.DefaultBuffer {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.SyntheticItems != defaultSyntheticItems {
		t.Fatalf("SyntheticItems = %d, want %d", cfg.SyntheticItems, defaultSyntheticItems)
	}
	if cfg.Endpoint != "" || cfg.FeedFile != "" {
		t.Fatalf("source fields should default to empty: %+v", cfg)
	}
}

func TestLoad_ParsesFieldsAndFillsGaps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
endpoint = "  127.0.0.1:9000  "
page_size = 80
measure_throttle_ms = 33
initial_from_viewport = true
live_append_seconds = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Endpoint != "127.0.0.1:9000" {
		t.Fatalf("Endpoint = %q, want trimmed value", cfg.Endpoint)
	}
	if cfg.PageSize != 80 {
		t.Fatalf("PageSize = %d, want 80", cfg.PageSize)
	}
	if cfg.MeasureThrottle != 33*time.Millisecond {
		t.Fatalf("MeasureThrottle = %v, want 33ms", cfg.MeasureThrottle)
	}
	if !cfg.InitialFromViewport {
		t.Fatal("InitialFromViewport = false, want true")
	}
	if cfg.LiveAppend != 2*time.Second {
		t.Fatalf("LiveAppend = %v, want 2s", cfg.LiveAppend)
	}
	// Unset fields keep their defaults.
	if cfg.Buffer != window.DefaultBuffer || cfg.TailMargin != window.DefaultTailMargin {
		t.Fatalf("gap fields not defaulted: %+v", cfg)
	}
}

func TestLoad_BadTOMLIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("page_size = ["), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEngineMapping(t *testing.T) {
	cfg := Config{
		PageSize:            70,
		Buffer:              4,
		EstimatedHeight:     5,
		MeasureThrottle:     20 * time.Millisecond,
		TailMargin:          8,
		InitialFromViewport: true,
	}
	engine := cfg.Engine()
	want := window.Config{
		PageSize:            70,
		Buffer:              4,
		EstimatedHeight:     5,
		Throttle:            20 * time.Millisecond,
		TailMargin:          8,
		InitialFromViewport: true,
	}
	if engine != want {
		t.Fatalf("Engine() = %+v, want %+v", engine, want)
	}
}
