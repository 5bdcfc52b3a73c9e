package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/skimtui/skim/internal/window"
)

// Config captures skim's feed source and windowing-engine tuning.
type Config struct {
	// Feed source. Endpoint and FeedFile are optional; when both are empty
	// the synthetic generator serves SyntheticItems entries.
	Endpoint       string
	FeedFile       string
	SyntheticItems int

	// Engine tuning.
	PageSize            int
	Buffer              int
	EstimatedHeight     int
	MeasureThrottle     time.Duration
	TailMargin          int
	InitialFromViewport bool

	// LiveAppend is the interval between simulated live appends; zero
	// disables them.
	LiveAppend time.Duration
}

const (
	defaultConfigPath     = "~/.config/skim/config.toml"
	defaultSyntheticItems = 10000
)

// Load locates and parses skim's config, falling back to defaults when the
// file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint            string `toml:"endpoint"`
		FeedFile            string `toml:"feed_file"`
		SyntheticItems      int    `toml:"synthetic_items"`
		PageSize            int    `toml:"page_size"`
		Buffer              int    `toml:"buffer"`
		EstimatedHeight     int    `toml:"estimated_height"`
		MeasureThrottleMS   int    `toml:"measure_throttle_ms"`
		TailMargin          int    `toml:"tail_margin"`
		InitialFromViewport bool   `toml:"initial_from_viewport"`
		LiveAppendSeconds   int    `toml:"live_append_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Endpoint = strings.TrimSpace(raw.Endpoint)
	cfg.FeedFile = strings.TrimSpace(raw.FeedFile)
	if cfg.FeedFile != "" {
		cfg.FeedFile = mustExpand(cfg.FeedFile)
	}
	if raw.SyntheticItems > 0 {
		cfg.SyntheticItems = raw.SyntheticItems
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.Buffer > 0 {
		cfg.Buffer = raw.Buffer
	}
	if raw.EstimatedHeight > 0 {
		cfg.EstimatedHeight = raw.EstimatedHeight
	}
	if raw.MeasureThrottleMS > 0 {
		cfg.MeasureThrottle = time.Duration(raw.MeasureThrottleMS) * time.Millisecond
	}
	if raw.TailMargin > 0 {
		cfg.TailMargin = raw.TailMargin
	}
	cfg.InitialFromViewport = raw.InitialFromViewport
	if raw.LiveAppendSeconds > 0 {
		cfg.LiveAppend = time.Duration(raw.LiveAppendSeconds) * time.Second
	}

	return cfg, nil
}

// Engine maps the loaded tuning onto a window.Config.
func (c Config) Engine() window.Config {
	return window.Config{
		PageSize:            c.PageSize,
		Buffer:              c.Buffer,
		EstimatedHeight:     c.EstimatedHeight,
		Throttle:            c.MeasureThrottle,
		TailMargin:          c.TailMargin,
		InitialFromViewport: c.InitialFromViewport,
	}
}

func defaults() Config {
	return Config{
		SyntheticItems:  defaultSyntheticItems,
		PageSize:        window.DefaultPageSize,
		Buffer:          window.DefaultBuffer,
		EstimatedHeight: window.DefaultEstimatedHeight,
		MeasureThrottle: window.DefaultThrottle,
		TailMargin:      window.DefaultTailMargin,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
