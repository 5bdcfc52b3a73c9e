package app

import (
	"context"
	"fmt"

	"github.com/skimtui/skim/internal/config"
	"github.com/skimtui/skim/internal/feed"
	"github.com/skimtui/skim/internal/prefs"
	"github.com/skimtui/skim/internal/ui"
)

// Options configure the skim application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/skim/prefs.toml

	// Overrides for the loaded config; zero values leave it untouched.
	SyntheticItems int
	LiveAppendSecs int
}

// Run boots the skim TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	userPrefs := prefs.Load(opts.PrefsPath)

	source, err := buildSource(cfg)
	if err != nil {
		return fmt.Errorf("init feed source: %w", err)
	}

	store := &feed.Store{}

	// Populate the store before the UI starts so the first frame has a
	// sequence to window.
	if err := seed(ctx, store, source, cfg.PageSize); err != nil {
		return fmt.Errorf("fetch first page: %w", err)
	}

	if cfg.LiveAppend > 0 {
		StartLive(ctx, store, source, cfg.LiveAppend)
	}

	return ui.Run(ctx, ui.Options{
		Store:     store,
		Source:    source,
		Engine:    cfg.Engine(),
		PageSize:  cfg.PageSize,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}

// buildSource picks the feed source: an HTTP endpoint when configured, else
// an NDJSON file, else the synthetic generator.
func buildSource(cfg config.Config) (feed.Source, error) {
	switch {
	case cfg.Endpoint != "":
		return feed.NewClient(cfg.Endpoint)
	case cfg.FeedFile != "":
		return feed.NewFile(cfg.FeedFile), nil
	default:
		return feed.NewGenerator(cfg.SyntheticItems, 1), nil
	}
}

// seed fetches the first page into the store. A fetch error is recorded but
// not fatal: the UI renders the failure state and the live ticker or tail
// prefetch retries.
func seed(ctx context.Context, store *feed.Store, source feed.Source, pageSize int) error {
	entries, err := source.Page(ctx, 0, pageSize)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		store.Fail(err)
		return nil
	}
	store.AppendPage(0, entries, len(entries) < pageSize)
	return nil
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.SyntheticItems > 0 {
		cfg.SyntheticItems = opts.SyntheticItems
	}
	if opts.LiveAppendSecs > 0 {
		cfg.LiveAppend = secondsToDuration(opts.LiveAppendSecs)
	}
	return cfg
}
