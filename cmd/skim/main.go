package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skimtui/skim/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	items := flag.Int("items", 0, "synthetic feed size (optional, defaults to config)")
	live := flag.Int("live", 0, "simulated live-append interval in seconds (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
	}
	if *items > 0 {
		opts.SyntheticItems = *items
	}
	if *live > 0 {
		opts.LiveAppendSecs = *live
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "skim: %v\n", err)
		return 1
	}
	return 0
}
