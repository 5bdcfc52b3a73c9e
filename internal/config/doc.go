// Package config handles loading and parsing skim configuration files.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/skim/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing or zero, use defaults
//
// Missing config files are NOT an error: skim works out of the box against
// the synthetic feed generator.
//
// # TOML Format
//
// Example config.toml:
//
//	# Feed source: pick one; leave both empty for the synthetic feed.
//	endpoint = "127.0.0.1:8080"
//	feed_file = "~/feed.ndjson"
//	synthetic_items = 10000
//
//	# Windowing engine tuning.
//	page_size = 50
//	buffer = 10
//	estimated_height = 3
//	measure_throttle_ms = 16
//	tail_margin = 5
//	initial_from_viewport = false
//
//	# Simulated live appends (synthetic feed only); 0 disables.
//	live_append_seconds = 0
//
// Tilde expansion is performed automatically for file paths.
//
// # Engine Defaults
//
// All engine fields default to the window package's constants, so the
// config file only needs the fields being overridden. initial_from_viewport
// opts into sizing the initial window from the measured viewport height
// instead of a fixed first page.
package config
