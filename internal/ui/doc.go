// Package ui provides the terminal user interface for skim.
//
// # Architecture Overview
//
// The UI is a bubbletea program that renders a windowed slice of the feed
// inside a bubbles viewport. The window package decides which entries are
// rendered; this package renders them, measures what it rendered, and feeds
// the measurements back.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - ui.go: Model, message/command plumbing, and the main Run function
//   - surface.go: Card rendering, height measurement, and scroll-edge checks
//   - header.go: Status bar, command bar, and footer rendering
//   - help.go: Help overlay
//   - theme.go: Color themes and lipgloss style construction
//   - keys.go: Key bindings
//
// # Event Flow
//
//  1. Run() starts the bubbletea program with an Options-configured Model
//  2. A frame tick (~50ms) flushes coalesced engine publishes and pulls the
//     latest store snapshot into the engine
//  3. Scrolling near the rendered window's lower edge expands the window;
//     the engine's window callback triggers a surface rebuild
//  4. The engine's near-tail callback starts an async page fetch command;
//     the fetched page lands in the store and flows back via the snapshot
//  5. Every rebuilt card is measured with lipgloss.Height and reported to
//     the engine so estimated heights converge to real ones
//
// # Filtering
//
// "/" opens a filter prompt. The query is applied to the store snapshot
// before it reaches the engine, so the engine sees the filtered sequence as
// a whole-sequence mutation and resets its window and ledger accordingly.
// Clearing the filter restores the full sequence the same way.
//
// # External Dependencies
//
//   - feed.Store: snapshot source for entries and fetch health
//   - feed.Source: page fetches triggered by the near-tail signal
//   - window.Manager: windowing, height ledger, and extent bookkeeping
//   - prefs: theme and debug-footer persistence
//
// # Key Bindings
//
//   - j/k, arrows: Scroll
//   - g/G: Jump to top/bottom
//   - pgup/pgdn, ctrl+u/ctrl+d: Page movement
//   - /: Filter entries, enter applies, esc clears
//   - T: Cycle theme
//   - D: Toggle debug footer
//   - h or ?: Help overlay
//   - q or Ctrl+C: Exit
package ui
