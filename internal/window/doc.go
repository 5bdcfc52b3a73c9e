// Package window implements the virtual-list windowing engine behind skim.
//
// # Overview
//
// The engine decides, at any moment, which contiguous slice ("window") of a
// very large backing sequence must be materialized for rendering, tracks
// each item's real height once measured, and maintains the total scrollable
// extent so the surrounding scroll container can present a dense scroll
// illusion over a sparse render.
//
// # Components
//
//   - window.go: the Window index range plus the pure calculator functions
//     (Initial, InitialForViewport, Expand, Reconcile)
//   - ledger.go: the height ledger mapping identity → measured height
//   - manager.go: the stateful Manager that owns ledger, window, and extent
//   - stats.go: advisory render telemetry
//
// # Control Flow
//
//	Render surface                Manager                      Calculator
//	┌───────────────┐   heights   ┌──────────────┐   ranges   ┌──────────┐
//	│ render slice  │────────────>│ ReportHeight │───────────>│ Expand   │
//	│ measure items │  expansion  │ SetItems     │            │ Reconcile│
//	│ scroll edges  │────────────>│ Request...   │<───────────│ Initial  │
//	└───────▲───────┘             └──────┬───────┘            └──────────┘
//	        │    visibleWindowChanged /  │
//	        └──── totalExtentChanged ────┘
//
// Data flow is one-directional and synchronous within a frame tick.
//
// # Two Edges, Two Signals
//
// The engine keeps two adjacent but distinct triggers apart:
//
//   - Window edge: a rendered item within Buffer items of the window's
//     upper bound asks for window expansion (more materialization).
//   - Data edge: the window's upper bound within TailMargin items of the
//     sequence end fires the near-tail callback (a fetch-more request to
//     the external data source).
//
// Conflating the two was a latent correctness risk in earlier designs, so
// each has its own threshold and its own code path.
//
// # Concurrency Model
//
// The Manager is deliberately lock-free and single-threaded: all mutations
// happen synchronously on the render loop, callbacks fire inline, and
// height-report throttling is a time-gate check rather than a sleep. The
// published window and extent are value snapshots consumed on the same
// goroutine.
//
// # Failure Semantics
//
// There is no fatal failure mode. Non-positive heights, unknown identities,
// duplicate identities, and out-of-range windows are clamped or ignored: a
// transient rendering glitch is preferable to a crashed UI.
package window
