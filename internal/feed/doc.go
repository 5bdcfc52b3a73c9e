// Package feed supplies the backing sequence the windowing engine renders.
//
// # Overview
//
// The engine treats its data source as an external collaborator: it only
// consumes an ordered sequence of entries with stable identities and emits
// a near-tail signal when more data should be fetched. This package is that
// collaborator. It provides the Entry item type, a snapshot Store shared
// between the fetch goroutine and the render loop, and three Source
// implementations.
//
// # Sources
//
//   - Generator: deterministic synthetic entries for demos and tests.
//     Entry i is a pure function of (seed, i), so pagination order never
//     changes identities.
//   - Client: pages entries from a feed HTTP API
//     (GET /api/entries?offset=&limit=).
//   - File: newline-delimited JSON from disk, with a plain-text fallback
//     per line so raw log files remain browsable.
//
// # Store Semantics
//
// The Store follows a keep-last-good policy: Append and Replace install new
// data and clear the error state, Fail records the error while keeping the
// previous entries, and Snapshot always returns defensive copies so the
// render loop never observes a torn sequence.
//
// A short page (fewer entries than requested) marks the snapshot as
// Exhausted, which stops further tail-triggered fetches.
package feed
