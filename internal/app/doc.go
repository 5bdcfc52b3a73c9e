// Package app wires skim's components together.
//
// Run loads configuration and preferences, picks a feed source (HTTP
// endpoint, NDJSON file, or the synthetic generator), seeds the store with
// the first page, optionally starts the live-append ticker, and hands
// everything to the UI.
//
// The store is the single authority on the sequence tail: both the UI's
// near-tail prefetch and the live ticker append through Store.AppendPage,
// which drops pages computed against a stale offset.
package app
