package app

import (
	"context"
	"time"

	"github.com/skimtui/skim/internal/feed"
)

// liveBatch is how many entries each live tick appends.
const liveBatch = 3

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}

// StartLive launches a background goroutine that appends a small batch from
// the source at a fixed cadence, simulating a feed that keeps growing while
// the user reads. It returns immediately and stops once the source is
// exhausted or the context is cancelled.
func StartLive(ctx context.Context, store *feed.Store, source feed.Source, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if done := appendBatch(ctx, store, source); done {
				return
			}
		}
	}()
}

// appendBatch fetches the next batch past the current tail. Reports true
// when the source has no further entries.
func appendBatch(ctx context.Context, store *feed.Store, source feed.Source) bool {
	if store.Snapshot().Exhausted {
		return true
	}

	offset := store.Len()
	entries, err := source.Page(ctx, offset, liveBatch)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		store.Fail(err)
		return false
	}

	exhausted := len(entries) < liveBatch
	// A dropped page means a tail prefetch appended first; just retry on the
	// next tick against the new tail.
	store.AppendPage(offset, entries, exhausted)
	return exhausted
}
