package feed

import (
	"context"
	"strings"
	"time"
)

// Entry is one feed item. UID is the stable identity the windowing engine
// keys on; the payload may change across refreshes without changing
// identity, which preserves scroll anchoring.
type Entry struct {
	UID      string    `json:"uid"`
	Author   string    `json:"author"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	PostedAt time.Time `json:"posted_at"`
}

// ID returns the stable identity for windowing.
func (e Entry) ID() string { return e.UID }

// EstimatedHeight guesses the rendered card height before measurement: a
// header row, the body lines, and a separator row.
func (e Entry) EstimatedHeight() int {
	if e.Body == "" {
		return 2
	}
	return strings.Count(e.Body, "\n") + 3
}

// Source supplies pages of the backing sequence. Implementations must be
// safe for use from a single fetching goroutine at a time.
type Source interface {
	// Page returns up to limit entries starting at offset. A short page
	// signals that the source is exhausted.
	Page(ctx context.Context, offset, limit int) ([]Entry, error)
}
