package feed

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot represents the latest backing sequence available to the UI.
type Snapshot struct {
	Entries             []Entry
	Exhausted           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // number of consecutive fetch failures
}

// IsStalled returns true when fetching has failed multiple times in a row.
func (s Snapshot) IsStalled() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the backing sequence. The fetch
// goroutine writes, the render loop reads cloned snapshots.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Append adds a fetched page to the end of the backing sequence. exhausted
// marks that the source has no further pages.
func (s *Store) Append(entries []Entry, exhausted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Entries = append(s.snapshot.Entries, entries...)
	s.snapshot.Exhausted = exhausted
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// AppendPage appends a page that was fetched at offset. A page computed
// against a stale offset is dropped, so concurrent fetchers cannot duplicate
// a range. Reports whether the page was applied.
func (s *Store) AppendPage(offset int, entries []Entry, exhausted bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset != len(s.snapshot.Entries) {
		return false
	}
	s.snapshot.Entries = append(s.snapshot.Entries, entries...)
	s.snapshot.Exhausted = exhausted
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Replace swaps the whole backing sequence, e.g. after a filter or reload.
func (s *Store) Replace(entries []Entry, exhausted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Entries = cloneEntries(entries)
	s.snapshot.Exhausted = exhausted
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Fail records a fetch error. Previous data is kept so the UI always has
// the most recent successful sequence to render.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Len returns the current backing-sequence length without cloning.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.Entries)
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
