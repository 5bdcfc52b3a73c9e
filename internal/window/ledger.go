package window

// Ledger caches measured render heights keyed by item identity. Entries are
// written only by explicit height reports and purged whenever the backing
// sequence changes, so a re-introduced identity starts from its estimate
// rather than a stale measurement.
type Ledger struct {
	heights map[string]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{heights: make(map[string]int)}
}

// Record stores a measured height for id and returns the resulting extent
// delta (newHeight minus the previous measurement, or minus fallback when
// the id was unmeasured). Non-positive heights are rejected as a no-op.
func (l *Ledger) Record(id string, height, fallback int) int {
	if height <= 0 {
		return 0
	}
	prev, ok := l.heights[id]
	if !ok {
		prev = fallback
	}
	l.heights[id] = height
	return height - prev
}

// HeightOf returns the measured height for id, or fallback when unmeasured.
func (l *Ledger) HeightOf(id string, fallback int) int {
	if h, ok := l.heights[id]; ok {
		return h
	}
	return fallback
}

// Measured reports whether id has a recorded height.
func (l *Ledger) Measured(id string) bool {
	_, ok := l.heights[id]
	return ok
}

// Purge drops every entry whose identity is absent from keep.
func (l *Ledger) Purge(keep map[string]struct{}) {
	for id := range l.heights {
		if _, ok := keep[id]; !ok {
			delete(l.heights, id)
		}
	}
}

// Len returns the number of measured entries.
func (l *Ledger) Len() int {
	return len(l.heights)
}
