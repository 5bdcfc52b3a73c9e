package window

import "time"

// Stats accumulates rolling render telemetry. The numbers are advisory
// only; nothing in the window or ledger consults them.
type Stats struct {
	renders int
	total   time.Duration
}

// Observe records one render pass.
func (s *Stats) Observe(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.renders++
	s.total += d
}

// Renders returns the number of observed render passes.
func (s *Stats) Renders() int {
	return s.renders
}

// Average returns the mean render duration, or zero before any renders.
func (s *Stats) Average() time.Duration {
	if s.renders == 0 {
		return 0
	}
	return s.total / time.Duration(s.renders)
}
