package window

import "time"

// Item is a backing-sequence element with a stable, unique identity. Two
// items with the same identity are the same list entry even when their
// payload differs.
type Item interface {
	ID() string
}

// Estimator lets an item supply its own pre-measurement height estimate.
// Items that do not implement it fall back to the configured estimate.
type Estimator interface {
	EstimatedHeight() int
}

// Engine defaults.
const (
	DefaultPageSize        = 50
	DefaultBuffer          = 10
	DefaultEstimatedHeight = 3
	DefaultTailMargin      = 5

	// DefaultThrottle is roughly one frame at 60 fps.
	DefaultThrottle = 16 * time.Millisecond
)

// Config holds the immutable per-instance engine settings. Zero fields take
// the package defaults. Set once at construction; never mutated afterwards.
type Config struct {
	// PageSize is the expansion step and the size of the initial window.
	PageSize int
	// Buffer is how many items before the window's upper bound count as
	// "near the edge" for expansion purposes.
	Buffer int
	// EstimatedHeight is the fallback height for unmeasured items.
	EstimatedHeight int
	// Throttle is the minimum interval between height-report republishes.
	Throttle time.Duration
	// TailMargin is how close (in items) the window's upper bound must get
	// to the sequence end before the near-tail signal fires.
	TailMargin int
	// InitialFromViewport sizes the initial window from the last reported
	// viewport height instead of a fixed first page.
	InitialFromViewport bool
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Buffer <= 0 {
		c.Buffer = DefaultBuffer
	}
	if c.EstimatedHeight <= 0 {
		c.EstimatedHeight = DefaultEstimatedHeight
	}
	if c.Throttle <= 0 {
		c.Throttle = DefaultThrottle
	}
	if c.TailMargin <= 0 {
		c.TailMargin = DefaultTailMargin
	}
	return c
}

// Manager owns the height ledger, the current window, and the total extent.
// It reacts to backing-sequence mutations and to measurement/expansion
// events, and publishes the visible slice through callbacks.
//
// The manager is single-threaded by design: every mutation happens
// synchronously on the render loop, so there is no lock. Callbacks fire
// inline from the mutating call.
type Manager[T Item] struct {
	cfg Config
	now func() time.Time

	ledger *Ledger
	items  []T
	index  map[string]int
	win    Window
	extent int

	viewportHeight int

	dirty        bool
	lastPublish  time.Time
	pubExtent    int
	tailSignaled bool

	onWindow   func(Window, []T)
	onExtent   func(int)
	onNearTail func()

	stats Stats
}

// NewManager returns a manager with no backing sequence.
func NewManager[T Item](cfg Config) *Manager[T] {
	return &Manager[T]{
		cfg:    cfg.withDefaults(),
		now:    time.Now,
		ledger: NewLedger(),
		index:  make(map[string]int),
	}
}

// OnWindowChanged registers the visible-slice callback.
func (m *Manager[T]) OnWindowChanged(fn func(Window, []T)) {
	m.onWindow = fn
}

// OnExtentChanged registers the total-extent callback.
func (m *Manager[T]) OnExtentChanged(fn func(int)) {
	m.onExtent = fn
}

// OnNearTail registers the data-edge prefetch callback. It fires at most
// once per approach to the tail margin; an append or replace re-arms it.
func (m *Manager[T]) OnNearTail(fn func()) {
	m.onNearTail = fn
}

// SetViewportHeight records the latest viewport height signal. Only
// consulted when InitialFromViewport is set.
func (m *Manager[T]) SetViewportHeight(h int) {
	if h < 0 {
		h = 0
	}
	m.viewportHeight = h
}

// SetItems replaces the backing-sequence snapshot. The transition is
// classified by comparing identities with the previous sequence; stale
// ledger entries are purged, the extent is recomputed, and the window is
// reconciled for the classified mutation. Calling it again with an
// identity-equal sequence is a no-op apart from refreshing payloads.
func (m *Manager[T]) SetItems(items []T) Mutation {
	kind := m.classify(items)
	if kind == MutationNone {
		// Same identities in the same order: keep window, ledger, and
		// extent untouched so scroll anchoring survives a data refresh.
		m.items = items
		return MutationNone
	}

	oldCount := len(m.items)
	m.items = items
	m.reindex()

	keep := make(map[string]struct{}, len(items))
	for _, it := range items {
		keep[it.ID()] = struct{}{}
	}
	m.ledger.Purge(keep)
	m.extent = m.recomputeExtent()

	win := Reconcile(m.win, oldCount, len(items), m.cfg.PageSize, kind)
	if m.cfg.InitialFromViewport && m.viewportHeight > 0 &&
		(kind == MutationInitial || kind == MutationReplace) {
		win = InitialForViewport(len(items), m.cfg.PageSize, m.viewportHeight, m.cfg.EstimatedHeight, m.cfg.Buffer)
	}
	m.win = win.Clamp(len(items))

	// New data re-arms the tail signal.
	m.tailSignaled = false

	m.dirty = true
	m.publish()
	m.checkTail()
	return kind
}

// ReportHeight records a measured render height for id. Non-positive
// heights and unknown identities degrade to a no-op. The extent is adjusted
// by the ledger delta; republishing is throttled so bursts of measurements
// within one frame coalesce into a single publish on the next Flush.
func (m *Manager[T]) ReportHeight(id string, height int) {
	if height <= 0 {
		return
	}
	idx, ok := m.index[id]
	if !ok || idx >= len(m.items) {
		return
	}
	delta := m.ledger.Record(id, height, m.estimateFor(m.items[idx]))
	if delta == 0 {
		return
	}
	m.extent += delta
	m.dirty = true
	if m.now().Sub(m.lastPublish) >= m.cfg.Throttle {
		m.publish()
	}
}

// Flush republishes coalesced height reports once the throttle interval has
// elapsed. Call it on every frame tick; it is free when nothing is pending.
func (m *Manager[T]) Flush() {
	if !m.dirty {
		return
	}
	if m.now().Sub(m.lastPublish) < m.cfg.Throttle {
		return
	}
	m.publish()
}

// RequestExpansion grows the window toward dir. A request that leaves the
// window unchanged is a no-op, so redundant republish cycles are avoided.
// The expansion is always computed against the current count; a stale
// request captured against an older sequence simply clamps.
func (m *Manager[T]) RequestExpansion(dir Direction) {
	next := Expand(m.win, len(m.items), m.cfg.PageSize, dir)
	if next == m.win {
		return
	}
	m.win = next
	m.dirty = true
	m.publish()
	m.checkTail()
}

// Window returns the current window.
func (m *Manager[T]) Window() Window {
	return m.win
}

// Visible returns a copy of the backing-sequence slice covered by the
// current window. The copy keeps callers from observing a torn view if
// they hold the slice across a later mutation.
func (m *Manager[T]) Visible() []T {
	w := m.win.Clamp(len(m.items))
	if w.Len() == 0 {
		return nil
	}
	out := make([]T, w.Len())
	copy(out, m.items[w.Lower:w.Upper])
	return out
}

// Extent returns the total scrollable extent: the sum over every item of
// its measured height when known, else its estimate.
func (m *Manager[T]) Extent() int {
	return m.extent
}

// Count returns the backing-sequence length.
func (m *Manager[T]) Count() int {
	return len(m.items)
}

// HeightOf returns the measured-or-estimated height for id. Unknown
// identities report the configured estimate.
func (m *Manager[T]) HeightOf(id string) int {
	fallback := m.cfg.EstimatedHeight
	if idx, ok := m.index[id]; ok && idx < len(m.items) {
		fallback = m.estimateFor(m.items[idx])
	}
	return m.ledger.HeightOf(id, fallback)
}

// NearWindowEdge reports whether index is within Buffer items of the
// window's upper bound. This is the virtualization-growth trigger, distinct
// from the data-edge tail signal.
func (m *Manager[T]) NearWindowEdge(index int) bool {
	if !m.win.Contains(index) {
		return false
	}
	return index >= m.win.Upper-m.cfg.Buffer
}

// ObserveRender records advisory render telemetry.
func (m *Manager[T]) ObserveRender(d time.Duration) {
	m.stats.Observe(d)
}

// RenderStats returns the advisory render telemetry.
func (m *Manager[T]) RenderStats() Stats {
	return m.stats
}

func (m *Manager[T]) publish() {
	m.dirty = false
	m.lastPublish = m.now()
	if m.onExtent != nil && m.extent != m.pubExtent {
		m.onExtent(m.extent)
	}
	m.pubExtent = m.extent
	if m.onWindow != nil {
		m.onWindow(m.win, m.Visible())
	}
}

func (m *Manager[T]) checkTail() {
	count := len(m.items)
	if count == 0 || m.tailSignaled {
		return
	}
	if m.win.Upper >= count-m.cfg.TailMargin {
		m.tailSignaled = true
		if m.onNearTail != nil {
			m.onNearTail()
		}
	}
}

// classify compares identities between the current and proposed sequences.
func (m *Manager[T]) classify(items []T) Mutation {
	oldCount := len(m.items)
	newCount := len(items)
	switch {
	case oldCount == 0 && newCount == 0:
		return MutationNone
	case oldCount == 0:
		return MutationInitial
	case newCount == 0:
		return MutationRemoval
	case newCount == oldCount:
		if m.sameIDs(items, oldCount) {
			return MutationNone
		}
		return MutationReplace
	case newCount > oldCount:
		if m.sameIDs(items, oldCount) {
			return MutationAppend
		}
		return MutationReplace
	default:
		if m.prefixIDs(items) {
			return MutationRemoval
		}
		return MutationReplace
	}
}

// sameIDs reports whether the first n items of the proposed sequence carry
// the same identities as the current sequence.
func (m *Manager[T]) sameIDs(items []T, n int) bool {
	for i := 0; i < n; i++ {
		if items[i].ID() != m.items[i].ID() {
			return false
		}
	}
	return true
}

// prefixIDs reports whether the proposed sequence is an identity prefix of
// the current one.
func (m *Manager[T]) prefixIDs(items []T) bool {
	for i := range items {
		if items[i].ID() != m.items[i].ID() {
			return false
		}
	}
	return true
}

func (m *Manager[T]) reindex() {
	m.index = make(map[string]int, len(m.items))
	for i, it := range m.items {
		// Duplicate identities keep their first index.
		if _, ok := m.index[it.ID()]; !ok {
			m.index[it.ID()] = i
		}
	}
}

func (m *Manager[T]) recomputeExtent() int {
	total := 0
	for _, it := range m.items {
		total += m.ledger.HeightOf(it.ID(), m.estimateFor(it))
	}
	return total
}

func (m *Manager[T]) estimateFor(item T) int {
	if e, ok := any(item).(Estimator); ok {
		if h := e.EstimatedHeight(); h > 0 {
			return h
		}
	}
	return m.cfg.EstimatedHeight
}
