package window

// Direction indicates which edge of the window an expansion targets.
type Direction int

const (
	Down Direction = iota
	Up
)

// Mutation classifies a backing-sequence transition.
type Mutation int

const (
	MutationNone Mutation = iota
	MutationInitial
	MutationAppend
	MutationReplace
	MutationRemoval
)

// String returns a short label for debug surfaces.
func (m Mutation) String() string {
	switch m {
	case MutationInitial:
		return "initial"
	case MutationAppend:
		return "append"
	case MutationReplace:
		return "replace"
	case MutationRemoval:
		return "removal"
	default:
		return "none"
	}
}

// Window is a half-open index range [Lower, Upper) into the backing
// sequence denoting the currently materialized items.
type Window struct {
	Lower int
	Upper int
}

// Len returns the number of indices covered by the window.
func (w Window) Len() int {
	if w.Upper <= w.Lower {
		return 0
	}
	return w.Upper - w.Lower
}

// Contains reports whether index i falls inside the window.
func (w Window) Contains(i int) bool {
	return i >= w.Lower && i < w.Upper
}

// Clamp forces the window inside [0, count] while preserving as much of
// the original range as possible.
func (w Window) Clamp(count int) Window {
	if count < 0 {
		count = 0
	}
	if w.Lower < 0 {
		w.Lower = 0
	}
	if w.Lower > count {
		w.Lower = count
	}
	if w.Upper < w.Lower {
		w.Upper = w.Lower
	}
	if w.Upper > count {
		w.Upper = count
	}
	return w
}

// Initial returns the first-page window [0, min(count, pageSize)).
//
// The viewport height is deliberately not consulted: on first load layout
// has often not settled, so a fixed first page keeps the initial window
// deterministic at the cost of a little overrendering.
func Initial(count, pageSize int) Window {
	return Window{Lower: 0, Upper: min(count, normalizePage(pageSize))}.Clamp(count)
}

// InitialForViewport sizes the first window from the viewport instead of a
// fixed page: max(pageSize, ceil(viewportHeight/estimate) + 2*buffer).
// Used only when the engine is configured to trust the viewport signal.
func InitialForViewport(count, pageSize, viewportHeight, estimate, buffer int) Window {
	pageSize = normalizePage(pageSize)
	if viewportHeight <= 0 {
		return Initial(count, pageSize)
	}
	if estimate < 1 {
		estimate = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	fit := (viewportHeight+estimate-1)/estimate + 2*buffer
	return Window{Lower: 0, Upper: min(count, max(pageSize, fit))}.Clamp(count)
}

// Expand grows the window toward dir by one page, clamped to count.
//
// Upward expansion never decreases the lower bound: the engine only ever
// grows the materialized range downward. A strong upward gesture after
// scrolling far down therefore cannot shrink or shift the window back.
func Expand(cur Window, count, pageSize int, dir Direction) Window {
	cur = cur.Clamp(count)
	if dir == Up {
		return cur
	}
	return Window{Lower: cur.Lower, Upper: min(count, cur.Upper+normalizePage(pageSize))}.Clamp(count)
}

// Reconcile adjusts a window after the backing sequence changed.
//
// Appends grow the upper bound by half a page to surface some of the new
// arrivals immediately; replaces and initial loads fall back to the first
// page; removals clamp the existing window to the new bounds.
func Reconcile(old Window, oldCount, newCount, pageSize int, kind Mutation) Window {
	pageSize = normalizePage(pageSize)
	switch kind {
	case MutationInitial, MutationReplace:
		return Initial(newCount, pageSize)
	case MutationAppend:
		return Window{Lower: old.Lower, Upper: min(newCount, old.Upper+pageSize/2)}.Clamp(newCount)
	case MutationRemoval:
		w := old.Clamp(newCount)
		if w.Len() == 0 && newCount > 0 {
			return Initial(newCount, pageSize)
		}
		return w
	default:
		return old.Clamp(newCount)
	}
}

func normalizePage(pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return pageSize
}
