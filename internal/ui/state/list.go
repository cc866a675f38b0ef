package state

// ResetPolicy picks where the selection lands after a replacement left the
// previous index out of range.
type ResetPolicy int

const (
	// KeepFirst snaps an invalid selection to the first item.
	KeepFirst ResetPolicy = iota
	// KeepLast snaps an invalid selection to the last item.
	KeepLast
)

// List pairs a slice of items with one optional selection. Moves clamp at
// the edges. pos stores the selection index offset by one so the zero value
// starts with no selection.
type List[T any] struct {
	items []T
	pos   int
}

// Items returns the backing slice.
func (l *List[T]) Items() []T { return l.items }

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// Index returns the selection index, if any.
func (l *List[T]) Index() (int, bool) {
	idx := l.pos - 1
	if idx < 0 || idx >= len(l.items) {
		return -1, false
	}
	return idx, true
}

// Selected returns the selected item, if any.
func (l *List[T]) Selected() (T, bool) {
	var zero T
	idx, ok := l.Index()
	if !ok {
		return zero, false
	}
	return l.items[idx], true
}

// Move shifts the selection by delta, clamping to the list bounds. An empty
// list keeps no selection; a missing selection moves from the first item.
func (l *List[T]) Move(delta int) {
	if len(l.items) == 0 {
		l.pos = 0
		return
	}
	base := l.pos - 1
	if base < 0 {
		base = 0
	}
	next := base + delta
	if next < 0 {
		next = 0
	}
	if next > len(l.items)-1 {
		next = len(l.items) - 1
	}
	l.pos = next + 1
}

// Replace swaps in a new slice. An in-range selection is kept; an absent or
// invalid one is reset per the policy; an empty slice clears the selection.
func (l *List[T]) Replace(items []T, policy ResetPolicy) {
	l.items = items
	if len(items) == 0 {
		l.pos = 0
		return
	}
	if idx := l.pos - 1; idx >= 0 && idx < len(items) {
		return
	}
	if policy == KeepLast {
		l.pos = len(items)
		return
	}
	l.pos = 1
}

// SetIndex forces the selection to i, clamped into range.
func (l *List[T]) SetIndex(i int) {
	if len(l.items) == 0 {
		l.pos = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(l.items)-1 {
		i = len(l.items) - 1
	}
	l.pos = i + 1
}

// ClearSelection drops the selection while keeping the items. The next
// Replace re-establishes one.
func (l *List[T]) ClearSelection() { l.pos = 0 }

// Clear drops both items and selection.
func (l *List[T]) Clear() {
	l.items = nil
	l.pos = 0
}
