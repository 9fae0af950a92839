package tracker

// DefaultHistoryLimit bounds the undo stack.
const DefaultHistoryLimit = 10

// History holds bounded undo/redo stacks of full-store snapshots.
// past grows with each mutation and evicts its oldest entry beyond the
// limit; future is cleared whenever a fresh mutation is recorded.
type History struct {
	limit  int
	past   []Snapshot
	future []Snapshot
}

// NewHistory creates a history with the given cap. Non-positive caps
// fall back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record pushes the pre-mutation snapshot onto the undo stack and
// invalidates any redo entries.
func (h *History) Record(current Snapshot) {
	h.past = append(h.past, current.Clone())
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.future = nil
}

// Undo pops the most recent snapshot for the store to adopt, parking the
// current one on the redo stack. Returns false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.past) == 0 {
		return nil, false
	}
	previous := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]Snapshot{current.Clone()}, h.future...)
	return previous, true
}

// Redo is the inverse of Undo. Returns false when the redo stack is empty.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current.Clone())
	return next, true
}

// CanUndo reports whether an undo would apply.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo would apply.
func (h *History) CanRedo() bool { return len(h.future) > 0 }
