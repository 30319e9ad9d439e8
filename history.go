package textpath

// HistoryCapacity is the default number of undo steps kept.
const HistoryCapacity = 50

// History keeps snapshots of a path for undo and redo. Snapshots are copies, so later changes to a path never affect the history.
type History struct {
	undo, redo []*Path
	capacity   int
}

// NewHistory returns an empty history that keeps at most capacity undo steps. A non-positive capacity uses HistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	return &History{
		capacity: capacity,
	}
}

// Push saves the path as it is before a modification and clears the redo steps. The oldest snapshot is dropped when the capacity is exceeded.
func (h *History) Push(p *Path) {
	h.undo = append(h.undo, p.Copy())
	if h.capacity < len(h.undo) {
		h.undo[0] = nil
		h.undo = h.undo[1:]
	}
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo returns the most recent snapshot and saves current for redo. It returns false without changes if there is nothing to undo.
func (h *History) Undo(current *Path) (*Path, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	p := h.undo[len(h.undo)-1]
	h.undo[len(h.undo)-1] = nil
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Copy())
	return p.Copy(), true
}

// Redo returns the most recently undone path and saves current for undo. It returns false without changes if there is nothing to redo.
func (h *History) Redo(current *Path) (*Path, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	p := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Copy())
	return p.Copy(), true
}

// CanUndo returns true if there are snapshots to undo.
func (h *History) CanUndo() bool {
	return 0 < len(h.undo)
}

// CanRedo returns true if there are snapshots to redo.
func (h *History) CanRedo() bool {
	return 0 < len(h.redo)
}

// Len returns the number of undo and redo steps.
func (h *History) Len() (int, int) {
	return len(h.undo), len(h.redo)
}

// Reset drops all snapshots.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}
