// Package history provides snapshot-based undo and redo over the path model.
package history

import "github.com/go-drift/pathkit/pkg/path"

// DefaultLimit is the maximum number of retained undo snapshots. Beyond it
// the oldest snapshot is evicted first.
const DefaultLimit = 50

// History holds deep-copied path snapshots on two stacks. Callers must take
// a snapshot before mutating, so the undo stack always holds pre-mutation
// states.
type History struct {
	limit int
	undo  []path.Path
	redo  []path.Path
}

// New creates a history with DefaultLimit.
func New() *History {
	return NewWithLimit(DefaultLimit)
}

// NewWithLimit creates a history retaining at most limit undo snapshots.
func NewWithLimit(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

// Snapshot deep-copies p onto the undo stack and clears the redo stack.
// If the stack exceeds the limit the oldest entry is dropped.
func (h *History) Snapshot(p path.Path) {
	h.undo = append(h.undo, p.Clone())
	h.redo = h.redo[:0]
	if len(h.undo) > h.limit {
		n := copy(h.undo, h.undo[len(h.undo)-h.limit:])
		h.undo = h.undo[:n]
	}
}

// Undo pushes current onto the redo stack and returns the most recent
// snapshot. Returns false with current unchanged when there is nothing to
// undo.
func (h *History) Undo(current path.Path) (path.Path, bool) {
	if len(h.undo) == 0 {
		return current, false
	}
	h.redo = append(h.redo, current.Clone())
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return top, true
}

// Redo pushes current onto the undo stack and returns the most recently
// undone state. Returns false with current unchanged when there is nothing
// to redo.
func (h *History) Redo(current path.Path) (path.Path, bool) {
	if len(h.redo) == 0 {
		return current, false
	}
	h.undo = append(h.undo, current.Clone())
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return top, true
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDepth returns the number of retained undo snapshots.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of retained redo snapshots.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

// Clear drops all snapshots. History is session state and is never
// persisted across a canvas reset.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
