// Package history implements snapshot-based undo/redo for a note buffer.
//
// Every entry is a full deep copy of the buffer plus the cursor position, so
// restoring an entry can never be corrupted by later edits to the live
// buffer. Character-level edits are throttled: only one snapshot is taken per
// N accumulated keystrokes. Coarse edits (line insert/delete, word delete,
// line moves) always snapshot. The undo stack is bounded; pushing past
// capacity evicts the oldest entry.
package history

import (
	"github.com/kmowery/notegrid/internal/engine/buffer"
	"github.com/kmowery/notegrid/internal/engine/cursor"
)

// Default configuration values.
const (
	DefaultCapacity      = 100
	DefaultSnapshotEvery = 10
)

// Entry is one restorable state: an independent deep copy of the buffer and
// the cursor position at snapshot time.
type Entry struct {
	Buffer *buffer.Buffer
	Cursor cursor.Position
}

// History holds the bounded undo stack and the redo stack for one note.
type History struct {
	undo []Entry
	redo []Entry

	capacity      int
	snapshotEvery int

	// typed counts character-level edits since the last snapshot.
	typed int
}

// New creates a history with the given undo capacity and keystroke throttle.
// Non-positive arguments fall back to the defaults.
func New(capacity, snapshotEvery int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if snapshotEvery <= 0 {
		snapshotEvery = DefaultSnapshotEvery
	}
	return &History{capacity: capacity, snapshotEvery: snapshotEvery}
}

// RecordTyped is called with the pre-edit state before every character-level
// edit. It snapshots on the first keystroke after a snapshot and then once
// per throttle window. Every call invalidates the redo stack.
func (h *History) RecordTyped(e Entry) {
	if h.typed == 0 {
		h.push(e)
	}
	h.typed++
	if h.typed >= h.snapshotEvery {
		h.typed = 0
	}
	h.redo = h.redo[:0]
}

// RecordEdit is called with the pre-edit state before a coarse edit.
// It snapshots unconditionally and invalidates the redo stack. The throttle
// counter resets so the next keystroke gets its own snapshot.
func (h *History) RecordEdit(e Entry) {
	h.push(e)
	h.typed = 0
	h.redo = h.redo[:0]
}

// push appends to the undo stack, evicting the oldest entry past capacity.
func (h *History) push(e Entry) {
	h.undo = append(h.undo, e)
	if len(h.undo) > h.capacity {
		excess := len(h.undo) - h.capacity
		h.undo = h.undo[excess:]
	}
}

// Undo exchanges the current state for the most recent undo entry: current
// goes onto the redo stack, the popped entry is returned for restoring.
// Returns false without side effects when the undo stack is empty.
func (h *History) Undo(current Entry) (Entry, bool) {
	if len(h.undo) == 0 {
		return Entry{}, false
	}
	entry := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	h.typed = 0
	return entry, true
}

// Redo is the inverse of Undo: current goes back onto the undo stack (the
// redo stack is left intact), the most recent redo entry is returned.
func (h *History) Redo(current Entry) (Entry, bool) {
	if len(h.redo) == 0 {
		return Entry{}, false
	}
	entry := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	if len(h.undo) > h.capacity {
		excess := len(h.undo) - h.capacity
		h.undo = h.undo[excess:]
	}
	h.typed = 0
	return entry, true
}

// CanUndo reports whether an undo entry is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo entry is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoCount returns the number of undo entries.
func (h *History) UndoCount() int {
	return len(h.undo)
}

// RedoCount returns the number of redo entries.
func (h *History) RedoCount() int {
	return len(h.redo)
}

// Capacity returns the undo stack capacity.
func (h *History) Capacity() int {
	return h.capacity
}

// Clear drops all undo/redo state.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	h.typed = 0
}
