package engine

import (
	"github.com/kmowery/notegrid/internal/engine/ascii"
	"github.com/kmowery/notegrid/internal/engine/buffer"
	"github.com/kmowery/notegrid/internal/engine/codec"
	"github.com/kmowery/notegrid/internal/engine/cursor"
	"github.com/kmowery/notegrid/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Cell is one character plus its optional color.
	Cell = buffer.Cell

	// ColorTag is the stored color of a cell.
	ColorTag = buffer.ColorTag

	// Position is a line/column cursor position.
	Position = cursor.Position
)

// Mode reports whether a note accepts edits.
type Mode int

const (
	// ModeEditable is the normal state: all edit operations apply.
	ModeEditable Mode = iota
	// ModeViewable marks a note truncated to fit the viewport: it can be
	// read but typing is disabled. Reopening the note with a larger
	// viewport restores editability.
	ModeViewable
)

// String returns "editable" or "viewable".
func (m Mode) String() string {
	if m == ModeViewable {
		return "viewable"
	}
	return "editable"
}

// ColorSelection is the active color latch: at most one of the three
// symbolic slots is active at a time.
type ColorSelection int

const (
	// SelectNone types uncolored cells.
	SelectNone ColorSelection = iota
	// SelectPrimary through SelectTertiary pick a palette slot.
	SelectPrimary
	SelectSecondary
	SelectTertiary
)

// ColorResolver maps a symbolic color selection to the stored tag.
// The zero selection always resolves to ColorNone.
type ColorResolver func(ColorSelection) ColorTag

// DefaultResolver is the built-in palette: primary red, secondary green,
// tertiary blue.
func DefaultResolver(s ColorSelection) ColorTag {
	switch s {
	case SelectPrimary:
		return buffer.ColorRed
	case SelectSecondary:
		return buffer.ColorGreen
	case SelectTertiary:
		return buffer.ColorBlue
	default:
		return buffer.ColorNone
	}
}

// Engine owns one open note: the bounded buffer, the cursor, the undo
// history, and the edit policy. One engine instance serves one note at a
// time from a single goroutine; opening another note means building a new
// engine.
type Engine struct {
	buf  *buffer.Buffer
	cur  cursor.Position
	hist *history.History

	width  int
	height int

	overwrite   bool
	activeColor ColorSelection
	resolver    ColorResolver

	dirty bool
	mode  Mode

	// Configuration captured by options before construction completes.
	historyCapacity int
	snapshotEvery   int
}

// New creates an engine holding an empty note.
func New(opts ...Option) *Engine {
	e := &Engine{
		width:           DefaultWidth,
		height:          DefaultHeight,
		resolver:        DefaultResolver,
		historyCapacity: history.DefaultCapacity,
		snapshotEvery:   history.DefaultSnapshotEvery,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.buf = buffer.New()
	e.hist = history.New(e.historyCapacity, e.snapshotEvery)
	return e
}

// Load creates an engine from a persisted note stream.
// Oversized content is truncated per the fit policy and the engine starts in
// ModeViewable; decoding failures (odd length, non-ASCII character byte,
// unknown color tag) are returned unwrapped from the codec package.
func Load(data []byte, opts ...Option) (*Engine, error) {
	buf, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	e := New(opts...)
	e.buf = buf
	if e.buf.Fit(e.width, e.height) {
		e.mode = ModeViewable
	}
	return e, nil
}

// Serialize returns the note in its persisted byte form.
// It does not touch the dirty flag; call MarkSaved once the bytes are stored.
func (e *Engine) Serialize() []byte {
	return codec.Encode(e.buf)
}

// MarkSaved clears the unsaved-changes flag after a successful save.
func (e *Engine) MarkSaved() {
	e.dirty = false
}

// Resize updates the viewport dimensions and re-applies the fit policy.
// Shrinking below the content truncates it and disables typing; growing past
// the content re-enables typing on whatever survived earlier truncation.
// Callers wanting the full original content back should reload the note.
func (e *Engine) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	e.width = width
	e.height = height
	if e.buf.Fit(width, height) {
		e.mode = ModeViewable
		return
	}
	e.mode = ModeEditable
}

// snapshot captures the current state as an independent history entry.
func (e *Engine) snapshot() history.Entry {
	return history.Entry{Buffer: e.buf.Clone(), Cursor: e.cur}
}

// restore adopts a history entry as the live state.
// Entries are single-owner once popped, so no clone is needed here.
func (e *Engine) restore(entry history.Entry) {
	e.buf = entry.Buffer
	e.cur = cursor.Clamp(entry.Cursor, e.buf.LineCount(), e.buf.LineLen)
	e.dirty = true
}

// Undo restores the most recent history snapshot.
// Reports whether anything was undone.
func (e *Engine) Undo() bool {
	if e.mode == ModeViewable {
		return false
	}
	entry, ok := e.hist.Undo(e.snapshot())
	if !ok {
		return false
	}
	e.restore(entry)
	return true
}

// Redo restores the most recently undone state.
// Reports whether anything was redone.
func (e *Engine) Redo() bool {
	if e.mode == ModeViewable {
		return false
	}
	entry, ok := e.hist.Redo(e.snapshot())
	if !ok {
		return false
	}
	e.restore(entry)
	return true
}

// CanUndo reports whether undo history is available.
func (e *Engine) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo reports whether redo history is available.
func (e *Engine) CanRedo() bool {
	return e.hist.CanRedo()
}

// SetActiveColor latches a symbolic color slot for subsequent typing.
// Activating a slot clears any other; SelectNone clears the latch.
func (e *Engine) SetActiveColor(s ColorSelection) {
	e.activeColor = s
}

// ClearActiveColor resets the latch to uncolored typing.
func (e *Engine) ClearActiveColor() {
	e.activeColor = SelectNone
}

// ActiveColor returns the current color latch.
func (e *Engine) ActiveColor() ColorSelection {
	return e.activeColor
}

// SetOverwrite switches between insert and overwrite typing.
func (e *Engine) SetOverwrite(overwrite bool) {
	e.overwrite = overwrite
}

// ToggleOverwrite flips the typing mode.
func (e *Engine) ToggleOverwrite() {
	e.overwrite = !e.overwrite
}

// Overwrite reports whether overwrite mode is active.
func (e *Engine) Overwrite() bool {
	return e.overwrite
}

// Read-only queries.

// Cursor returns the current cursor position.
func (e *Engine) Cursor() Position {
	return e.cur
}

// Mode returns ModeEditable or ModeViewable.
func (e *Engine) Mode() Mode {
	return e.mode
}

// TypingDisabled reports whether edits are currently rejected.
func (e *Engine) TypingDisabled() bool {
	return e.mode == ModeViewable
}

// Dirty reports whether the note has unsaved changes.
func (e *Engine) Dirty() bool {
	return e.dirty
}

// LineCount returns the number of lines in the note.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// CharCount returns the total number of characters in the note.
func (e *Engine) CharCount() int {
	return e.buf.CharCount()
}

// LineLen returns the length of the given line, or 0 out of range.
func (e *Engine) LineLen(line int) int {
	if line < 0 || line >= e.buf.LineCount() {
		return 0
	}
	return e.buf.LineLen(line)
}

// LineCells returns a copy of the given line's cells for painting.
// Out-of-range lines yield nil.
func (e *Engine) LineCells(line int) []Cell {
	if line < 0 || line >= e.buf.LineCount() {
		return nil
	}
	src := e.buf.Line(line)
	out := make([]Cell, len(src))
	copy(out, src)
	return out
}

// LineText returns the given line as plain text, or "" out of range.
func (e *Engine) LineText(line int) string {
	if line < 0 || line >= e.buf.LineCount() {
		return ""
	}
	return e.buf.Line(line).String()
}

// Text returns the whole note as plain text.
func (e *Engine) Text() string {
	return e.buf.String()
}

// Width returns the viewport width in cells.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the viewport height in cells.
func (e *Engine) Height() int {
	return e.height
}

// line returns the live line under the cursor.
func (e *Engine) line() buffer.Line {
	return e.buf.Line(e.cur.Line)
}

// InsertChar types one character at the cursor.
//
// The rune is folded to ASCII first (accents stripped, unmapped runes become
// '?', control characters ignored). In insert mode a full line rejects the
// keystroke; in overwrite mode only appending to a full line does. The cell
// takes the active color latch and the cursor advances one column.
func (e *Engine) InsertChar(r rune) {
	if e.mode == ModeViewable {
		return
	}
	ch, ok := ascii.Fold(r)
	if !ok {
		return
	}

	line := e.line()
	full := len(line) >= e.width
	atEnd := e.cur.Col >= len(line)
	if e.overwrite {
		if atEnd && full {
			return
		}
	} else if full {
		return
	}

	e.hist.RecordTyped(e.snapshot())

	cell := Cell{Ch: ch, Color: e.resolver(e.activeColor)}
	if e.overwrite && !atEnd {
		e.buf.SetCell(e.cur.Line, e.cur.Col, cell)
	} else {
		e.buf.InsertCell(e.cur.Line, e.cur.Col, cell)
	}
	e.cur.Col++
	e.dirty = true
}

// DeleteCharBackward removes the character left of the cursor.
// At column 0 it merges the current line into the previous one, placing the
// cursor at the merge point; at the very start of the note it is a no-op.
func (e *Engine) DeleteCharBackward() {
	if e.mode == ModeViewable {
		return
	}
	switch {
	case e.cur.Col > 0:
		e.hist.RecordTyped(e.snapshot())
		e.buf.DeleteCell(e.cur.Line, e.cur.Col-1)
		e.cur.Col--
	case e.cur.Line > 0:
		e.hist.RecordEdit(e.snapshot())
		mergeCol := e.buf.LineLen(e.cur.Line - 1)
		e.buf.MergeLines(e.cur.Line - 1)
		e.cur = Position{Line: e.cur.Line - 1, Col: mergeCol}
	default:
		return
	}
	e.dirty = true
}

// DeleteCharForward removes the character under the cursor.
// At the end of a line it merges the next line into the current one; at the
// very end of the note it is a no-op.
func (e *Engine) DeleteCharForward() {
	if e.mode == ModeViewable {
		return
	}
	switch {
	case e.cur.Col < e.buf.LineLen(e.cur.Line):
		e.hist.RecordTyped(e.snapshot())
		e.buf.DeleteCell(e.cur.Line, e.cur.Col)
	case e.cur.Line < e.buf.LineCount()-1:
		e.hist.RecordEdit(e.snapshot())
		e.buf.MergeLines(e.cur.Line)
	default:
		return
	}
	e.dirty = true
}

// DeleteWordBackward removes the word left of the cursor along with the
// space run separating it from the cursor. With nothing left on the current
// line it merges with the previous line, like DeleteCharBackward.
func (e *Engine) DeleteWordBackward() {
	if e.mode == ModeViewable {
		return
	}
	if e.cur.Col == 0 {
		if e.cur.Line == 0 {
			return
		}
		e.hist.RecordEdit(e.snapshot())
		mergeCol := e.buf.LineLen(e.cur.Line - 1)
		e.buf.MergeLines(e.cur.Line - 1)
		e.cur = Position{Line: e.cur.Line - 1, Col: mergeCol}
		e.dirty = true
		return
	}

	target := buffer.PrevWordBoundary(e.line(), e.cur.Col)
	e.hist.RecordEdit(e.snapshot())
	e.buf.DeleteRange(e.cur.Line, target, e.cur.Col)
	e.cur.Col = target
	e.dirty = true
}

// DeleteWordForward removes the word right of the cursor along with the
// space run separating it from the cursor. At the end of a line it merges
// with the next line, like DeleteCharForward.
func (e *Engine) DeleteWordForward() {
	if e.mode == ModeViewable {
		return
	}
	line := e.line()
	if e.cur.Col >= len(line) {
		if e.cur.Line >= e.buf.LineCount()-1 {
			return
		}
		e.hist.RecordEdit(e.snapshot())
		e.buf.MergeLines(e.cur.Line)
		e.dirty = true
		return
	}

	target := buffer.NextWordBoundary(line, e.cur.Col)
	e.hist.RecordEdit(e.snapshot())
	e.buf.DeleteRange(e.cur.Line, e.cur.Col, target)
	e.dirty = true
}

// InsertLine splits the current line at the cursor: text before the cursor
// stays, the rest moves to a new following line. No-op when the note is
// already at the viewport height.
func (e *Engine) InsertLine() {
	if e.mode == ModeViewable {
		return
	}
	if e.buf.LineCount() >= e.height {
		return
	}
	e.hist.RecordEdit(e.snapshot())
	e.buf.SplitLine(e.cur.Line, e.cur.Col)
	e.cur = Position{Line: e.cur.Line + 1, Col: 0}
	e.dirty = true
}

// DeleteLine removes the entire current line, or clears it when it is the
// only line. The cursor moves to column 0, stepping up a line when the
// removed line was the last.
func (e *Engine) DeleteLine() {
	if e.mode == ModeViewable {
		return
	}
	if e.buf.LineCount() == 1 {
		if e.buf.LineLen(0) == 0 {
			return
		}
		e.hist.RecordEdit(e.snapshot())
		e.buf.ClearLine(0)
		e.cur = Position{}
		e.dirty = true
		return
	}

	e.hist.RecordEdit(e.snapshot())
	e.buf.RemoveLine(e.cur.Line)
	if e.cur.Line >= e.buf.LineCount() {
		e.cur.Line = e.buf.LineCount() - 1
	}
	e.cur.Col = 0
	e.dirty = true
}

// MoveLineUp swaps the current line with the one above; the cursor follows
// the moved line. No-op on the first line.
func (e *Engine) MoveLineUp() {
	if e.mode == ModeViewable || e.cur.Line == 0 {
		return
	}
	e.hist.RecordEdit(e.snapshot())
	e.buf.SwapLines(e.cur.Line-1, e.cur.Line)
	e.cur.Line--
	e.dirty = true
}

// MoveLineDown swaps the current line with the one below; the cursor follows
// the moved line. No-op on the last line.
func (e *Engine) MoveLineDown() {
	if e.mode == ModeViewable || e.cur.Line >= e.buf.LineCount()-1 {
		return
	}
	e.hist.RecordEdit(e.snapshot())
	e.buf.SwapLines(e.cur.Line, e.cur.Line+1)
	e.cur.Line++
	e.dirty = true
}
