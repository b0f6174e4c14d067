package engine

import "github.com/kmowery/notegrid/internal/engine/buffer"

// Cursor motion. Navigation never mutates the buffer, never records history,
// and never touches the dirty flag; every operation leaves the cursor on a
// valid position.

// CursorUp moves one line up, clamping the column to the target line.
// No-op on the first line.
func (e *Engine) CursorUp() {
	if e.cur.Line == 0 {
		return
	}
	e.cur.Line--
	e.clampCol()
}

// CursorDown moves one line down, clamping the column to the target line.
// No-op on the last line.
func (e *Engine) CursorDown() {
	if e.cur.Line >= e.buf.LineCount()-1 {
		return
	}
	e.cur.Line++
	e.clampCol()
}

// CursorLeft moves one column left, wrapping to the end of the previous line
// at column 0. No-op at the start of the note.
func (e *Engine) CursorLeft() {
	if e.cur.Col > 0 {
		e.cur.Col--
		return
	}
	if e.cur.Line == 0 {
		return
	}
	e.cur.Line--
	e.cur.Col = e.buf.LineLen(e.cur.Line)
}

// CursorRight moves one column right, wrapping to the start of the next line
// at the end of a line. No-op at the end of the note.
func (e *Engine) CursorRight() {
	if e.cur.Col < e.buf.LineLen(e.cur.Line) {
		e.cur.Col++
		return
	}
	if e.cur.Line >= e.buf.LineCount()-1 {
		return
	}
	e.cur.Line++
	e.cur.Col = 0
}

// CursorLineStart moves to column 0 of the current line.
func (e *Engine) CursorLineStart() {
	e.cur.Col = 0
}

// CursorLineEnd moves past the last character of the current line.
func (e *Engine) CursorLineEnd() {
	e.cur.Col = e.buf.LineLen(e.cur.Line)
}

// CursorBufferStart moves to the first position of the note.
func (e *Engine) CursorBufferStart() {
	e.cur = Position{}
}

// CursorBufferEnd moves past the last character of the last line.
func (e *Engine) CursorBufferEnd() {
	e.cur.Line = e.buf.LineCount() - 1
	e.cur.Col = e.buf.LineLen(e.cur.Line)
}

// CursorWordLeft moves to the start of the word left of the cursor, skipping
// any intervening spaces. Already at column 0 it stays put.
func (e *Engine) CursorWordLeft() {
	e.cur.Col = buffer.PrevWordBoundary(e.line(), e.cur.Col)
}

// CursorWordRight moves past the end of the word right of the cursor,
// skipping any intervening spaces. Already at the line end it stays put.
func (e *Engine) CursorWordRight() {
	e.cur.Col = buffer.NextWordBoundary(e.line(), e.cur.Col)
}

// clampCol keeps the column within the current line after vertical motion.
func (e *Engine) clampCol() {
	if max := e.buf.LineLen(e.cur.Line); e.cur.Col > max {
		e.cur.Col = max
	}
}
