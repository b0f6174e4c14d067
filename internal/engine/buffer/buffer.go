package buffer

import "strings"

// Buffer is the full grid of lines making up one note's content.
// A buffer always holds at least one line; an empty note is a single empty
// line. The buffer itself enforces no dimension limits — the fit policy
// (Fit) and the engine's edit checks do.
type Buffer struct {
	lines []Line
}

// New creates an empty buffer containing a single empty line.
func New() *Buffer {
	return &Buffer{lines: []Line{{}}}
}

// FromLines creates a buffer from the given lines.
// A nil or empty slice yields an empty buffer.
func FromLines(lines []Line) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	return &Buffer{lines: lines}
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the cell length of the given line.
func (b *Buffer) LineLen(i int) int {
	return len(b.lines[i])
}

// Line returns the live cell slice for the given line.
// Callers outside this package must treat it as read-only.
func (b *Buffer) Line(i int) Line {
	return b.lines[i]
}

// CharCount returns the total number of cells across all lines.
func (b *Buffer) CharCount() int {
	n := 0
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

// IsEmpty reports whether the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// String returns the buffer content as plain text, lines joined by '\n'.
// Color information is dropped.
func (b *Buffer) String() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Clone returns a fully independent deep copy.
// No line slice is shared with the receiver, so later edits to either buffer
// never leak into the other. Undo history depends on this guarantee.
func (b *Buffer) Clone() *Buffer {
	lines := make([]Line, len(b.lines))
	for i, l := range b.lines {
		lines[i] = l.clone()
	}
	return &Buffer{lines: lines}
}

// Equal reports structural equality: same line count, same cells, same colors.
func (b *Buffer) Equal(other *Buffer) bool {
	if len(b.lines) != len(other.lines) {
		return false
	}
	for i, l := range b.lines {
		ol := other.lines[i]
		if len(l) != len(ol) {
			return false
		}
		for j, c := range l {
			if c != ol[j] {
				return false
			}
		}
	}
	return true
}

// Edit operations. All index arguments must be in range; the engine
// validates cursor positions before calling.

// InsertCell splices a cell into line i at column col, shifting the
// remainder right.
func (b *Buffer) InsertCell(i, col int, c Cell) {
	line := b.lines[i]
	line = append(line, Cell{})
	copy(line[col+1:], line[col:])
	line[col] = c
	b.lines[i] = line
}

// SetCell overwrites the cell at (i, col).
func (b *Buffer) SetCell(i, col int, c Cell) {
	b.lines[i][col] = c
}

// AppendCell appends a cell to line i.
func (b *Buffer) AppendCell(i int, c Cell) {
	b.lines[i] = append(b.lines[i], c)
}

// DeleteCell removes the cell at (i, col).
func (b *Buffer) DeleteCell(i, col int) {
	b.DeleteRange(i, col, col+1)
}

// DeleteRange removes cells [from, to) on line i.
func (b *Buffer) DeleteRange(i, from, to int) {
	line := b.lines[i]
	b.lines[i] = append(line[:from], line[to:]...)
}

// SplitLine splits line i at column col: cells before col stay, cells at and
// after col move to a new following line.
func (b *Buffer) SplitLine(i, col int) {
	line := b.lines[i]
	tail := make(Line, len(line)-col)
	copy(tail, line[col:])
	b.lines[i] = line[:col:col]
	b.lines = append(b.lines, nil)
	copy(b.lines[i+2:], b.lines[i+1:])
	b.lines[i+1] = tail
}

// MergeLines concatenates line i+1 onto line i and removes line i+1.
func (b *Buffer) MergeLines(i int) {
	b.lines[i] = append(b.lines[i], b.lines[i+1]...)
	b.lines = append(b.lines[:i+1], b.lines[i+2:]...)
}

// RemoveLine removes line i. The caller must ensure at least one line
// remains; the engine clears the sole line instead of removing it.
func (b *Buffer) RemoveLine(i int) {
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
}

// ClearLine empties line i without removing it.
func (b *Buffer) ClearLine(i int) {
	b.lines[i] = Line{}
}

// SwapLines exchanges lines i and j.
func (b *Buffer) SwapLines(i, j int) {
	b.lines[i], b.lines[j] = b.lines[j], b.lines[i]
}
