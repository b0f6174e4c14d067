// Package cursor provides the line/column edit position for a note buffer.
package cursor

// Position is an edit position in the buffer: 0-based line and column.
// Column may equal the line length, addressing the slot after the last cell.
type Position struct {
	Line int
	Col  int
}

// Clamp returns p adjusted to address a valid position in a buffer with
// lineCount lines, where lineLen reports each line's cell length.
// lineCount is treated as at least 1.
func Clamp(p Position, lineCount int, lineLen func(line int) int) Position {
	if lineCount < 1 {
		lineCount = 1
	}
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line > lineCount-1 {
		p.Line = lineCount - 1
	}
	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(p.Line)
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col > maxCol {
		p.Col = maxCol
	}
	return p
}
