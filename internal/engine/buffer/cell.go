package buffer

// Cell is one character position in the grid: a 7-bit ASCII character code
// paired with its highlight color.
type Cell struct {
	Ch    byte
	Color ColorTag
}

// IsSpace reports whether the cell holds a space character.
func (c Cell) IsSpace() bool {
	return c.Ch == ' '
}

// Line is a row of cells.
type Line []Cell

// LineFromString builds a line from an ASCII string, tagging every cell with
// the given color.
func LineFromString(s string, color ColorTag) Line {
	line := make(Line, len(s))
	for i := 0; i < len(s); i++ {
		line[i] = Cell{Ch: s[i], Color: color}
	}
	return line
}

// String returns the line's characters without color information.
func (l Line) String() string {
	chars := make([]byte, len(l))
	for i, c := range l {
		chars[i] = c.Ch
	}
	return string(chars)
}

// clone returns an independent copy of the line.
func (l Line) clone() Line {
	out := make(Line, len(l))
	copy(out, l)
	return out
}
