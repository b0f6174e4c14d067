package buffer

// Word boundaries. A word is a maximal run of non-space cells; scans stay
// within a single line. The same boundaries drive both word deletion and
// word-wise cursor motion.

// PrevWordBoundary returns the column reached by scanning left from col:
// first over any run of spaces, then over the word itself. The result is the
// first column of that word, or 0 when nothing but spaces precede col.
func PrevWordBoundary(line Line, col int) int {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i > 0 && line[i-1].IsSpace() {
		i--
	}
	for i > 0 && !line[i-1].IsSpace() {
		i--
	}
	return i
}

// NextWordBoundary returns the column reached by scanning right from col:
// first over any run of spaces, then over the word itself. The result is one
// past the word's last cell, or len(line) when only spaces follow col. A word
// ending exactly at the line end is covered in full.
func NextWordBoundary(line Line, col int) int {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i < len(line) && line[i].IsSpace() {
		i++
	}
	for i < len(line) && !line[i].IsSpace() {
		i++
	}
	return i
}
