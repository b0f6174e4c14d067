package buffer

// Ellipsis marks truncated content after a fit pass.
const Ellipsis = "..."

// Fit applies the truncation policy for a viewport of maxWidth x maxHeight
// cells and reports whether anything was truncated.
//
// Lines beyond maxHeight are dropped and the last kept line is replaced with
// the ellipsis marker. Independently, a line longer than maxWidth is cut to
// maxWidth-3 cells plus the ellipsis suffix. Fit never fails and never grows
// the buffer, and applying it twice with the same dimensions changes nothing
// the second time.
func (b *Buffer) Fit(maxWidth, maxHeight int) bool {
	if maxWidth < 1 || maxHeight < 1 {
		return false
	}

	truncated := false

	if len(b.lines) > maxHeight {
		b.lines = b.lines[:maxHeight]
		b.lines[maxHeight-1] = ellipsisLine(maxWidth)
		truncated = true
	}

	for i, line := range b.lines {
		if len(line) <= maxWidth {
			continue
		}
		keep := maxWidth - len(Ellipsis)
		if keep < 0 {
			keep = 0
		}
		line = line[:keep]
		for _, ch := range Ellipsis {
			if len(line) >= maxWidth {
				break
			}
			line = append(line, Cell{Ch: byte(ch)})
		}
		b.lines[i] = line
		truncated = true
	}

	return truncated
}

// ellipsisLine builds the truncation marker line, cut down if the viewport
// is narrower than the marker itself.
func ellipsisLine(maxWidth int) Line {
	n := len(Ellipsis)
	if n > maxWidth {
		n = maxWidth
	}
	return LineFromString(Ellipsis[:n], ColorNone)
}
