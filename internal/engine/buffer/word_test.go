package buffer

import "testing"

func TestPrevWordBoundary(t *testing.T) {
	line := LineFromString("My name is John Smith", ColorNone)

	tests := []struct {
		name string
		col  int
		want int
	}{
		{"from word start over space run", 11, 8},
		{"from mid word", 5, 3},
		{"from word end", 7, 3},
		{"at line start", 0, 0},
		{"from first word", 2, 0},
		{"from line end", 21, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrevWordBoundary(line, tt.col); got != tt.want {
				t.Errorf("PrevWordBoundary(%d) = %d, want %d", tt.col, got, tt.want)
			}
		})
	}
}

func TestNextWordBoundary(t *testing.T) {
	line := LineFromString("My name is John Smith", ColorNone)

	tests := []struct {
		name string
		col  int
		want int
	}{
		{"from word start", 11, 15},
		{"from mid word", 4, 7},
		{"over space run", 10, 15},
		{"word ending at line end", 16, 21},
		{"at line end", 21, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextWordBoundary(line, tt.col); got != tt.want {
				t.Errorf("NextWordBoundary(%d) = %d, want %d", tt.col, got, tt.want)
			}
		})
	}
}

func TestWordBoundarySpacesOnly(t *testing.T) {
	line := LineFromString("   ", ColorNone)
	if got := PrevWordBoundary(line, 3); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := NextWordBoundary(line, 0); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestWordBoundarySingleCharTrailingWord(t *testing.T) {
	// "ab c" — the final one-character word must be covered in full.
	line := LineFromString("ab c", ColorNone)
	if got := NextWordBoundary(line, 2); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := PrevWordBoundary(line, 4); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestWordBoundaryClampsColumn(t *testing.T) {
	line := LineFromString("abc", ColorNone)
	if got := PrevWordBoundary(line, 99); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := NextWordBoundary(line, -5); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}
