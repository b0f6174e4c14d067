package buffer

import "testing"

func TestFitWithinBounds(t *testing.T) {
	b := FromLines([]Line{
		LineFromString("short", ColorNone),
		LineFromString("lines", ColorNone),
	})
	if b.Fit(10, 5) {
		t.Error("expected no truncation for in-bounds buffer")
	}
	if got := b.String(); got != "short\nlines" {
		t.Errorf("expected content unchanged, got %q", got)
	}
}

func TestFitWidthTruncation(t *testing.T) {
	b := FromLines([]Line{LineFromString("abcdefghij", ColorNone)})
	if !b.Fit(8, 5) {
		t.Fatal("expected truncation")
	}
	if got := b.Line(0).String(); got != "abcde..." {
		t.Errorf("expected %q, got %q", "abcde...", got)
	}
	if b.LineLen(0) != 8 {
		t.Errorf("expected line at max width 8, got %d", b.LineLen(0))
	}
}

func TestFitHeightTruncation(t *testing.T) {
	b := FromLines([]Line{
		LineFromString("one", ColorNone),
		LineFromString("two", ColorNone),
		LineFromString("three", ColorNone),
		LineFromString("four", ColorNone),
	})
	if !b.Fit(10, 3) {
		t.Fatal("expected truncation")
	}
	if b.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.LineCount())
	}
	if got := b.Line(2).String(); got != Ellipsis {
		t.Errorf("expected ellipsis marker line, got %q", got)
	}
	if got := b.Line(1).String(); got != "two" {
		t.Errorf("expected %q, got %q", "two", got)
	}
}

func TestFitIdempotent(t *testing.T) {
	b := FromLines([]Line{
		LineFromString("a very long line of text here", ColorNone),
		LineFromString("two", ColorNone),
		LineFromString("three", ColorNone),
	})
	b.Fit(10, 2)
	once := b.Clone()

	if b.Fit(10, 2) {
		t.Error("expected second fit to report no truncation")
	}
	if !b.Equal(once) {
		t.Errorf("expected second fit to change nothing, got %q", b.String())
	}
}

func TestFitNarrowViewport(t *testing.T) {
	b := FromLines([]Line{LineFromString("abcdef", ColorNone)})
	if !b.Fit(2, 5) {
		t.Fatal("expected truncation")
	}
	if got := b.Line(0).String(); got != ".." {
		t.Errorf("expected %q, got %q", "..", got)
	}
}

func TestFitInvalidDimensions(t *testing.T) {
	b := FromLines([]Line{LineFromString("abc", ColorNone)})
	if b.Fit(0, 0) {
		t.Error("expected no-op for invalid dimensions")
	}
	if got := b.String(); got != "abc" {
		t.Errorf("expected content unchanged, got %q", got)
	}
}
