package buffer

import "testing"

func TestColorTagValid(t *testing.T) {
	for c := ColorNone; c <= ColorCyan; c++ {
		if !c.Valid() {
			t.Errorf("expected %v to be valid", c)
		}
	}
	if ColorTag(7).Valid() {
		t.Error("expected tag 7 to be invalid")
	}
	if ColorTag(255).Valid() {
		t.Error("expected tag 255 to be invalid")
	}
}

func TestColorTagString(t *testing.T) {
	tests := []struct {
		tag  ColorTag
		want string
	}{
		{ColorNone, "none"},
		{ColorRed, "red"},
		{ColorGreen, "green"},
		{ColorYellow, "yellow"},
		{ColorBlue, "blue"},
		{ColorMagenta, "magenta"},
		{ColorCyan, "cyan"},
		{ColorTag(42), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("ColorTag(%d).String() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
