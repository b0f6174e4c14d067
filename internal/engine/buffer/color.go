package buffer

// ColorTag identifies the highlight color of a single cell. Tag values are
// part of the persisted encoding and must stay stable.
type ColorTag byte

const (
	// ColorNone marks an unhighlighted cell.
	ColorNone ColorTag = iota
	// ColorRed is the first highlight color.
	ColorRed
	// ColorGreen is the second highlight color.
	ColorGreen
	// ColorYellow is the third highlight color.
	ColorYellow
	// ColorBlue is the fourth highlight color.
	ColorBlue
	// ColorMagenta is the fifth highlight color.
	ColorMagenta
	// ColorCyan is the sixth highlight color.
	ColorCyan

	maxColorTag = ColorCyan
)

// Valid reports whether the tag is a recognized color value.
func (c ColorTag) Valid() bool {
	return c <= maxColorTag
}

// String returns the color name.
func (c ColorTag) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	default:
		return "invalid"
	}
}
