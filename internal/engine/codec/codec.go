// Package codec implements the persisted note format.
//
// A note is a flat byte stream of (charCode, colorTag) pairs: the first byte
// is a 7-bit ASCII character code, the second the cell's ColorTag byte. A
// newline character code with a zero color tag separates lines; there is no
// trailing terminator, so an empty stream decodes to a single empty line.
// The stream length is always even.
package codec

import (
	"errors"
	"fmt"

	"github.com/kmowery/notegrid/internal/engine/buffer"
)

// Errors returned when decoding a note stream.
var (
	// ErrMalformedLength indicates an odd byte count.
	ErrMalformedLength = errors.New("malformed note: odd byte length")

	// ErrInvalidEncoding indicates a character byte outside the 7-bit range.
	ErrInvalidEncoding = errors.New("invalid character encoding")

	// ErrInvalidColorTag indicates an unrecognized color byte.
	ErrInvalidColorTag = errors.New("invalid color tag")
)

// newline is the line separator character code in the wire format.
const newline = '\n'

// Decode parses a note stream into a buffer.
// The result always has at least one line. Decode does not apply any
// dimension limits; pass the result through the engine's fit policy.
func Decode(data []byte) (*buffer.Buffer, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedLength, len(data))
	}

	lines := []buffer.Line{{}}
	for i := 0; i < len(data); i += 2 {
		ch, tag := data[i], data[i+1]
		if ch > 127 {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidEncoding, ch, i)
		}
		if ch == newline {
			lines = append(lines, buffer.Line{})
			continue
		}
		color := buffer.ColorTag(tag)
		if !color.Valid() {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidColorTag, tag, i+1)
		}
		n := len(lines) - 1
		lines[n] = append(lines[n], buffer.Cell{Ch: ch, Color: color})
	}

	return buffer.FromLines(lines), nil
}

// Encode serializes a buffer into the wire format: one pair per cell, with a
// colorless newline pair between (not after) lines. The output length is
// always even, and Decode(Encode(b)) reproduces b exactly for any buffer
// holding only 7-bit character codes.
func Encode(b *buffer.Buffer) []byte {
	out := make([]byte, 0, 2*(b.CharCount()+b.LineCount()))
	for i := 0; i < b.LineCount(); i++ {
		if i > 0 {
			out = append(out, newline, byte(buffer.ColorNone))
		}
		for _, c := range b.Line(i) {
			out = append(out, c.Ch, byte(c.Color))
		}
	}
	return out
}
