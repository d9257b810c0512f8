package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RGB is an opaque fill color.
type RGB struct {
	R, G, B uint8
}

// ErrBadHex is returned for strings that are not #RRGGBB or #RGB.
var ErrBadHex = errors.New("palette: bad hex color")

// Default is the swatch row offered next to the coloring page.
var Default = []RGB{
	{0xFF, 0x00, 0x00}, {0xFF, 0x6B, 0x00}, {0xFF, 0xD7, 0x00}, {0x00, 0xC8, 0x53},
	{0x21, 0x96, 0xF3}, {0x9C, 0x27, 0xB0}, {0xE9, 0x1E, 0x63}, {0x79, 0x55, 0x48},
	{0x60, 0x7D, 0x8B}, {0x00, 0x00, 0x00}, {0xFF, 0xFF, 0xFF}, {0xFF, 0x98, 0x00},
	{0x4C, 0xAF, 0x50}, {0x03, 0xA9, 0xF4}, {0x67, 0x3A, 0xB7}, {0xF4, 0x43, 0x36},
}

// DefaultColor is the initially selected swatch.
var DefaultColor = Default[0]

// ParseHex parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB" (case-insensitive).
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }
