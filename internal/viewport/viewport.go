package viewport

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
)

// ToBuffer maps a click in display space onto the pixel it covers in a
// bufW×bufH buffer shown stretched over display.
// ok is false when the display is empty or the click lands outside the buffer.
func ToBuffer(click image.Point, display image.Rectangle, bufW, bufH int) (p image.Point, ok bool) {
	if display.Empty() || bufW <= 0 || bufH <= 0 {
		return image.Point{}, false
	}
	scaleX := float64(bufW) / float64(display.Dx())
	scaleY := float64(bufH) / float64(display.Dy())

	p = image.Point{
		X: int(math.Floor(float64(click.X-display.Min.X) * scaleX)),
		Y: int(math.Floor(float64(click.Y-display.Min.Y) * scaleY)),
	}
	if p.X < 0 || p.X >= bufW || p.Y < 0 || p.Y >= bufH {
		return p, false
	}
	return p, true
}

// ParseSize parses "WxH" (e.g. "512x512") into a rectangle at the origin.
func ParseSize(s string) (image.Rectangle, error) {
	ws, hs, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return image.Rectangle{}, fmt.Errorf("viewport: size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("viewport: size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("viewport: size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, fmt.Errorf("viewport: size %q: dimensions must be positive", s)
	}
	return image.Rect(0, 0, w, h), nil
}
