package fill

import (
	"image"

	"colorbook/internal/raster"
)

// BoundaryLuminance is the luminance below which a pixel counts as outline.
const BoundaryLuminance = 80

// Class is the fill classification of a single pixel.
type Class int

const (
	ClassFillable Class = iota
	ClassBoundary
)

func (c Class) String() string {
	if c == ClassBoundary {
		return "boundary"
	}
	return "fillable"
}

// Luminance returns the perceptual brightness 0.299R + 0.587G + 0.114B.
func Luminance(r, g, b uint8) float64 {
	// Explicit conversions round each product, so no platform fuses them
	// into a multiply-add and gray 80 stays exactly at the threshold.
	return float64(0.299*float64(r)) + float64(0.587*float64(g)) + float64(0.114*float64(b))
}

// IsBoundary reports whether a pixel is dark enough to stop a fill.
// Alpha is not considered.
func IsBoundary(r, g, b uint8) bool {
	return Luminance(r, g, b) < BoundaryLuminance
}

// Classify returns the class of the pixel at p. The caller checks bounds.
func Classify(buf *raster.Buffer, p image.Point) Class {
	r, g, b, _ := buf.RGBA(p.X, p.Y)
	if IsBoundary(r, g, b) {
		return ClassBoundary
	}
	return ClassFillable
}
