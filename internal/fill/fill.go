// Package fill implements the paint-bucket tool for coloring pages: a
// breadth-first, 4-connected flood fill that stops at dark outline pixels
// and at pixels whose color strays too far from the clicked pixel.
package fill

import (
	"errors"
	"fmt"
	"image"

	"colorbook/internal/palette"
	"colorbook/internal/raster"
)

// DefaultTolerance is the per-channel distance used by Fill.
const DefaultTolerance = 50

// sameColorDistance is the per-channel distance under which the seed is
// considered already painted with the fill color.
const sameColorDistance = 3

var (
	ErrSeedOutOfBounds  = errors.New("fill: seed out of bounds")
	ErrInvalidTolerance = errors.New("fill: negative tolerance")
	ErrInvalidBuffer    = errors.New("fill: invalid buffer")
)

// Fill repaints the region around seed with c using DefaultTolerance.
func Fill(buf *raster.Buffer, seed image.Point, c palette.RGB) (bool, error) {
	return FillTolerance(buf, seed, c, DefaultTolerance)
}

// FillTolerance repaints, in place and fully opaque, every pixel reachable
// from seed through orthogonal steps over non-boundary pixels whose original
// color is within tolerance of the seed's original color on every channel.
//
// It reports whether any pixel was painted. Clicking an outline, or a pixel
// that already has the fill color, is a no-op.
func FillTolerance(buf *raster.Buffer, seed image.Point, c palette.RGB, tolerance int) (bool, error) {
	if !buf.Valid() {
		return false, ErrInvalidBuffer
	}
	if !buf.In(seed.X, seed.Y) {
		return false, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrSeedOutOfBounds, seed.X, seed.Y, buf.Width, buf.Height)
	}
	if tolerance < 0 {
		return false, fmt.Errorf("%w: %d", ErrInvalidTolerance, tolerance)
	}

	sR, sG, sB, _ := buf.RGBA(seed.X, seed.Y)
	if IsBoundary(sR, sG, sB) {
		return false, nil
	}
	if absDiff(sR, c.R) < sameColorDistance &&
		absDiff(sG, c.G) < sameColorDistance &&
		absDiff(sB, c.B) < sameColorDistance {
		return false, nil
	}

	w, h := buf.Width, buf.Height
	pix := buf.Pix
	visited := make([]bool, w*h)

	// Neighbors are tested before they are painted, so every color read
	// here is the pixel's original color.
	similar := func(i int) bool {
		r, g, b := pix[i*4], pix[i*4+1], pix[i*4+2]
		if IsBoundary(r, g, b) {
			return false
		}
		return absDiff(r, sR) <= tolerance &&
			absDiff(g, sG) <= tolerance &&
			absDiff(b, sB) <= tolerance
	}

	dx := [4]int{1, -1, 0, 0}
	dy := [4]int{0, 0, 1, -1}

	start := seed.Y*w + seed.X
	visited[start] = true
	queue := make([]int, 0, 1024)
	queue = append(queue, start)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		o := curr * 4
		pix[o] = c.R
		pix[o+1] = c.G
		pix[o+2] = c.B
		pix[o+3] = 255

		cy := curr / w
		cx := curr % w
		for d := 0; d < 4; d++ {
			nx := cx + dx[d]
			ny := cy + dy[d]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			ni := ny*w + nx
			if visited[ni] {
				continue
			}
			// Rejection depends only on the pixel itself, so each pixel is
			// examined once whether or not it joins the region.
			visited[ni] = true
			if similar(ni) {
				queue = append(queue, ni)
			}
		}
	}

	return true, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
