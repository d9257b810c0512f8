package fill

import (
	"sort"

	"colorbook/internal/raster"
)

// Census summarizes how a page splits into fillable regions.
type Census struct {
	Pixels   int   // total pixels
	Boundary int   // outline pixels
	Sizes    []int // region sizes, largest first
}

// Regions returns the number of regions a paint bucket could reach, that is
// the 4-connected components of non-boundary pixels, ignoring tolerance.
func (c Census) Regions() int { return len(c.Sizes) }

// BoundaryRatio is the fraction of pixels classified as outline.
func (c Census) BoundaryRatio() float64 {
	if c.Pixels == 0 {
		return 0
	}
	return float64(c.Boundary) / float64(c.Pixels)
}

// Count labels the fillable regions of buf. The buffer is not modified.
func Count(buf *raster.Buffer) Census {
	if !buf.Valid() {
		return Census{}
	}
	w, h := buf.Width, buf.Height
	pix := buf.Pix

	open := make([]bool, w*h)
	census := Census{Pixels: w * h}
	for i := range open {
		if IsBoundary(pix[i*4], pix[i*4+1], pix[i*4+2]) {
			census.Boundary++
			continue
		}
		open[i] = true
	}

	dx := [4]int{1, -1, 0, 0}
	dy := [4]int{0, 0, 1, -1}
	seen := make([]bool, w*h)
	queue := make([]int, 0, 1024)

	for idx := range open {
		if !open[idx] || seen[idx] {
			continue
		}

		queue = queue[:0]
		queue = append(queue, idx)
		seen[idx] = true
		size := 0

		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			size++

			cy := curr / w
			cx := curr % w
			for d := 0; d < 4; d++ {
				nx := cx + dx[d]
				ny := cy + dy[d]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				ni := ny*w + nx
				if open[ni] && !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}

		census.Sizes = append(census.Sizes, size)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(census.Sizes)))
	return census
}
