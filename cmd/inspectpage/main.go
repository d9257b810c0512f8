package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"

	"colorbook/internal/fill"
	"colorbook/internal/page"
)

func main() {
	in := flag.String("in", "", "Page to inspect (file path or data: URI)")
	x := flag.Int("x", -1, "Pixel X to classify")
	y := flag.Int("y", -1, "Pixel Y to classify")
	top := flag.Int("top", 10, "Number of largest regions to list")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	wantPixel, err := pixelRequested(*x, *y)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	buf, err := page.Open(*in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Page: %dx%d\n", buf.Width, buf.Height)

	// Alpha range, like a texture audit: generated pages should be opaque.
	var minA, maxA uint8 = 255, 0
	for i := 3; i < len(buf.Pix); i += 4 {
		a := buf.Pix[i]
		minA = min(minA, a)
		maxA = max(maxA, a)
	}
	fmt.Printf("Alpha: min=%d max=%d\n", minA, maxA)

	c := fill.Count(buf)
	fmt.Printf("Outline pixels: %d (%.1f%%)\n", c.Boundary, 100*c.BoundaryRatio())
	fmt.Printf("Fillable regions: %d\n", c.Regions())
	for i, size := range c.Sizes[:max(0, min(*top, len(c.Sizes)))] {
		fmt.Printf("  #%d: %d px (%.1f%%)\n", i+1, size, 100*float64(size)/float64(c.Pixels))
	}

	if wantPixel {
		p := image.Pt(*x, *y)
		if !buf.In(p.X, p.Y) {
			fmt.Printf("Pixel (%d,%d): outside page\n", p.X, p.Y)
			os.Exit(1)
		}
		r, g, b, a := buf.RGBA(p.X, p.Y)
		fmt.Printf("Pixel (%d,%d): R=%d G=%d B=%d A=%d luminance=%.1f class=%s\n",
			p.X, p.Y, r, g, b, a, fill.Luminance(r, g, b), fill.Classify(buf, p))
	}
}

// pixelRequested reports whether a pixel was asked for. The -x and -y flags
// default to -1 and must be given together.
func pixelRequested(x, y int) (bool, error) {
	if (x >= 0) != (y >= 0) {
		return false, errors.New("-x and -y must be given together")
	}
	return x >= 0, nil
}
