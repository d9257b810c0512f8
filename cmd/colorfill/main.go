package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"colorbook/internal/config"
	"colorbook/internal/fill"
	"colorbook/internal/page"
	"colorbook/internal/palette"
	"colorbook/internal/raster"
	"colorbook/internal/viewport"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	in := flag.String("in", "", "Input page (file path or data: URI)")
	out := flag.String("out", "", "Output file .webp or .png (default: -in with its extension replaced by the configured format)")
	x := flag.Int("x", 0, "Click X")
	y := flag.Int("y", 0, "Click Y")
	color := flag.String("color", "", "Fill color #RRGGBB (default: #FF0000)")
	tolerance := flag.Int("tolerance", -1, "Per-channel tolerance (default: 50)")
	display := flag.String("display", "", "Displayed page size WxH; -x/-y are then display coordinates")

	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Tolerance: *tolerance, Color: *color})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		if page.IsDataURI(*in) {
			fmt.Fprintln(os.Stderr, "Error: -out is required for data: URI input")
			os.Exit(2)
		}
		outPath = defaultOutput(*in, cfg.OutputFormat)
	}

	buf, err := page.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := image.Pt(*x, *y)
	if *display != "" {
		rect, err := viewport.ParseSize(*display)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		p, ok := viewport.ToBuffer(seed, rect, buf.Width, buf.Height)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: click (%d,%d) is outside the %s display\n", *x, *y, *display)
			os.Exit(1)
		}
		seed = p
	}

	rgb := cfg.FillColor()
	changed, err := fill.FillTolerance(buf, seed, rgb, cfg.ToleranceValue())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !changed {
		fmt.Printf("No change at (%d,%d): %s\n", seed.X, seed.Y, reason(buf, seed, rgb))
	} else {
		fmt.Printf("Filled region at (%d,%d) with %s\n", seed.X, seed.Y, rgb.Hex())
	}

	if err := page.Save(outPath, buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output: %s\n", outPath)
}

// defaultOutput swaps the input's extension for the output format:
// page.png becomes page.webp.
func defaultOutput(in, format string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + "." + format
}

// reason explains a no-op fill. The buffer is unchanged in that case, so the
// seed pixel still holds its original color.
func reason(buf *raster.Buffer, p image.Point, c palette.RGB) string {
	r, g, b, _ := buf.RGBA(p.X, p.Y)
	if fill.IsBoundary(r, g, b) {
		return "clicked an outline"
	}
	return fmt.Sprintf("region already %s", c.Hex())
}
