package page

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"colorbook/internal/raster"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output encoding.
type Format string

const (
	WebP Format = "webp"
	PNG  Format = "png"
)

// FormatFor picks the output format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return WebP, nil
	case ".png":
		return PNG, nil
	default:
		return "", fmt.Errorf("page: unsupported output extension %q", filepath.Ext(path))
	}
}

// Encode writes buf to w. WebP output is lossless.
func Encode(w io.Writer, buf *raster.Buffer, f Format) error {
	img := buf.Image()
	switch f {
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("page: webp encode: %w", err)
		}
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("page: png encode: %w", err)
		}
	default:
		return fmt.Errorf("page: unknown format %q", f)
	}
	return nil
}

// Save encodes buf to path, choosing the format from its extension and
// creating parent directories.
func Save(path string, buf *raster.Buffer) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("page: mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("page: create %s: %w", path, err)
	}
	if err := Encode(out, buf, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
