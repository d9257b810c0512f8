package page

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/url"
	"os"
	"strings"

	"colorbook/internal/raster"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Load reads a page image from disk. The format is sniffed from the content.
func Load(path string) (*raster.Buffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("page: read %s: %w", path, err)
	}
	buf, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("page: decode %s: %w", path, err)
	}
	return buf, nil
}

// Decode decodes PNG, JPEG, GIF, BMP, WebP or TGA data into a buffer.
//
// The tga package registers with an empty magic string and therefore claims
// every input passed to image.Decode, so formats are sniffed here and TGA,
// which has no signature, is only tried last.
func Decode(r io.Reader) (*raster.Buffer, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func decode(raw []byte) (*raster.Buffer, error) {
	var (
		img image.Image
		err error
	)
	rd := bytes.NewReader(raw)
	switch {
	case bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")):
		img, err = png.Decode(rd)
	case bytes.HasPrefix(raw, []byte{0xFF, 0xD8}):
		img, err = jpeg.Decode(rd)
	case bytes.HasPrefix(raw, []byte("GIF8")):
		img, err = gif.Decode(rd)
	case len(raw) >= 12 && string(raw[0:4]) == "RIFF" && string(raw[8:12]) == "WEBP":
		img, err = webp.Decode(rd)
	case bytes.HasPrefix(raw, []byte("BM")):
		img, err = bmp.Decode(rd)
	default:
		img, err = tga.Decode(rd)
	}
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img), nil
}

// IsDataURI reports whether s looks like a data: URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// LoadDataURI decodes a "data:image/png;base64,..." URI, the form in which
// generated pages are handed back to the browser.
func LoadDataURI(uri string) (*raster.Buffer, error) {
	payload, err := dataURIPayload(uri)
	if err != nil {
		return nil, err
	}
	buf, err := decode(payload)
	if err != nil {
		return nil, fmt.Errorf("page: decode data uri: %w", err)
	}
	return buf, nil
}

func dataURIPayload(uri string) ([]byte, error) {
	if !IsDataURI(uri) {
		return nil, fmt.Errorf("page: not a data uri")
	}
	meta, data, found := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !found {
		return nil, fmt.Errorf("page: data uri has no payload")
	}

	if strings.HasSuffix(meta, ";base64") {
		payload, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			// Some encoders drop the padding.
			payload, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("page: data uri base64: %w", err)
		}
		return payload, nil
	}

	payload, err := url.PathUnescape(data)
	if err != nil {
		return nil, fmt.Errorf("page: data uri escape: %w", err)
	}
	return []byte(payload), nil
}

// Open loads a page from either a data URI or a file path.
func Open(src string) (*raster.Buffer, error) {
	if IsDataURI(src) {
		return LoadDataURI(src)
	}
	return Load(src)
}
