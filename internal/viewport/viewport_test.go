package viewport

import (
	"image"
	"testing"
)

func TestToBuffer(t *testing.T) {
	tests := []struct {
		name    string
		click   image.Point
		display image.Rectangle
		w, h    int
		want    image.Point
		ok      bool
	}{
		{"identity", image.Pt(10, 20), image.Rect(0, 0, 100, 100), 100, 100, image.Pt(10, 20), true},
		{"downscaled display", image.Pt(50, 25), image.Rect(0, 0, 512, 512), 1024, 1024, image.Pt(100, 50), true},
		{"upscaled display floors", image.Pt(3, 3), image.Rect(0, 0, 200, 200), 100, 100, image.Pt(1, 1), true},
		{"offset display", image.Pt(110, 60), image.Rect(100, 50, 200, 150), 100, 100, image.Pt(10, 10), true},
		{"non-uniform scale", image.Pt(10, 10), image.Rect(0, 0, 100, 50), 200, 200, image.Pt(20, 40), true},
		{"left of display", image.Pt(99, 60), image.Rect(100, 50, 200, 150), 100, 100, image.Pt(-1, 10), false},
		{"right edge", image.Pt(100, 0), image.Rect(0, 0, 100, 100), 100, 100, image.Pt(100, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToBuffer(tt.click, tt.display, tt.w, tt.h)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ToBuffer = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestToBufferEmptyDisplay(t *testing.T) {
	if _, ok := ToBuffer(image.Pt(0, 0), image.Rectangle{}, 10, 10); ok {
		t.Error("ToBuffer with empty display returned ok")
	}
	if _, ok := ToBuffer(image.Pt(0, 0), image.Rect(0, 0, 10, 10), 0, 10); ok {
		t.Error("ToBuffer with empty buffer returned ok")
	}
}

func TestParseSize(t *testing.T) {
	r, err := ParseSize("640x480")
	if err != nil {
		t.Fatalf("ParseSize: %v", err)
	}
	if r != image.Rect(0, 0, 640, 480) {
		t.Errorf("ParseSize = %v, want (0,0)-(640,480)", r)
	}
	for _, bad := range []string{"", "640", "x480", "0x10", "10x-1", "axb"} {
		if _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) returned no error", bad)
		}
	}
}
