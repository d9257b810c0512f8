package main

import (
	"path/filepath"
	"testing"
)

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		in, format, want string
	}{
		{"page.png", "webp", "page.webp"},
		{filepath.Join("pages", "cat.jpg"), "png", filepath.Join("pages", "cat.png")},
		{"noext", "webp", "noext.webp"},
		{"archive.v2.tga", "webp", "archive.v2.webp"},
	}
	for _, tt := range tests {
		if got := defaultOutput(tt.in, tt.format); got != tt.want {
			t.Errorf("defaultOutput(%q, %q) = %q, want %q", tt.in, tt.format, got, tt.want)
		}
	}
}
