package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"colorbook/internal/page"
)

// ManifestEntry represents one job in the output manifest.
type ManifestEntry struct {
	Name    string `json:"name"`
	Page    string `json:"page"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Image   string `json:"image,omitempty"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json next to the outputs. Image paths are
// relative to the manifest's directory.
func WriteManifest(path string, jobs []Job, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(jobs))
	for i, j := range jobs {
		src := j.Page
		if len(src) > 64 && page.IsDataURI(src) {
			src = src[:64] + "..."
		}
		e := ManifestEntry{Name: j.Name, Page: src, X: j.X, Y: j.Y}
		if i < len(results) {
			r := results[i]
			e.Changed = r.Changed
			e.Error = r.Error
			if r.Success {
				if rel, err := filepath.Rel(dir, r.Output); err == nil {
					e.Image = filepath.ToSlash(rel)
				} else {
					e.Image = r.Output
				}
			}
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
