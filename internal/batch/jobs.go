package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"colorbook/internal/page"
)

// Job is one recorded click: paint the region at (X, Y) of Page.
type Job struct {
	Name      string `json:"name"`
	Page      string `json:"page"` // file path or data: URI
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Color     string `json:"color,omitempty"`     // #RRGGBB, default from config
	Tolerance *int   `json:"tolerance,omitempty"` // default from config
}

// LoadJobs reads a JSON array of jobs. Relative page paths are resolved
// against the job file's directory; unnamed jobs are numbered.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}

	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	seen := make(map[string]bool, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		if j.Page == "" {
			return nil, fmt.Errorf("batch: job %d: page is required", i)
		}
		if !page.IsDataURI(j.Page) && !filepath.IsAbs(j.Page) {
			j.Page = filepath.Join(dir, j.Page)
		}
		if j.Name == "" {
			j.Name = fmt.Sprintf("job-%03d", i)
		}
		if !validName(j.Name) {
			return nil, fmt.Errorf("batch: job %d: name %q must not contain a path separator or \"..\"", i, j.Name)
		}
		if seen[j.Name] {
			return nil, fmt.Errorf("batch: job %d: duplicate name %q", i, j.Name)
		}
		seen[j.Name] = true
	}
	return jobs, nil
}

// validName reports whether name can be used as an output file stem inside
// the output directory.
func validName(name string) bool {
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}
