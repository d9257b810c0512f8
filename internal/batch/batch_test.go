package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"colorbook/internal/page"
	"colorbook/internal/palette"
	"colorbook/internal/raster"
)

// writeSplitPage saves a 4×4 white PNG with a black column at x=2.
func writeSplitPage(t *testing.T, dir string) string {
	t.Helper()
	b := raster.NewBuffer(4, 4)
	b.Clear(255, 255, 255, 255)
	for y := 0; y < 4; y++ {
		b.Set(2, y, 0, 0, 0, 255)
	}
	path := filepath.Join(dir, "split.png")
	if err := page.Save(path, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.json")
	data := `[
		{"name": "left", "page": "split.png", "x": 0, "y": 0, "color": "#FFD700"},
		{"page": "/abs/page.png", "x": 3, "y": 1, "tolerance": 0},
		{"page": "data:image/png;base64,AAAA", "x": 1, "y": 1}
	]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	jobs, err := LoadJobs(path)
	if err != nil {
		t.Fatalf("LoadJobs: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("len(jobs) = %d, want 3", len(jobs))
	}
	if want := filepath.Join(dir, "split.png"); jobs[0].Page != want {
		t.Errorf("jobs[0].Page = %q, want %q", jobs[0].Page, want)
	}
	if jobs[1].Page != "/abs/page.png" || jobs[1].Name != "job-001" {
		t.Errorf("jobs[1] = %+v", jobs[1])
	}
	if jobs[1].Tolerance == nil || *jobs[1].Tolerance != 0 {
		t.Errorf("jobs[1].Tolerance = %v, want explicit 0", jobs[1].Tolerance)
	}
	if jobs[2].Page != "data:image/png;base64,AAAA" {
		t.Errorf("data uri page was rewritten: %q", jobs[2].Page)
	}
}

func TestLoadJobsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `[`},
		{"missing page", `[{"name": "a", "x": 0, "y": 0}]`},
		{"duplicate name", `[{"name": "a", "page": "p.png"}, {"name": "a", "page": "q.png"}]`},
		{"parent dir name", `[{"name": "../../x", "page": "p.png"}]`},
		{"dot dot name", `[{"name": "..", "page": "p.png"}]`},
		{"slash name", `[{"name": "a/b", "page": "p.png"}]`},
		{"backslash name", `[{"name": "a\\b", "page": "p.png"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "jobs.json")
			os.WriteFile(path, []byte(tt.data), 0644)
			if _, err := LoadJobs(path); err == nil {
				t.Error("LoadJobs returned no error")
			}
		})
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"cat-01", true},
		{"page.v2", true},
		{"../escape", false},
		{"..", false},
		{"sub/page", false},
		{`sub\page`, false},
	}
	for _, tt := range tests {
		if got := validName(tt.name); got != tt.want {
			t.Errorf("validName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := writeSplitPage(t, dir)
	outDir := filepath.Join(dir, "out")

	jobs := []Job{
		{Name: "left", Page: src, X: 0, Y: 0},
		{Name: "right", Page: src, X: 3, Y: 3, Color: "#2196F3"},
		{Name: "outline", Page: src, X: 2, Y: 1},
		{Name: "outside", Page: src, X: 9, Y: 0},
		{Name: "missing", Page: filepath.Join(dir, "nope.png"), X: 0, Y: 0},
		{Name: "badcolor", Page: src, X: 0, Y: 0, Color: "blue"},
	}

	cache := page.NewCache()
	results := Run(Config{
		Pages:     cache,
		Tolerance: 50,
		Color:     palette.RGB{R: 255, G: 215},
		Workers:   3,
		Output:    func(name string) string { return filepath.Join(outDir, name+".png") },
	}, jobs)

	want := map[string]struct{ success, changed bool }{
		"left":     {true, true},
		"right":    {true, true},
		"outline":  {true, false},
		"outside":  {false, false},
		"missing":  {false, false},
		"badcolor": {false, false},
	}
	for i, r := range results {
		if r.Name != jobs[i].Name {
			t.Fatalf("results[%d].Name = %q, want %q", i, r.Name, jobs[i].Name)
		}
		w := want[r.Name]
		if r.Success != w.success || r.Changed != w.changed {
			t.Errorf("%s: success=%v changed=%v (err %q), want success=%v changed=%v",
				r.Name, r.Success, r.Changed, r.Error, w.success, w.changed)
		}
	}

	// Jobs sharing a page must not see each other's paint.
	left, err := page.Load(filepath.Join(outDir, "left.png"))
	if err != nil {
		t.Fatalf("Load left: %v", err)
	}
	if r, g, b, _ := left.RGBA(0, 0); r != 255 || g != 215 || b != 0 {
		t.Errorf("left (0,0) = (%d,%d,%d), want yellow", r, g, b)
	}
	if r, g, b, _ := left.RGBA(3, 0); r != 255 || g != 255 || b != 255 {
		t.Errorf("left (3,0) = (%d,%d,%d), want white", r, g, b)
	}

	right, err := page.Load(filepath.Join(outDir, "right.png"))
	if err != nil {
		t.Fatalf("Load right: %v", err)
	}
	if r, g, b, _ := right.RGBA(0, 0); r != 255 || g != 255 || b != 255 {
		t.Errorf("right (0,0) = (%d,%d,%d), want white", r, g, b)
	}
	if r, g, b, _ := right.RGBA(3, 2); r != 0x21 || g != 0x96 || b != 0xF3 {
		t.Errorf("right (3,2) = (%d,%d,%d), want blue", r, g, b)
	}

	cached, _ := cache.Get(src)
	if r, g, b, _ := cached.RGBA(0, 0); r != 255 || g != 255 || b != 255 {
		t.Error("cached page was painted")
	}

	manifest := filepath.Join(outDir, "manifest.json")
	if err := WriteManifest(manifest, jobs, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if len(entries) != len(jobs) {
		t.Fatalf("manifest has %d entries, want %d", len(entries), len(jobs))
	}
	if entries[0].Image != "left.png" || !entries[0].Changed {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[3].Image != "" || entries[3].Error == "" {
		t.Errorf("entries[3] = %+v, want error and no image", entries[3])
	}
}

func TestSetLogger(t *testing.T) {
	if Logger() == nil {
		t.Fatal("default logger is nil")
	}
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
}
