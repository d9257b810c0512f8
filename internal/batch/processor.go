package batch

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"colorbook/internal/fill"
	"colorbook/internal/page"
	"colorbook/internal/palette"
	"colorbook/internal/raster"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Pages     *page.Cache
	Tolerance int
	Color     palette.RGB
	Workers   int
	// Output returns the file a job's painted page is written to.
	Output func(name string) string
	// Progress, when non-nil, receives a line every two seconds.
	Progress func(done, total int, rate float64)
}

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	Output  string
	Changed bool
	Success bool
	Error   string
}

// Run processes all jobs using a worker pool. Every job paints its own copy
// of the page, so results do not depend on scheduling.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Progress != nil {
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						cfg.Progress(int(p), total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

func processJob(cfg Config, job Job) Result {
	log := Logger().With("job", job.Name)
	fail := func(msg string) Result {
		log.Warn("job failed", "error", msg)
		return Result{Name: job.Name, Error: msg}
	}

	src, err := cfg.Pages.Get(job.Page)
	if err != nil {
		return fail(err.Error())
	}

	buf, changed, err := paint(src, job, cfg.Color, cfg.Tolerance)
	if err != nil {
		return fail(err.Error())
	}
	log.Debug("filled", "x", job.X, "y", job.Y, "changed", changed)

	out := cfg.Output(job.Name)
	if err := page.Save(out, buf); err != nil {
		return fail(fmt.Sprintf("save: %v", err))
	}

	return Result{
		Name:    job.Name,
		Output:  out,
		Changed: changed,
		Success: true,
	}
}

// paint applies job to a copy of src. Job fields override the defaults.
func paint(src *raster.Buffer, job Job, def palette.RGB, tolerance int) (*raster.Buffer, bool, error) {
	color := def
	if job.Color != "" {
		c, err := palette.ParseHex(job.Color)
		if err != nil {
			return nil, false, err
		}
		color = c
	}
	if job.Tolerance != nil {
		tolerance = *job.Tolerance
	}
	buf := src.Clone()
	changed, err := fill.FillTolerance(buf, image.Pt(job.X, job.Y), color, tolerance)
	if err != nil {
		return nil, false, err
	}
	return buf, changed, nil
}
