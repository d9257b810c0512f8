package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"colorbook/internal/batch"
	"colorbook/internal/config"
	"colorbook/internal/page"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	jobsFile := flag.String("jobs", "", "Path to jobs.json (array of {name, page, x, y, color, tolerance})")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	format := flag.String("format", "", "Output format webp or png (default: webp)")
	color := flag.String("color", "", "Default fill color #RRGGBB (default: #FF0000)")
	tolerance := flag.Int("tolerance", -1, "Default per-channel tolerance (default: 50)")
	verbose := flag.Bool("v", false, "Log every job")

	flag.Parse()

	if *jobsFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		batch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Tolerance: *tolerance,
		Color:     *color,
		OutputDir: *outputDir,
		Format:    *format,
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	jobs, err := batch.LoadJobs(*jobsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading jobs: %v\n", err)
		os.Exit(1)
	}
	if len(jobs) == 0 {
		fmt.Println("No jobs to run.")
		os.Exit(0)
	}

	fmt.Println("Coloring page fill replay")
	fmt.Printf("Jobs: %d, Workers: %d, Tolerance: %d, Color: %s\n",
		len(jobs), cfg.Workers, cfg.ToleranceValue(), cfg.FillColor().Hex())
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Pages:     page.NewCache(),
		Tolerance: cfg.ToleranceValue(),
		Color:     cfg.FillColor(),
		Workers:   cfg.Workers,
		Output:    cfg.OutputPath,
		Progress: func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f jobs/sec\n", done, total, rate)
		},
	}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, changed := 0, 0
	var failures []batch.Result
	for _, r := range results {
		if !r.Success {
			failures = append(failures, r)
			continue
		}
		success++
		if r.Changed {
			changed++
		}
	}

	fmt.Printf("Painted: %d/%d (%d unchanged)\n", success, len(jobs), success-changed)

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failures))
		limit := min(20, len(failures))
		for _, f := range failures[:limit] {
			fmt.Printf("  %s: %s\n", f.Name, f.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, jobs, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}
