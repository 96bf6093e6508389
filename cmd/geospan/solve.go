package main

import (
	"bufio"
	"flag"
	"io"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/geospan/distance"
	"github.com/katalvlaran/geospan/network"
)

// runSolve implements "geospan solve".
func runSolve(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, configPath := commonFlags("solve", stderr)
	start := fs.Int("start", 0, "Start vertex index (overrides config)")
	workers := fs.Int("workers", 0, "Worker pool size, 0 = physical cores (overrides config)")
	metric := fs.String("metric", "", "Distance metric: haversine or euclidean (overrides config)")
	if err := fs.Parse(args); err != nil {
		return exitBadUsage
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		SetupLogger(DefaultConfig(), stderr).Errorf("Failed to load config: %v", err)
		return exitFailure
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			cfg.Start = *start
		case "workers":
			cfg.Workers = *workers
		case "metric":
			cfg.Metric = *metric
		}
	})
	log := SetupLogger(cfg, stderr)
	if err = cfg.Validate(); err != nil {
		log.Errorf("Invalid settings: %v", err)
		return exitFailure
	}

	cities, err := network.DecodeCities(bufio.NewReader(stdin))
	if err != nil {
		log.Errorf("Failed to read cities: %v", err)
		return exitFailure
	}

	size := cfg.PoolSize()
	pool, err := ants.NewPool(size)
	if err != nil {
		log.Errorf("Failed to create worker pool: %v", err)
		return exitFailure
	}
	defer pool.Release()

	log.Infof("Solving %d cities from start %d (metric=%s, workers=%d)", len(cities), cfg.Start, cfg.Metric, size)
	res, err := network.Solve(cities, cfg.NewMetric(), cfg.Start,
		distance.WithPool(pool),
		distance.WithWorkers(size),
		distance.WithLogger(log),
	)
	if err != nil {
		log.Errorf("Failed to solve: %v", err)
		return exitFailure
	}

	w := bufio.NewWriter(stdout)
	if err = network.EncodeResult(w, res); err != nil {
		log.Errorf("Failed to write result: %v", err)
		return exitFailure
	}
	if err = w.Flush(); err != nil {
		log.Errorf("Failed to write result: %v", err)
		return exitFailure
	}

	return exitOK
}
