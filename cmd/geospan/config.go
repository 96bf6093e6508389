package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/geospan/geo"
)

// Metric names accepted in the config file and on the command line.
const (
	metricHaversine = "haversine"
	metricEuclidean = "euclidean"
)

// Config holds the calling-layer settings. The start vertex default lives here
// and nowhere in the algorithms.
type Config struct {
	Start    int     `toml:"start"`
	Workers  int     `toml:"workers"`
	RadiusKm float64 `toml:"radius_km"`
	Metric   string  `toml:"metric"`
	LogLevel string  `toml:"log_level"`
	LogFile  string  `toml:"log_file"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Start:    0,
		Workers:  0,
		RadiusKm: geo.EarthRadiusKm,
		Metric:   metricHaversine,
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from the given TOML file on top of the
// defaults. An empty path returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if cfg.RadiusKm == 0 {
		cfg.RadiusKm = geo.EarthRadiusKm
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Metric == "" {
		cfg.Metric = metricHaversine
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings no run could use.
func (c *Config) Validate() error {
	if c.Start < 0 {
		return fmt.Errorf("start must be >= 0, got %d", c.Start)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.RadiusKm <= 0 {
		return fmt.Errorf("radius_km must be > 0, got %g", c.RadiusKm)
	}
	switch strings.ToLower(c.Metric) {
	case metricHaversine, metricEuclidean:
	default:
		return fmt.Errorf("unknown metric %q (want %s or %s)", c.Metric, metricHaversine, metricEuclidean)
	}

	return nil
}

// NewMetric returns the distance metric named by the config.
func (c *Config) NewMetric() geo.Metric {
	if strings.ToLower(c.Metric) == metricEuclidean {
		return geo.Euclidean{}
	}

	return geo.Haversine{Radius: c.RadiusKm}
}

// PoolSize returns the configured worker count, or the number of physical
// cores when unset. Distance evaluation is FP-bound, so hyper-threads add
// little; fall back to GOMAXPROCS when the host cannot be queried.
func (c *Config) PoolSize() int {
	if c.Workers > 0 {
		return c.Workers
	}
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}

	return runtime.GOMAXPROCS(0)
}

// SetupLogger builds a logger from the config. Without a log file it writes
// to stderr so that stdout carries only the result.
func SetupLogger(cfg *Config, stderr io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFile == "" {
		return logger
	}

	if err = os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		logger.Warnf("Cannot create log directory, logging to stderr: %v", err)
		return logger
	}
	logger.SetOutput(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    100, // MB per file
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	})

	return logger
}
