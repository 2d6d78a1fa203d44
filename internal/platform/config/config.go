package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures service level configuration.
type Server struct {
	Addr                string        `yaml:"addr"`
	SQLitePath          string        `yaml:"sqlite_path"`
	SnapshotTTL         time.Duration `yaml:"snapshot_ttl"`
	DefaultLookbackDays int           `yaml:"default_lookback_days"`
	MinLookbackDays     int           `yaml:"min_lookback_days"`
	MaxLookbackDays     int           `yaml:"max_lookback_days"`
	RequestsPerSecond   float64       `yaml:"requests_per_second"`
	RequestBurst        int           `yaml:"request_burst"`
}

// Defaults returns the baseline configuration. The dashboard snapshot is
// memoized for 45 seconds and lookback windows clamp into [7, 120] days.
func Defaults() Server {
	return Server{
		Addr:                ":8080",
		SnapshotTTL:         45 * time.Second,
		DefaultLookbackDays: 30,
		MinLookbackDays:     7,
		MaxLookbackDays:     120,
		RequestsPerSecond:   25,
		RequestBurst:        50,
	}
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Defaults()
	if addr := os.Getenv("TALENTDECK_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if path := os.Getenv("TALENTDECK_SQLITE_PATH"); path != "" {
		cfg.SQLitePath = path
	}
	if ttlStr := os.Getenv("TALENTDECK_SNAPSHOT_TTL"); ttlStr != "" {
		if duration, err := time.ParseDuration(ttlStr); err == nil {
			cfg.SnapshotTTL = duration
		}
	}
	return cfg
}

// FromFile loads a YAML config file and overlays it on the defaults.
func FromFile(path string) (Server, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
