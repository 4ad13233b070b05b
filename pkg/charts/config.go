// Package charts builds the dashboard's five visual views from a filtered
// metrics frame: price/MA overlay, volatility, correlation, volume and the
// table snapshot. Builders are pure functions of the frame and the display
// config.
package charts

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"markethealth-api/pkg/confkit"
	"markethealth-api/pkg/dataset"
)

// Config holds the dashboard display settings that are not hard presentation
// contract: the highlighted correction band, the table snapshot depth and
// the export file name.
type Config struct {
	Band           BandConfig `yaml:"correction_band"`
	TableRows      int        `yaml:"table_rows"`
	ExportFilename string     `yaml:"export_filename"`
}

// BandConfig describes the highlighted date interval drawn on the price
// chart when it intersects the filtered range.
type BandConfig struct {
	StartRaw string `yaml:"start"`
	EndRaw   string `yaml:"end"`
	Label    string `yaml:"label"`

	Start time.Time `yaml:"-"`
	End   time.Time `yaml:"-"`
}

// Overlaps reports whether the band intersects [min, max]. This is the
// original dashboard rule: the band start must not fall after the newest
// filtered date and the band end must not fall before the oldest.
func (b BandConfig) Overlaps(min, max time.Time) bool {
	return !b.Start.After(max) && !b.End.Before(min)
}

// DefaultConfig returns the built-in display settings: the early-2026
// correction band and a 15-row table snapshot.
func DefaultConfig() *Config {
	cfg := &Config{
		Band: BandConfig{
			StartRaw: "2026-02-01",
			EndRaw:   "2026-02-16",
			Label:    "Early 2026 Correction",
		},
		TableRows:      15,
		ExportFilename: "btc_eth_metrics_2024_2026.csv",
	}
	if err := cfg.normalise(); err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads the dashboard display configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dashboard config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// MustLoad reads the dashboard display configuration from its default
// project location and panics if it cannot be loaded. Intended for tools
// that run outside the API server's config pipeline.
func MustLoad() *Config {
	cfg, err := LoadConfig(confkit.MustProjectPath("etc/dashboard.yaml"))
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfigFromReader constructs a Config from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dashboard config: %w", err)
	}

	cfg := *DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal dashboard config: %w", err)
	}
	if err := cfg.normalise(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalise() error {
	c.Band.StartRaw = strings.TrimSpace(os.ExpandEnv(c.Band.StartRaw))
	c.Band.EndRaw = strings.TrimSpace(os.ExpandEnv(c.Band.EndRaw))
	c.Band.Label = strings.TrimSpace(c.Band.Label)
	c.ExportFilename = strings.TrimSpace(os.ExpandEnv(c.ExportFilename))

	var err error
	if c.Band.Start, err = time.Parse(dataset.DateLayout, c.Band.StartRaw); err != nil {
		return fmt.Errorf("dashboard config: correction_band.start: %w", err)
	}
	if c.Band.End, err = time.Parse(dataset.DateLayout, c.Band.EndRaw); err != nil {
		return fmt.Errorf("dashboard config: correction_band.end: %w", err)
	}
	return nil
}

// Validate checks the loaded settings for consistency.
func (c *Config) Validate() error {
	if c.Band.End.Before(c.Band.Start) {
		return fmt.Errorf("dashboard config: correction_band end %s precedes start %s",
			c.Band.EndRaw, c.Band.StartRaw)
	}
	if c.TableRows <= 0 {
		return fmt.Errorf("dashboard config: table_rows must be positive, got %d", c.TableRows)
	}
	if c.ExportFilename == "" {
		return fmt.Errorf("dashboard config: export_filename is required")
	}
	return nil
}
