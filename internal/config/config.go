package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/logplot/internal/limits"
	"github.com/san-kum/logplot/internal/logsafe"
)

const (
	DefaultEpsilon     = limits.DefaultEpsilon
	DefaultSigma       = limits.DefaultSigma
	DefaultHeadWidth   = limits.DefaultHeadWidth
	DefaultArrowLength = limits.DefaultArrowLength
	DefaultPlotWidth   = 80
	DefaultPlotHeight  = 12
	DefaultTheme       = "matplotlib"
	DefaultFormat      = "table"
)

type Config struct {
	Epsilon     float64    `yaml:"epsilon"`
	Sigma       float64    `yaml:"sigma"`
	HeadWidth   float64    `yaml:"head_width"`
	ArrowLength float64    `yaml:"arrow_length"`
	Plot        PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Epsilon:     DefaultEpsilon,
		Sigma:       DefaultSigma,
		HeadWidth:   DefaultHeadWidth,
		ArrowLength: DefaultArrowLength,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
			Theme:  DefaultTheme,
			Format: DefaultFormat,
		},
	}
}

// Load reads a YAML file over the defaults, so missing keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.LimitOptions().Validate(); err != nil {
		return err
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}
	switch c.Plot.Format {
	case "table", "json", "ascii", "svg":
	default:
		return fmt.Errorf("unknown output format: %s", c.Plot.Format)
	}
	return nil
}

// LimitOptions returns the classification options carried by the config.
func (c *Config) LimitOptions() limits.Options {
	return limits.Options{
		Sigma:       c.Sigma,
		Epsilon:     c.Epsilon,
		HeadWidth:   c.HeadWidth,
		ArrowLength: c.ArrowLength,
	}
}

// RangeEpsilon returns the epsilon used for log-safe ranges.
func (c *Config) RangeEpsilon() (float64, error) {
	if err := logsafe.ValidateEpsilon(c.Epsilon); err != nil {
		return 0, err
	}
	return c.Epsilon, nil
}
