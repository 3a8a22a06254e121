package config

import "sort"

// Presets are named starting points for common plotting situations.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"strict": withLimits(func(c *Config) {
		c.Sigma = 3.0
	}),
	"loose": withLimits(func(c *Config) {
		c.Sigma = 1.0
	}),
	"fine": withLimits(func(c *Config) {
		c.Epsilon = 1e-10
		c.HeadWidth = 0.05
		c.ArrowLength = 0.2
	}),
	"wide": withLimits(func(c *Config) {
		c.Plot.Width = 120
		c.Plot.Height = 20
	}),
}

func withLimits(apply func(*Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
