package app

import (
	"flag"
	"strconv"

	"hex-tribes/internal/platform/config"
	"hex-tribes/internal/sims/tribes"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Size      int    `env:"TRIBES_SIZE"`
	Seed      int64  `env:"TRIBES_SEED"`
	Generator string `env:"TRIBES_GENERATOR"`
	TPS       int    `env:"TRIBES_TPS"`
	Scale     int    `env:"TRIBES_SCALE"`
	HUDWidth  int    `env:"TRIBES_HUD_WIDTH"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	def := tribes.DefaultConfig()
	return &Config{
		Size:      def.Size,
		Seed:      def.Seed,
		Generator: string(def.Generator),
		TPS:       20,
		Scale:     8,
		HUDWidth:  260,
	}
}

// LoadEnv overrides fields from TRIBES_* environment variables.
func (c *Config) LoadEnv() error {
	return config.ParseEnv(c)
}

// Bind attaches the configuration to the provided FlagSet. Call after
// LoadEnv so flags take precedence over the environment.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "lattice side length")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for lattice reset")
	fs.StringVar(&c.Generator, "generator", c.Generator, "seed generator (random, sym2, sym3, sym4, sym6, sym32, sym62, noise)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
}

// SimConfig converts the viewer settings into the key/value form accepted by
// the sim registry.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"size":      strconv.Itoa(c.Size),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"generator": c.Generator,
	}
}
