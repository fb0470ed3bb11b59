package tribes

import (
	"strconv"
	"strings"

	"hex-tribes/pkg/sims/hexlife"
)

const (
	minSize = 5
	maxSize = 201
)

// Config controls the lattice size and how it is seeded.
type Config struct {
	Size       int
	Seed       int64
	Generator  hexlife.Generator
	SeedTribes []int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:       53,
		Seed:       1337,
		Generator:  hexlife.GenSym62,
		SeedTribes: []int{hexlife.Blue, hexlife.Red},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = clampSize(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["generator"]; ok {
		if parsed, err := hexlife.ParseGenerator(v); err == nil {
			c.Generator = parsed
		}
	}
	if v, ok := cfg["seed_tribes"]; ok {
		if parsed, ok := parseTribeList(v); ok {
			c.SeedTribes = parsed
		}
	}
	return c
}

// parseTribeList reads comma-separated tribe ids. The list is rejected as a
// whole if any entry is not a configured tribe.
func parseTribeList(v string) ([]int, bool) {
	rules := hexlife.DefaultRuleConfig()
	var out []int
	for _, field := range strings.Split(v, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil || !rules.Has(id) {
			return nil, false
		}
		out = append(out, id)
	}
	return out, len(out) > 0
}

func clampSize(n int) int {
	return max(minSize, min(n, maxSize))
}
