// Package config holds the helpers shared by command entry points for reading
// environment overrides and failing fast.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from environment variables named in its `env` struct
// tags. Fields without a matching variable keep their current value.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
