package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with values from PAPERDESK_-prefixed environment
// variables. Unset variables leave the current values untouched.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "PAPERDESK_"}); err != nil {
		panic(err)
	}
}
