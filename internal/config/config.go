// Package config reads the process-wide defaults from the environment, once,
// at startup. The values it resolves — most importantly the default inflect
// mode applied to resource types that declare no override — are passed into
// schema finalization explicitly, so nothing on the conversion hot path ever
// reads global state.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"

	"github.com/specialistvlad/resmap/internal/inflect"
)

// EnvPrefix is the prefix shared by all environment variables this process
// reads, e.g. RESMAP_INFLECT=camel.
const EnvPrefix = "RESMAP_"

// Config holds the resolved process-wide defaults.
type Config struct {
	// DefaultInflect is the inflect mode used when a resource type declares
	// no explicit override. Falls back to identity.
	DefaultInflect inflect.Mode

	// LogLevel and LogFormat seed the process logger.
	LogLevel  string
	LogFormat string
}

// Load reads the RESMAP_* environment once and resolves the defaults.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	mode, err := inflect.ParseMode(k.String("inflect"))
	if err != nil {
		return nil, fmt.Errorf("invalid %sINFLECT: %w", EnvPrefix, err)
	}

	cfg := &Config{
		DefaultInflect: mode,
		LogLevel:       k.String("log.level"),
		LogFormat:      k.String("log.format"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return cfg, nil
}
