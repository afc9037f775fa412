package app

import (
	"errors"
	"fmt"
)

// Run modes.
const (
	// ModeNormalize deserializes JSON records from stdin against the target
	// type and re-serializes them: defaults are backfilled then elided, and
	// keys are re-inflected to the type's naming mode.
	ModeNormalize = "normalize"
	// ModeFields prints the target type's resolved field table.
	ModeFields = "fields"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestsPath string // directory or file with .hcl resource declarations
	TypeName      string // target resource type
	Mode          string // ModeNormalize or ModeFields

	// LogFormat and LogLevel override the RESMAP_LOG_* environment defaults
	// when non-empty.
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestsPath == "" {
		return nil, errors.New("ManifestsPath is a required configuration field and cannot be empty")
	}
	if cfg.TypeName == "" {
		return nil, errors.New("TypeName is a required configuration field and cannot be empty")
	}
	switch cfg.Mode {
	case ModeNormalize, ModeFields:
	default:
		return nil, fmt.Errorf("invalid mode %q: must be %q or %q", cfg.Mode, ModeNormalize, ModeFields)
	}
	return &cfg, nil
}
