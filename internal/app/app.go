package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/resmap/internal/codec"
	"github.com/specialistvlad/resmap/internal/config"
	"github.com/specialistvlad/resmap/internal/ctxlog"
	"github.com/specialistvlad/resmap/internal/manifest"
	"github.com/specialistvlad/resmap/internal/record"
	"github.com/specialistvlad/resmap/internal/registry"
	"github.com/specialistvlad/resmap/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR      io.Reader
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	defaults *config.Config
}

// NewApp is the constructor for the main application. It reads the process
// environment defaults once, builds an isolated logger, and loads every
// resource declaration from the manifests path into a fresh registry.
func NewApp(inR io.Reader, outW io.Writer, errW io.Writer, appConfig *Config) (*App, error) {
	defaults, err := config.Load()
	if err != nil {
		return nil, err
	}

	logLevel := appConfig.LogLevel
	if logLevel == "" {
		logLevel = defaults.LogLevel
	}
	logFormat := appConfig.LogFormat
	if logFormat == "" {
		logFormat = defaults.LogFormat
	}

	logger := newLogger(logLevel, logFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	loader := manifest.NewLoader(defaults.DefaultInflect)
	if err := loader.Load(ctx, reg, appConfig.ManifestsPath); err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	logger.Debug("Resource declarations loaded.", "types", reg.Names())

	return &App{
		inR:      inR,
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   appConfig,
		defaults: defaults,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Run resolves the target resource type and executes the configured mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	target, ok := a.registry.Lookup(a.config.TypeName)
	if !ok {
		return fmt.Errorf("unknown resource type %q: declared types are %v", a.config.TypeName, a.registry.Names())
	}

	switch a.config.Mode {
	case ModeFields:
		return a.printFields(target)
	default:
		return a.normalize(ctx, target)
	}
}

// normalize reads one JSON record or array of records from input,
// deserializes against the target type, re-serializes, and writes the
// normalized JSON to output.
func (a *App) normalize(ctx context.Context, target *schema.Schema) error {
	br := bufio.NewReader(a.inR)
	isList, err := peekList(br)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	dec := json.NewDecoder(br)
	var out any

	if isList {
		var recs []*record.Record
		if err := dec.Decode(&recs); err != nil {
			return fmt.Errorf("failed to decode input records: %w", err)
		}
		instances, err := codec.DeserializeList(ctx, target, recs)
		if err != nil {
			return err
		}
		out = codec.SerializeList(ctx, instances)
	} else {
		rec := record.New()
		if err := dec.Decode(rec); err != nil {
			return fmt.Errorf("failed to decode input record: %w", err)
		}
		instance, err := codec.Deserialize(ctx, target, rec)
		if err != nil {
			return err
		}
		out = codec.Serialize(ctx, instance)
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if _, err := fmt.Fprintln(a.outW, string(encoded)); err != nil {
		return err
	}
	return nil
}

// printFields writes the resolved field table of the target type.
func (a *App) printFields(target *schema.Schema) error {
	fmt.Fprintf(a.outW, "resource %q (inflect: %s)\n", target.Name(), target.Inflect())
	for i := 0; i < target.Len(); i++ {
		fs := target.SpecAt(i)
		line := fmt.Sprintf("  %s  type=%s  key=%q", fs.Name, fs.Type, target.KeyAt(i))
		if fs.Default != nil {
			line += fmt.Sprintf("  default=%v", fs.Default)
		}
		fmt.Fprintln(a.outW, line)
	}
	return nil
}

// peekList reports whether the next JSON value in the reader is an array.
func peekList(br *bufio.Reader) (bool, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return false, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			if err := br.UnreadByte(); err != nil {
				return false, err
			}
			return b == '[', nil
		}
	}
}
