// Package bounds loads clamp ranges from the process environment.
//
// A range named SCORE is read from SCORE_MIN and SCORE_MAX. Values may also
// come from a .env file; variables already present in the environment take
// precedence over the file.
package bounds

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gitlab.com/navyx/nexus/clamp/pkg/util"
	"golang.org/x/exp/constraints"
)

// Number is the set of types that can be parsed from an environment variable
// and compared by the validator.
type Number interface {
	constraints.Integer | constraints.Float
}

type config[T Number] struct {
	Min T `required:"true" validate:"ltefield=Max"`
	Max T `required:"true"`
}

type loader struct {
	logger  *slog.Logger
	envFile string
}

type Option func(*loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// WithEnvFile sets the dotenv file consulted before reading the environment.
// Its values only fill keys missing from the environment, and only for the
// duration of the Load call. An empty path disables dotenv loading.
// Defaults to ".env".
func WithEnvFile(path string) Option {
	return func(l *loader) {
		l.envFile = path
	}
}

// Load reads <prefix>_MIN and <prefix>_MAX and returns them as a range.
// Bounds where min orders after max produce an error wrapping util.ErrInvalidRange.
func Load[T Number](prefix string, opts ...Option) (util.Range[T], error) {
	l := &loader{
		logger:  slog.Default(),
		envFile: ".env",
	}
	for _, opt := range opts {
		opt(l)
	}

	restore, err := l.applyEnvFile()
	if err != nil {
		return util.Range[T]{}, err
	}
	defer restore()

	var cfg config[T]
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return util.Range[T]{}, fmt.Errorf("failed to process %s bounds: %w", prefix, err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		l.logger.Warn("Rejected bounds", "prefix", prefix, "min", cfg.Min, "max", cfg.Max)
		return util.Range[T]{}, fmt.Errorf("%w: %s_MIN %v must not exceed %s_MAX %v", util.ErrInvalidRange, prefix, cfg.Min, prefix, cfg.Max)
	}

	// ltefield also fails for NaN bounds, which NewRange would accept.
	r := util.MustNewRange(cfg.Min, cfg.Max)

	l.logger.Debug("Loaded bounds", "prefix", prefix, "range", r.String())
	return r, nil
}

// applyEnvFile sets the env file keys that are not already present in the
// environment. The returned func unsets them again.
func (l *loader) applyEnvFile() (func(), error) {
	noop := func() {}
	if l.envFile == "" {
		return noop, nil
	}
	if _, err := os.Stat(l.envFile); err != nil {
		return noop, nil
	}

	values, err := godotenv.Read(l.envFile)
	if err != nil {
		return noop, fmt.Errorf("failed to load %s: %w", l.envFile, err)
	}

	var applied []string
	for key, value := range values {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			unsetAll(applied)
			return noop, fmt.Errorf("failed to apply %s from %s: %w", key, l.envFile, err)
		}
		applied = append(applied, key)
	}
	l.logger.Debug("Applied env file", "path", l.envFile, "keys", len(applied))

	return func() { unsetAll(applied) }, nil
}

func unsetAll(keys []string) {
	for _, key := range keys {
		os.Unsetenv(key)
	}
}
