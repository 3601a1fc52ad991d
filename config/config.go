// Package config holds the process-wide settings of the assertion library.
// Values come from the environment first and from an optional env file
// second.
package config

import (
	"errors"
	"fmt"

	"github.com/amp-labs/assertthat/envutil"
	"github.com/amp-labs/assertthat/lazy"
	"github.com/amp-labs/assertthat/logger"
	"github.com/amp-labs/assertthat/xform"
)

const (
	KeyMaxValueLength = "ASSERTTHAT_MAX_VALUE_LENGTH"
	KeyLogFailures    = "ASSERTTHAT_LOG_FAILURES"
	KeyMetrics        = "ASSERTTHAT_METRICS"
	KeyIndent         = "ASSERTTHAT_INDENT"
	KeyEnvFile        = "ASSERTTHAT_ENV_FILE"
)

// Config controls how failures are rendered and reported.
type Config struct {
	// MaxValueLength truncates stringified values in failure messages.
	// Zero disables truncation.
	MaxValueLength int

	// Indent pretty-prints rendered values with this many spaces per level.
	// Zero renders compact JSON.
	Indent int

	// LogFailures emits a debug log line per failed assertion.
	LogFailures bool

	// Metrics counts failed assertions in prometheus.
	Metrics bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MaxValueLength: 0,
		Indent:         0,
		LogFailures:    true,
		Metrics:        true,
	}
}

var current = lazy.New(func() Config { //nolint:gochecknoglobals
	cfg, err := Load()
	if err != nil {
		logger.Get().Warn("invalid assertthat configuration, using defaults", "error", err)

		return Default()
	}

	return cfg
})

// Get returns the process configuration, loading it on first use.
func Get() Config {
	return current.Get()
}

// Set replaces the process configuration.
func Set(cfg Config) {
	current.Set(cfg)
}

// Load reads the configuration from the environment, consulting the file
// named by ASSERTTHAT_ENV_FILE for anything the environment leaves unset.
func Load() (Config, error) {
	path := envutil.String(KeyEnvFile).Map(xform.TrimString)
	if !path.HasValue() {
		return LoadFrom(nil)
	}

	vars, err := envutil.LoadEnvFile(path.ValueOrPanic())
	if err != nil {
		return Default(), logger.AnnotateError(
			fmt.Errorf("loading env file: %w", err), "env_file", path.ValueOrPanic())
	}

	return LoadFrom(vars)
}

// LoadFrom is Load with the file contents supplied by the caller. Process
// environment variables still take precedence over vars.
func LoadFrom(vars map[string]string) (Config, error) {
	dfl := Default()

	maxLen, maxErr := envutil.Int[int](KeyMaxValueLength,
		envutil.Fallback(fileInt(vars, KeyMaxValueLength)),
		envutil.Default(dfl.MaxValueLength),
		envutil.Validate(nonNegative),
	).Value()

	indent, indentErr := envutil.Int[int](KeyIndent,
		envutil.Fallback(fileInt(vars, KeyIndent)),
		envutil.Default(dfl.Indent),
		envutil.Validate(nonNegative),
	).Value()

	logFailures, logErr := envutil.Bool(KeyLogFailures,
		envutil.Fallback(fileBool(vars, KeyLogFailures)),
		envutil.Default(dfl.LogFailures),
	).Value()

	metrics, metricsErr := envutil.Bool(KeyMetrics,
		envutil.Fallback(fileBool(vars, KeyMetrics)),
		envutil.Default(dfl.Metrics),
	).Value()

	if err := errors.Join(maxErr, indentErr, logErr, metricsErr); err != nil {
		return dfl, err
	}

	return Config{
		MaxValueLength: maxLen,
		Indent:         indent,
		LogFailures:    logFailures,
		Metrics:        metrics,
	}, nil
}

// fileValue reads key from vars with surrounding whitespace removed.
func fileValue(vars map[string]string, key string) envutil.Reader[string] {
	return envutil.FromMap(vars, key).Map(xform.TrimString)
}

func fileInt(vars map[string]string, key string) envutil.Reader[int] {
	return envutil.Map(envutil.Map(fileValue(vars, key), xform.Int64), xform.CastNumeric[int64, int])
}

func fileBool(vars map[string]string, key string) envutil.Reader[bool] {
	return envutil.Map(fileValue(vars, key), xform.Bool)
}

func nonNegative(n int) error {
	_, err := xform.NonNegative(n)

	return err
}
