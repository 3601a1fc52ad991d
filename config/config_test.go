package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/assertthat/config"
	"github.com/amp-labs/assertthat/envutil"
	"github.com/amp-labs/assertthat/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(config.KeyEnvFile, "")
	os.Unsetenv(config.KeyEnvFile) //nolint:errcheck

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(config.KeyMaxValueLength, "25")
	t.Setenv(config.KeyLogFailures, "false")
	t.Setenv(config.KeyMetrics, "0")
	t.Setenv(config.KeyIndent, "2")

	cfg, err := config.LoadFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Config{MaxValueLength: 25, Indent: 2}, cfg)
}

func TestLoadFromFileValues(t *testing.T) {
	t.Setenv(config.KeyMaxValueLength, "12")

	cfg, err := config.LoadFrom(map[string]string{
		config.KeyMaxValueLength: "99",
		config.KeyMetrics:        "false",
		config.KeyIndent:         " 4 ",
	})
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MaxValueLength, "environment wins over the file")
	assert.False(t, cfg.Metrics)
	assert.True(t, cfg.LogFailures)
	assert.Equal(t, 4, cfg.Indent)
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		file   map[string]string
		target error
	}{
		{
			name:   "negative length",
			env:    map[string]string{config.KeyMaxValueLength: "-1"},
			target: xform.ErrNegative,
		},
		{
			name:   "negative indent in the file",
			file:   map[string]string{config.KeyIndent: "-2"},
			target: xform.ErrNegative,
		},
		{
			name:   "malformed bool in the environment",
			env:    map[string]string{config.KeyLogFailures: "sometimes"},
			target: envutil.ErrBadEnvVar,
		},
		{
			name:   "malformed int in the file",
			file:   map[string]string{config.KeyMaxValueLength: "lots"},
			target: envutil.ErrBadEnvVar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.LoadFrom(tt.file)
			require.ErrorIs(t, err, tt.target)
			assert.Equal(t, config.Default(), cfg)
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{
			name:     "dotenv",
			filename: "assert.env",
			content:  "ASSERTTHAT_MAX_VALUE_LENGTH=64\nASSERTTHAT_LOG_FAILURES=false\n",
		},
		{
			name:     "yaml",
			filename: "assert.yaml",
			content:  "env:\n  ASSERTTHAT_MAX_VALUE_LENGTH: \"64\"\n  ASSERTTHAT_LOG_FAILURES: \"false\"\n",
		},
		{
			name:     "json",
			filename: "assert.json",
			content:  `{"env": {"ASSERTTHAT_MAX_VALUE_LENGTH": "64", "ASSERTTHAT_LOG_FAILURES": "false"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.KeyEnvFile, writeFile(t, tt.filename, tt.content))

			cfg, err := config.Load()
			require.NoError(t, err)
			assert.Equal(t, config.Config{MaxValueLength: 64, Metrics: true}, cfg)
		})
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	t.Setenv(config.KeyEnvFile, filepath.Join(t.TempDir(), "absent.env"))

	_, err := config.Load()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetAndGet(t *testing.T) {
	previous := config.Get()
	t.Cleanup(func() { config.Set(previous) })

	config.Set(config.Config{MaxValueLength: 3})
	assert.Equal(t, config.Config{MaxValueLength: 3}, config.Get())
}
