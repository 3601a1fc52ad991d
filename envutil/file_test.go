package envutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/assertthat/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  string
		expected map[string]string
	}{
		{
			name:     "env file with comments and blank lines",
			filename: "assert.env",
			content:  "# limits\nASSERTTHAT_MAX_VALUE_LENGTH=40\n\nASSERTTHAT_METRICS=false\n",
			expected: map[string]string{
				"ASSERTTHAT_MAX_VALUE_LENGTH": "40",
				"ASSERTTHAT_METRICS":          "false",
			},
		},
		{
			name:     "env file keeps equals signs in values",
			filename: "test.env",
			content:  "TEMPLATE=a=b=c",
			expected: map[string]string{"TEMPLATE": "a=b=c"},
		},
		{
			name:     "json env object",
			filename: "test.json",
			content:  `{"version": "1", "env": {"ASSERTTHAT_LOG_FAILURES": "true"}}`,
			expected: map[string]string{"ASSERTTHAT_LOG_FAILURES": "true"},
		},
		{
			name:     "yaml env object",
			filename: "test.yaml",
			content:  "env:\n  ASSERTTHAT_MAX_VALUE_LENGTH: \"80\"\n",
			expected: map[string]string{"ASSERTTHAT_MAX_VALUE_LENGTH": "80"},
		},
		{
			name:     "yml suffix in upper case",
			filename: "test.YML",
			content:  "env:\n  KEY: value\n",
			expected: map[string]string{"KEY": "value"},
		},
		{
			name:     "yaml without env key",
			filename: "test.yaml",
			content:  "other: data",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vars, err := envutil.LoadEnvFile(createTempFile(t, tt.filename, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, vars)
		})
	}
}

func TestLoadEnvFileErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown suffix", func(t *testing.T) {
		t.Parallel()

		_, err := envutil.LoadEnvFile(createTempFile(t, "test.txt", "KEY=value"))
		require.ErrorIs(t, err, envutil.ErrUnknownFileType)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := envutil.LoadEnvFile(filepath.Join(t.TempDir(), "absent.env"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		_, err := envutil.LoadEnvFile(createTempFile(t, "test.json", "{invalid"))
		require.Error(t, err)
	})

	t.Run("yaml env as a list", func(t *testing.T) {
		t.Parallel()

		_, err := envutil.LoadEnvFile(createTempFile(t, "test.yaml", "env:\n  - a\n  - b\n"))
		require.Error(t, err)
	})
}

func createTempFile(t *testing.T, filename, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
