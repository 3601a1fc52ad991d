package xform_test

import (
	"log/slog"
	"testing"

	"github.com/amp-labs/assertthat/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimString(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]string{
		"settings.env":         "settings.env",
		"  settings.yaml\n":    "settings.yaml",
		"\tconfig/assert.json": "config/assert.json",
		"   ":                  "",
	} {
		got, err := xform.TrimString(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	output := xform.OneOf("stdout", "stderr")

	got, err := output("stderr")
	require.NoError(t, err)
	assert.Equal(t, "stderr", got)

	_, err = output("syslog")
	require.ErrorIs(t, err, xform.ErrInvalidChoice)
	assert.Contains(t, err.Error(), "[stdout stderr]")

	_, err = xform.OneOf[int]()(0)
	assert.ErrorIs(t, err, xform.ErrInvalidChoice)
}

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{input: "true", want: true},
		{input: "1", want: true},
		{input: "F", want: false},
		{input: "false", want: false},
		{input: "yes", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := xform.Bool(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt64ThenCast(t *testing.T) {
	t.Parallel()

	wide, err := xform.Int64("120")
	require.NoError(t, err)

	narrow, err := xform.CastNumeric[int64, int](wide)
	require.NoError(t, err)
	assert.Equal(t, 120, narrow)

	for _, bad := range []string{"", "12.5", "lots", "99999999999999999999"} {
		_, err := xform.Int64(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNonNegative(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 4096} {
		got, err := xform.NonNegative(n)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	_, err := xform.NonNegative(-3)
	require.ErrorIs(t, err, xform.ErrNegative)
	assert.Contains(t, err.Error(), "-3")
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for input, want := range levels {
		got, err := xform.SlogLevel(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Level names are case-sensitive.
	for _, bad := range []string{"DEBUG", "trace", ""} {
		_, err := xform.SlogLevel(bad)
		assert.ErrorIs(t, err, xform.ErrInvalidLogLevel, "input %q", bad)
	}
}
