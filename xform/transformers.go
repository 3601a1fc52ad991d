// Package xform holds small value transformers used to parse and validate
// environment variables. Every transformer has the shape func(A) (B, error)
// so they can be chained with envutil.Map.
package xform

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// OneOf returns a transformer that validates a value is one of the given choices.
// Returns ErrInvalidChoice if the value is not in the list of choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int64 parses a string as a base-10 int64.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// NonNegative validates that a numeric value is zero or greater.
// Returns ErrNegative otherwise.
func NonNegative[A Numeric](value A) (A, error) { //nolint:ireturn
	if value < 0 {
		return value, fmt.Errorf("%w: %v", ErrNegative, value)
	}

	return value, nil
}

// CastNumeric converts a numeric value from one type to another.
// Example: CastNumeric[int64, int32] converts int64 to int32.
// Note: This may truncate or lose precision depending on the types involved.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
// Returns ErrInvalidLogLevel for unrecognized values.
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
