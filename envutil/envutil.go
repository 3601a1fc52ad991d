// Package envutil reads typed settings out of the process environment
// or out of a map loaded from an env file.
package envutil

import (
	"log/slog"
	"os"

	"github.com/amp-labs/assertthat/xform"
)

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// FromMap returns a Reader for key looked up in vars. A nil map behaves
// like an empty environment.
func FromMap(vars map[string]string, key string) Reader[string] {
	val, ok := vars[key]

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool reads a boolean in any form strconv.ParseBool accepts.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), xform.Bool), opts)
}

// Int reads a base-10 integer and converts it to I.
func Int[I xform.Numeric](key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(key), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

// SlogLevel reads a log level name such as "debug" or "warn".
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), xform.SlogLevel), opts)
}
