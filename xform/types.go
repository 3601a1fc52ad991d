package xform

import (
	"errors"
	"time"
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNegative      = errors.New("value must not be negative")

	// ErrInvalidLogLevel is returned when a log level string is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | int | uint | time.Duration
}
