// Package errors holds the error types shared by the assertion packages.
//
// A failed assertion is always reported as an *AssertionError. Everything else
// (a broken format template, a nil description supplier) is a plain error
// wrapping one of the sentinels below, so callers can tell "the assertion
// failed" apart from "the assertion was used incorrectly".
package errors

import "errors"

var (
	// ErrAssertionFailed is the sentinel matched by every *AssertionError.
	ErrAssertionFailed = errors.New("assertion failed")

	ErrInvalidDescription = errors.New("invalid description")
	ErrTooFewArguments    = errors.New("too few arguments")
	ErrTooManyArguments   = errors.New("too many arguments")
)

// AssertionError represents a failed assertion. Message is the fully rendered
// failure message, including any description prefix.
type AssertionError struct {
	// Assertion is the name of the predicate that failed (e.g. "IsEqualTo").
	Assertion string
	Message   string

	// Expected and Actual are optional payloads for programmatic inspection.
	Expected any
	Actual   any

	// Cause is set when the failure wraps another error.
	Cause error
}

// Error returns the rendered failure message.
func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}

	return e.Message
}

// Unwrap exposes both the sentinel and the cause (if any) to errors.Is / errors.As.
func (e *AssertionError) Unwrap() []error {
	if e == nil {
		return nil
	}

	if e.Cause == nil {
		return []error{ErrAssertionFailed}
	}

	return []error{ErrAssertionFailed, e.Cause}
}

// AsAssertionError returns the *AssertionError in err's chain, if there is one.
func AsAssertionError(err error) (*AssertionError, bool) {
	var target *AssertionError

	if errors.As(err, &target) {
		return target, true
	}

	return nil, false
}

// IsAssertionError reports whether err is, or wraps, an assertion failure.
func IsAssertionError(err error) bool {
	_, ok := AsAssertionError(err)

	return ok
}
