// Package try turns panics into values.
package try

import (
	"errors"
	"fmt"
)

// ErrPanic is the sentinel behind every PanicError.
var ErrPanic = errors.New("panic")

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPanic, p.Value)
}

func (p *PanicError) Unwrap() error {
	return ErrPanic
}

// Try is the outcome of a computation that may have failed.
type Try[A any] struct {
	Value A
	Error error
}

// Get returns the value, or the error the computation failed with.
func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.Error != nil {
		var zero A

		return zero, t.Error
	}

	return t.Value, nil
}

// Catch runs fn and returns whatever it panicked with. Error values are
// returned unchanged, anything else is wrapped in a *PanicError. A normal
// return yields nil.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toError(r)
		}
	}()

	fn()

	return nil
}

// Run calls fn, capturing a panic as the Try's error.
func Run[A any](fn func() A) (out Try[A]) {
	defer func() {
		if r := recover(); r != nil {
			out = Try[A]{Error: toError(r)}
		}
	}()

	return Try[A]{Value: fn()}
}

func toError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return &PanicError{Value: r}
}
