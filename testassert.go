package assertthat

import (
	"errors"
	"fmt"

	"github.com/amp-labs/assertthat/equality"
	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/format"
	"github.com/amp-labs/assertthat/try"
	"github.com/amp-labs/assertthat/zero"
)

// TestAssert wraps another assert object so the assertion itself can be
// put under test.
type TestAssert[A Assertion] struct {
	Base[A, *TestAssert[A]]
}

var _ Contract[Assertion, *TestAssert[Assertion]] = (*TestAssert[Assertion])(nil)

// Test returns a TestAssert wrapping value.
func Test[A Assertion](value A) *TestAssert[A] {
	return newTest(value, Info{})
}

func newTest[A Assertion](value A, meta Info) *TestAssert[A] {
	a := &TestAssert[A]{}
	a.init(value, meta, a, newTest[A])

	return a
}

// subject returns the wrapped assert object with failure reporting muted.
func (a *TestAssert[A]) subject() A { //nolint:ireturn
	if zero.IsNil(a.value) {
		return a.value
	}

	if muted, ok := a.value.withInfo(a.value.info().mute()).(A); ok {
		return muted
	}

	return a.value
}

// SuccessfullyAsserts runs fn against the wrapped assert object. It fails if
// fn panics, or if the assert object fn returns does not hold the very same
// subject as the wrapped one (see equality.Same).
func (a *TestAssert[A]) SuccessfullyAsserts(fn func(A) Assertion) *TestAssert[A] {
	target := a.subject()

	returned, err := try.Run(func() Assertion { return fn(target) }).Get()
	if err != nil {
		panic(fail(a.meta, &asserterrors.AssertionError{
			Assertion: "SuccessfullyAsserts",
			Message: format.MustFormat(
				"Expected assertion to succeed, but it failed with error:\n{}", panicDetail(err)),
			Cause: err,
		}))
	}

	original := a.value.Subject()

	if !zero.IsNil(returned) && equality.Same(original, returned.Subject()) {
		return a
	}

	panic(fail(a.meta, &asserterrors.AssertionError{
		Assertion: "SuccessfullyAsserts",
		Message:   "Expected the returned assert object to contain the same value as the original",
		Expected:  original,
	}))
}

// ThrowsAssertionError runs fn against the wrapped assert object and
// expects it to fail with exactly message.
func (a *TestAssert[A]) ThrowsAssertionError(fn func(A), message string) *TestAssert[A] {
	target := a.subject()

	err := try.Catch(func() { fn(target) })

	if err == nil {
		panic(fail(a.meta, &asserterrors.AssertionError{
			Assertion: "ThrowsAssertionError",
			Message:   "Expected assertion to throw an AssertionError, but it succeeded",
			Expected:  message,
		}))
	}

	thrown, ok := asserterrors.AsAssertionError(err)
	if !ok {
		detail := panicDetail(err)

		panic(fail(a.meta, &asserterrors.AssertionError{
			Assertion: "ThrowsAssertionError",
			Message: fmt.Sprintf("Expected assertion to throw an AssertionError, but it was %T ", detail) +
				format.Stringify(detail),
			Cause: err,
		}))
	}

	if thrown.Message != message {
		panic(fail(a.meta, &asserterrors.AssertionError{
			Assertion: "ThrowsAssertionError",
			Message:   format.MustFormat("Expected error to have message {}, but it was {}", message, thrown.Message),
			Expected:  message,
			Actual:    thrown.Message,
			Cause:     thrown,
		}))
	}

	return a
}

// panicDetail returns what fn actually panicked with, unwrapping the
// PanicError that try adds around non-error values.
func panicDetail(err error) any {
	var pe *try.PanicError
	if errors.As(err, &pe) {
		return pe.Value
	}

	return err
}
