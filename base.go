package assertthat

import (
	"encoding/json"
	"fmt"

	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/equality"
	"github.com/amp-labs/assertthat/format"
	"github.com/amp-labs/assertthat/optional"
	"github.com/amp-labs/assertthat/zero"
)

// Assertion is implemented by every assert object in this package.
type Assertion interface {
	// Subject returns the value under test.
	Subject() any

	info() Info
	withInfo(meta Info) Assertion
}

// Contract is the base predicate set. Every variant satisfies it with T
// set to its subject type and S to its own pointer type, so chains keep
// their variant.
type Contract[T any, S any] interface {
	Assertion

	Value() T
	Description() string

	IsEqualTo(other T) S
	IsNotEqualTo(other T) S
	IsSameAs(other T) S
	IsNotSameAs(other T) S
	IsNull() S
	IsNotNull() S
	IsDefined() S
	IsUndefined() S
	IsTruthy() S
	IsFalsy() S
	Satisfies(predicate func(T) bool) S
	SatisfiesAssertion(fn func(T)) S
	DescribedAs(text string) S
	DescribedAsFunc(supplier func() string) S
}

// Info is the per-object configuration carried from one assert object to
// the next: the description override, and whether failures go unreported
// because a TestAssert expects them.
type Info struct {
	description optional.Value[func() string]
	muted       bool
}

// Description renders the override, or returns "" when none is set.
func (i Info) Description() string {
	return optional.Map(i.description, func(f func() string) string { return f() }).GetOrElse("")
}

func (i Info) withDescription(f func() string) Info {
	i.description = optional.Some(f)

	return i
}

func (i Info) mute() Info {
	i.muted = true

	return i
}

func (i Info) prefix(message string) string {
	if i.description.Empty() {
		return message
	}

	return i.Description() + ": " + message
}

// fail finishes err for the object described by meta and reports it. The
// caller panics with the result.
func fail(meta Info, err *asserterrors.AssertionError) *asserterrors.AssertionError {
	err.Message = meta.prefix(err.Message)

	if !meta.muted {
		observeFailure(err)
	}

	return err
}

// Base is the predicate set shared by every assert variant. T is the type of
// the subject and S is the variant's pointer type, which is what chained
// predicates return.
//
// A Base is only usable once init has run, which the variant constructors
// take care of.
type Base[T any, S any] struct {
	value T
	meta  Info
	self  S
	clone func(T, Info) S
}

func (b *Base[T, S]) init(value T, meta Info, self S, clone func(T, Info) S) {
	b.value = value
	b.meta = meta
	b.self = self
	b.clone = clone
}

// Value returns the subject.
func (b *Base[T, S]) Value() T { //nolint:ireturn
	return b.value
}

// Subject returns the subject as an any.
func (b *Base[T, S]) Subject() any {
	return b.value
}

// Description returns the rendered description override, or "".
func (b *Base[T, S]) Description() string {
	return b.meta.Description()
}

func (b *Base[T, S]) info() Info {
	return b.meta
}

func (b *Base[T, S]) withInfo(meta Info) Assertion { //nolint:ireturn
	cloned, _ := any(b.clone(b.value, meta)).(Assertion)

	return cloned
}

// MarshalJSON renders the assert object as {"value": <subject>}.
func (b *Base[T, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"value": b.value})
}

// IsEqualTo checks that the subject deep-equals other.
func (b *Base[T, S]) IsEqualTo(other T) S { //nolint:ireturn
	if equality.Equals(b.value, other) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsEqualTo",
		Message:   format.MustFormat("Expected {} to equal {}", b.value, other),
		Expected:  other,
		Actual:    b.value,
	}))
}

// IsNotEqualTo checks that the subject does not deep-equal other.
func (b *Base[T, S]) IsNotEqualTo(other T) S { //nolint:ireturn
	if !equality.Equals(b.value, other) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsNotEqualTo",
		Message:   format.MustFormat("Expected {} not to equal {}", b.value, other),
		Expected:  other,
		Actual:    b.value,
	}))
}

// IsSameAs checks that the subject is identical to other: the same pointer,
// map, slice window, channel or func, or == for plain values.
func (b *Base[T, S]) IsSameAs(other T) S { //nolint:ireturn
	if equality.Same(b.value, other) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsSameAs",
		Message:   format.MustFormat("Expected {} to be the same as {} using strict equality", b.value, other),
		Expected:  other,
		Actual:    b.value,
	}))
}

// IsNotSameAs checks that the subject is not identical to other.
func (b *Base[T, S]) IsNotSameAs(other T) S { //nolint:ireturn
	if !equality.Same(b.value, other) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsNotSameAs",
		Message: format.MustFormat(
			"Expected {} not to be the same as the provided value using strict equality", b.value),
		Actual: b.value,
	}))
}

// IsNull checks that the subject is nil, typed nils included.
func (b *Base[T, S]) IsNull() S { //nolint:ireturn
	if zero.IsNil(b.value) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsNull",
		Message:   format.MustFormat("Expected {} to be null", b.value),
		Actual:    b.value,
	}))
}

// IsNotNull checks that the subject is not nil.
func (b *Base[T, S]) IsNotNull() S { //nolint:ireturn
	if !zero.IsNil(b.value) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsNotNull",
		Message:   "Expected value not to be null",
		Actual:    b.value,
	}))
}

// undefined reports whether the subject is an interface holding nothing at
// all. Typed nils are null but still defined, and zero values such as 0, ""
// and false are defined.
func (b *Base[T, S]) undefined() bool {
	return any(b.value) == nil
}

// IsDefined checks that the subject is not the untyped nil.
func (b *Base[T, S]) IsDefined() S { //nolint:ireturn
	if !b.undefined() {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsDefined",
		Message:   "Expected value not to be undefined",
		Actual:    b.value,
	}))
}

// IsUndefined checks that the subject is the untyped nil.
func (b *Base[T, S]) IsUndefined() S { //nolint:ireturn
	if b.undefined() {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsUndefined",
		Message:   format.MustFormat("Expected {} to be undefined", b.value),
		Actual:    b.value,
	}))
}

// IsTruthy checks the subject against zero.IsTruthy.
func (b *Base[T, S]) IsTruthy() S { //nolint:ireturn
	if zero.IsTruthy(b.value) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsTruthy",
		Message:   format.MustFormat("Expected {} to be truthy", b.value),
		Actual:    b.value,
	}))
}

// IsFalsy is the negation of IsTruthy.
func (b *Base[T, S]) IsFalsy() S { //nolint:ireturn
	if !zero.IsTruthy(b.value) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "IsFalsy",
		Message:   format.MustFormat("Expected {} to be falsy", b.value),
		Actual:    b.value,
	}))
}

// Satisfies fails when predicate returns false. A panic raised by predicate
// reaches the caller untouched.
func (b *Base[T, S]) Satisfies(predicate func(T) bool) S { //nolint:ireturn
	if predicate(b.value) {
		return b.self
	}

	panic(fail(b.meta, &asserterrors.AssertionError{
		Assertion: "Satisfies",
		Message:   format.MustFormat("Expected {} to satisfy the predicate", b.value),
		Actual:    b.value,
	}))
}

// SatisfiesAssertion runs fn, which is expected to make its own assertions
// about the subject. Returning normally counts as success.
func (b *Base[T, S]) SatisfiesAssertion(fn func(T)) S { //nolint:ireturn
	fn(b.value)

	return b.self
}

// DescribedAs returns a copy whose failure messages start with "text: ".
func (b *Base[T, S]) DescribedAs(text string) S { //nolint:ireturn
	return b.clone(b.value, b.meta.withDescription(func() string { return text }))
}

// DescribedAsFunc is DescribedAs with a description computed only when a
// failure is rendered.
func (b *Base[T, S]) DescribedAsFunc(supplier func() string) S { //nolint:ireturn
	if supplier == nil {
		panic(fmt.Errorf("%w: nil description supplier", asserterrors.ErrInvalidDescription))
	}

	return b.clone(b.value, b.meta.withDescription(supplier))
}
