package assertthat

import (
	"github.com/amp-labs/assertthat/compare"
	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/format"
)

// NumberAssert asserts on a builtin numeric value and adds ordering
// predicates.
type NumberAssert[N compare.Number] struct {
	Base[N, *NumberAssert[N]]

	predicates compare.Predicates[N]
}

var _ Contract[int, *NumberAssert[int]] = (*NumberAssert[int])(nil)

// Number returns a NumberAssert for value.
func Number[N compare.Number](value N) *NumberAssert[N] {
	return newNumber(value, Info{})
}

func newNumber[N compare.Number](value N, meta Info) *NumberAssert[N] {
	a := &NumberAssert[N]{
		predicates: compare.NewPredicates(value, compare.Ordered[N]()),
	}
	a.init(value, meta, a, newNumber[N])

	return a
}

func (a *NumberAssert[N]) check(ok bool, name, template string, other N) *NumberAssert[N] {
	if ok {
		return a
	}

	panic(fail(a.meta, &asserterrors.AssertionError{
		Assertion: name,
		Message:   format.MustFormat(template, a.value, other),
		Expected:  other,
		Actual:    a.value,
	}))
}

// IsLessThan checks subject < other.
func (a *NumberAssert[N]) IsLessThan(other N) *NumberAssert[N] {
	return a.check(a.predicates.IsLessThan(other),
		"IsLessThan", "Expected {} to be less than {}", other)
}

// IsLessThanOrEqualTo checks subject <= other.
func (a *NumberAssert[N]) IsLessThanOrEqualTo(other N) *NumberAssert[N] {
	return a.check(a.predicates.IsLessThanOrEqualTo(other),
		"IsLessThanOrEqualTo", "Expected {} to be less than or equal to {}", other)
}

// IsGreaterThan checks subject > other.
func (a *NumberAssert[N]) IsGreaterThan(other N) *NumberAssert[N] {
	return a.check(a.predicates.IsGreaterThan(other),
		"IsGreaterThan", "Expected {} to be greater than {}", other)
}

// IsGreaterThanOrEqualTo checks subject >= other.
func (a *NumberAssert[N]) IsGreaterThanOrEqualTo(other N) *NumberAssert[N] {
	return a.check(a.predicates.IsGreaterThanOrEqualTo(other),
		"IsGreaterThanOrEqualTo", "Expected {} to be greater than or equal to {}", other)
}
