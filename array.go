package assertthat

import (
	"slices"

	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/equality"
	"github.com/amp-labs/assertthat/format"
)

// ArrayAssert asserts on a slice.
type ArrayAssert[E any] struct {
	Base[[]E, *ArrayAssert[E]]
}

var _ Contract[[]any, *ArrayAssert[any]] = (*ArrayAssert[any])(nil)

// Slice returns an ArrayAssert for value.
func Slice[E any](value []E) *ArrayAssert[E] {
	return newArray(value, Info{})
}

func newArray[E any](value []E, meta Info) *ArrayAssert[E] {
	a := &ArrayAssert[E]{}
	a.init(value, meta, a, newArray[E])

	return a
}

func (a *ArrayAssert[E]) check(ok bool, name string, expected any, template string, values ...any) *ArrayAssert[E] {
	if ok {
		return a
	}

	panic(fail(a.meta, &asserterrors.AssertionError{
		Assertion: name,
		Message:   format.MustFormat(template, values...),
		Expected:  expected,
		Actual:    a.value,
	}))
}

func (a *ArrayAssert[E]) contains(elem E) bool {
	return slices.ContainsFunc(a.value, func(e E) bool { return equality.Equals(e, elem) })
}

// HasLength checks the number of elements.
func (a *ArrayAssert[E]) HasLength(n int) *ArrayAssert[E] {
	return a.check(len(a.value) == n, "HasLength", n,
		"Expected {} to have length {}, but it was {}", a.value, n, len(a.value))
}

// IsEmpty checks that there are no elements. A nil slice is empty.
func (a *ArrayAssert[E]) IsEmpty() *ArrayAssert[E] {
	return a.check(len(a.value) == 0, "IsEmpty", nil,
		"Expected {} to be empty", a.value)
}

// IsNotEmpty checks that there is at least one element.
func (a *ArrayAssert[E]) IsNotEmpty() *ArrayAssert[E] {
	return a.check(len(a.value) > 0, "IsNotEmpty", nil, "Expected value not to be empty")
}

// Contains checks that some element deep-equals elem.
func (a *ArrayAssert[E]) Contains(elem E) *ArrayAssert[E] {
	return a.check(a.contains(elem), "Contains", elem,
		"Expected {} to contain {}", a.value, elem)
}

// DoesNotContain checks that no element deep-equals elem.
func (a *ArrayAssert[E]) DoesNotContain(elem E) *ArrayAssert[E] {
	return a.check(!a.contains(elem), "DoesNotContain", elem,
		"Expected {} not to contain {}", a.value, elem)
}
