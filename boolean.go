package assertthat

import (
	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/format"
)

// BooleanAssert asserts on a bool. That does not produce it; call Boolean.
type BooleanAssert struct {
	Base[bool, *BooleanAssert]
}

var _ Contract[bool, *BooleanAssert] = (*BooleanAssert)(nil)

// Boolean returns a BooleanAssert for value.
func Boolean(value bool) *BooleanAssert {
	return newBoolean(value, Info{})
}

func newBoolean(value bool, meta Info) *BooleanAssert {
	a := &BooleanAssert{}
	a.init(value, meta, a, newBoolean)

	return a
}

// IsTrue checks that the subject is true.
func (a *BooleanAssert) IsTrue() *BooleanAssert {
	if a.value {
		return a
	}

	panic(fail(a.meta, &asserterrors.AssertionError{
		Assertion: "IsTrue",
		Message:   format.MustFormat("Expected {} to be true", a.value),
		Expected:  true,
		Actual:    a.value,
	}))
}

// IsFalse checks that the subject is false.
func (a *BooleanAssert) IsFalse() *BooleanAssert {
	if !a.value {
		return a
	}

	panic(fail(a.meta, &asserterrors.AssertionError{
		Assertion: "IsFalse",
		Message:   format.MustFormat("Expected {} to be false", a.value),
		Expected:  false,
		Actual:    a.value,
	}))
}
