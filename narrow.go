package assertthat

import (
	"reflect"

	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/format"
)

// Go methods cannot take type parameters, so the type-membership predicates
// are functions. The narrowing is static only: the subject is not copied or
// converted beyond the type assertion.

// IsInstanceOf checks that the subject of a holds a U, either as its
// concrete type or, for interface U, by implementing it. The result asserts
// on the same subject typed as U and keeps a's description.
func IsInstanceOf[U any](a Assertion) *UnknownAssert[U] {
	subject := a.Subject()

	if v, ok := subject.(U); ok {
		return newUnknown(v, a.info())
	}

	panic(fail(a.info(), &asserterrors.AssertionError{
		Assertion: "IsInstanceOf",
		Message:   format.MustFormat("Expected {} to be an instance of {}", subject, typeName[U]()),
		Actual:    subject,
	}))
}

// IsNotInstanceOf checks that the subject of a does not hold a U and
// returns a unchanged.
func IsNotInstanceOf[U any, A Assertion](a A) A { //nolint:ireturn
	subject := a.Subject()

	if _, ok := subject.(U); !ok {
		return a
	}

	panic(fail(a.info(), &asserterrors.AssertionError{
		Assertion: "IsNotInstanceOf",
		Message:   format.MustFormat("Expected {} not to be an instance of {}", subject, typeName[U]()),
		Actual:    subject,
	}))
}

func typeName[U any]() format.Raw {
	return format.Raw(reflect.TypeFor[U]().String())
}
