package assertthat

import (
	"strings"

	"github.com/amp-labs/assertthat/compare"
	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/amp-labs/assertthat/format"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// StringAssert asserts on a string.
type StringAssert struct {
	Base[string, *StringAssert]

	predicates compare.Predicates[string]
}

var _ Contract[string, *StringAssert] = (*StringAssert)(nil)

// String returns a StringAssert for value.
func String(value string) *StringAssert {
	return newString(value, Info{})
}

func newString(value string, meta Info) *StringAssert {
	a := &StringAssert{
		predicates: compare.NewPredicates(value, compare.Natural),
	}
	a.init(value, meta, a, newString)

	return a
}

func (a *StringAssert) check(ok bool, name string, expected any, template string, values ...any) *StringAssert {
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

// IsEmpty checks that the subject is "".
func (a *StringAssert) IsEmpty() *StringAssert {
	return a.check(a.value == "", "IsEmpty", "",
		"Expected {} to be empty", a.value)
}

// IsNotEmpty checks that the subject is not "".
func (a *StringAssert) IsNotEmpty() *StringAssert {
	return a.check(a.value != "", "IsNotEmpty", nil, "Expected value not to be empty")
}

// Contains checks that substr occurs in the subject.
func (a *StringAssert) Contains(substr string) *StringAssert {
	return a.check(strings.Contains(a.value, substr), "Contains", substr,
		"Expected {} to contain {}", a.value, substr)
}

// StartsWith checks the subject's prefix.
func (a *StringAssert) StartsWith(prefix string) *StringAssert {
	return a.check(strings.HasPrefix(a.value, prefix), "StartsWith", prefix,
		"Expected {} to start with {}", a.value, prefix)
}

// EndsWith checks the subject's suffix.
func (a *StringAssert) EndsWith(suffix string) *StringAssert {
	return a.check(strings.HasSuffix(a.value, suffix), "EndsWith", suffix,
		"Expected {} to end with {}", a.value, suffix)
}

// IsEqualToIgnoringCase compares under Unicode case folding, so "Straße"
// matches "STRASSE".
func (a *StringAssert) IsEqualToIgnoringCase(other string) *StringAssert {
	fold := cases.Fold()

	return a.check(fold.String(a.value) == fold.String(other), "IsEqualToIgnoringCase", other,
		"Expected {} to equal {} ignoring case", a.value, other)
}

// IsEqualToNormalized compares the NFC forms of the subject and other, so
// precomposed and decomposed accents match.
func (a *StringAssert) IsEqualToNormalized(other string) *StringAssert {
	return a.check(norm.NFC.String(a.value) == norm.NFC.String(other), "IsEqualToNormalized", other,
		"Expected {} to equal {} after normalization", a.value, other)
}

// IsBefore checks that the subject sorts before other in natural order,
// where digit runs compare numerically.
func (a *StringAssert) IsBefore(other string) *StringAssert {
	return a.check(a.predicates.IsLessThan(other), "IsBefore", other,
		"Expected {} to be before {}", a.value, other)
}

// IsAfter checks that the subject sorts after other in natural order.
func (a *StringAssert) IsAfter(other string) *StringAssert {
	return a.check(a.predicates.IsGreaterThan(other), "IsAfter", other,
		"Expected {} to be after {}", a.value, other)
}
