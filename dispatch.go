package assertthat

import (
	"reflect"
	"strconv"

	"github.com/amp-labs/assertthat/try"
)

// Kind is the shape That sees in a value.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindAssertion
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindAssertion:
		return "assertion"
	case KindUnknown:
		return "unknown"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Classify sorts value into a Kind. The tests run in order: string, builtin
// number, bool, slice or array, assert object, and anything else is
// KindUnknown. Named types over builtins are KindUnknown.
func Classify(value any) Kind {
	switch value.(type) {
	case string:
		return KindString
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return KindNumber
	case bool:
		return KindBoolean
	case nil:
		return KindUnknown
	}

	if kind := reflect.TypeOf(value).Kind(); kind == reflect.Slice || kind == reflect.Array {
		return KindArray
	}

	if _, ok := value.(Assertion); ok {
		return KindAssertion
	}

	return KindUnknown
}

// ValueAssert is what That returns. It offers the base predicates over an
// untyped subject, so That(v).IsEqualTo(w) needs no type assertion, and it
// carries the variant chosen for the subject:
//   - *StringAssert for a string
//   - *NumberAssert[N] for a builtin number, N being its exact type
//   - *ArrayAssert[E] for a slice or array
//   - *TestAssert[Assertion] for another assert object
//   - *UnknownAssert[any] for everything else, bool included
//
// The variant shares the subject and the description of the ValueAssert.
type ValueAssert struct {
	Base[any, *ValueAssert]

	kind    Kind
	variant Assertion
}

var _ Contract[any, *ValueAssert] = (*ValueAssert)(nil)

// That classifies value and returns a ValueAssert for it. That never fails.
func That(value any) *ValueAssert {
	return newValue(value, Info{})
}

func newValue(value any, meta Info) *ValueAssert {
	kind := Classify(value)

	a := &ValueAssert{
		kind:    kind,
		variant: variantOf(kind, value, meta),
	}
	a.init(value, meta, a, newValue)

	return a
}

// Kind returns how the subject was classified.
func (a *ValueAssert) Kind() Kind {
	return a.kind
}

// Variant returns the most specific assert object for the subject.
func (a *ValueAssert) Variant() Assertion { //nolint:ireturn
	return a.variant
}

func variantOf(kind Kind, value any, meta Info) Assertion { //nolint:ireturn
	switch kind { //nolint:exhaustive
	case KindString:
		return newString(value.(string), meta) //nolint:forcetypeassert
	case KindNumber:
		return numberOf(value, meta)
	case KindArray:
		return arrayOf(value, meta)
	case KindAssertion:
		return newTest(value.(Assertion), meta) //nolint:forcetypeassert
	default:
		// Booleans are classified but have no dedicated variant here.
		return newUnknown(value, meta)
	}
}

func numberOf(value any, meta Info) Assertion { //nolint:ireturn,cyclop
	switch v := value.(type) {
	case int:
		return newNumber(v, meta)
	case int8:
		return newNumber(v, meta)
	case int16:
		return newNumber(v, meta)
	case int32:
		return newNumber(v, meta)
	case int64:
		return newNumber(v, meta)
	case uint:
		return newNumber(v, meta)
	case uint8:
		return newNumber(v, meta)
	case uint16:
		return newNumber(v, meta)
	case uint32:
		return newNumber(v, meta)
	case uint64:
		return newNumber(v, meta)
	case uintptr:
		return newNumber(v, meta)
	case float32:
		return newNumber(v, meta)
	case float64:
		return newNumber(v, meta)
	default:
		return newUnknown(value, meta)
	}
}

// arrayOf keeps common slice types as they are. Any other slice or array is
// copied element by element into a []any.
func arrayOf(value any, meta Info) Assertion { //nolint:ireturn
	switch v := value.(type) {
	case []any:
		return newArray(v, meta)
	case []string:
		return newArray(v, meta)
	case []int:
		return newArray(v, meta)
	case []int64:
		return newArray(v, meta)
	case []float64:
		return newArray(v, meta)
	case []bool:
		return newArray(v, meta)
	case []byte:
		return newArray(v, meta)
	case []error:
		return newArray(v, meta)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return newArray[any](nil, meta)
	}

	boxed := make([]any, rv.Len())
	for i := range boxed {
		boxed[i] = rv.Index(i).Interface()
	}

	return newArray(boxed, meta)
}

// Catch runs fn and returns the *errors.AssertionError it failed with, or
// nil if it returned normally. Panics with other values come back wrapped
// as errors too, see try.Catch.
func Catch(fn func()) error {
	return try.Catch(fn)
}
