// Package equality decides whether two values are "the same" for assertion
// purposes. It offers two distinct notions:
//
//   - structural equality (Equals, DeepEquals): recursive comparison of
//     contents, order-sensitive for sequences
//   - identity (Same): the same reference for pointer-like values, plain ==
//     for comparable values such as numbers and strings
package equality

import (
	"reflect"

	"github.com/amp-labs/assertthat/compare"
	"github.com/stretchr/testify/assert"
)

// Equals reports whether a and b are structurally equal. If a implements
// compare.Comparable[T], its Equals method decides; otherwise DeepEquals does.
func Equals[T any](a, b T) bool {
	if c, ok := any(a).(compare.Comparable[T]); ok {
		return c.Equals(b)
	}

	return DeepEquals(a, b)
}

// DeepEquals reports whether a and b are deeply equal. Byte slices are
// compared by content, everything else follows reflect.DeepEqual, so maps,
// slices and structs are compared recursively and slice order matters.
func DeepEquals(a, b any) bool {
	return assert.ObjectsAreEqual(a, b)
}

// Same reports whether a and b are identical rather than merely equal.
//
// Pointers, maps, channels and funcs are identical when they point at the
// same thing. Slices are identical when they share the same backing array
// start and length. Structs and arrays are identical when every field or
// element is, so a copy of a struct holding a slice is the same as the
// original while a struct holding a fresh copy of that slice is not. Other
// values are identical when they are ==. Values of different dynamic types
// are never identical, and a typed nil is not identical to an untyped nil.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	valA := reflect.ValueOf(a)
	valB := reflect.ValueOf(b)

	if valA.Type() != valB.Type() {
		return false
	}

	return sameValue(valA, valB)
}

func sameValue(valA, valB reflect.Value) bool {
	switch valA.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return valA.Pointer() == valB.Pointer()
	case reflect.Slice:
		return valA.Pointer() == valB.Pointer() && valA.Len() == valB.Len()
	case reflect.Interface:
		if valA.IsNil() || valB.IsNil() {
			return valA.IsNil() && valB.IsNil()
		}

		if valA.Elem().Type() != valB.Elem().Type() {
			return false
		}

		return sameValue(valA.Elem(), valB.Elem())
	case reflect.Struct:
		for i := range valA.NumField() {
			if !sameValue(valA.Field(i), valB.Field(i)) {
				return false
			}
		}

		return true
	case reflect.Array:
		for i := range valA.Len() {
			if !sameValue(valA.Index(i), valB.Index(i)) {
				return false
			}
		}

		return true
	default:
		return valA.Equal(valB)
	}
}
