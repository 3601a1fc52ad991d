// Package zero provides utilities for working with zero, nil and falsy values.
package zero

import (
	"math"
	"reflect"
)

// IsNil returns true if the value is a literal nil
// or if it points to something with a nil value.
func IsNil(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// IsTruthy reports whether val counts as "true" in a boolean context.
//
// The falsy values are: nil (including typed nils), false, numeric zero, NaN
// and the empty string. Everything else is truthy, including empty but
// non-nil slices and maps, and struct values.
func IsTruthy(val any) bool {
	if IsNil(val) {
		return false
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return valOf.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return valOf.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return valOf.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := valOf.Float()

		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return valOf.Complex() != 0
	case reflect.String:
		return valOf.Len() > 0
	default:
		return true
	}
}
