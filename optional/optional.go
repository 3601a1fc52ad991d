// Package optional models a value that may be absent without resorting to
// nil pointers.
package optional

// Value is either Some(value) or None. The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// GetOrElse returns the value if present, or defaultValue.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// Map applies f to the value, if any.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}
