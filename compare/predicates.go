package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Comparator is a three-way comparison: negative when a < b, zero when they
// are equal and positive when a > b. Only the sign of the result matters.
type Comparator[T any] func(a, b T) int

// Number is satisfied by every builtin integer and floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Ordered returns a Comparator for any type supporting the < operator.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Natural compares two strings using natural sort order, where runs of
// digits are compared numerically ("file2" sorts before "file10").
// Strings that natural ordering considers equivalent (e.g. "a01" and "a1")
// fall back to plain lexical order so the result is a total order.
func Natural(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// Predicates answers ordering questions about a single value using a
// Comparator. It carries no failure messages; callers report the failing
// relation themselves.
type Predicates[T any] struct {
	Value      T
	Comparator Comparator[T]
}

// NewPredicates returns Predicates for value using the given comparator.
func NewPredicates[T any](value T, comparator Comparator[T]) Predicates[T] {
	return Predicates[T]{Value: value, Comparator: comparator}
}

func (p Predicates[T]) IsLessThan(other T) bool {
	return p.Comparator(p.Value, other) < 0
}

func (p Predicates[T]) IsLessThanOrEqualTo(other T) bool {
	return p.Comparator(p.Value, other) <= 0
}

func (p Predicates[T]) IsGreaterThan(other T) bool {
	return p.Comparator(p.Value, other) > 0
}

func (p Predicates[T]) IsGreaterThanOrEqualTo(other T) bool {
	return p.Comparator(p.Value, other) >= 0
}
