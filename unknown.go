package assertthat

// UnknownAssert is the fallback variant. It offers the shared predicates and
// nothing more.
type UnknownAssert[T any] struct {
	Base[T, *UnknownAssert[T]]
}

var _ Contract[any, *UnknownAssert[any]] = (*UnknownAssert[any])(nil)

// Unknown returns an UnknownAssert for value.
func Unknown[T any](value T) *UnknownAssert[T] {
	return newUnknown(value, Info{})
}

func newUnknown[T any](value T, meta Info) *UnknownAssert[T] {
	a := &UnknownAssert[T]{}
	a.init(value, meta, a, newUnknown[T])

	return a
}
