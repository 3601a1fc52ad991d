package envutil

// Option modifies a Reader. String, Bool and friends apply them in order.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a value for an absent variable.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Fallback consults f when the variable is absent.
func Fallback[T any](f Reader[T]) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithFallback(f)
	}
}

// Validate runs f against a present value and records its error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}
