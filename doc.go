// Package assertthat is a fluent assertion library.
//
// That inspects a value and returns a ValueAssert for it, which offers the
// base predicates directly and the most specific assert object through
// Variant. The typed constructors (String, Number, Slice, Boolean, Unknown,
// Test) build a variant without dispatch.
//
// Each predicate either returns an assert object for further chaining or
// panics with an *errors.AssertionError:
//
//	assertthat.That(42).IsNotNull().IsEqualTo(42)
//	assertthat.String(name).StartsWith("user-").IsNotEqualTo("user-")
//	assertthat.Number(n).DescribedAs("retries").IsLessThanOrEqualTo(3)
//	assertthat.IsInstanceOf[error](assertthat.That(v)).IsNotNull()
//
// Inside a test the panic fails the test with the rendered message. Use
// Catch to turn a failure into an error instead.
package assertthat
