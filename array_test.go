package assertthat_test

import (
	"testing"

	"github.com/amp-labs/assertthat"
)

func TestArrayPredicates(t *testing.T) {
	t.Parallel()

	requireSuccess(t, func() {
		assertthat.Slice([]int{}).IsEmpty().HasLength(0)
		assertthat.Slice[string](nil).IsEmpty()
		assertthat.Slice([]point{{1, 2}, {3, 4}}).
			IsNotEmpty().
			HasLength(2).
			Contains(point{3, 4}).
			DoesNotContain(point{4, 3})
	})

	tests := []struct {
		name    string
		message string
		fn      func()
	}{
		{
			name:    "has length",
			message: "Expected [1,2] to have length 3, but it was 2",
			fn:      func() { assertthat.Slice([]int{1, 2}).HasLength(3) },
		},
		{
			name:    "is empty",
			message: `Expected ["a"] to be empty`,
			fn:      func() { assertthat.Slice([]string{"a"}).IsEmpty() },
		},
		{
			name:    "is not empty",
			message: "Expected value not to be empty",
			fn:      func() { assertthat.Slice[int](nil).IsNotEmpty() },
		},
		{
			name:    "contains",
			message: `Expected [{"X":1,"Y":2}] to contain {"X":2,"Y":1}`,
			fn:      func() { assertthat.Slice([]point{{1, 2}}).Contains(point{2, 1}) },
		},
		{
			name:    "does not contain",
			message: "Expected [1,2] not to contain 2",
			fn:      func() { assertthat.Slice([]int{1, 2}).DoesNotContain(2) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			requireFailure(t, tt.message, tt.fn)
		})
	}
}

func TestArrayThroughDispatcher(t *testing.T) {
	t.Parallel()

	assertthat.Test(assertthat.That([]any{1, "a"}).Variant()).
		SuccessfullyAsserts(func(a assertthat.Assertion) assertthat.Assertion {
			return a.(*assertthat.ArrayAssert[any]).Contains("a").HasLength(2) //nolint:forcetypeassert
		})
}

func TestBoolean(t *testing.T) {
	t.Parallel()

	requireSuccess(t, func() {
		assertthat.Boolean(true).IsTrue().IsEqualTo(true)
		assertthat.Boolean(false).IsFalse().IsNotEqualTo(true)
	})
	requireFailure(t, "Expected false to be true", func() { assertthat.Boolean(false).IsTrue() })
	requireFailure(t, "Expected true to be false", func() { assertthat.Boolean(true).IsFalse() })
	requireFailure(t, "Expected true not to equal true", func() { assertthat.Boolean(true).IsNotEqualTo(true) })
}
