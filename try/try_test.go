//nolint:err113 // test errors
package try_test

import (
	"errors"
	"testing"

	"github.com/amp-labs/assertthat/try"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatch(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		name  string
		fn    func()
		check func(t *testing.T, err error)
	}{
		{
			name: "no panic",
			fn:   func() {},
			check: func(t *testing.T, err error) {
				t.Helper()
				require.NoError(t, err)
			},
		},
		{
			name: "error panic is returned as is",
			fn:   func() { panic(errBoom) },
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.Same(t, errBoom, err)
			},
		},
		{
			name: "string panic is wrapped",
			fn:   func() { panic("just a string") },
			check: func(t *testing.T, err error) {
				t.Helper()
				require.ErrorIs(t, err, try.ErrPanic)

				var pe *try.PanicError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "just a string", pe.Value)
				assert.Equal(t, "panic: just a string", err.Error())
			},
		},
		{
			name: "integer panic is wrapped",
			fn:   func() { panic(42) },
			check: func(t *testing.T, err error) {
				t.Helper()

				var pe *try.PanicError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, 42, pe.Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t, try.Catch(tt.fn))
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	val, err := try.Run(func() int { return 1 }).Get()
	require.NoError(t, err)
	assert.Equal(t, 1, val)

	val, err = try.Run(func() int { panic("nope") }).Get()
	require.ErrorIs(t, err, try.ErrPanic)
	assert.Zero(t, val)

	errBoom := errors.New("boom")

	failed := try.Run(func() *int { panic(errBoom) })
	assert.Same(t, errBoom, failed.Error)
	assert.Nil(t, failed.Value)
}
