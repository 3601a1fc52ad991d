package assertthat_test

import (
	"testing"

	asserterrors "github.com/amp-labs/assertthat/errors"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/assertthat"
)

// failureOf runs fn and returns the assertion error it must have failed with.
func failureOf(t *testing.T, fn func()) *asserterrors.AssertionError {
	t.Helper()

	err := assertthat.Catch(fn)
	require.Error(t, err, "expected the assertion to fail")

	failure, ok := asserterrors.AsAssertionError(err)
	require.True(t, ok, "expected an assertion error, got %T: %v", err, err)

	return failure
}

func requireFailure(t *testing.T, message string, fn func()) {
	t.Helper()

	require.Equal(t, message, failureOf(t, fn).Message)
}

func requireSuccess(t *testing.T, fn func()) {
	t.Helper()

	require.NoError(t, assertthat.Catch(fn))
}
