package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	base := errors.New("base failure")

	wrapped := WrapError(base, "context")

	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "context")
	assert.ErrorIs(t, wrapped, base)

	assert.NoError(t, WrapError(nil, "context"))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("mode", "sideways", "mode must be 'mutual' or 'target'")

	assert.Contains(t, err.Error(), "mode")
	assert.Contains(t, err.Error(), "sideways")
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("bad markup")
	err := NewParseError("first", "segmentation failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "first")
}

func TestComparisonError_Unwrap(t *testing.T) {
	cause := errors.New("diff blew up")
	err := NewComparisonError("alignment", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "alignment")
}

func TestGetRootCause(t *testing.T) {
	root := errors.New("root")
	wrapped := WrapError(WrapError(root, "inner"), "outer")

	assert.Equal(t, root, GetRootCause(wrapped))
	assert.Equal(t, root, GetRootCause(root))
}
