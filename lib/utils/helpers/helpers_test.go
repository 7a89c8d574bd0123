package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsContextDone(t *testing.T) {
	require.False(t, IsContextDone(context.Background()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.True(t, IsContextDone(ctx))
}

func TestNonEmpty(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, NonEmpty("", "a", "  ", "b"))
	require.Empty(t, NonEmpty())
}
