package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 50, Clamp(50, 0, 100))
	require.Equal(t, 0, Clamp(-20, 0, 100))
	require.Equal(t, 100, Clamp(150, 0, 100))
	require.Equal(t, 4880, Clamp(9000, 0, 4880))
	require.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
}
