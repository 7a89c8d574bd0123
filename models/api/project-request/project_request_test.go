package projectrequestapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run(`valid email check`, func(t *testing.T) {
		require.Nil(t, ProjectRequest{ClientEmail: "  jamie@example.com "}.Validate())
	})
	t.Run(`empty email check`, func(t *testing.T) {
		require.NotNil(t, ProjectRequest{ClientEmail: "   "}.Validate())
	})
	t.Run(`display name check`, func(t *testing.T) {
		require.NotNil(t, ProjectRequest{ClientEmail: "Jamie <jamie@example.com>"}.Validate())
	})
}

func TestNormalizedClientEmail(t *testing.T) {
	require.Equal(t, "jamie@example.com", ProjectRequest{ClientEmail: "  jamie@example.com "}.NormalizedClientEmail())
	require.Equal(t, "jamie@example.com", ProjectRequest{ClientEmail: "jamie@example.com"}.NormalizedClientEmail())
}
