package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("SPRINTBOARD_TEST_VALUE", "")
	assert.Equal(t, "fallback", EnvOrDefault("SPRINTBOARD_TEST_VALUE", "fallback"))

	t.Setenv("SPRINTBOARD_TEST_VALUE", "set")
	assert.Equal(t, "set", EnvOrDefault("SPRINTBOARD_TEST_VALUE", "fallback"))
}

func TestEnvBoolOrDefault(t *testing.T) {
	t.Setenv("SPRINTBOARD_TEST_FLAG", "")
	v, err := EnvBoolOrDefault("SPRINTBOARD_TEST_FLAG", true)
	require.NoError(t, err)
	assert.True(t, v)

	t.Setenv("SPRINTBOARD_TEST_FLAG", "false")
	v, err = EnvBoolOrDefault("SPRINTBOARD_TEST_FLAG", true)
	require.NoError(t, err)
	assert.False(t, v)

	t.Setenv("SPRINTBOARD_TEST_FLAG", "nope")
	_, err = EnvBoolOrDefault("SPRINTBOARD_TEST_FLAG", true)
	assert.ErrorContains(t, err, "SPRINTBOARD_TEST_FLAG")
}
