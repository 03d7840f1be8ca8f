package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStringFallback(t *testing.T) {
	assert.Equal(t, "./logs", GetString("DP_TEST_MISSING", "./logs"))

	t.Setenv("DP_TEST_PRESENT", "custom")
	assert.Equal(t, "custom", GetString("DP_TEST_PRESENT", "./logs"))
}

func TestGetIntFallback(t *testing.T) {
	assert.Equal(t, 25, GetInt("DP_TEST_MISSING_INT", 25))

	t.Setenv("DP_TEST_INT", "7")
	assert.Equal(t, 7, GetInt("DP_TEST_INT", 25))

	t.Setenv("DP_TEST_BAD_INT", "seven")
	assert.Equal(t, 25, GetInt("DP_TEST_BAD_INT", 25))
}
