package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Run("Returns value when set", func(t *testing.T) {
		t.Setenv("CAREPULSE_TEST_STR", "hello")
		assert.Equal(t, "hello", GetEnvString("CAREPULSE_TEST_STR", "fallback"))
	})

	t.Run("Returns default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("CAREPULSE_TEST_STR_MISSING", "fallback"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("Parses numeric value", func(t *testing.T) {
		t.Setenv("CAREPULSE_TEST_INT", "8080")
		assert.Equal(t, 8080, GetEnvInt("CAREPULSE_TEST_INT", 3000))
	})

	t.Run("Falls back on unparsable value", func(t *testing.T) {
		t.Setenv("CAREPULSE_TEST_INT", "not-a-number")
		assert.Equal(t, 3000, GetEnvInt("CAREPULSE_TEST_INT", 3000))
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Run("Parses boolean value", func(t *testing.T) {
		t.Setenv("CAREPULSE_TEST_BOOL", "true")
		assert.True(t, GetEnvBool("CAREPULSE_TEST_BOOL", false))
	})

	t.Run("Falls back on unparsable value", func(t *testing.T) {
		t.Setenv("CAREPULSE_TEST_BOOL", "yep")
		assert.False(t, GetEnvBool("CAREPULSE_TEST_BOOL", false))
	})
}

func TestMustGetEnvString(t *testing.T) {
	t.Setenv("CAREPULSE_TEST_REQUIRED", "backend-key")
	assert.Equal(t, "backend-key", MustGetEnvString("CAREPULSE_TEST_REQUIRED"))
}
