package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFileID(t *testing.T) {
	t.Run("Prefix and extension preserved", func(t *testing.T) {
		fileID := GenerateFileID("identification", "Passport Scan.PNG")

		assert.True(t, strings.HasPrefix(fileID, "identification_"))
		assert.True(t, strings.HasSuffix(fileID, ".png"), "extension is lowercased")
	})

	t.Run("File name without extension", func(t *testing.T) {
		fileID := GenerateFileID("identification", "scan")

		assert.True(t, strings.HasPrefix(fileID, "identification_"))
		assert.NotContains(t, fileID, ".")
	})

	t.Run("Unique per call", func(t *testing.T) {
		first := GenerateFileID("identification", "scan.png")
		second := GenerateFileID("identification", "scan.png")

		assert.NotEqual(t, first, second)
	})
}

func TestGenerateRequestID(t *testing.T) {
	assert.NotEmpty(t, GenerateRequestID())
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}
