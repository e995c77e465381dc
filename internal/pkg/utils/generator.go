package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateFileID produces the object key for an uploaded document. The
// original filename only contributes its extension; the key itself is unique.
func GenerateFileID(prefix, fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), extension)
}

func GenerateRecordID() string {
	return uuid.NewString()
}
