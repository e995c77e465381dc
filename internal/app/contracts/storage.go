package contracts

import (
	"context"
	"io"
)

// ObjectStorage stores binary artifacts in a bucket and derives retrievable
// URLs for them. BuildDownloadURL is pure string construction.
type ObjectStorage interface {
	UploadBinary(ctx context.Context, bucketID, fileID string, content io.Reader, size int64, contentType string) (string, error)
	BuildDownloadURL(bucketID, fileID string) string
}
