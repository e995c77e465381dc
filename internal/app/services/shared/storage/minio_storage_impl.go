package storage

import (
	"context"
	"fmt"
	"io"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	Client    *minio.Client
	Endpoint  string
	ProjectID string
	Log       *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, backendConfig config.Backend, logger *zap.Logger) contracts.ObjectStorage {
	return &minioStorage{
		Client:    minioClient,
		Endpoint:  backendConfig.Endpoint,
		ProjectID: backendConfig.ProjectID,
		Log:       logger,
	}
}

func (s *minioStorage) UploadBinary(ctx context.Context, bucketID, fileID string, content io.Reader, size int64, contentType string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("minioStorage.UploadBinary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, bucketID),
		zap.String(constvars.LoggingFileIDKey, fileID),
	)

	_, err := s.Client.PutObject(ctx, bucketID, fileID, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.Log.Error("minioStorage.UploadBinary error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketID),
			zap.String(constvars.LoggingFileIDKey, fileID),
			zap.Error(err),
		)
		return "", exceptions.ErrStorageCreateObject(err, bucketID)
	}

	s.Log.Info("minioStorage.UploadBinary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileIDKey, fileID),
	)
	return fileID, nil
}

func (s *minioStorage) BuildDownloadURL(bucketID, fileID string) string {
	return fmt.Sprintf(constvars.DownloadURLFormat, s.Endpoint, bucketID, fileID, s.ProjectID)
}
