package config

import (
	"carepulse-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.MustGetEnvString("MINIO_USERNAME"),
			Password: utils.MustGetEnvString("MINIO_PASSWORD"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			UploadMaxSizeInMB:          utils.GetEnvInt("APP_UPLOAD_MAX_SIZE_IN_MB", 5),
		},
		Backend: Backend{
			Endpoint:            utils.MustGetEnvString("BACKEND_ENDPOINT"),
			ProjectID:           utils.MustGetEnvString("BACKEND_PROJECT_ID"),
			APIKey:              utils.MustGetEnvString("BACKEND_API_KEY"),
			DatabaseID:          utils.MustGetEnvString("BACKEND_DATABASE_ID"),
			PatientCollectionID: utils.MustGetEnvString("BACKEND_PATIENT_COLLECTION_ID"),
			DoctorCollectionID:  utils.MustGetEnvString("BACKEND_DOCTOR_COLLECTION_ID"),
			BucketID:            utils.MustGetEnvString("BACKEND_BUCKET_ID"),
		},
	}
}
