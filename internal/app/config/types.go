package config

type (
	InternalConfig struct {
		App     App
		Backend Backend
	}

	DriverConfig struct {
		Minio  Minio
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		UploadMaxSizeInMB          int
	}

	// Backend locates the managed user-directory / document-database service.
	// Every field except the collection IDs appears in request headers or URLs.
	Backend struct {
		Endpoint            string
		ProjectID           string
		APIKey              string
		DatabaseID          string
		PatientCollectionID string
		DoctorCollectionID  string
		BucketID            string
	}

	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
