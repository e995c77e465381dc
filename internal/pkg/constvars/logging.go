package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingUserIDKey      = "user_id"
	LoggingUserEmailKey   = "user_email"
	LoggingRecordIDKey    = "record_id"
	LoggingFileIDKey      = "file_id"
	LoggingBucketKey      = "bucket"
	LoggingPhaseKey       = "phase"
	LoggingDoctorCountKey = "doctor_count"
)
