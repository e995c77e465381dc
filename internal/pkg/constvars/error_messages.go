package constvars

// Client-facing messages. Raw error detail never reaches the client surface;
// these are the generic notices shown instead.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientRegistrationFailed            = "we could not complete your registration, please try again"
	ErrClientUploadFailed                  = "we could not store your identification document, please try again"
	ErrClientSubmissionInFlight            = "your previous submission is still being processed"
	ErrClientFileTooLarge                  = "the uploaded file exceeds the size limit"
	ErrClientUserNotFound                  = "account not found"
)

// Developer-facing messages, logged but not returned.
const (
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "failed to parse JSON request body"
	ErrDevCannotParseMultipartForm = "failed to parse multipart form"
	ErrDevCannotMarshalJSON        = "failed to marshal JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevDecodeResponse           = "failed to decode %s response"
	ErrDevBackendCreateResource    = "backend refused to create %s resource"
	ErrDevBackendGetResource       = "backend failed to serve %s resource"
	ErrDevStorageCreateObject      = "failed to store object in bucket %s"
	ErrDevSubmissionBusy           = "submission rejected, another one is in flight"
	ErrDevMissingConfiguration     = "required configuration value %s is not set"
	ErrDevRenderForm               = "failed to render intake form"
)

// CustomValidationErrorMessages maps validator tags to human fragments used
// when formatting per-field errors.
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"min":          "must be at least %s characters",
	"max":          "must be at most %s characters",
	"oneof":        "must be one of: %s",
	"phone_number": "must be a valid international phone number",
	"consented":    "must be accepted",
	"intake_date":  "must be a valid date",
}

// TagsWithParams marks tags whose message fragment embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
