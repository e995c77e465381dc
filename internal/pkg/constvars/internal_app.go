package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceUsers   = "users"
	ResourceRecords = "documents"
)

// Intake form field names. The renderer and the submission pipeline both key
// off these, so they live here rather than in either package.
const (
	FieldName                   = "name"
	FieldEmail                  = "email"
	FieldPhone                  = "phone"
	FieldBirthDate              = "birthDate"
	FieldGender                 = "gender"
	FieldAddress                = "address"
	FieldOccupation             = "occupation"
	FieldEmergencyContactName   = "emergencyContactName"
	FieldEmergencyContactNumber = "emergencyContactNumber"
	FieldPrimaryPhysician       = "primaryPhysician"
	FieldInsuranceProvider      = "insuranceProvider"
	FieldInsurancePolicyNumber  = "insurancePolicyNumber"
	FieldAllergies              = "allergies"
	FieldCurrentMedication      = "currentMedication"
	FieldFamilyMedicalHistory   = "familyMedicalHistory"
	FieldPastMedicalHistory     = "pastMedicalHistory"
	FieldIdentificationType     = "identificationType"
	FieldIdentificationNumber   = "identificationNumber"
	FieldIdentificationDocument = "identificationDocument"
	FieldTreatmentConsent       = "treatmentConsent"
	FieldDisclosureConsent      = "disclosureConsent"
	FieldPrivacyConsent         = "privacyConsent"
)

const (
	RecordFieldUserID                    = "userId"
	RecordFieldIdentificationDocumentID  = "identificationDocumentId"
	RecordFieldIdentificationDocumentURL = "identificationDocumentUrl"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Accepted values for the identificationType select.
var IdentificationTypes = []string{
	"Birth Certificate",
	"Driver's License",
	"Medical Insurance Card/Policy",
	"Military ID Card",
	"National Identity Card",
	"Passport",
	"Resident Alien Card (Green Card)",
	"Social Security Card",
	"State ID Card",
	"Student ID Card",
	"Voter ID Card",
}

const (
	IdentificationDocumentPrefix = "identification"
	DownloadURLFormat            = "%s/storage/buckets/%s/files/%s/view?project=%s"
)

const (
	URLParamUserID = "userID"
)
