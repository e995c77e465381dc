package requests

// RegisterPatient carries the full intake form snapshot at submit time. The
// identification document travels beside it as an Attachment, never inside it.
type RegisterPatient struct {
	Name                   string `json:"name" validate:"required,min=2,max=50"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone" validate:"required,phone_number"`
	BirthDate              string `json:"birthDate" validate:"required,intake_date"`
	Gender                 string `json:"gender" validate:"required,oneof=Male Female Other"`
	Address                string `json:"address" validate:"required,min=5,max=500"`
	Occupation             string `json:"occupation" validate:"required,min=2,max=500"`
	EmergencyContactName   string `json:"emergencyContactName" validate:"required,min=2,max=50"`
	EmergencyContactNumber string `json:"emergencyContactNumber" validate:"required,phone_number"`
	PrimaryPhysician       string `json:"primaryPhysician" validate:"required,min=2"`
	InsuranceProvider      string `json:"insuranceProvider" validate:"required,min=2,max=50"`
	InsurancePolicyNumber  string `json:"insurancePolicyNumber" validate:"required,min=2,max=50"`
	Allergies              string `json:"allergies" validate:"max=500"`
	CurrentMedication      string `json:"currentMedication" validate:"max=500"`
	FamilyMedicalHistory   string `json:"familyMedicalHistory" validate:"max=500"`
	PastMedicalHistory     string `json:"pastMedicalHistory" validate:"max=500"`
	IdentificationType     string `json:"identificationType" validate:"required"`
	IdentificationNumber   string `json:"identificationNumber" validate:"required,min=2,max=50"`
	TreatmentConsent       bool   `json:"treatmentConsent" validate:"consented"`
	DisclosureConsent      bool   `json:"disclosureConsent" validate:"consented"`
	PrivacyConsent         bool   `json:"privacyConsent" validate:"consented"`
}

// Attachment is the scanned identification document between "user selected a
// file" and "upload call returned". It is not retained after submission.
type Attachment struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}

// CreateBackendUser is the payload sent to the user directory.
type CreateBackendUser struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}
