package patients

import (
	"fmt"
	"html/template"

	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/form"
)

// IntakeSchema declares the patient intake form. The doctor list is fetched at
// render time and becomes the options of the primary physician select.
func IntakeSchema(doctors []responses.Doctor) *form.Schema {
	doctorOptions := make([]form.Option, 0, len(doctors))
	for _, doctor := range doctors {
		doctorOptions = append(doctorOptions, form.Option{
			Value: doctor.Name,
			Label: doctor.Name,
		})
	}

	identificationOptions := make([]form.Option, 0, len(constvars.IdentificationTypes))
	for _, identificationType := range constvars.IdentificationTypes {
		identificationOptions = append(identificationOptions, form.Option{
			Value: identificationType,
			Label: identificationType,
		})
	}

	return form.MustSchema("patient-intake",
		form.Section{
			Title: "Personal Information",
			Fields: []form.Field{
				{
					Name:        constvars.FieldName,
					Kind:        form.KindTextInput,
					Label:       "Full name",
					Placeholder: "John Doe",
					IconRef:     "/assets/icons/user.svg",
					Rules:       "required,min=2,max=50",
				},
				{
					Name:        constvars.FieldEmail,
					Kind:        form.KindTextInput,
					Label:       "Email address",
					Placeholder: "johndoe@example.com",
					IconRef:     "/assets/icons/email.svg",
					Rules:       "required,email",
				},
				{
					Name:        constvars.FieldPhone,
					Kind:        form.KindPhone,
					Label:       "Phone number",
					Placeholder: "+15551234567",
					Rules:       "required,phone_number",
				},
				{
					Name:  constvars.FieldBirthDate,
					Kind:  form.KindDatePicker,
					Label: "Date of birth",
					Rules: "required,intake_date",
				},
				{
					Name:  constvars.FieldGender,
					Kind:  form.KindSelect,
					Label: "Gender",
					Options: []form.Option{
						{Value: constvars.GenderMale, Label: constvars.GenderMale},
						{Value: constvars.GenderFemale, Label: constvars.GenderFemale},
						{Value: constvars.GenderOther, Label: constvars.GenderOther},
					},
					Rules:   "required",
					Default: constvars.GenderMale,
				},
				{
					Name:        constvars.FieldAddress,
					Kind:        form.KindTextInput,
					Label:       "Address",
					Placeholder: "14 street, New York, NY - 5101",
					Rules:       "required,min=5,max=500",
				},
				{
					Name:        constvars.FieldOccupation,
					Kind:        form.KindTextInput,
					Label:       "Occupation",
					Placeholder: "Software Engineer",
					Rules:       "required,min=2,max=500",
				},
				{
					Name:        constvars.FieldEmergencyContactName,
					Kind:        form.KindTextInput,
					Label:       "Emergency contact name",
					Placeholder: "Guardian's name",
					Rules:       "required,min=2,max=50",
				},
				{
					Name:        constvars.FieldEmergencyContactNumber,
					Kind:        form.KindPhone,
					Label:       "Emergency contact number",
					Placeholder: "+15551234567",
					Rules:       "required,phone_number",
				},
			},
		},
		form.Section{
			Title: "Medical Information",
			Fields: []form.Field{
				{
					Name:        constvars.FieldPrimaryPhysician,
					Kind:        form.KindSelect,
					Label:       "Primary care physician",
					Placeholder: "Select a physician",
					Options:     doctorOptions,
					Rules:       "required,min=2",
				},
				{
					Name:        constvars.FieldInsuranceProvider,
					Kind:        form.KindTextInput,
					Label:       "Insurance provider",
					Placeholder: "BlueCross BlueShield",
					Rules:       "required,min=2,max=50",
				},
				{
					Name:        constvars.FieldInsurancePolicyNumber,
					Kind:        form.KindTextInput,
					Label:       "Insurance policy number",
					Placeholder: "ABC123456789",
					Rules:       "required,min=2,max=50",
				},
				{
					Name:        constvars.FieldAllergies,
					Kind:        form.KindTextarea,
					Label:       "Allergies (if any)",
					Placeholder: "Peanuts, Penicillin, Pollen",
					Rules:       "max=500",
				},
				{
					Name:        constvars.FieldCurrentMedication,
					Kind:        form.KindTextarea,
					Label:       "Current medications",
					Placeholder: "Ibuprofen 200mg, Levothyroxine 50mcg",
					Rules:       "max=500",
				},
				{
					Name:        constvars.FieldFamilyMedicalHistory,
					Kind:        form.KindTextarea,
					Label:       "Family medical history (if relevant)",
					Placeholder: "Mother had brain cancer, Father has hypertension",
					Rules:       "max=500",
				},
				{
					Name:        constvars.FieldPastMedicalHistory,
					Kind:        form.KindTextarea,
					Label:       "Past medical history",
					Placeholder: "Appendectomy in 2015, Asthma diagnosis in childhood",
					Rules:       "max=500",
				},
			},
		},
		form.Section{
			Title: "Identification and Verification",
			Fields: []form.Field{
				{
					Name:        constvars.FieldIdentificationType,
					Kind:        form.KindSelect,
					Label:       "Identification type",
					Placeholder: "Select identification type",
					Options:     identificationOptions,
					Rules:       "required",
					Default:     constvars.IdentificationTypes[0],
				},
				{
					Name:        constvars.FieldIdentificationNumber,
					Kind:        form.KindTextInput,
					Label:       "Identification number",
					Placeholder: "123456789",
					Rules:       "required,min=2,max=50",
				},
				{
					Name:   constvars.FieldIdentificationDocument,
					Kind:   form.KindCustom,
					Label:  "Scanned copy of identification document",
					Custom: renderFileUpload,
				},
			},
		},
		form.Section{
			Title: "Consent and Privacy",
			Fields: []form.Field{
				{
					Name:  constvars.FieldTreatmentConsent,
					Kind:  form.KindCheckbox,
					Label: "I consent to receive treatment for my health condition.",
					Rules: "consented",
				},
				{
					Name:  constvars.FieldDisclosureConsent,
					Kind:  form.KindCheckbox,
					Label: "I consent to the use and disclosure of my health information for treatment purposes.",
					Rules: "consented",
				},
				{
					Name:  constvars.FieldPrivacyConsent,
					Kind:  form.KindCheckbox,
					Label: "I acknowledge that I have reviewed and agree to the privacy policy.",
					Rules: "consented",
				},
			},
		},
	)
}

// renderFileUpload is the custom control for the identification document. It
// is a plain file input; the multipart handler picks the part up by name.
func renderFileUpload(binding form.Binding) template.HTML {
	markup := fmt.Sprintf(
		`<div class="file-upload"><input type="file" id=%q name=%q accept="image/*,.pdf"/><p class="file-upload-hint">SVG, PNG, JPG or PDF (max. 10MB)</p></div>`,
		binding.Name(), binding.Name(),
	)
	return template.HTML(markup)
}
