package patients

import (
	"io"
	"net/http"
	"strings"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	PatientUsecase contracts.PatientUsecase
	MultipartLimit int64
	Log            *zap.Logger
}

func NewPatientController(patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		MultipartLimit: int64(internalConfig.App.UploadMaxSizeInMB) * 1024 * 1024,
		Log:            logger,
	}
}

func (ctrl *PatientController) GetIntakeForm(w http.ResponseWriter, r *http.Request) {
	action := strings.TrimSuffix(r.URL.Path, "/intake-form") + "/register"

	markup, err := ctrl.PatientUsecase.RenderIntakeForm(r.Context(), action)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildHTMLResponse(w, constvars.StatusOK, []byte(markup))
}

func (ctrl *PatientController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, constvars.URLParamUserID)

	err := r.ParseMultipartForm(ctrl.MultipartLimit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := parseRegisterPatientForm(r)
	attachment, err := parseAttachment(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.PatientUsecase.RegisterPatient(r.Context(), userID, request, attachment)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterPatientSuccessMessage, result)
}

func parseRegisterPatientForm(r *http.Request) *requests.RegisterPatient {
	return &requests.RegisterPatient{
		Name:                   r.FormValue(constvars.FieldName),
		Email:                  r.FormValue(constvars.FieldEmail),
		Phone:                  r.FormValue(constvars.FieldPhone),
		BirthDate:              r.FormValue(constvars.FieldBirthDate),
		Gender:                 r.FormValue(constvars.FieldGender),
		Address:                r.FormValue(constvars.FieldAddress),
		Occupation:             r.FormValue(constvars.FieldOccupation),
		EmergencyContactName:   r.FormValue(constvars.FieldEmergencyContactName),
		EmergencyContactNumber: r.FormValue(constvars.FieldEmergencyContactNumber),
		PrimaryPhysician:       r.FormValue(constvars.FieldPrimaryPhysician),
		InsuranceProvider:      r.FormValue(constvars.FieldInsuranceProvider),
		InsurancePolicyNumber:  r.FormValue(constvars.FieldInsurancePolicyNumber),
		Allergies:              r.FormValue(constvars.FieldAllergies),
		CurrentMedication:      r.FormValue(constvars.FieldCurrentMedication),
		FamilyMedicalHistory:   r.FormValue(constvars.FieldFamilyMedicalHistory),
		PastMedicalHistory:     r.FormValue(constvars.FieldPastMedicalHistory),
		IdentificationType:     r.FormValue(constvars.FieldIdentificationType),
		IdentificationNumber:   r.FormValue(constvars.FieldIdentificationNumber),
		TreatmentConsent:       parseCheckbox(r.FormValue(constvars.FieldTreatmentConsent)),
		DisclosureConsent:      parseCheckbox(r.FormValue(constvars.FieldDisclosureConsent)),
		PrivacyConsent:         parseCheckbox(r.FormValue(constvars.FieldPrivacyConsent)),
	}
}

// parseCheckbox accepts the values browsers actually send for a checked box.
func parseCheckbox(value string) bool {
	switch strings.ToLower(value) {
	case "true", "on", "1":
		return true
	}
	return false
}

// parseAttachment extracts the optional identification document part. A
// missing part is not an error; the pipeline treats the attachment as absent.
func parseAttachment(r *http.Request) (*requests.Attachment, error) {
	file, header, err := r.FormFile(constvars.FieldIdentificationDocument)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	return &requests.Attachment{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     content,
	}, nil
}
