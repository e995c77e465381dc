package patients

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"sync/atomic"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/form"
	"carepulse-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	RecordBackendClient contracts.RecordBackendClient
	ObjectStorage       contracts.ObjectStorage
	DoctorUsecase       contracts.DoctorUsecase
	PatientCollectionID string
	BucketID            string
	UploadMaxSizeInMB   int
	Log                 *zap.Logger

	inflight sync.Map
	loading  atomic.Int32
	phase    atomic.Value
}

func NewPatientUsecase(
	recordBackendClient contracts.RecordBackendClient,
	objectStorage contracts.ObjectStorage,
	doctorUsecase contracts.DoctorUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	uc := &patientUsecase{
		RecordBackendClient: recordBackendClient,
		ObjectStorage:       objectStorage,
		DoctorUsecase:       doctorUsecase,
		PatientCollectionID: internalConfig.Backend.PatientCollectionID,
		BucketID:            internalConfig.Backend.BucketID,
		UploadMaxSizeInMB:   internalConfig.App.UploadMaxSizeInMB,
		Log:                 logger,
	}
	uc.phase.Store(contracts.PhaseIdle)
	return uc
}

func (uc *patientUsecase) Phase() contracts.SubmissionPhase {
	return uc.phase.Load().(contracts.SubmissionPhase)
}

func (uc *patientUsecase) IsLoading() bool {
	return uc.loading.Load() > 0
}

func (uc *patientUsecase) setPhase(phase contracts.SubmissionPhase, requestID string) {
	uc.phase.Store(phase)
	uc.Log.Info("patientUsecase phase transition",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhaseKey, string(phase)),
	)
}

// RegisterPatient runs the submission pipeline: validate, upload the scanned
// document when present, then persist exactly one record. A failed upload
// halts the pipeline before anything is persisted, so retrying the same
// request is safe. The in-flight latch is scoped per user; other users'
// registrations proceed independently.
func (uc *patientUsecase) RegisterPatient(ctx context.Context, userID string, request *requests.RegisterPatient, attachment *requests.Attachment) (*responses.RegisterPatientResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if _, exists := uc.inflight.LoadOrStore(userID, struct{}{}); exists {
		uc.Log.Warn("patientUsecase.RegisterPatient rejected, submission in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
		)
		return nil, exceptions.ErrSubmissionInFlight(nil)
	}
	uc.loading.Add(1)
	defer func() {
		uc.inflight.Delete(userID)
		uc.loading.Add(-1)
	}()

	uc.Log.Info("patientUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	uc.setPhase(contracts.PhaseValidating, requestID)
	utils.SanitizeRegisterPatientRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		// Invalid input is not a failed submission; the form stays open with
		// inline errors, so the pipeline returns to rest.
		uc.setPhase(contracts.PhaseIdle, requestID)
		uc.Log.Error("patientUsecase.RegisterPatient validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	var documentID, documentURL *string
	if attachment != nil {
		if uc.UploadMaxSizeInMB > 0 && attachment.Size > int64(uc.UploadMaxSizeInMB)*1024*1024 {
			uc.setPhase(contracts.PhaseIdle, requestID)
			return nil, exceptions.ErrFileTooLarge(fmt.Errorf("file size %d bytes", attachment.Size))
		}

		uc.setPhase(contracts.PhaseUploading, requestID)
		fileID := utils.GenerateFileID(constvars.IdentificationDocumentPrefix, attachment.FileName)
		_, err = uc.ObjectStorage.UploadBinary(ctx, uc.BucketID, fileID, bytes.NewReader(attachment.Content), attachment.Size, attachment.ContentType)
		if err != nil {
			uc.setPhase(contracts.PhaseFailed, requestID)
			uc.Log.Error("patientUsecase.RegisterPatient upload failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFileIDKey, fileID),
				zap.Error(err),
			)
			return nil, err
		}

		downloadURL := uc.ObjectStorage.BuildDownloadURL(uc.BucketID, fileID)
		documentID = &fileID
		documentURL = &downloadURL
	}

	uc.setPhase(contracts.PhasePersisting, requestID)
	fields := uc.recordFields(userID, request, documentID, documentURL)
	record, err := uc.RecordBackendClient.CreateRecord(ctx, uc.PatientCollectionID, fields)
	if err != nil {
		uc.setPhase(contracts.PhaseFailed, requestID)
		uc.Log.Error("patientUsecase.RegisterPatient persist failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.setPhase(contracts.PhaseSucceeded, requestID)
	uc.Log.Info("patientUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, record.ID),
	)

	patient := &responses.Patient{
		ID:                        record.ID,
		UserID:                    userID,
		IdentificationDocumentID:  documentID,
		IdentificationDocumentURL: documentURL,
		Fields:                    record.Fields,
	}
	return &responses.RegisterPatientResult{Patient: patient, UserID: userID}, nil
}

// recordFields flattens the request into the persisted document shape. The
// document fields are explicit nulls when no file was attached.
func (uc *patientUsecase) recordFields(userID string, request *requests.RegisterPatient, documentID, documentURL *string) map[string]interface{} {
	fields := map[string]interface{}{
		constvars.RecordFieldUserID:           userID,
		constvars.FieldName:                   request.Name,
		constvars.FieldEmail:                  request.Email,
		constvars.FieldPhone:                  request.Phone,
		constvars.FieldBirthDate:              request.BirthDate,
		constvars.FieldGender:                 request.Gender,
		constvars.FieldAddress:                request.Address,
		constvars.FieldOccupation:             request.Occupation,
		constvars.FieldEmergencyContactName:   request.EmergencyContactName,
		constvars.FieldEmergencyContactNumber: request.EmergencyContactNumber,
		constvars.FieldPrimaryPhysician:       request.PrimaryPhysician,
		constvars.FieldInsuranceProvider:      request.InsuranceProvider,
		constvars.FieldInsurancePolicyNumber:  request.InsurancePolicyNumber,
		constvars.FieldAllergies:              request.Allergies,
		constvars.FieldCurrentMedication:      request.CurrentMedication,
		constvars.FieldFamilyMedicalHistory:   request.FamilyMedicalHistory,
		constvars.FieldPastMedicalHistory:     request.PastMedicalHistory,
		constvars.FieldIdentificationType:     request.IdentificationType,
		constvars.FieldIdentificationNumber:   request.IdentificationNumber,
		constvars.FieldTreatmentConsent:       request.TreatmentConsent,
		constvars.FieldDisclosureConsent:      request.DisclosureConsent,
		constvars.FieldPrivacyConsent:         request.PrivacyConsent,
	}
	if documentID != nil {
		fields[constvars.RecordFieldIdentificationDocumentID] = *documentID
		fields[constvars.RecordFieldIdentificationDocumentURL] = *documentURL
	} else {
		fields[constvars.RecordFieldIdentificationDocumentID] = nil
		fields[constvars.RecordFieldIdentificationDocumentURL] = nil
	}
	return fields
}

func (uc *patientUsecase) RenderIntakeForm(ctx context.Context, action string) (template.HTML, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.RenderIntakeForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorUsecase.GetDoctors(ctx)
	if err != nil {
		return "", err
	}

	schema := IntakeSchema(doctors)
	state := form.NewState(schema)
	markup, err := form.RenderForm(schema, state, action)
	if err != nil {
		uc.Log.Error("patientUsecase.RenderIntakeForm render failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrRenderForm(err)
	}
	return markup, nil
}
