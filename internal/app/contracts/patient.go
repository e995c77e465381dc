package contracts

import (
	"context"
	"html/template"

	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
)

// SubmissionPhase names where an in-flight registration currently is. The
// delivery layer surfaces it as a loading indicator.
type SubmissionPhase string

const (
	PhaseIdle       SubmissionPhase = "IDLE"
	PhaseValidating SubmissionPhase = "VALIDATING"
	PhaseUploading  SubmissionPhase = "UPLOADING"
	PhasePersisting SubmissionPhase = "PERSISTING"
	PhaseSucceeded  SubmissionPhase = "SUCCEEDED"
	PhaseFailed     SubmissionPhase = "FAILED"
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, userID string, request *requests.RegisterPatient, attachment *requests.Attachment) (*responses.RegisterPatientResult, error)
	RenderIntakeForm(ctx context.Context, action string) (template.HTML, error)
	Phase() SubmissionPhase
	IsLoading() bool
}

type DoctorUsecase interface {
	GetDoctors(ctx context.Context) ([]responses.Doctor, error)
}
