package routers

import (
	"carepulse-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Get("/{userID}/intake-form", patientController.GetIntakeForm)
	router.Post("/{userID}/register", patientController.RegisterPatient)
}
