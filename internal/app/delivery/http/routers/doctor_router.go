package routers

import (
	"carepulse-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *doctors.DoctorController) {
	router.Get("/", doctorController.GetDoctors)
}
