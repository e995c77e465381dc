package doctors

import (
	"net/http"

	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DoctorController struct {
	DoctorUsecase contracts.DoctorUsecase
	Log           *zap.Logger
}

func NewDoctorController(doctorUsecase contracts.DoctorUsecase, logger *zap.Logger) *DoctorController {
	return &DoctorController{
		DoctorUsecase: doctorUsecase,
		Log:           logger,
	}
}

func (ctrl *DoctorController) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := ctrl.DoctorUsecase.GetDoctors(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}
