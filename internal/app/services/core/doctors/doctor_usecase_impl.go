package doctors

import (
	"context"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	RecordBackendClient contracts.RecordBackendClient
	DoctorCollectionID  string
	Log                 *zap.Logger
}

func NewDoctorUsecase(recordBackendClient contracts.RecordBackendClient, backendConfig config.Backend, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		RecordBackendClient: recordBackendClient,
		DoctorCollectionID:  backendConfig.DoctorCollectionID,
		Log:                 logger,
	}
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	records, err := uc.RecordBackendClient.ListRecords(ctx, uc.DoctorCollectionID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctors backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	doctors := make([]responses.Doctor, 0, len(records))
	for _, record := range records {
		doctor := responses.Doctor{ID: record.ID}
		if name, ok := record.Fields["name"].(string); ok {
			doctor.Name = name
		}
		if image, ok := record.Fields["image"].(string); ok {
			doctor.Image = image
		}
		doctors = append(doctors, doctor)
	}

	uc.Log.Info("doctorUsecase.GetDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
	)
	return doctors, nil
}
