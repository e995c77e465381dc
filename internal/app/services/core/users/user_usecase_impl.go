package users

import (
	"context"
	"errors"

	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserBackendClient contracts.UserBackendClient
	Log               *zap.Logger
}

func NewUserUsecase(userBackendClient contracts.UserBackendClient, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserBackendClient: userBackendClient,
		Log:               logger,
	}
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	utils.SanitizeCreateUserRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	backendRequest := &requests.CreateBackendUser{
		UserID: utils.GenerateRequestID(),
		Name:   request.Name,
		Email:  request.Email,
		Phone:  request.Phone,
	}
	user, err := uc.UserBackendClient.CreateUser(ctx, backendRequest)
	if errors.Is(err, contracts.ErrUserConflict) {
		// Duplicate email means the account already exists; hand back the
		// existing one so scheduling can continue.
		uc.Log.Info("userUsecase.CreateUser falling back to lookup",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserEmailKey, request.Email),
		)
		return uc.UserBackendClient.FindUserByEmail(ctx, request.Email)
	}
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, userID string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return uc.UserBackendClient.FindUserByID(ctx, userID)
}
