package contracts

import (
	"context"
	"errors"

	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
)

// ErrUserConflict reports a create attempt for an email the directory already
// knows. Callers decide the fallback, usually a lookup by email.
var ErrUserConflict = errors.New("user directory: email already registered")

// UserBackendClient talks to the managed user directory. CreateUser returns
// ErrUserConflict on a duplicate email; callers decide the fallback.
type UserBackendClient interface {
	CreateUser(ctx context.Context, request *requests.CreateBackendUser) (*responses.User, error)
	FindUserByEmail(ctx context.Context, email string) (*responses.User, error)
	FindUserByID(ctx context.Context, userID string) (*responses.User, error)
}

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
	GetUserByID(ctx context.Context, userID string) (*responses.User, error)
}
