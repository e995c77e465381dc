package users

import (
	"context"
	"errors"
	"testing"

	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserBackendClient struct {
	createCalls    int
	findEmailCalls int
	lastCreate     *requests.CreateBackendUser
	conflict       bool
	existing       *responses.User
}

func (f *fakeUserBackendClient) CreateUser(ctx context.Context, request *requests.CreateBackendUser) (*responses.User, error) {
	f.createCalls++
	f.lastCreate = request
	if f.conflict {
		return nil, contracts.ErrUserConflict
	}
	return &responses.User{ID: request.UserID, Name: request.Name, Email: request.Email, Phone: request.Phone}, nil
}

func (f *fakeUserBackendClient) FindUserByEmail(ctx context.Context, email string) (*responses.User, error) {
	f.findEmailCalls++
	if f.existing != nil && f.existing.Email == email {
		return f.existing, nil
	}
	return nil, exceptions.ErrUserNotFound(nil)
}

func (f *fakeUserBackendClient) FindUserByID(ctx context.Context, userID string) (*responses.User, error) {
	if f.existing != nil && f.existing.ID == userID {
		return f.existing, nil
	}
	return nil, exceptions.ErrUserNotFound(nil)
}

func validCreateUserRequest() *requests.CreateUser {
	return &requests.CreateUser{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "+15551234567",
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("New email creates an account", func(t *testing.T) {
		backend := &fakeUserBackendClient{}
		uc := NewUserUsecase(backend, zap.NewNop())

		user, err := uc.CreateUser(context.Background(), validCreateUserRequest())

		assert.NoError(t, err)
		assert.Equal(t, 1, backend.createCalls)
		assert.Equal(t, 0, backend.findEmailCalls)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("Duplicate email falls back to existing account", func(t *testing.T) {
		existing := &responses.User{ID: "user-1", Name: "Jane Doe", Email: "jane@example.com"}
		backend := &fakeUserBackendClient{conflict: true, existing: existing}
		uc := NewUserUsecase(backend, zap.NewNop())

		user, err := uc.CreateUser(context.Background(), validCreateUserRequest())

		assert.NoError(t, err)
		assert.Equal(t, 1, backend.createCalls)
		assert.Equal(t, 1, backend.findEmailCalls)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("Email is normalized before the backend sees it", func(t *testing.T) {
		backend := &fakeUserBackendClient{}
		uc := NewUserUsecase(backend, zap.NewNop())

		request := validCreateUserRequest()
		request.Email = "  Jane@Example.COM "

		_, err := uc.CreateUser(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", backend.lastCreate.Email)
	})

	t.Run("Invalid input never reaches the backend", func(t *testing.T) {
		backend := &fakeUserBackendClient{}
		uc := NewUserUsecase(backend, zap.NewNop())

		request := validCreateUserRequest()
		request.Phone = "555-1234"

		_, err := uc.CreateUser(context.Background(), request)

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, 0, backend.createCalls)
	})
}

func TestGetUserByID(t *testing.T) {
	existing := &responses.User{ID: "user-1", Name: "Jane Doe", Email: "jane@example.com"}
	backend := &fakeUserBackendClient{existing: existing}
	uc := NewUserUsecase(backend, zap.NewNop())

	t.Run("Known user", func(t *testing.T) {
		user, err := uc.GetUserByID(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", user.Name)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := uc.GetUserByID(context.Background(), "user-2")

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
