package routers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/delivery/http/middlewares"
	"carepulse-service/internal/app/services/core/doctors"
	"carepulse-service/internal/app/services/core/patients"
	"carepulse-service/internal/app/services/core/users"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubUserUsecase struct{}

func (s *stubUserUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	return &responses.User{ID: "user-1"}, nil
}

func (s *stubUserUsecase) GetUserByID(ctx context.Context, userID string) (*responses.User, error) {
	return &responses.User{ID: userID}, nil
}

type stubPatientUsecase struct{}

func (s *stubPatientUsecase) RegisterPatient(ctx context.Context, userID string, request *requests.RegisterPatient, attachment *requests.Attachment) (*responses.RegisterPatientResult, error) {
	return &responses.RegisterPatientResult{UserID: userID}, nil
}

func (s *stubPatientUsecase) RenderIntakeForm(ctx context.Context, action string) (template.HTML, error) {
	return template.HTML(`<form action="` + action + `"></form>`), nil
}

func (s *stubPatientUsecase) Phase() contracts.SubmissionPhase { return contracts.PhaseIdle }
func (s *stubPatientUsecase) IsLoading() bool                  { return false }

type stubDoctorUsecase struct{}

func (s *stubDoctorUsecase) GetDoctors(ctx context.Context) ([]responses.Doctor, error) {
	return []responses.Doctor{{ID: "doc-1", Name: "Dr. Adam Smith"}}, nil
}

func newTestRouter() *chi.Mux {
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "api",
			MaxRequests:                100,
			RequestBodyLimitInMegabyte: 6,
			UploadMaxSizeInMB:          10,
		},
	}
	logger := zap.NewNop()

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		users.NewUserController(&stubUserUsecase{}, logger),
		patients.NewPatientController(&stubPatientUsecase{}, internalConfig, logger),
		doctors.NewDoctorController(&stubDoctorUsecase{}, logger),
	)
	return router
}

func TestRouteTree(t *testing.T) {
	router := newTestRouter()

	get := func(path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		return rr
	}

	t.Run("Intake form is scoped to a user", func(t *testing.T) {
		rr := get("/api/v1/patients/user-1/intake-form")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `action="/api/v1/patients/user-1/register"`,
			"rendered form posts back to an existing route")
	})

	t.Run("Unscoped intake form is not mounted", func(t *testing.T) {
		rr := get("/api/v1/patients/intake-form")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Doctors listed", func(t *testing.T) {
		rr := get("/api/v1/doctors")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Dr. Adam Smith")
	})

	t.Run("User lookup", func(t *testing.T) {
		rr := get("/api/v1/users/user-1")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Request id echoed", func(t *testing.T) {
		rr := get("/api/v1/doctors")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}
