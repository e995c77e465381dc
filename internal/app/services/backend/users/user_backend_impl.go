package users

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type userBackendClient struct {
	BaseURL   string
	ProjectID string
	APIKey    string
	Log       *zap.Logger
	HTTP      *http.Client
}

func NewUserBackendClient(backendConfig config.Backend, logger *zap.Logger) contracts.UserBackendClient {
	return &userBackendClient{
		BaseURL:   fmt.Sprintf("%s/%s", backendConfig.Endpoint, constvars.ResourceUsers),
		ProjectID: backendConfig.ProjectID,
		APIKey:    backendConfig.APIKey,
		Log:       logger,
		HTTP:      &http.Client{},
	}
}

func (c *userBackendClient) CreateUser(ctx context.Context, request *requests.CreateBackendUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userBackendClient.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("userBackendClient.CreateUser error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("userBackendClient.CreateUser error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Error("userBackendClient.CreateUser error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusConflict {
		c.Log.Info("userBackendClient.CreateUser email already registered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserEmailKey, request.Email),
		)
		return nil, contracts.ErrUserConflict
	}

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			c.Log.Error("userBackendClient.CreateUser error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(readErr),
			)
			return nil, exceptions.ErrBackendCreateResource(readErr, constvars.ResourceUsers)
		}
		backendErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("userBackendClient.CreateUser backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackendCreateResource(backendErr, constvars.ResourceUsers)
	}

	user := new(responses.User)
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		c.Log.Error("userBackendClient.CreateUser error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}

	c.Log.Info("userBackendClient.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (c *userBackendClient) FindUserByEmail(ctx context.Context, email string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userBackendClient.FindUserByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, email),
	)

	endpoint := fmt.Sprintf("%s?email=%s", c.BaseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("userBackendClient.FindUserByEmail error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Error("userBackendClient.FindUserByEmail error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		backendErr := fmt.Errorf("status %d", resp.StatusCode)
		c.Log.Error("userBackendClient.FindUserByEmail backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackendGetResource(backendErr, constvars.ResourceUsers)
	}

	var result struct {
		Total int              `json:"total"`
		Users []responses.User `json:"users"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("userBackendClient.FindUserByEmail error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}

	if len(result.Users) == 0 {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	user := result.Users[0]
	c.Log.Info("userBackendClient.FindUserByEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &user, nil
}

func (c *userBackendClient) FindUserByID(ctx context.Context, userID string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userBackendClient.FindUserByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseURL, userID), nil)
	if err != nil {
		c.Log.Error("userBackendClient.FindUserByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Error("userBackendClient.FindUserByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		backendErr := fmt.Errorf("status %d", resp.StatusCode)
		c.Log.Error("userBackendClient.FindUserByID backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackendGetResource(backendErr, constvars.ResourceUsers)
	}

	user := new(responses.User)
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		c.Log.Error("userBackendClient.FindUserByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}

	c.Log.Info("userBackendClient.FindUserByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (c *userBackendClient) setHeaders(req *http.Request) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderProjectID, c.ProjectID)
	req.Header.Set(constvars.HeaderAPIKey, c.APIKey)
}
