package records

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type recordBackendClient struct {
	Endpoint   string
	ProjectID  string
	APIKey     string
	DatabaseID string
	Log        *zap.Logger
	HTTP       *http.Client
}

func NewRecordBackendClient(backendConfig config.Backend, logger *zap.Logger) contracts.RecordBackendClient {
	return &recordBackendClient{
		Endpoint:   backendConfig.Endpoint,
		ProjectID:  backendConfig.ProjectID,
		APIKey:     backendConfig.APIKey,
		DatabaseID: backendConfig.DatabaseID,
		Log:        logger,
		HTTP:       &http.Client{},
	}
}

func (c *recordBackendClient) collectionURL(collectionID string) string {
	return fmt.Sprintf("%s/databases/%s/collections/%s/%s",
		c.Endpoint, c.DatabaseID, collectionID, constvars.ResourceRecords)
}

func (c *recordBackendClient) CreateRecord(ctx context.Context, collectionID string, fields map[string]interface{}) (*responses.Record, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordBackendClient.CreateRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, collectionID),
	)

	payload := map[string]interface{}{
		"documentId": utils.GenerateRecordID(),
		"data":       fields,
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		c.Log.Error("recordBackendClient.CreateRecord error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.collectionURL(collectionID), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("recordBackendClient.CreateRecord error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Error("recordBackendClient.CreateRecord error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrBackendCreateResource(readErr, constvars.ResourceRecords)
		}
		backendErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("recordBackendClient.CreateRecord backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackendCreateResource(backendErr, constvars.ResourceRecords)
	}

	record := new(responses.Record)
	err = json.NewDecoder(resp.Body).Decode(&record)
	if err != nil {
		c.Log.Error("recordBackendClient.CreateRecord error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceRecords)
	}

	c.Log.Info("recordBackendClient.CreateRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, record.ID),
	)
	return record, nil
}

func (c *recordBackendClient) ListRecords(ctx context.Context, collectionID string) ([]responses.Record, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("recordBackendClient.ListRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, collectionID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.collectionURL(collectionID), nil)
	if err != nil {
		c.Log.Error("recordBackendClient.ListRecords error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Error("recordBackendClient.ListRecords error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		backendErr := fmt.Errorf("status %d", resp.StatusCode)
		c.Log.Error("recordBackendClient.ListRecords backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackendGetResource(backendErr, constvars.ResourceRecords)
	}

	var result struct {
		Total     int                `json:"total"`
		Documents []responses.Record `json:"documents"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("recordBackendClient.ListRecords error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceRecords)
	}

	c.Log.Info("recordBackendClient.ListRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("total", len(result.Documents)),
	)
	return result.Documents, nil
}

func (c *recordBackendClient) setHeaders(req *http.Request) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderProjectID, c.ProjectID)
	req.Header.Set(constvars.HeaderAPIKey, c.APIKey)
}
