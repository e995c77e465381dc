package records

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) contracts.RecordBackendClient {
	return NewRecordBackendClient(config.Backend{
		Endpoint:   serverURL,
		ProjectID:  "carepulse",
		APIKey:     "secret-key",
		DatabaseID: "main",
	}, zap.NewNop())
}

func TestRecordBackendClientCreateRecord(t *testing.T) {
	t.Run("Posts the document under its collection", func(t *testing.T) {
		var payload map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/databases/main/collections/patients/documents", r.URL.Path)
			assert.Equal(t, "carepulse", r.Header.Get(constvars.HeaderProjectID))
			assert.Equal(t, "secret-key", r.Header.Get(constvars.HeaderAPIKey))

			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"$id":"record-1","data":{"name":"Jane Doe"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		record, err := client.CreateRecord(context.Background(), "patients", map[string]interface{}{
			"name": "Jane Doe",
		})

		assert.NoError(t, err)
		assert.Equal(t, "record-1", record.ID)
		assert.Equal(t, "Jane Doe", record.Fields["name"])

		assert.NotEmpty(t, payload["documentId"], "every document gets a generated id")
		data, ok := payload["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "Jane Doe", data["name"])
	})

	t.Run("Backend refusal maps to a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"invalid document structure"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.CreateRecord(context.Background(), "patients", map[string]interface{}{})

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientRegistrationFailed, customErr.ClientMessage)
	})
}

func TestRecordBackendClientListRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/main/collections/doctors/documents", r.URL.Path)
		assert.Equal(t, constvars.MethodGet, r.Method)

		w.Write([]byte(`{"total":2,"documents":[
			{"$id":"doc-1","data":{"name":"Dr. Adam Smith"}},
			{"$id":"doc-2","data":{"name":"Dr. Leila Cameron"}}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	records, err := client.ListRecords(context.Background(), "doctors")

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "doc-1", records[0].ID)
	assert.Equal(t, "Dr. Adam Smith", records[0].Fields["name"])
}
