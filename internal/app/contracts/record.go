package contracts

import (
	"context"

	"carepulse-service/internal/pkg/dto/responses"
)

// RecordBackendClient persists and lists documents of one database in the
// managed document store.
type RecordBackendClient interface {
	CreateRecord(ctx context.Context, collectionID string, fields map[string]interface{}) (*responses.Record, error)
	ListRecords(ctx context.Context, collectionID string) ([]responses.Record, error)
}
