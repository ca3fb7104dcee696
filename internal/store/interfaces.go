// Package store defines the data-access facades the service layer depends
// on. Implementations live in subpackages; everything above this layer works
// with entities, never with database handles.
package store

import (
	"context"

	"github.com/ClientDesk/client-desk-backend/types"
)

// ClientStore handles client-related data operations. A lookup miss is
// reported with ErrNotFound, not with a typed HTTP error; translation is the
// service layer's job.
type ClientStore interface {
	ListClients(ctx context.Context) ([]types.Client, error)
	GetClientByID(ctx context.Context, id string) (*types.Client, error)
	// UpsertClient inserts a client keyed by its unique email, keeping the
	// existing row untouched when one already exists. Returns the row id.
	UpsertClient(ctx context.Context, client *types.Client) (string, error)
}
