package handlers

import (
	"context"

	"github.com/ClientDesk/client-desk-backend/types"
)

// ClientServiceInterface defines the service operations the client handler
// depends on.
type ClientServiceInterface interface {
	ListClients(ctx context.Context) ([]types.ClientDTO, error)
	GetClientByID(ctx context.Context, id string) (*types.ClientDTO, error)
}

// Pinger verifies connectivity to a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}
