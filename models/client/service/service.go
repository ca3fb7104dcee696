// Package service contains the business logic for clients. It validates
// caller input, drives the store facade and translates store outcomes into
// typed application errors.
package service

import (
	"context"
	stderrors "errors"

	apperrors "github.com/ClientDesk/client-desk-backend/errors"
	"github.com/ClientDesk/client-desk-backend/internal/store"
	"github.com/ClientDesk/client-desk-backend/internal/utils"
	"github.com/ClientDesk/client-desk-backend/logger"
	"github.com/ClientDesk/client-desk-backend/types"
)

// ClientService manages read operations on clients.
type ClientService struct {
	clientStore store.ClientStore
}

// NewClientService creates a new ClientService.
func NewClientService(clientStore store.ClientStore) *ClientService {
	return &ClientService{clientStore: clientStore}
}

// ListClients returns all clients mapped to DTOs. An empty store yields an
// empty slice, not an error.
func (s *ClientService) ListClients(ctx context.Context) ([]types.ClientDTO, error) {
	clients, err := s.clientStore.ListClients(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return types.ToClientDTOs(clients), nil
}

// GetClientByID returns a single client DTO. Malformed identifiers are
// rejected before the store is touched; a store miss becomes a NotFound
// error.
func (s *ClientService) GetClientByID(ctx context.Context, id string) (*types.ClientDTO, error) {
	if !utils.IsValidClientID(id) {
		return nil, apperrors.BadRequest("Invalid client ID format. Client ID must be 24 hexadecimal characters.")
	}

	client, err := s.clientStore.GetClientByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Client not found")
		}
		logger.GetLogger().Errorw("Failed to get client", "client_id", id, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	dto := types.ToClientDTO(*client)
	return &dto, nil
}
