package types

import "time"

// Client is the persisted representation of a client record, as returned by
// the store layer.
type Client struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
}

// ClientDTO is the API-facing projection of a Client. Timestamps are
// serialized as RFC3339 strings and optional fields are normalized so the
// mapping is total.
type ClientDTO struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"createdAt"`
	Name      *string `json:"name"`
	Email     string  `json:"email"`
}

// ToClientDTO maps a Client entity to its DTO. It never fails: a zero
// creation timestamp maps to the Unix epoch and a missing name stays null.
func ToClientDTO(client Client) ClientDTO {
	createdAt := client.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Unix(0, 0)
	}
	return ClientDTO{
		ID:        client.ID,
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
		Name:      client.Name,
		Email:     client.Email,
	}
}

// ToClientDTOs maps a slice of Client entities to DTOs, preserving order.
// The result is never nil so it always serializes as a JSON array.
func ToClientDTOs(clients []Client) []ClientDTO {
	dtos := make([]ClientDTO, 0, len(clients))
	for _, client := range clients {
		dtos = append(dtos, ToClientDTO(client))
	}
	return dtos
}
