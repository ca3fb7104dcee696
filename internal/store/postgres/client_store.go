package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ClientDesk/client-desk-backend/internal/store"
	"github.com/ClientDesk/client-desk-backend/types"
)

// PgxIface captures the pool methods the store uses, so tests can substitute
// a pgxmock pool for a real *pgxpool.Pool.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// ClientStore implements the store.ClientStore interface using PostgreSQL.
type ClientStore struct {
	db PgxIface
}

var _ store.ClientStore = (*ClientStore)(nil)

// NewClientStore creates a new ClientStore instance.
func NewClientStore(db PgxIface) *ClientStore {
	return &ClientStore{db: db}
}

// ListClients retrieves all clients ordered by creation time.
func (s *ClientStore) ListClients(ctx context.Context) ([]types.Client, error) {
	query := `
		SELECT id, created_at, name, email
		FROM clients
		ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	defer rows.Close()

	var clients []types.Client
	for rows.Next() {
		var client types.Client
		err := rows.Scan(
			&client.ID,
			&client.CreatedAt,
			&client.Name,
			&client.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning client row: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return clients, nil
}

// GetClientByID retrieves a client by its identifier. A miss yields
// store.ErrNotFound.
func (s *ClientStore) GetClientByID(ctx context.Context, id string) (*types.Client, error) {
	query := `
		SELECT id, created_at, name, email
		FROM clients
		WHERE id = $1`

	client := &types.Client{}
	row := s.db.QueryRow(ctx, query, id)

	err := row.Scan(
		&client.ID,
		&client.CreatedAt,
		&client.Name,
		&client.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("error getting client by id: %w", err)
	}

	return client, nil
}

// UpsertClient inserts a client keyed by unique email. An existing row is
// left untouched; its id is returned either way.
func (s *ClientStore) UpsertClient(ctx context.Context, client *types.Client) (string, error) {
	query := `
		INSERT INTO clients (id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`

	var id string
	row := s.db.QueryRow(ctx, query, client.ID, client.Name, client.Email)
	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("error upserting client: %w", err)
	}

	return id, nil
}

// Ping verifies the database connection is alive.
func (s *ClientStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
