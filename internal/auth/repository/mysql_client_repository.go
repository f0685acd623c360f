package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	authDomain "github.com/allisson/caseflow/internal/auth/domain"
	"github.com/allisson/caseflow/internal/database"
	apperrors "github.com/allisson/caseflow/internal/errors"
)

// MySQLClientRepository implements Client persistence for MySQL.
type MySQLClientRepository struct {
	db *sql.DB
}

// Create inserts a new Client into the MySQL database.
func (m *MySQLClientRepository) Create(ctx context.Context, client *authDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO clients (id, secret, name, is_active, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		client.ID.String(),
		client.Secret,
		client.Name,
		client.IsActive,
		client.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// Update modifies an existing Client in the MySQL database.
func (m *MySQLClientRepository) Update(ctx context.Context, client *authDomain.Client) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE clients
			  SET secret = ?,
				  name = ?,
				  is_active = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		client.Secret,
		client.Name,
		client.IsActive,
		client.ID.String(),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update client")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rowsAffected == 0 {
		return authDomain.ErrClientNotFound
	}

	return nil
}

// Get retrieves a Client by ID from the MySQL database.
// Returns ErrClientNotFound if the client doesn't exist.
func (m *MySQLClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*authDomain.Client, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, secret, name, is_active, created_at
			  FROM clients WHERE id = ?`

	var client authDomain.Client

	err := querier.QueryRowContext(ctx, query, clientID.String()).Scan(
		&client.ID,
		&client.Secret,
		&client.Name,
		&client.IsActive,
		&client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get client")
	}

	return &client, nil
}

// NewMySQLClientRepository creates a new MySQL Client repository.
func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{db: db}
}
