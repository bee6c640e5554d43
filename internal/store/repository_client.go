package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/models"
)

// clientRepository is the SQL implementation of [ClientRepository].
type clientRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewClientRepository constructs a [ClientRepository] on top of db.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

func (r *clientRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	query, args, err := buildListClientsQuery(r.db.builder())
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(ctx, "*clientRepository.ListClients", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		r.db.logError(ctx, "*clientRepository.ListClients", err)
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clients, nil
}

func (r *clientRepository) GetClient(ctx context.Context, id string) (models.Client, error) {
	query, args, err := buildGetClientQuery(r.db.builder(), id)
	if err != nil {
		return models.Client{}, err
	}

	client, err := scanClient(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}
		r.db.logError(ctx, "*clientRepository.GetClient", err)
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return client, nil
}

func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) error {
	query, args, err := buildInsertClientQuery(r.db.builder(), client)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrClientAlreadyExists
		}
		r.db.logError(ctx, "*clientRepository.CreateClient", err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *clientRepository) UpdateClient(ctx context.Context, client models.Client) error {
	query, args, err := buildUpdateClientQuery(r.db.builder(), client)
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, "*clientRepository.UpdateClient", query, args)
}

func (r *clientRepository) DeleteClient(ctx context.Context, id string) error {
	query, args, err := buildDeleteClientQuery(r.db.builder(), id)
	if err != nil {
		return err
	}

	return r.execAffectingOne(ctx, "*clientRepository.DeleteClient", query, args)
}

// execAffectingOne runs a statement keyed by client ID and maps zero
// affected rows to ErrClientNotFound.
func (r *clientRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logError(ctx, fn, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}
