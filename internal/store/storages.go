package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
)

// Storages bundles the repositories of the server together with the
// connection they share.
type Storages struct {
	ClientRepository ClientRepository

	db *DB
}

// NewStorages connects to the backend selected by cfg.DB.DSN, applies
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	var (
		db  *DB
		err error
	)
	switch DialectFromDSN(cfg.DB.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ClientRepository: NewClientRepository(db, log),
		db:               db,
	}
}

// Close closes the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
