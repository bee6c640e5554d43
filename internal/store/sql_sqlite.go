package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open(string(DialectSQLite), cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// a single writer avoids SQLITE_BUSY between pooled connections
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", cfg.DSN).Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		dialect: DialectSQLite,
		logger:  log,
	}, nil
}

// createLocalDBFileIfNotExists creates an empty database file for plain
// paths. In-memory databases and "file:" URIs are left to the driver.
func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" || strings.HasPrefix(dbFile, "file:") {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		return f.Close()
	}

	return nil
}
