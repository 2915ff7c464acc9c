package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/migrations"
)

// DB wraps the SQLite handle of the local fetch cache.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if needed) the cache database at path and
// runs pending migrations. Pass ":memory:" for an ephemeral cache.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		if err := createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating cache database file")
			return nil, fmt.Errorf("error creating cache database file")
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening cache database")
		return nil, fmt.Errorf("error opening connection to cache DB")
	}

	// A pooled second connection to a ":memory:" DSN would get its own empty
	// database; the cache is low-traffic, one connection is enough.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting cache database (ping)")
		return nil, err
	}

	db := &DB{DB: conn, logger: log}
	if err = db.Migrate(); err != nil {
		return nil, err
	}

	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to cache database successfully")
	return db, nil
}

// Migrate applies pending schema migrations to the cache database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
