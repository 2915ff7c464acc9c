package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
)

type cacheRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCacheRepository creates the SQLite-backed CacheStorage over an open
// cache database handle.
func NewCacheRepository(db *DB, log *logger.Logger) CacheStorage {
	return &cacheRepository{db: db, logger: log}
}

func (r *cacheRepository) Snapshot(ctx context.Context) (models.RemoteEntries, FetchState, error) {
	query, args, err := sq.
		Select("namespace", "key", "value").
		From("config_entries").
		OrderBy("namespace", "key").
		ToSql()
	if err != nil {
		return nil, FetchState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, FetchState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := models.RemoteEntries{}
	for rows.Next() {
		var namespace, key, value string
		if err = rows.Scan(&namespace, &key, &value); err != nil {
			return nil, FetchState{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if entries[namespace] == nil {
			entries[namespace] = map[string]string{}
		}
		entries[namespace][key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, FetchState{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	state, err := r.fetchState(ctx)
	if err != nil {
		return nil, FetchState{}, err
	}

	return entries, state, nil
}

func (r *cacheRepository) ReplaceConfig(ctx context.Context, entries models.RemoteEntries, state FetchState) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM config_entries"); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for namespace, kv := range entries {
		for key, value := range kv {
			query, args, buildErr := sq.
				Insert("config_entries").
				Columns("namespace", "key", "value").
				Values(namespace, key, value).
				ToSql()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	if err = saveFetchStateTx(ctx, tx, state); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.logger.Debug().
		Str("func", "cacheRepository.ReplaceConfig").
		Int("namespaces", len(entries)).
		Msg("cache replaced")
	return nil
}

func (r *cacheRepository) SaveFetchState(ctx context.Context, state FetchState) error {
	query, args, err := fetchStateUpdate(state).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *cacheRepository) Close() error {
	return r.db.Close()
}

func (r *cacheRepository) fetchState(ctx context.Context) (FetchState, error) {
	query, args, err := sq.
		Select("last_fetch_time", "last_fetch_status", "etag").
		From("fetch_state").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return FetchState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		fetchMillis int64
		status      int
		etag        string
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&fetchMillis, &status, &etag); err != nil {
		return FetchState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	state := FetchState{
		LastFetchStatus: models.ProviderFetchStatus(status),
		ETag:            etag,
	}
	if fetchMillis > 0 {
		state.LastFetchTime = time.UnixMilli(fetchMillis)
	}
	return state, nil
}

// execer covers *sql.DB and *sql.Tx so fetch-state updates can run standalone
// or inside the replace transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func fetchStateUpdate(state FetchState) sq.UpdateBuilder {
	var fetchMillis int64
	if !state.LastFetchTime.IsZero() {
		fetchMillis = state.LastFetchTime.UnixMilli()
	}

	return sq.
		Update("fetch_state").
		Set("last_fetch_time", fetchMillis).
		Set("last_fetch_status", int(state.LastFetchStatus)).
		Set("etag", state.ETag).
		Where(sq.Eq{"id": 1})
}

func saveFetchStateTx(ctx context.Context, tx execer, state FetchState) error {
	query, args, err := fetchStateUpdate(state).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
