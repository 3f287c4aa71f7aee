package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/meridiancon/companion-sync/internal/cache"
	"github.com/meridiancon/companion-sync/internal/logger"
	"github.com/meridiancon/companion-sync/models"
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *cacheRepository) LoadSnapshot(ctx context.Context) (cache.Snapshot, error) {
	query, args, err := buildSelectAllRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("build select records query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "cacheRepository.LoadSnapshot").Msg("failed to query persisted records")
		return nil, fmt.Errorf("query persisted records: %w", err)
	}
	defer rows.Close()

	snap := make(cache.Snapshot)
	for rows.Next() {
		var kind, id, payload string
		if err = rows.Scan(&kind, &id, &payload); err != nil {
			return nil, fmt.Errorf("scan persisted record: %w", err)
		}
		if snap[kind] == nil {
			snap[kind] = make(map[string]json.RawMessage)
		}
		snap[kind][id] = json.RawMessage(payload)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persisted records: %w", err)
	}

	return snap, nil
}

func (r *cacheRepository) SaveSnapshot(ctx context.Context, snap cache.Snapshot, meta models.SyncMetadata) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllRecordsQuery()
	if err != nil {
		return fmt.Errorf("build delete records query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear persisted records: %w", err)
	}

	for kind, items := range snap {
		if len(items) == 0 {
			continue
		}
		query, args, err = buildInsertRecordsQuery(kind, items)
		if err != nil {
			return fmt.Errorf("build insert query for %s: %w", kind, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "cacheRepository.SaveSnapshot").
				Str("kind", kind).
				Msg("failed to insert records for kind")
			return fmt.Errorf("insert records for %s: %w", kind, err)
		}
	}

	query, args, err = buildUpsertMetadataQuery(meta)
	if err != nil {
		return fmt.Errorf("build upsert metadata query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save sync metadata: %w", err)
	}

	return tx.Commit()
}

func (r *cacheRepository) LoadMetadata(ctx context.Context) (models.SyncMetadata, bool, error) {
	query, args, err := buildSelectMetadataQuery()
	if err != nil {
		return models.SyncMetadata{}, false, fmt.Errorf("build select metadata query: %w", err)
	}

	var meta models.SyncMetadata
	var lastSync string
	row := r.DB.QueryRowContext(ctx, query, args...)
	err = row.Scan(&meta.ConventionIdentifier, &meta.CacheSchemaVersion, &lastSync, &meta.SyncState)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InitialSyncMetadata(), false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "cacheRepository.LoadMetadata").Msg("failed to read sync metadata")
		return models.SyncMetadata{}, false, fmt.Errorf("read sync metadata: %w", err)
	}

	meta.LastSynchronizedUtc, err = time.Parse(time.RFC3339, lastSync)
	if err != nil {
		return models.SyncMetadata{}, false, fmt.Errorf("parse last synchronized timestamp: %w", err)
	}

	return meta, true, nil
}

func (r *cacheRepository) Clear(ctx context.Context) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllRecordsQuery()
	if err != nil {
		return fmt.Errorf("build delete records query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear persisted records: %w", err)
	}

	query, args, err = buildDeleteMetadataQuery()
	if err != nil {
		return fmt.Errorf("build delete metadata query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear sync metadata: %w", err)
	}

	return tx.Commit()
}
