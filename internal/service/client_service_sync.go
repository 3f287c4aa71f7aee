// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meridiancon/companion-sync/internal/adapter"
	"github.com/meridiancon/companion-sync/internal/cache"
	"github.com/meridiancon/companion-sync/internal/logger"
	"github.com/meridiancon/companion-sync/internal/store"
	"github.com/meridiancon/companion-sync/models"
)

// CacheSchemaVersion is the version of the locally persisted record shapes.
// Bump it on any breaking model change; a stored version that differs from
// this constant routes the next sync onto the full path.
const CacheSchemaVersion = 2

type syncService struct {
	store      *cache.Store
	fetcher    adapter.DeltaFetcher
	repo       store.CacheRepository
	convention string
	logger     *logger.Logger

	// runMu serializes merge passes: syncOnce, ResetCache and Restore
	// never interleave their writes against the collections.
	runMu sync.Mutex

	mu      sync.Mutex
	syncing bool
	pending bool
	meta    models.SyncMetadata
}

func NewSyncService(st *cache.Store, fetcher adapter.DeltaFetcher, repo store.CacheRepository, convention string, log *logger.Logger) SyncService {
	return &syncService{
		store:      st,
		fetcher:    fetcher,
		repo:       repo,
		convention: convention,
		logger:     log,
		meta:       models.InitialSyncMetadata(),
	}
}

func (s *syncService) Synchronize(ctx context.Context) error {
	s.mu.Lock()
	if s.syncing {
		// Coalesce: the running cycle re-checks pending before it
		// finishes and runs once more.
		s.pending = true
		s.mu.Unlock()
		return nil
	}
	s.syncing = true
	s.mu.Unlock()

	for {
		err := s.syncOnce(ctx)

		s.mu.Lock()
		if err != nil || !s.pending {
			s.pending = false
			s.syncing = false
			s.mu.Unlock()
			return err
		}
		s.pending = false
		s.mu.Unlock()
	}
}

func (s *syncService) syncOnce(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	log := &logger.Logger{Logger: s.logger.With().Str("sync_run", uuid.NewString()).Logger()}

	meta := s.Metadata()
	incremental := meta.ConventionIdentifier == s.convention &&
		meta.CacheSchemaVersion == CacheSchemaVersion &&
		meta.Synchronized()

	var since *time.Time
	if incremental {
		t := meta.LastSynchronizedUtc
		since = &t
	}

	log.Debug().
		Bool("incremental", incremental).
		Str("convention", s.convention).
		Msg("starting sync cycle")

	resp, err := s.fetcher.FetchDelta(ctx, since)
	if err != nil {
		log.Err(err).Msg("delta fetch failed, cache left untouched")
		return fmt.Errorf("fetch delta: %w", err)
	}

	// A convention change invalidates everything the cache holds, even
	// records the response does not mention.
	if meta.ConventionIdentifier != "" && meta.ConventionIdentifier != resp.ConventionIdentifier {
		log.Warn().
			Str("stored", meta.ConventionIdentifier).
			Str("received", resp.ConventionIdentifier).
			Msg("convention changed, dropping local cache")
		s.store.Reset()
	}

	s.store.ApplySyncResponse(resp)

	newMeta := models.SyncMetadata{
		ConventionIdentifier: resp.ConventionIdentifier,
		CacheSchemaVersion:   CacheSchemaVersion,
		LastSynchronizedUtc:  resp.CurrentDateTimeUtc,
		SyncState:            resp.State,
	}

	s.mu.Lock()
	s.meta = newMeta
	s.mu.Unlock()

	s.persist(ctx, log, newMeta)

	log.Info().
		Time("synchronized_at", newMeta.LastSynchronizedUtc).
		Msg("sync cycle complete")
	return nil
}

// persist writes the merged cache to disk. Failures are logged, not
// returned: the in-memory cache is already correct for this session and the
// next launch falls back to a full sync.
func (s *syncService) persist(ctx context.Context, log *logger.Logger, meta models.SyncMetadata) {
	snap, err := s.store.Snapshot()
	if err != nil {
		log.Err(err).Msg("snapshot serialization failed, skipping persistence")
		return
	}
	if err = s.repo.SaveSnapshot(ctx, snap, meta); err != nil {
		log.Err(err).Msg("snapshot persistence failed, cache will rebuild on next launch")
	}
}

func (s *syncService) RefreshCommunications(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	items, err := s.fetcher.FetchCommunications(ctx)
	if err != nil {
		return fmt.Errorf("fetch communications: %w", err)
	}

	// The endpoint returns the complete list, so the merge is always a
	// full replace.
	cache.ApplyDelta(s.store.Communications, models.EntityDelta[models.Communication]{
		RemoveAllBeforeInsert: true,
		ChangedEntities:       items,
	}, nil)

	return nil
}

func (s *syncService) ResetCache(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.store.Reset()

	s.mu.Lock()
	s.meta = models.InitialSyncMetadata()
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted cache: %w", err)
	}
	return nil
}

func (s *syncService) Restore(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	meta, found, err := s.repo.LoadMetadata(ctx)
	if err != nil {
		return fmt.Errorf("load sync metadata: %w", err)
	}
	if !found {
		return nil
	}

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load persisted snapshot: %w", err)
	}
	if err = s.store.Restore(snap); err != nil {
		// An undecodable snapshot means the persisted shapes predate
		// this build. Come up empty; the schema version check routes
		// the next sync onto the full path.
		s.logger.Err(err).Msg("persisted snapshot unusable, starting with empty cache")
		s.store.Reset()
		return nil
	}

	s.mu.Lock()
	s.meta = meta
	s.mu.Unlock()

	s.logger.Info().
		Str("convention", meta.ConventionIdentifier).
		Time("last_synchronized", meta.LastSynchronizedUtc).
		Msg("cache restored from disk")
	return nil
}

func (s *syncService) SetToken(token string) error {
	return s.fetcher.SetToken(token)
}

func (s *syncService) Metadata() models.SyncMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}
