package service

import (
	"github.com/meridiancon/companion-sync/internal/adapter"
	"github.com/meridiancon/companion-sync/internal/cache"
	"github.com/meridiancon/companion-sync/internal/config"
	"github.com/meridiancon/companion-sync/internal/logger"
	"github.com/meridiancon/companion-sync/internal/store"
)

type ClientServices struct {
	SyncService SyncService
	SyncJob     SyncJob
}

func NewClientServices(st *cache.Store, storages *store.ClientStorages, fetcher adapter.DeltaFetcher, cfg config.ClientApp, log *logger.Logger) *ClientServices {
	syncSvc := NewSyncService(st, fetcher, storages.CacheRepository, cfg.ConventionIdentifier, log)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewSyncJob(syncSvc),
	}
}
