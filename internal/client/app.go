package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/meridiancon/companion-sync/internal/cache"
	"github.com/meridiancon/companion-sync/internal/config"
	"github.com/meridiancon/companion-sync/internal/derive"
	"github.com/meridiancon/companion-sync/internal/logger"
	"github.com/meridiancon/companion-sync/internal/service"
)

// App owns the cache runtime: the entity store, the derivation layer the UI
// reads from, and the sync services keeping both fresh.
type App struct {
	Store    *cache.Store
	Deriver  *derive.Deriver
	Services *service.ClientServices

	syncInterval time.Duration
	logger       *logger.Logger
}

func NewApp(st *cache.Store, services *service.ClientServices, appCfg config.ClientApp, adapterCfg config.ClientAdapter, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	location, err := time.LoadLocation(appCfg.EventTimezone)
	if err != nil {
		return nil, fmt.Errorf("load event timezone %q: %w", appCfg.EventTimezone, err)
	}

	return &App{
		Store:        st,
		Deriver:      derive.NewDeriver(st, adapterCfg.BaseURL, location, nil),
		Services:     services,
		syncInterval: workersCfg.SyncInterval,
		logger:       log,
	}, nil
}

// Run restores the persisted cache, performs the initial sync, then keeps
// the cache fresh in the background until ctx is cancelled. A failed
// initial sync is not fatal: restored data stays visible and the job
// retries on its interval.
func (a *App) Run(ctx context.Context) error {
	if err := a.Services.SyncService.Restore(ctx); err != nil {
		a.logger.Err(err).Msg("restore warning, starting with empty cache")
	}

	if err := a.Services.SyncService.Synchronize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sync warning: %v\n", err)
	}

	a.Services.SyncJob.Start(ctx, a.syncInterval)
	defer a.Services.SyncJob.Stop()

	<-ctx.Done()
	return nil
}
