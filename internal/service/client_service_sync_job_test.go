// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/meridiancon/companion-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSyncService records Synchronize calls; the other methods are
// inert.
type countingSyncService struct {
	calls atomic.Int32
}

func (c *countingSyncService) Synchronize(context.Context) error {
	c.calls.Add(1)
	return nil
}

func (c *countingSyncService) RefreshCommunications(context.Context) error { return nil }
func (c *countingSyncService) ResetCache(context.Context) error            { return nil }
func (c *countingSyncService) Restore(context.Context) error               { return nil }
func (c *countingSyncService) SetToken(string) error                       { return nil }
func (c *countingSyncService) Metadata() models.SyncMetadata               { return models.InitialSyncMetadata() }

func waitForCalls(t *testing.T, svc *countingSyncService, n int32) {
	t.Helper()
	require.Eventually(t, func() bool { return svc.calls.Load() >= n },
		2*time.Second, 5*time.Millisecond)
}

func TestSyncJob_TriggersSynchronize(t *testing.T) {
	svc := &countingSyncService{}
	job := NewSyncJob(svc)

	job.Start(context.Background(), 10*time.Millisecond)
	waitForCalls(t, svc, 2)
	job.Stop()

	after := svc.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, svc.calls.Load(), "no ticks fire after Stop returns")
}

func TestSyncJob_StopWithoutStart(t *testing.T) {
	job := NewSyncJob(&countingSyncService{})
	job.Stop() // must not panic or block
}

func TestSyncJob_ContextCancelStopsJob(t *testing.T) {
	svc := &countingSyncService{}
	job := NewSyncJob(svc)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	waitForCalls(t, svc, 1)

	cancel()
	job.Stop()

	after := svc.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, svc.calls.Load())
}

func TestSyncJob_RestartReplacesPreviousRun(t *testing.T) {
	svc := &countingSyncService{}
	job := NewSyncJob(svc)

	ctx := context.Background()
	job.Start(ctx, time.Hour)
	job.Start(ctx, 10*time.Millisecond)
	waitForCalls(t, svc, 1)
	job.Stop()
}
