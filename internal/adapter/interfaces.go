package adapter

import (
	"context"
	"time"

	"github.com/meridiancon/companion-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// DeltaFetcher is the outbound boundary of the sync core: it retrieves
// delta payloads and the authenticated private-message list from the
// backend. The orchestrator owns all decisions about what to do with the
// results; implementations only move bytes.
type DeltaFetcher interface {
	// FetchDelta performs the sync request. A nil since asks for the full
	// dataset; otherwise the backend returns changes after the given
	// instant. The response is validated structurally before being
	// returned, so a nil error means it is safe to merge.
	FetchDelta(ctx context.Context, since *time.Time) (models.SyncResponse, error)

	// FetchCommunications retrieves the complete private-message list for
	// the attendee identified by the bearer token. Returns
	// ErrUnauthorized when no valid token is set.
	FetchCommunications(ctx context.Context) ([]models.Communication, error)

	// SetToken installs the bearer token used by authenticated calls.
	// An empty token clears authentication.
	SetToken(token string) error
}
