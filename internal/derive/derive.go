package derive

import (
	"strings"
	"sync"
	"time"

	"github.com/meridiancon/companion-sync/internal/cache"
)

// Deriver produces UI-ready detail projections from the raw cache
// collections. All derivations are pure, read-time joins: dangling foreign
// keys resolve to nil fields, nothing is ever written back to the store.
//
// List derivations are memoized on the version tuple of their input
// collections, so repeated reads between syncs are free and every merge
// invalidates exactly the projections it could have changed.
type Deriver struct {
	store    *cache.Store
	baseURL  string
	location *time.Location
	now      func() time.Time

	mu         sync.Mutex
	eventsMemo listMemo[EventDetails]
	dealersMemo listMemo[DealerDetails]
	mapsMemo   listMemo[MapDetails]
}

// NewDeriver wires a deriver to its store. baseURL is the API base used to
// compose content-addressed image URLs; location is the convention's
// timezone, used for the part-of-day bucketing; now supplies the clock and
// defaults to time.Now.
func NewDeriver(store *cache.Store, baseURL string, location *time.Location, now func() time.Time) *Deriver {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Deriver{
		store:    store,
		baseURL:  strings.TrimRight(baseURL, "/"),
		location: location,
		now:      now,
	}
}

// listMemo caches one derived slice keyed by the versions of the input
// collections. Version tuples only ever grow, so an equality check is
// enough.
type listMemo[T any] struct {
	versions []uint64
	value    []T
}

func (m *listMemo[T]) get(versions []uint64) ([]T, bool) {
	if m.value == nil || len(m.versions) != len(versions) {
		return nil, false
	}
	for i := range versions {
		if m.versions[i] != versions[i] {
			return nil, false
		}
	}
	return m.value, true
}

func (m *listMemo[T]) put(versions []uint64, value []T) {
	m.versions = append([]uint64(nil), versions...)
	m.value = value
}
