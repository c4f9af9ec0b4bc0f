package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/repo"
)

// Catalog owns the process-wide dataset. It starts in the loading state and
// transitions exactly once, to loaded or failed, when Load completes.
// After that the snapshot is read-only and safe to share between requests.
type Catalog struct {
	state atomic.Pointer[catalogState]
	log   *slog.Logger
	now   func() time.Time
}

type catalogState struct {
	state domain.CatalogState
	snap  domain.Snapshot
	err   error
}

var loadingState = &catalogState{state: domain.CatalogLoading}

// NewCatalog returns a Catalog in the loading state.
// A nil logger falls back to slog.Default().
func NewCatalog(log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	c := &Catalog{log: log, now: time.Now}
	c.state.Store(loadingState)
	return c
}

// Load fetches the dataset from r and publishes it. It is meant to be called
// once, usually from its own goroutine at startup. There is no retry: a failed
// load leaves the catalog in the failed state for the rest of the process.
//
// Returns domain.ErrAlreadyLoaded if the catalog has already left the loading
// state, or the wrapped load error otherwise.
func (c *Catalog) Load(ctx context.Context, r repo.DatasetRepo) error {
	if c.state.Load() != loadingState {
		return fmt.Errorf("service.Catalog.Load: %w", domain.ErrAlreadyLoaded)
	}

	ds, err := r.Load(ctx)

	next := &catalogState{state: domain.CatalogFailed, err: err}
	if err == nil {
		next = &catalogState{
			state: domain.CatalogLoaded,
			snap: domain.Snapshot{
				Version:  uuid.New(),
				LoadedAt: c.now().UTC(),
				Dataset:  ds,
			},
		}
	}

	if !c.state.CompareAndSwap(loadingState, next) {
		return fmt.Errorf("service.Catalog.Load: %w", domain.ErrAlreadyLoaded)
	}

	if err != nil {
		c.log.ErrorContext(ctx, "dataset load failed", "error", err)
		return fmt.Errorf("service.Catalog.Load: %w", err)
	}

	c.log.InfoContext(ctx, "dataset loaded",
		"version", next.snap.Version.String(),
		"beaches", len(ds.Beaches),
		"temples", len(ds.Temples),
		"countries", len(ds.Countries),
	)
	return nil
}

// Snapshot returns the loaded dataset.
// It returns domain.ErrNotLoaded while loading and an error wrapping both
// domain.ErrLoadFailed and the original cause after a failed load.
func (c *Catalog) Snapshot() (domain.Snapshot, error) {
	s := c.state.Load()
	switch s.state {
	case domain.CatalogLoaded:
		return s.snap, nil
	case domain.CatalogFailed:
		return domain.Snapshot{}, fmt.Errorf("%w: %w", domain.ErrLoadFailed, s.err)
	default:
		return domain.Snapshot{}, domain.ErrNotLoaded
	}
}

// Status reports the current lifecycle state for health checks.
func (c *Catalog) Status() domain.CatalogStatus {
	s := c.state.Load()
	return domain.CatalogStatus{State: s.state, Snapshot: s.snap, Err: s.err}
}
