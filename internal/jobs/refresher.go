package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/pedrororo/jobs-explorer/internal/snapshot"
)

// Refresher warms the snapshot cache on a cron schedule so a replaced source
// file is picked up without waiting for the next request.
type Refresher struct {
	cron  *cron.Cron
	cache *Cache
	spec  string // cron spec, e.g. "@every 5m"
}

func NewRefresher(cache *Cache, spec string) *Refresher {
	return &Refresher{
		cron:  cron.New(),
		cache: cache,
		spec:  spec,
	}
}

// Start registers the refresh job and starts the scheduler. One refresh runs
// immediately so the cache is warm before the first request.
func (r *Refresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.spec, func() {
		r.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}

	r.cron.Start()
	slog.Info("refresher started", "spec", r.spec)

	go r.refresh(ctx)
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	slog.Info("refresher stopped")
}

func (r *Refresher) refresh(ctx context.Context) {
	_, token, err := r.cache.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, snapshot.ErrUnavailable) {
			slog.Warn("refresh: snapshot source missing")
			return
		}
		slog.Error("refresh failed", "error", err)
		return
	}
	slog.Debug("refresh ok", "token", token.String())
}
