package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pedrororo/jobs-explorer/internal/snapshot"
)

// Loader is the source boundary the cache rebuilds from.
type Loader interface {
	Identity() string
	Stat() (snapshot.Token, error)
	Load() (*snapshot.Table, error)
}

// Cache holds the canonical table for the source's current freshness token.
// A changed token invalidates the entry wholesale; an unchanged token always
// serves the cached table without re-reading the file. Rebuilds are
// deduplicated per token, so concurrent misses trigger at most one load.
type Cache struct {
	source  Loader
	history HistoryRepository // optional

	rebuild singleflight.Group

	mu    sync.RWMutex
	valid bool
	token snapshot.Token
	table []Record
}

// NewCache creates a cache over the given source. history may be nil; when
// set, every successful rebuild is recorded there (best effort).
func NewCache(source Loader, history HistoryRepository) *Cache {
	return &Cache{source: source, history: history}
}

// Snapshot returns the canonical table for the source's current state. The
// returned slice is shared across callers and must not be mutated.
func (c *Cache) Snapshot(ctx context.Context) ([]Record, snapshot.Token, error) {
	token, err := c.source.Stat()
	if err != nil {
		return nil, snapshot.Token{}, err
	}

	c.mu.RLock()
	if c.valid && c.token.Equal(token) {
		table := c.table
		c.mu.RUnlock()
		return table, token, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.rebuild.Do(token.String(), func() (any, error) {
		// A concurrent caller may have finished the rebuild between the
		// read-lock check and entering the flight.
		c.mu.RLock()
		if c.valid && c.token.Equal(token) {
			table := c.table
			c.mu.RUnlock()
			return table, nil
		}
		c.mu.RUnlock()

		raw, err := c.source.Load()
		if err != nil {
			return nil, err
		}
		table := Normalize(raw)

		c.mu.Lock()
		c.table = table
		c.token = token
		c.valid = true
		c.mu.Unlock()

		slog.Info("snapshot rebuilt", "path", c.source.Identity(), "token", token.String(), "records", len(table))
		c.recordLoad(ctx, token, len(table))

		return table, nil
	})
	if err != nil {
		return nil, snapshot.Token{}, fmt.Errorf("rebuild snapshot: %w", err)
	}

	return v.([]Record), token, nil
}

// recordLoad writes the rebuild to the load history. Failures are logged,
// never surfaced: history is provenance, not part of the request path.
func (c *Cache) recordLoad(ctx context.Context, token snapshot.Token, records int) {
	if c.history == nil {
		return
	}
	load := &SnapshotLoad{
		Path:     c.source.Identity(),
		Token:    token.String(),
		Records:  int64(records),
		LoadedAt: time.Now().UTC(),
	}
	if err := c.history.Save(ctx, load); err != nil {
		slog.Warn("record snapshot load", "error", err)
	}
}
