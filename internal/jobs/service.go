package jobs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pedrororo/jobs-explorer/internal/apperror"
	"github.com/pedrororo/jobs-explorer/internal/snapshot"
)

// Service is the filter-and-present engine behind the HTTP surface: it
// resolves the canonical table through the cache, applies filter criteria,
// and projects the result for display or export.
type Service struct {
	cache     *Cache
	history   HistoryRepository
	delimiter rune
}

func NewService(cache *Cache, history HistoryRepository, delimiter rune) *Service {
	return &Service{
		cache:     cache,
		history:   history,
		delimiter: delimiter,
	}
}

// List applies the request's criteria to the current snapshot and returns the
// presented table plus snapshot metadata.
func (s *Service) List(ctx context.Context, req ListJobsRequest) (*ListJobsResponse, error) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	records, token, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Apply(records, req.Criteria())

	return &ListJobsResponse{
		Total:      len(records),
		Matched:    len(filtered),
		SnapshotAt: token.ModTime.UTC(),
		Table:      Present(filtered),
	}, nil
}

// Export streams the filtered, presented table as delimited text. It goes
// through List so the download can never diverge from what is displayed.
func (s *Service) Export(ctx context.Context, req ListJobsRequest, w io.Writer) error {
	resp, err := s.List(ctx, req)
	if err != nil {
		return err
	}
	return resp.Table.WriteDelimited(w, s.delimiter)
}

// Facets derives the filter vocabularies from the current snapshot.
func (s *Service) Facets(ctx context.Context) (*Facets, error) {
	records, _, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	f := BuildFacets(records)
	return &f, nil
}

// History lists recent snapshot loads, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]SnapshotLoad, error) {
	if s.history == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	loads, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshot loads: %w", err)
	}
	return loads, nil
}

func (s *Service) snapshot(ctx context.Context) ([]Record, snapshot.Token, error) {
	records, token, err := s.cache.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, snapshot.ErrUnavailable) {
			return nil, snapshot.Token{}, apperror.New(apperror.Unavailable, "jobs snapshot is not available")
		}
		return nil, snapshot.Token{}, err
	}
	return records, token, nil
}
