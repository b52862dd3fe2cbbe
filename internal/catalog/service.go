package catalog

import (
	"context"
	"fmt"

	"bandcatalog/internal/paging"
)

// Result is everything the browse page needs for one request.
type Result struct {
	Albums    []AlbumRecord `json:"albums"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
	PageCount int           `json:"total_pages"`
	Total     int           `json:"total"`
	Index     Index         `json:"filters"`
	Query     Query         `json:"query"`
}

// Service runs the browse pipeline against a freshly loaded catalog on every
// call. It keeps no state between calls.
type Service struct {
	source   Source
	pageSize int
}

// NewService fails when pageSize is not positive.
func NewService(source Source, pageSize int) (*Service, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("catalog service: %w: got %d", paging.ErrInvalidPageSize, pageSize)
	}
	return &Service{source: source, pageSize: pageSize}, nil
}

// Browse loads the catalog, filters its albums by q and returns the page
// q.Page clamped into range.
func (s *Service) Browse(ctx context.Context, q Query) (Result, error) {
	c, err := s.source.Load(ctx)
	if err != nil {
		return Result{}, err
	}

	filtered := Filter(Flatten(c.Bands), q)
	page, err := paging.Paginate(filtered, q.Page, s.pageSize)
	if err != nil {
		return Result{}, err
	}

	q.Page = page.Number
	return Result{
		Albums:    page.Items,
		Page:      page.Number,
		PageSize:  page.Size,
		PageCount: page.PageCount,
		Total:     page.Total,
		Index:     BuildIndex(c.Bands),
		Query:     q,
	}, nil
}

// Filters returns the genre and member options for the filter controls.
func (s *Service) Filters(ctx context.Context) (Index, error) {
	c, err := s.source.Load(ctx)
	if err != nil {
		return Index{}, err
	}
	return BuildIndex(c.Bands), nil
}

// Ready reports whether the source can currently be loaded.
func (s *Service) Ready(ctx context.Context) error {
	_, err := s.source.Load(ctx)
	return err
}

// PageSize is the fixed number of albums per page.
func (s *Service) PageSize() int { return s.pageSize }
