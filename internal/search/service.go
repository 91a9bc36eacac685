// Package search aggregates results for a query term across the requested
// repack sources.
package search

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vo1x/gamesdexer-api/internal/extract"
	"github.com/vo1x/gamesdexer-api/internal/fetcher"
	"github.com/vo1x/gamesdexer-api/internal/model"
	"github.com/vo1x/gamesdexer-api/internal/source"
)

// Client-input errors. The API layer maps these to 400 responses; everything
// else is a 500.
var (
	ErrEmptyQuery     = eris.New("search: query term is required")
	ErrNoValidSources = eris.New("search: no valid repack sources provided")
)

// Service fans a query out across sources and merges the extracted results.
type Service struct {
	registry *source.Registry
	fetcher  fetcher.Fetcher
}

// NewService creates a Service over the given registry and fetcher.
func NewService(reg *source.Registry, f fetcher.Fetcher) *Service {
	return &Service{registry: reg, fetcher: f}
}

// Response is the aggregated payload returned to the caller.
type Response struct {
	Success bool                 `json:"success"`
	Query   string               `json:"query"`
	Sources []string             `json:"sources"`
	Results []model.SearchResult `json:"results"`
}

// Search queries every valid requested source concurrently and concatenates
// their results in requested-source order. A source's fetch or parse failure
// degrades that source to an empty contribution; only input validation fails
// the operation as a whole.
func (s *Service) Search(ctx context.Context, term string, sourceIDs []string) (*Response, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrEmptyQuery
	}

	configs := s.registry.Resolve(sourceIDs)
	if len(configs) == 0 {
		return nil, ErrNoValidSources
	}

	// One result slot per source keeps the fan-in deterministic regardless
	// of which fetch completes first.
	perSource := make([][]model.SearchResult, len(configs))

	g, gctx := errgroup.WithContext(ctx)
	for i, cfg := range configs {
		i, cfg := i, cfg
		g.Go(func() error {
			items, err := s.scrapeSource(gctx, cfg, term)
			if err != nil {
				zap.L().Warn("search: source failed",
					zap.String("source", cfg.ID),
					zap.Error(err),
				)
				return nil // don't abort other sources on individual failure
			}
			perSource[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "search: fan-in")
	}

	resp := &Response{
		Success: true,
		Query:   term,
		Sources: make([]string, 0, len(configs)),
		Results: []model.SearchResult{},
	}
	for i, cfg := range configs {
		resp.Sources = append(resp.Sources, cfg.ID)
		resp.Results = append(resp.Results, perSource[i]...)
	}
	return resp, nil
}

// scrapeSource runs one source's fetch-and-extract pipeline.
func (s *Service) scrapeSource(ctx context.Context, cfg source.Config, term string) ([]model.SearchResult, error) {
	searchURL := cfg.SearchURL(term)
	html, err := s.fetcher.FetchHTML(ctx, searchURL)
	if err != nil {
		return nil, eris.Wrapf(err, "search: fetch %s", cfg.ID)
	}
	return extract.Results(html, cfg)
}
