package mkm

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/mkm/pkg/types"
)

const defaultMaxPages = 10

// Reasons a walk stopped, as reported in PaginateResult.StoppedAt.
const (
	StopNoMoreResults = "no_more_results"
	StopShortPage     = "short_page"
	StopMaxPages      = "max_pages"
)

// PageFunc fetches one page of articles starting at offset start, e.g. a
// closure over GetArticles or FindUserArticles.
type PageFunc func(ctx context.Context, start int) ([]domain.Article, error)

// PaginateOption configures a Paginate walk.
type PaginateOption func(*paginateConfig)

type paginateConfig struct {
	maxPages int
	start    int
}

// WithMaxPages caps the number of pages fetched. Values below 1 keep the
// default cap.
func WithMaxPages(n int) PaginateOption {
	return func(p *paginateConfig) {
		p.maxPages = n
	}
}

// WithStartOffset begins the walk at offset start instead of 0.
func WithStartOffset(start int) PaginateOption {
	return func(p *paginateConfig) {
		p.start = start
	}
}

// PaginateResult holds the articles collected by a walk.
type PaginateResult struct {
	Articles  []domain.Article
	PagesUsed int
	StoppedAt string // "no_more_results", "short_page", "max_pages"
}

// Paginate walks start offsets in steps of the client's page size, calling
// fetch for each page, until:
// - fetch reports ErrNoResults
// - a page comes back shorter than the page size
// - the page cap is reached
// Endpoint methods never do this on their own.
func (c *Client) Paginate(
	ctx context.Context,
	fetch PageFunc,
	opts ...PaginateOption,
) (*PaginateResult, error) {
	cfg := paginateConfig{maxPages: defaultMaxPages}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxPages < 1 {
		cfg.maxPages = defaultMaxPages
	}

	result := &PaginateResult{}

	for page := range cfg.maxPages {
		start := cfg.start + page*c.pageSize

		articles, err := fetch(ctx, start)
		if errors.Is(err, ErrNoResults) {
			result.StoppedAt = StopNoMoreResults
			return result, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fetching page at %d: %w", start, err)
		}

		result.PagesUsed++
		result.Articles = append(result.Articles, articles...)

		if len(articles) < c.pageSize {
			result.StoppedAt = StopShortPage
			return result, nil
		}
	}

	result.StoppedAt = StopMaxPages
	return result, nil
}
