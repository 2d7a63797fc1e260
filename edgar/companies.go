package edgar

import (
	"context"
	"net/url"
	"strconv"
)

// CompanyService provides access to the company profile endpoints.
type CompanyService struct {
	client *Client
}

// CompanySearchParams filters a company search.
type CompanySearchParams struct {
	// Query is a free-text search over company names and tickers.
	Query string

	// CIK looks up one company directly. Sent on the wire as "companyCik".
	CIK string

	// Ticker restricts results to one exchange symbol.
	Ticker string

	// Sector restricts results to one business sector.
	Sector string

	// Limit is the page size; defaults to 25.
	Limit int

	// Cursor is the opaque pagination token from a previous page.
	Cursor string
}

// Get retrieves a single company profile by CIK.
func (s *CompanyService) Get(ctx context.Context, cik string) (*Company, error) {
	return getJSON[*Company](ctx, s.client, "/companies/"+url.PathEscape(cik), nil)
}

// Search retrieves a single page of companies matching params.
func (s *CompanyService) Search(ctx context.Context, params CompanySearchParams) (*Page[Company], error) {
	q := url.Values{}
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.CIK != "" {
		q.Set("companyCik", params.CIK)
	}
	if params.Ticker != "" {
		q.Set("ticker", params.Ticker)
	}
	if params.Sector != "" {
		q.Set("sector", params.Sector)
	}
	limit := params.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	if params.Cursor != "" {
		q.Set("cursor", params.Cursor)
	}

	return getJSON[*Page[Company]](ctx, s.client, "/companies/search", q)
}

// Iterate returns an iterator over every company matching params, fetching
// pages on demand. The Cursor field is ignored; iteration always starts at
// the first page.
func (s *CompanyService) Iterate(params CompanySearchParams) *Iter[Company] {
	if params.Limit == 0 {
		params.Limit = defaultIterLimit
	}
	return newIter(func(ctx context.Context, cursor string) (*Page[Company], error) {
		p := params
		p.Cursor = cursor
		return s.Search(ctx, p)
	})
}
