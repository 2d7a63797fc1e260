package edgar

import (
	"context"
	"net/url"
	"strconv"
)

// InstitutionalService provides access to the 13F holdings endpoints.
type InstitutionalService struct {
	client *Client
}

// InstitutionalListParams filters an institutional holdings listing.
type InstitutionalListParams struct {
	// CIK restricts results to holdings in one company's stock. Sent on
	// the wire as "companyCik".
	CIK string

	// ManagerCIK restricts results to positions reported by one manager.
	ManagerCIK string

	// Quarter restricts results to one reporting quarter (e.g. 2024Q1).
	Quarter string

	// Limit is the page size; defaults to 25.
	Limit int

	// Cursor is the opaque pagination token from a previous page.
	Cursor string
}

// List retrieves a single page of institutional holdings.
func (s *InstitutionalService) List(ctx context.Context, params InstitutionalListParams) (*Page[InstitutionalHolding], error) {
	q := url.Values{}
	if params.CIK != "" {
		q.Set("companyCik", params.CIK)
	}
	if params.ManagerCIK != "" {
		q.Set("managerCik", params.ManagerCIK)
	}
	if params.Quarter != "" {
		q.Set("quarter", params.Quarter)
	}
	limit := params.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	if params.Cursor != "" {
		q.Set("cursor", params.Cursor)
	}

	return getJSON[*Page[InstitutionalHolding]](ctx, s.client, "/institutional/holdings", q)
}

// Iterate returns an iterator over every holding matching params, fetching
// pages on demand. The Cursor field is ignored; iteration always starts at
// the first page.
func (s *InstitutionalService) Iterate(params InstitutionalListParams) *Iter[InstitutionalHolding] {
	if params.Limit == 0 {
		params.Limit = defaultIterLimit
	}
	return newIter(func(ctx context.Context, cursor string) (*Page[InstitutionalHolding], error) {
		p := params
		p.Cursor = cursor
		return s.List(ctx, p)
	})
}
