package edgar

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// InsiderService provides access to the insider transaction endpoints.
type InsiderService struct {
	client *Client
}

// InsiderListParams filters an insider transaction listing.
type InsiderListParams struct {
	// PersonCIK restricts results to one reporting insider. Sent on the
	// wire as "insiderCik".
	PersonCIK string

	// CIK restricts results to transactions in one company's stock.
	CIK string

	// Codes restricts results to the given transaction codes (e.g. P, S).
	// Sent on the wire as a single comma-joined value.
	Codes []string

	// DateFrom and DateTo bound the transaction date, formatted YYYY-MM-DD.
	DateFrom string
	DateTo   string

	// Limit is the page size; defaults to 25.
	Limit int

	// Cursor is the opaque pagination token from a previous page.
	Cursor string
}

// List retrieves a single page of insider transactions.
func (s *InsiderService) List(ctx context.Context, params InsiderListParams) (*Page[InsiderTransaction], error) {
	q := url.Values{}
	if params.PersonCIK != "" {
		q.Set("insiderCik", params.PersonCIK)
	}
	if params.CIK != "" {
		q.Set("cik", params.CIK)
	}
	if len(params.Codes) > 0 {
		q.Set("codes", strings.Join(params.Codes, ","))
	}
	if params.DateFrom != "" {
		q.Set("dateFrom", params.DateFrom)
	}
	if params.DateTo != "" {
		q.Set("dateTo", params.DateTo)
	}
	limit := params.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	if params.Cursor != "" {
		q.Set("cursor", params.Cursor)
	}

	return getJSON[*Page[InsiderTransaction]](ctx, s.client, "/insider/transactions", q)
}

// Iterate returns an iterator over every transaction matching params,
// fetching pages on demand. The Cursor field is ignored; iteration always
// starts at the first page.
func (s *InsiderService) Iterate(params InsiderListParams) *Iter[InsiderTransaction] {
	if params.Limit == 0 {
		params.Limit = defaultIterLimit
	}
	return newIter(func(ctx context.Context, cursor string) (*Page[InsiderTransaction], error) {
		p := params
		p.Cursor = cursor
		return s.List(ctx, p)
	})
}
