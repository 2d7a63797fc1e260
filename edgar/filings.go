package edgar

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// FilingService provides access to the SEC filing endpoints.
type FilingService struct {
	client *Client
}

// FilingListParams filters a filing listing. Zero-valued fields are omitted
// from the request entirely.
type FilingListParams struct {
	// CIK restricts results to filings by one company.
	CIK string

	// Forms restricts results to the given form types (e.g. 10-K, 8-K).
	// Sent on the wire as a single comma-joined value.
	Forms []string

	// Status filters by processing status; defaults to "all".
	Status string

	// DateFrom and DateTo bound the filing date, formatted YYYY-MM-DD.
	DateFrom string
	DateTo   string

	// Limit is the page size; defaults to 25.
	Limit int

	// Cursor is the opaque pagination token from a previous page.
	Cursor string
}

// List retrieves a single page of filings.
func (s *FilingService) List(ctx context.Context, params FilingListParams) (*Page[Filing], error) {
	q := url.Values{}
	if params.CIK != "" {
		q.Set("cik", params.CIK)
	}
	if len(params.Forms) > 0 {
		q.Set("forms", strings.Join(params.Forms, ","))
	}
	status := params.Status
	if status == "" {
		status = "all"
	}
	q.Set("status", status)
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

	return getJSON[*Page[Filing]](ctx, s.client, "/filings", q)
}

// Get retrieves a single filing by accession number.
func (s *FilingService) Get(ctx context.Context, accessionNumber string) (*Filing, error) {
	return getJSON[*Filing](ctx, s.client, "/filings/"+url.PathEscape(accessionNumber), nil)
}

// Iterate returns an iterator over every filing matching params, fetching
// pages on demand. The Cursor field is ignored; iteration always starts at
// the first page.
func (s *FilingService) Iterate(params FilingListParams) *Iter[Filing] {
	if params.Limit == 0 {
		params.Limit = defaultIterLimit
	}
	return newIter(func(ctx context.Context, cursor string) (*Page[Filing], error) {
		p := params
		p.Cursor = cursor
		return s.List(ctx, p)
	})
}
