package ops

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edgarhound/edgarhound/edgar"
	"github.com/edgarhound/edgarhound/filter"
)

// SearchOptions contains options for searching filings.
type SearchOptions struct {
	Params           edgar.FilingListParams
	FilterExpression string

	// MaxResults caps an unbounded traversal; 0 means no cap.
	MaxResults int
}

// Operations handles search and enrichment workflows on top of the client.
type Operations struct {
	client *edgar.Client
	logger zerolog.Logger
}

// NewOperations creates a new Operations instance.
func NewOperations(client *edgar.Client, logger zerolog.Logger) *Operations {
	return &Operations{
		client: client,
		logger: logger,
	}
}

// SearchFilings walks the filing listing and returns every filing matching
// the filter expression. An empty expression matches everything.
func (o *Operations) SearchFilings(ctx context.Context, opts SearchOptions) ([]edgar.Filing, error) {
	var filingFilter *filter.FilingFilter
	if opts.FilterExpression != "" {
		var err error
		filingFilter, err = filter.Compile(opts.FilterExpression)
		if err != nil {
			return nil, err
		}
	}

	var matched []edgar.Filing
	var scanned int

	it := o.client.Filings.Iterate(opts.Params)
	for it.Next(ctx) {
		filing := it.Item()
		scanned++

		if filingFilter != nil {
			ok, err := filingFilter.Evaluate(filing)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		matched = append(matched, filing)
		if opts.MaxResults > 0 && len(matched) >= opts.MaxResults {
			break
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	o.logger.Debug().
		Int("scanned", scanned).
		Int("matched", len(matched)).
		Msg("Filing search complete")

	return matched, nil
}

// RecentInsiderActivity returns up to limit insider transactions for a
// company, most recent first as served by the API.
func (o *Operations) RecentInsiderActivity(ctx context.Context, cik string, limit int) ([]edgar.InsiderTransaction, error) {
	page, err := o.client.Insider.List(ctx, edgar.InsiderListParams{
		CIK:   cik,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// TopHoldings returns one page of 13F positions in a company for a quarter.
func (o *Operations) TopHoldings(ctx context.Context, cik, quarter string, limit int) ([]edgar.InstitutionalHolding, error) {
	page, err := o.client.Institutional.List(ctx, edgar.InstitutionalListParams{
		CIK:     cik,
		Quarter: quarter,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
