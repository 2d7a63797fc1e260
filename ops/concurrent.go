package ops

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/edgarhound/edgarhound/edgar"
)

// DefaultConcurrency limits how many profile lookups run at once.
const DefaultConcurrency = 10

// EnrichCompanies fetches the company profile for every distinct CIK in the
// given filings, with bounded concurrency. Lookups that fail with NotFound
// are skipped; other errors abort the whole batch.
func (o *Operations) EnrichCompanies(ctx context.Context, filings []edgar.Filing) (map[string]edgar.Company, error) {
	ciks := make(map[string]struct{})
	for _, filing := range filings {
		if filing.CIK != "" {
			ciks[filing.CIK] = struct{}{}
		}
	}
	if len(ciks) == 0 {
		return map[string]edgar.Company{}, nil
	}

	profiles := make(map[string]edgar.Company, len(ciks))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	for cik := range ciks {
		cik := cik
		g.Go(func() error {
			company, err := o.client.Companies.Get(ctx, cik)
			if err != nil {
				if apiErr, ok := err.(*edgar.APIError); ok && apiErr.IsNotFound() {
					o.logger.Warn().
						Str("cik", cik).
						Msg("No profile for company, skipping enrichment")
					return nil
				}
				return err
			}

			mu.Lock()
			profiles[cik] = *company
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profiles, nil
}
