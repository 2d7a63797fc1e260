// Package edgar provides a client for the edgarhound financial-data API.
//
// The API exposes SEC filings, insider transactions, institutional (13F)
// holdings, and company profiles. This package is a thin, typed binding over
// that surface: it builds requests, injects the bearer credential, decodes
// JSON payloads, classifies error responses, and walks cursor-based
// pagination. It does not cache, retry, or rate-limit; those policies belong
// to the caller.
//
// # Usage
//
// Create a client with your API key:
//
//	client, err := edgar.NewClient(
//		"your-api-key",
//		edgar.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	page, err := client.Filings.List(ctx, edgar.FilingListParams{
//		CIK:   "0000320193",
//		Forms: []string{"10-K", "10-Q"},
//	})
//
// To traverse every page, use an iterator instead of managing cursors by
// hand:
//
//	it := client.Filings.Iterate(edgar.FilingListParams{CIK: "0000320193"})
//	for it.Next(ctx) {
//		fmt.Println(it.Item().AccessionNumber)
//	}
//	if err := it.Err(); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Error responses are classified into *APIError values tagged by kind
// (authentication, not found, rate limit, validation, generic). Rate-limit
// errors carry the reset time when the server supplies one:
//
//	var apiErr *edgar.APIError
//	if errors.As(err, &apiErr) && apiErr.IsRateLimit() {
//		if apiErr.ResetAt != nil {
//			time.Sleep(time.Until(*apiErr.ResetAt))
//		}
//	}
//
// Request timeouts surface as an *APIError with status 408. Other transport
// failures are returned wrapped but untyped.
package edgar
