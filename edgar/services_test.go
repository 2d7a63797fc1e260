package edgar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingServer records the path and query of each request and answers
// with an empty page.
func capturingServer(t *testing.T, payload any) (*httptest.Server, *[]*url.URL) {
	t.Helper()
	var seen []*url.URL
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := *r.URL
		seen = append(seen, &u)
		json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)
	return server, &seen
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient("test-key", WithBaseURL(baseURL))
	require.NoError(t, err)
	return client
}

func TestFilingListParams(t *testing.T) {
	server, seen := capturingServer(t, Page[Filing]{})
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	t.Run("forms joined as csv", func(t *testing.T) {
		_, err := client.Filings.List(ctx, FilingListParams{
			Forms: []string{"10-K", "10-Q", "8-K"},
		})
		require.NoError(t, err)

		q := (*seen)[len(*seen)-1].Query()
		assert.Equal(t, "10-K,10-Q,8-K", q.Get("forms"))
	})

	t.Run("defaults applied", func(t *testing.T) {
		_, err := client.Filings.List(ctx, FilingListParams{})
		require.NoError(t, err)

		last := (*seen)[len(*seen)-1]
		q := last.Query()
		assert.Equal(t, "/api/v1/filings", last.Path)
		assert.Equal(t, "all", q.Get("status"))
		assert.Equal(t, "25", q.Get("limit"))
	})

	t.Run("unset params omitted", func(t *testing.T) {
		_, err := client.Filings.List(ctx, FilingListParams{CIK: "0000320193"})
		require.NoError(t, err)

		q := (*seen)[len(*seen)-1].Query()
		assert.Equal(t, "0000320193", q.Get("cik"))
		assert.False(t, q.Has("forms"))
		assert.False(t, q.Has("dateFrom"))
		assert.False(t, q.Has("dateTo"))
		assert.False(t, q.Has("cursor"))
	})

	t.Run("explicit values forwarded", func(t *testing.T) {
		_, err := client.Filings.List(ctx, FilingListParams{
			Status:   "processed",
			DateFrom: "2024-01-01",
			DateTo:   "2024-06-30",
			Limit:    50,
			Cursor:   "abc",
		})
		require.NoError(t, err)

		q := (*seen)[len(*seen)-1].Query()
		assert.Equal(t, "processed", q.Get("status"))
		assert.Equal(t, "2024-01-01", q.Get("dateFrom"))
		assert.Equal(t, "2024-06-30", q.Get("dateTo"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.Equal(t, "abc", q.Get("cursor"))
	})
}

func TestFilingGet(t *testing.T) {
	filedAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/filings/0000320193-24-000006", r.URL.Path)
		json.NewEncoder(w).Encode(Filing{
			AccessionNumber: "0000320193-24-000006",
			CIK:             "0000320193",
			CompanyName:     "Apple Inc.",
			FormType:        "10-K",
			FiledAt:         filedAt,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	filing, err := client.Filings.Get(context.Background(), "0000320193-24-000006")
	require.NoError(t, err)
	assert.Equal(t, "0000320193-24-000006", filing.AccessionNumber)
	assert.Equal(t, "Apple Inc.", filing.CompanyName)
	assert.Equal(t, filedAt, filing.FiledAt)
}

func TestInsiderListParams(t *testing.T) {
	server, seen := capturingServer(t, Page[InsiderTransaction]{})
	client := newTestClient(t, server.URL)

	_, err := client.Insider.List(context.Background(), InsiderListParams{
		PersonCIK: "0001214156",
		CIK:       "0000320193",
		Codes:     []string{"P", "S"},
	})
	require.NoError(t, err)

	last := (*seen)[len(*seen)-1]
	q := last.Query()
	assert.Equal(t, "/api/v1/insider/transactions", last.Path)
	assert.Equal(t, "0001214156", q.Get("insiderCik"))
	assert.False(t, q.Has("personCik"))
	assert.Equal(t, "0000320193", q.Get("cik"))
	assert.Equal(t, "P,S", q.Get("codes"))
}

func TestInstitutionalListParams(t *testing.T) {
	server, seen := capturingServer(t, Page[InstitutionalHolding]{})
	client := newTestClient(t, server.URL)

	_, err := client.Institutional.List(context.Background(), InstitutionalListParams{
		CIK:        "0000320193",
		ManagerCIK: "0001067983",
		Quarter:    "2024Q1",
	})
	require.NoError(t, err)

	last := (*seen)[len(*seen)-1]
	q := last.Query()
	assert.Equal(t, "/api/v1/institutional/holdings", last.Path)
	assert.Equal(t, "0000320193", q.Get("companyCik"))
	assert.False(t, q.Has("cik"))
	assert.Equal(t, "0001067983", q.Get("managerCik"))
	assert.Equal(t, "2024Q1", q.Get("quarter"))
}

func TestCompanySearchParams(t *testing.T) {
	server, seen := capturingServer(t, Page[Company]{})
	client := newTestClient(t, server.URL)

	_, err := client.Companies.Search(context.Background(), CompanySearchParams{
		Query: "apple",
		CIK:   "0000320193",
	})
	require.NoError(t, err)

	last := (*seen)[len(*seen)-1]
	q := last.Query()
	assert.Equal(t, "/api/v1/companies/search", last.Path)
	assert.Equal(t, "apple", q.Get("query"))
	assert.Equal(t, "0000320193", q.Get("companyCik"))
	assert.False(t, q.Has("cik"))
}

func TestCompanyGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/companies/0000320193", r.URL.Path)
		json.NewEncoder(w).Encode(Company{
			CIK:    "0000320193",
			Name:   "Apple Inc.",
			Ticker: "AAPL",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	company, err := client.Companies.Get(context.Background(), "0000320193")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc. (AAPL)", company.DisplayName())
}

func TestListIdempotent(t *testing.T) {
	server, seen := capturingServer(t, Page[Filing]{
		Items:   []Filing{{AccessionNumber: "a-1"}},
		HasMore: false,
	})
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	params := FilingListParams{CIK: "123", Forms: []string{"10-K"}}

	first, err := client.Filings.List(ctx, params)
	require.NoError(t, err)
	second, err := client.Filings.List(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, (*seen)[0].RawQuery, (*seen)[1].RawQuery)
	// Input params are not mutated by the call.
	assert.Equal(t, FilingListParams{CIK: "123", Forms: []string{"10-K"}}, params)
}

func TestTransactionHelpers(t *testing.T) {
	assert.True(t, InsiderTransaction{TransactionCode: "P"}.IsAcquisition())
	assert.True(t, InsiderTransaction{TransactionCode: "A"}.IsAcquisition())
	assert.True(t, InsiderTransaction{TransactionCode: "S"}.IsDisposal())
	assert.False(t, InsiderTransaction{TransactionCode: "G"}.IsAcquisition())

	assert.True(t, Filing{FormType: "10-K/A"}.IsAmendment())
	assert.False(t, Filing{FormType: "10-K"}.IsAmendment())
}
