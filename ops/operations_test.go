package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgarhound/edgarhound/edgar"
)

func newTestOperations(t *testing.T, handler http.HandlerFunc) *Operations {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := edgar.NewClient("test-key", edgar.WithBaseURL(server.URL))
	require.NoError(t, err)

	return NewOperations(client, zerolog.Nop())
}

func TestSearchFilings(t *testing.T) {
	now := time.Now().UTC()
	o := newTestOperations(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("cursor") {
		case "":
			json.NewEncoder(w).Encode(edgar.Page[edgar.Filing]{
				Items: []edgar.Filing{
					{AccessionNumber: "a-1", CIK: "100", FormType: "10-K", FiledAt: now},
					{AccessionNumber: "a-2", CIK: "100", FormType: "8-K", FiledAt: now},
				},
				NextCursor: "p2",
				HasMore:    true,
			})
		default:
			json.NewEncoder(w).Encode(edgar.Page[edgar.Filing]{
				Items: []edgar.Filing{
					{AccessionNumber: "a-3", CIK: "200", FormType: "10-K", FiledAt: now},
				},
			})
		}
	})

	filings, err := o.SearchFilings(context.Background(), SearchOptions{
		FilterExpression: `formIs("10-K")`,
	})
	require.NoError(t, err)
	require.Len(t, filings, 2)
	assert.Equal(t, "a-1", filings[0].AccessionNumber)
	assert.Equal(t, "a-3", filings[1].AccessionNumber)
}

func TestSearchFilingsMaxResults(t *testing.T) {
	var requests atomic.Int32
	o := newTestOperations(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		json.NewEncoder(w).Encode(edgar.Page[edgar.Filing]{
			Items:      []edgar.Filing{{AccessionNumber: "a"}, {AccessionNumber: "b"}},
			NextCursor: "next",
			HasMore:    true,
		})
	})

	filings, err := o.SearchFilings(context.Background(), SearchOptions{MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, filings, 2)
	assert.Equal(t, int32(1), requests.Load(), "cap must stop the traversal")
}

func TestSearchFilingsBadExpression(t *testing.T) {
	o := newTestOperations(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an uncompilable filter")
	})

	_, err := o.SearchFilings(context.Background(), SearchOptions{
		FilterExpression: `formIs(`,
	})
	require.Error(t, err)
}

func TestEnrichCompanies(t *testing.T) {
	o := newTestOperations(t, func(w http.ResponseWriter, r *http.Request) {
		cik := strings.TrimPrefix(r.URL.Path, "/api/v1/companies/")
		if cik == "404" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(edgar.Company{CIK: cik, Name: "Company " + cik})
	})

	filings := []edgar.Filing{
		{AccessionNumber: "a-1", CIK: "100"},
		{AccessionNumber: "a-2", CIK: "100"},
		{AccessionNumber: "a-3", CIK: "200"},
		{AccessionNumber: "a-4", CIK: "404"},
		{AccessionNumber: "a-5"},
	}

	profiles, err := o.EnrichCompanies(context.Background(), filings)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Company 100", profiles["100"].Name)
	assert.Equal(t, "Company 200", profiles["200"].Name)
}

func TestEnrichCompaniesAbortsOnServerError(t *testing.T) {
	o := newTestOperations(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	})

	_, err := o.EnrichCompanies(context.Background(), []edgar.Filing{{CIK: "100"}})
	require.Error(t, err)

	var apiErr *edgar.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestFormatters(t *testing.T) {
	f := NewConsoleFormatter()

	t.Run("empty lists", func(t *testing.T) {
		assert.Equal(t, "No filings found", f.FormatFilingList(nil, nil, FormatOptions{}))
		assert.Equal(t, "No insider transactions found", f.FormatTransactionList(nil))
		assert.Equal(t, "No institutional holdings found", f.FormatHoldingList(nil))
	})

	t.Run("filing list", func(t *testing.T) {
		out := f.FormatFilingList([]edgar.Filing{
			{AccessionNumber: "a-1", CIK: "100", CompanyName: "Apple Inc.", FormType: "10-K", FiledAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		}, map[string]edgar.Company{
			"100": {CIK: "100", Name: "Apple Inc.", Ticker: "AAPL"},
		}, FormatOptions{})

		assert.Contains(t, out, "Filing (1):")
		assert.Contains(t, out, "10-K Apple Inc. (AAPL)")
		assert.Contains(t, out, "Filed: 2024-02-01")
	})

	t.Run("company profile", func(t *testing.T) {
		out := f.FormatCompany(edgar.Company{CIK: "100", Name: "Apple Inc.", Ticker: "AAPL", Sector: "Technology"})
		assert.Contains(t, out, "Apple Inc. (AAPL)")
		assert.Contains(t, out, "Sector: Technology")
	})
}
