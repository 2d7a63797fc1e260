package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgarhound/edgarhound/edgar"
	"github.com/edgarhound/edgarhound/ops"
)

var (
	filingCIK      string
	filingForms    []string
	filingStatus   string
	filingDateFrom string
	filingDateTo   string
	enrichProfiles bool
)

// filingsCmd represents the filings command
var filingsCmd = &cobra.Command{
	Use:   "filings",
	Short: "List SEC filings matching the filter criteria",
	Long: `List SEC filings, optionally narrowed by company, form type, date range,
and an expression filter evaluated against each filing.`,
	RunE: runFilings,
}

func init() {
	rootCmd.AddCommand(filingsCmd)

	filingsCmd.Flags().StringVar(&filingCIK, "cik", "", "company CIK")
	filingsCmd.Flags().StringSliceVar(&filingForms, "forms", nil, "form types (e.g. 10-K,8-K)")
	filingsCmd.Flags().StringVar(&filingStatus, "status", "", "processing status filter")
	filingsCmd.Flags().StringVar(&filingDateFrom, "from", "", "earliest filing date (YYYY-MM-DD)")
	filingsCmd.Flags().StringVar(&filingDateTo, "to", "", "latest filing date (YYYY-MM-DD)")
	filingsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	filingsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	filingsCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (0 = one page)")
	filingsCmd.Flags().BoolVarP(&fetchAll, "all", "a", false, "traverse every page")
	filingsCmd.Flags().BoolVar(&enrichProfiles, "profiles", false, "fetch company profiles for display")
}

func runFilings(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	params := edgar.FilingListParams{
		CIK:      filingCIK,
		Forms:    filingForms,
		Status:   filingStatus,
		DateFrom: filingDateFrom,
		DateTo:   filingDateTo,
	}

	ctx := context.Background()
	var filings []edgar.Filing

	if fetchAll || expression != "" || limit > 0 {
		if expression != "" {
			logger.Info().Str("filter", expression).Msg("Searching filings")
		}
		filings, err = operations.SearchFilings(ctx, ops.SearchOptions{
			Params:           params,
			FilterExpression: expression,
			MaxResults:       limit,
		})
	} else {
		var page *edgar.Page[edgar.Filing]
		page, err = client.Filings.List(ctx, params)
		if page != nil {
			filings = page.Items
		}
	}
	if err != nil {
		return err
	}

	var profiles map[string]edgar.Company
	if enrichProfiles && len(filings) > 0 {
		profiles, err = operations.EnrichCompanies(ctx, filings)
		if err != nil {
			return fmt.Errorf("failed to fetch company profiles: %w", err)
		}
	}

	fmt.Print(formatter.FormatFilingList(filings, profiles, ops.FormatOptions{
		ShowDetails: cfg.Output.ShowDetails,
	}))

	return nil
}

// filingCmd represents the filing command
var filingCmd = &cobra.Command{
	Use:   "filing <accession-number>",
	Short: "Show a single filing by accession number",
	Args:  cobra.ExactArgs(1),
	RunE:  runFiling,
}

func init() {
	rootCmd.AddCommand(filingCmd)
}

func runFiling(cmd *cobra.Command, args []string) error {
	filing, err := client.Filings.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Print(formatter.FormatFilingList([]edgar.Filing{*filing}, nil, ops.FormatOptions{
		ShowDetails: true,
	}))

	return nil
}
