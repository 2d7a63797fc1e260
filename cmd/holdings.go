package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgarhound/edgarhound/edgar"
)

var (
	holdingCIK        string
	holdingManagerCIK string
	holdingQuarter    string
)

// holdingsCmd represents the holdings command
var holdingsCmd = &cobra.Command{
	Use:   "holdings",
	Short: "List institutional (13F) holdings",
	Long: `List institutional positions from 13F disclosures, narrowed by company,
reporting manager, or quarter.`,
	RunE: runHoldings,
}

func init() {
	rootCmd.AddCommand(holdingsCmd)

	holdingsCmd.Flags().StringVar(&holdingCIK, "cik", "", "company CIK")
	holdingsCmd.Flags().StringVar(&holdingManagerCIK, "manager-cik", "", "reporting manager CIK")
	holdingsCmd.Flags().StringVar(&holdingQuarter, "quarter", "", "reporting quarter (e.g. 2024Q1)")
	holdingsCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (0 = one page)")
	holdingsCmd.Flags().BoolVarP(&fetchAll, "all", "a", false, "traverse every page")
}

func runHoldings(cmd *cobra.Command, args []string) error {
	params := edgar.InstitutionalListParams{
		CIK:        holdingCIK,
		ManagerCIK: holdingManagerCIK,
		Quarter:    holdingQuarter,
		Limit:      limit,
	}

	ctx := context.Background()
	var holdings []edgar.InstitutionalHolding
	var err error

	if fetchAll {
		holdings, err = client.Institutional.Iterate(params).Collect(ctx)
	} else {
		var page *edgar.Page[edgar.InstitutionalHolding]
		page, err = client.Institutional.List(ctx, params)
		if page != nil {
			holdings = page.Items
		}
	}
	if err != nil {
		return err
	}

	fmt.Println(formatter.FormatHoldingList(holdings))
	return nil
}
