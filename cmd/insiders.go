package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgarhound/edgarhound/edgar"
)

var (
	insiderPersonCIK string
	insiderCIK       string
	insiderCodes     []string
	insiderDateFrom  string
	insiderDateTo    string
)

// insidersCmd represents the insiders command
var insidersCmd = &cobra.Command{
	Use:   "insiders",
	Short: "List insider transactions",
	Long: `List Form 4 insider transactions, narrowed by reporting insider, company,
transaction code, or date range.`,
	RunE: runInsiders,
}

func init() {
	rootCmd.AddCommand(insidersCmd)

	insidersCmd.Flags().StringVar(&insiderPersonCIK, "person-cik", "", "reporting insider CIK")
	insidersCmd.Flags().StringVar(&insiderCIK, "cik", "", "company CIK")
	insidersCmd.Flags().StringSliceVar(&insiderCodes, "codes", nil, "transaction codes (e.g. P,S)")
	insidersCmd.Flags().StringVar(&insiderDateFrom, "from", "", "earliest transaction date (YYYY-MM-DD)")
	insidersCmd.Flags().StringVar(&insiderDateTo, "to", "", "latest transaction date (YYYY-MM-DD)")
	insidersCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (0 = one page)")
	insidersCmd.Flags().BoolVarP(&fetchAll, "all", "a", false, "traverse every page")
}

func runInsiders(cmd *cobra.Command, args []string) error {
	params := edgar.InsiderListParams{
		PersonCIK: insiderPersonCIK,
		CIK:       insiderCIK,
		Codes:     insiderCodes,
		DateFrom:  insiderDateFrom,
		DateTo:    insiderDateTo,
		Limit:     limit,
	}

	ctx := context.Background()
	var transactions []edgar.InsiderTransaction
	var err error

	if fetchAll {
		transactions, err = client.Insider.Iterate(params).Collect(ctx)
	} else {
		var page *edgar.Page[edgar.InsiderTransaction]
		page, err = client.Insider.List(ctx, params)
		if page != nil {
			transactions = page.Items
		}
	}
	if err != nil {
		return err
	}

	fmt.Println(formatter.FormatTransactionList(transactions))
	return nil
}
