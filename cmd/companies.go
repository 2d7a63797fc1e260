package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgarhound/edgarhound/edgar"
)

var (
	searchCIK    string
	searchTicker string
	searchSector string
)

// companyCmd represents the company command
var companyCmd = &cobra.Command{
	Use:   "company <cik>",
	Short: "Show a company profile by CIK",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)
}

func runCompany(cmd *cobra.Command, args []string) error {
	company, err := client.Companies.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(formatter.FormatCompany(*company))
	return nil
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search companies by name, ticker, or sector",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchCIK, "cik", "", "company CIK")
	searchCmd.Flags().StringVar(&searchTicker, "ticker", "", "exchange symbol")
	searchCmd.Flags().StringVar(&searchSector, "sector", "", "business sector")
	searchCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (0 = one page)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	params := edgar.CompanySearchParams{
		CIK:    searchCIK,
		Ticker: searchTicker,
		Sector: searchSector,
		Limit:  limit,
	}
	if len(args) > 0 {
		params.Query = args[0]
	}

	page, err := client.Companies.Search(context.Background(), params)
	if err != nil {
		return err
	}

	if len(page.Items) == 0 {
		fmt.Println("No companies found.")
		return nil
	}

	for _, company := range page.Items {
		fmt.Printf("• %s — CIK %s", company.DisplayName(), company.CIK)
		if company.Sector != "" {
			fmt.Printf(" [%s]", company.Sector)
		}
		fmt.Println()
	}
	if page.HasMore {
		fmt.Println("\n(more results available; raise --limit to see them)")
	}

	return nil
}
