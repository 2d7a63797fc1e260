package ops

import (
	"fmt"
	"strings"

	"github.com/edgarhound/edgarhound/edgar"
)

// FormatOptions controls console output detail.
type FormatOptions struct {
	ShowDetails bool
}

// ConsoleFormatter provides console output formatting for API records.
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatFilingList formats a list of filings for console display.
func (f *ConsoleFormatter) FormatFilingList(filings []edgar.Filing, profiles map[string]edgar.Company, options FormatOptions) string {
	if len(filings) == 0 {
		return "No filings found"
	}

	var sb strings.Builder

	sb.WriteString("\nFiling")
	if len(filings) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(filings))

	for i, filing := range filings {
		isLast := i == len(filings)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		name := filing.CompanyName
		if company, ok := profiles[filing.CIK]; ok {
			name = company.DisplayName()
		}
		fmt.Fprintf(&sb, "%s── %s %s\n", prefix, filing.FormType, name)

		indent := "│   "
		if isLast {
			indent = "    "
		}

		fmt.Fprintf(&sb, "%sAccession: %s\n", indent, filing.AccessionNumber)
		fmt.Fprintf(&sb, "%sFiled: %s\n", indent, filing.FiledAt.Format("2006-01-02"))

		if options.ShowDetails {
			if filing.PeriodOfReport != "" {
				fmt.Fprintf(&sb, "%sPeriod: %s\n", indent, filing.PeriodOfReport)
			}
			if len(filing.Items) > 0 {
				fmt.Fprintf(&sb, "%sItems: %s\n", indent, strings.Join(filing.Items, ", "))
			}
			if filing.DocumentURL != "" {
				fmt.Fprintf(&sb, "%sDocument: %s\n", indent, filing.DocumentURL)
			}
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatTransactionList formats insider transactions as an aligned table.
func (f *ConsoleFormatter) FormatTransactionList(transactions []edgar.InsiderTransaction) string {
	if len(transactions) == 0 {
		return "No insider transactions found"
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat("━", 95) + "\n")
	fmt.Fprintf(&sb, "%-12s %-28s %-5s %12s %10s %14s\n", "DATE", "INSIDER", "CODE", "SHARES", "PRICE", "VALUE")
	sb.WriteString(strings.Repeat("━", 95) + "\n")

	for _, tx := range transactions {
		name := tx.InsiderName
		if len(name) > 26 {
			name = name[:23] + "..."
		}
		fmt.Fprintf(&sb, "%-12s %-28s %-5s %12.0f %10.2f %14.0f\n",
			tx.TransactionDate, name, tx.TransactionCode, tx.Shares, tx.PricePerShare, tx.TotalValue)
	}
	sb.WriteString(strings.Repeat("━", 95) + "\n")

	return sb.String()
}

// FormatHoldingList formats institutional holdings as an aligned table.
func (f *ConsoleFormatter) FormatHoldingList(holdings []edgar.InstitutionalHolding) string {
	if len(holdings) == 0 {
		return "No institutional holdings found"
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat("━", 90) + "\n")
	fmt.Fprintf(&sb, "%-40s %-8s %14s %16s\n", "MANAGER", "QUARTER", "SHARES", "VALUE (USD)")
	sb.WriteString(strings.Repeat("━", 90) + "\n")

	for _, holding := range holdings {
		name := holding.ManagerName
		if len(name) > 38 {
			name = name[:35] + "..."
		}
		fmt.Fprintf(&sb, "%-40s %-8s %14d %16d\n",
			name, holding.Quarter, holding.Shares, holding.ValueUSD)
	}
	sb.WriteString(strings.Repeat("━", 90) + "\n")

	return sb.String()
}

// FormatCompany formats a single company profile.
func (f *ConsoleFormatter) FormatCompany(company edgar.Company) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s\n", company.DisplayName())
	fmt.Fprintf(&sb, "  CIK: %s\n", company.CIK)
	if company.Exchange != "" {
		fmt.Fprintf(&sb, "  Exchange: %s\n", company.Exchange)
	}
	if company.SIC != "" {
		sic := company.SIC
		if company.SICDescription != "" {
			sic += " (" + company.SICDescription + ")"
		}
		fmt.Fprintf(&sb, "  SIC: %s\n", sic)
	}
	if company.Sector != "" {
		fmt.Fprintf(&sb, "  Sector: %s\n", company.Sector)
	}
	if company.Industry != "" {
		fmt.Fprintf(&sb, "  Industry: %s\n", company.Industry)
	}
	if company.StateOfIncorp != "" {
		fmt.Fprintf(&sb, "  Incorporated: %s\n", company.StateOfIncorp)
	}
	if company.Website != "" {
		fmt.Fprintf(&sb, "  Website: %s\n", company.Website)
	}

	return sb.String()
}
