package edgar

import (
	"strings"
	"time"
)

// Filing represents a single SEC filing.
type Filing struct {
	AccessionNumber string    `json:"accessionNumber"`
	CIK             string    `json:"cik"`
	CompanyName     string    `json:"companyName"`
	Ticker          string    `json:"ticker,omitempty"`
	FormType        string    `json:"formType"`
	FiledAt         time.Time `json:"filedAt"`
	PeriodOfReport  string    `json:"periodOfReport,omitempty"`
	Items           []string  `json:"items,omitempty"`
	Status          string    `json:"status,omitempty"`
	DocumentURL     string    `json:"documentUrl,omitempty"`
	SizeBytes       int64     `json:"sizeBytes,omitempty"`
}

// IsAmendment reports whether the filing amends an earlier one (e.g. 10-K/A).
func (f Filing) IsAmendment() bool {
	return strings.HasSuffix(f.FormType, "/A")
}

// InsiderTransaction represents a single insider trade reported on Form 4.
type InsiderTransaction struct {
	AccessionNumber  string    `json:"accessionNumber"`
	InsiderCIK       string    `json:"insiderCik"`
	InsiderName      string    `json:"insiderName"`
	CompanyCIK       string    `json:"companyCik"`
	CompanyName      string    `json:"companyName"`
	Ticker           string    `json:"ticker,omitempty"`
	TransactionCode  string    `json:"transactionCode"`
	TransactionDate  string    `json:"transactionDate"`
	Shares           float64   `json:"shares"`
	PricePerShare    float64   `json:"pricePerShare,omitempty"`
	TotalValue       float64   `json:"totalValue,omitempty"`
	SharesOwnedAfter float64   `json:"sharesOwnedAfter,omitempty"`
	IsDirector       bool      `json:"isDirector,omitempty"`
	IsOfficer        bool      `json:"isOfficer,omitempty"`
	OfficerTitle     string    `json:"officerTitle,omitempty"`
	FiledAt          time.Time `json:"filedAt"`
}

// IsAcquisition reports whether the transaction added to the insider's
// position. Code P is an open-market purchase, A is a grant or award.
func (t InsiderTransaction) IsAcquisition() bool {
	return t.TransactionCode == "P" || t.TransactionCode == "A"
}

// IsDisposal reports whether the transaction reduced the insider's
// position. Code S is an open-market sale, D is a disposition to the issuer.
func (t InsiderTransaction) IsDisposal() bool {
	return t.TransactionCode == "S" || t.TransactionCode == "D"
}

// InstitutionalHolding represents one position from a 13F disclosure.
type InstitutionalHolding struct {
	ManagerCIK  string    `json:"managerCik"`
	ManagerName string    `json:"managerName"`
	CompanyCIK  string    `json:"companyCik"`
	CompanyName string    `json:"companyName"`
	Ticker      string    `json:"ticker,omitempty"`
	CUSIP       string    `json:"cusip,omitempty"`
	Shares      int64     `json:"shares"`
	ValueUSD    int64     `json:"valueUsd"`
	Quarter     string    `json:"quarter"`
	PutCall     string    `json:"putCall,omitempty"`
	ReportedAt  time.Time `json:"reportedAt"`
}

// Company represents a company profile.
type Company struct {
	CIK            string `json:"cik"`
	Name           string `json:"name"`
	Ticker         string `json:"ticker,omitempty"`
	Exchange       string `json:"exchange,omitempty"`
	SIC            string `json:"sic,omitempty"`
	SICDescription string `json:"sicDescription,omitempty"`
	Sector         string `json:"sector,omitempty"`
	Industry       string `json:"industry,omitempty"`
	StateOfIncorp  string `json:"stateOfIncorporation,omitempty"`
	FiscalYearEnd  string `json:"fiscalYearEnd,omitempty"`
	Website        string `json:"website,omitempty"`
}

// DisplayName returns the company name with the ticker appended when known.
func (c Company) DisplayName() string {
	if c.Ticker != "" {
		return c.Name + " (" + c.Ticker + ")"
	}
	return c.Name
}
