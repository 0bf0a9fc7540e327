package models

import "github.com/shopspring/decimal"

// StatusColor is the traffic-light state of the opening balance.
type StatusColor string

const (
	StatusGreen  StatusColor = "green"
	StatusYellow StatusColor = "yellow"
	StatusRed    StatusColor = "red"
)

// OpeningBalanceStatus is read-only context for a run. The opening balance
// is never matched against the three sources directly; it only explains
// discrepancies to the reviewer.
type OpeningBalanceStatus struct {
	HasData      bool               `json:"has_data"`
	FiscalYear   int                `json:"fiscal_year,omitempty"`
	Debit        decimal.Decimal    `json:"debit_total"`
	Credit       decimal.Decimal    `json:"credit_total"`
	AccountCount int                `json:"account_count"`
	Accounts     []AccountAggregate `json:"accounts,omitempty"`
	IsBalanced   bool               `json:"is_balanced"`
	SourceKind   OpeningSourceKind  `json:"source_kind,omitempty"`
	StatusColor  StatusColor        `json:"status_color"`
}
