package models

import "github.com/shopspring/decimal"

// AccountAggregate is the per-account reduction of one source's lines.
// Produced fresh per run, never mutated afterwards.
type AccountAggregate struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name,omitempty"`
	Debit       decimal.Decimal `json:"debit_total"`
	Credit      decimal.Decimal `json:"credit_total"`
	LineCount   int             `json:"line_count"`
}

// Net is the debit-minus-credit balance of the aggregate.
func (a AccountAggregate) Net() decimal.Decimal {
	return a.Debit.Sub(a.Credit)
}

// SourceTotals are the global totals of one source.
// VoucherCount is only meaningful for the journal.
type SourceTotals struct {
	Source       Source          `json:"source"`
	Debit        decimal.Decimal `json:"debit_total"`
	Credit       decimal.Decimal `json:"credit_total"`
	Difference   decimal.Decimal `json:"difference"`
	LineCount    int             `json:"line_count"`
	VoucherCount int             `json:"voucher_count,omitempty"`
}
