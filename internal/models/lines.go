package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which of the three bookkeeping records a value came from.
type Source string

const (
	SourceJournal      Source = "JOURNAL"
	SourceLedger       Source = "LEDGER"
	SourceTrialBalance Source = "TRIAL_BALANCE"
)

// JournalLine is a single debit/credit line of a journal voucher,
// already parsed by the ingestion layer.
type JournalLine struct {
	VoucherID   string          `json:"voucher_id" validate:"required"`
	AccountCode string          `json:"account_code" validate:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Date        time.Time       `json:"date"`
}

// LedgerLine is a per-account posting or aggregate from the general ledger.
// Month is 0 when the source carries no monthly breakdown.
type LedgerLine struct {
	AccountCode string          `json:"account_code" validate:"required"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Month       time.Month      `json:"month,omitempty"`
}

// TrialBalanceRow is one account row of the period-end trial balance.
type TrialBalanceRow struct {
	AccountCode string          `json:"account_code" validate:"required"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// OpeningSourceKind says where the opening balance data came from.
type OpeningSourceKind string

const (
	OpeningFromVoucher      OpeningSourceKind = "opening-voucher"
	OpeningFromTrialBalance OpeningSourceKind = "opening-trial-balance"
	OpeningFromManualEntry  OpeningSourceKind = "manual-entry"
)

// OpeningBalanceLine is one account of the carried-forward opening balance.
type OpeningBalanceLine struct {
	AccountCode string            `json:"account_code" validate:"required"`
	Debit       decimal.Decimal   `json:"debit"`
	Credit      decimal.Decimal   `json:"credit"`
	SourceKind  OpeningSourceKind `json:"source_kind"`
}

// Snapshot is one consistent set of inputs for a single engine run.
// It is assembled strictly before invocation; the engine never fetches.
type Snapshot struct {
	ClientID          string               `json:"client_id" validate:"required"`
	PeriodID          string               `json:"period_id" validate:"required"`
	FiscalYear        int                  `json:"fiscal_year"`
	Journal           []JournalLine        `json:"journal"`
	Ledger            []LedgerLine         `json:"ledger"`
	TrialBalance      []TrialBalanceRow    `json:"trial_balance"`
	Opening           []OpeningBalanceLine `json:"opening"`
	OpeningSourceKind OpeningSourceKind    `json:"opening_source_kind"`
}
