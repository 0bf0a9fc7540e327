package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckType names the four reconciliation checks.
type CheckType string

const (
	CheckJournalBalance       CheckType = "C1" // journal debit == journal credit, per voucher too
	CheckJournalVsLedger      CheckType = "C2" // journal aggregates vs ledger aggregates
	CheckLedgerVsTrialBalance CheckType = "C3" // ledger aggregates vs trial balance rows
	CheckTrialBalanceBalance  CheckType = "C4" // trial balance debit == credit
)

// Severity grades a check result. NO_DATA is reported when a source
// the check depends on carries no rows for the period.
type Severity string

const (
	SeverityOK       Severity = "OK"
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
	SeverityNoData   Severity = "NO_DATA"
)

// RowStatus classifies one account's cross-source comparison.
// ONLY_IN_SOURCE / ONLY_IN_TARGET mean the account is entirely absent on
// one side, which indicates missing period data rather than a footnote.
type RowStatus string

const (
	RowMatched      RowStatus = "MATCHED"
	RowDiffers      RowStatus = "DIFFERS"
	RowOnlyInSource RowStatus = "ONLY_IN_SOURCE"
	RowOnlyInTarget RowStatus = "ONLY_IN_TARGET"
)

// ComparisonRow is the per-account outcome of a C2/C3 comparison.
// Diffs are signed, source minus target.
type ComparisonRow struct {
	AccountCode  string          `json:"account_code"`
	AccountName  string          `json:"account_name,omitempty"`
	SourceDebit  decimal.Decimal `json:"source_debit"`
	SourceCredit decimal.Decimal `json:"source_credit"`
	TargetDebit  decimal.Decimal `json:"target_debit"`
	TargetCredit decimal.Decimal `json:"target_credit"`
	DebitDiff    decimal.Decimal `json:"debit_diff"`
	CreditDiff   decimal.Decimal `json:"credit_diff"`
	Status       RowStatus       `json:"status"`
}

// VoucherImbalance is a journal voucher whose own lines do not balance.
type VoucherImbalance struct {
	VoucherID  string          `json:"voucher_id"`
	Debit      decimal.Decimal `json:"debit_total"`
	Credit     decimal.Decimal `json:"credit_total"`
	Difference decimal.Decimal `json:"difference"`
}

// PeriodMismatch suggests a calendar month of ledger activity that appears
// to be absent from the trial balance. Always a suggestion, never asserted.
type PeriodMismatch struct {
	SuspectedMissingMonth time.Month      `json:"suspected_missing_month"`
	MonthDebit            decimal.Decimal `json:"month_total_debit"`
	Explanation           string          `json:"explanation"`
}

// CheckResult is the immutable outcome of one check.
type CheckResult struct {
	Type               CheckType          `json:"check_type"`
	Severity           Severity           `json:"severity"`
	Passed             bool               `json:"passed"`
	Message            string             `json:"message"`
	MatchedCount       int                `json:"matched_count,omitempty"`
	DiffersCount       int                `json:"differs_count,omitempty"`
	MissingCount       int                `json:"missing_count,omitempty"`
	TotalAbsDiff       decimal.Decimal    `json:"total_abs_diff"`
	Rows               []ComparisonRow    `json:"rows,omitempty"`
	UnbalancedVouchers []VoucherImbalance `json:"unbalanced_vouchers,omitempty"`
	PeriodMismatch     *PeriodMismatch    `json:"period_mismatch,omitempty"`
}
