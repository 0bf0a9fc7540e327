package models

import "time"

// OverallStatus is the roll-up of a whole run, worst-first:
// CRITICAL > FAIL > WARNING > PASS. NO_DATA when all three sources are empty.
type OverallStatus string

const (
	OverallPass     OverallStatus = "PASS"
	OverallWarning  OverallStatus = "WARNING"
	OverallFail     OverallStatus = "FAIL"
	OverallCritical OverallStatus = "CRITICAL"
	OverallNoData   OverallStatus = "NO_DATA"
)

// Summary counts outcomes across checks, findings and ratios.
type Summary struct {
	TotalChecks   int           `json:"total_checks"`
	Passed        int           `json:"passed"`
	Warnings      int           `json:"warnings"`
	Errors        int           `json:"errors"`
	Critical      int           `json:"critical"`
	OverallStatus OverallStatus `json:"overall_status"`
}

// Report is the full output of one run for one (client, period).
// Value object: identical snapshots produce identical reports except
// ID and GeneratedAt.
type Report struct {
	ID                   string                   `json:"report_id"`
	ClientID             string                   `json:"client_id"`
	PeriodID             string                   `json:"period_id"`
	GeneratedAt          time.Time                `json:"generated_at"`
	BalanceChecks        []CheckResult            `json:"balance_checks"`        // C1, C4
	ReconciliationChecks []CheckResult            `json:"reconciliation_checks"` // C2, C3
	ComparisonRowsC2     []ComparisonRow          `json:"comparison_rows_c2"`
	ComparisonRowsC3     []ComparisonRow          `json:"comparison_rows_c3"`
	CriticalFindings     []CriticalAccountFinding `json:"critical_findings"`
	Ratios               []FinancialRatio         `json:"ratios"`
	OpeningBalance       OpeningBalanceStatus     `json:"opening_balance"`
	Summary              Summary                  `json:"summary"`
}
