// Package opening builds the read-only opening-balance context for a run.
// The opening balance explains discrepancies to the reviewer; it is never
// matched against the three sources directly.
package opening

import (
	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/aggregate"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
	"github.com/cemsak/lyntos-updated-sub006/internal/recon"
)

// yellowBand is how far out of balance the opening may be before the
// traffic light goes from yellow to red.
var yellowBand = decimal.NewFromInt(10)

// BuildStatus reduces the opening lines and grades them. An empty line
// set yields has_data=false with a red light — a period under review
// without a carried-forward balance is itself worth the reviewer's eye.
func BuildStatus(lines []models.OpeningBalanceLine, kind models.OpeningSourceKind, fiscalYear int, tol recon.Tolerance) models.OpeningBalanceStatus {
	if len(lines) == 0 {
		return models.OpeningBalanceStatus{HasData: false, StatusColor: models.StatusRed}
	}

	accounts, totals := aggregate.ReduceOpening(lines)
	if kind == "" {
		kind = lines[0].SourceKind
	}

	status := models.OpeningBalanceStatus{
		HasData:      true,
		FiscalYear:   fiscalYear,
		Debit:        totals.Debit,
		Credit:       totals.Credit,
		AccountCount: len(accounts),
		Accounts:     accounts,
		IsBalanced:   tol.Within(totals.Debit, totals.Credit),
		SourceKind:   kind,
	}

	diff := totals.Difference.Abs()
	switch {
	case status.IsBalanced:
		status.StatusColor = models.StatusGreen
	case diff.LessThanOrEqual(yellowBand):
		status.StatusColor = models.StatusYellow
	default:
		status.StatusColor = models.StatusRed
	}
	return status
}
