package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/accounts"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

// Thresholds referenced by the tax-audit heuristics. Percentages are
// expressed as fractions of 1.
var (
	cashAssetsCritical    = decimal.NewFromFloat(0.15) // cash above 15% of assets
	cashAssetsWarning     = decimal.NewFromFloat(0.05)
	collectionDaysWarning = decimal.NewFromInt(90)
	shareholderCapital    = decimal.NewFromFloat(0.10) // receivable above 10% of capital
	daysInYear            = decimal.NewFromInt(365)
)

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// DefaultCatalogue is the built-in critical-account rule set. All rules
// read trial-balance balances; a positive net sits on the debit side.
func DefaultCatalogue() []Rule {
	return []Rule{
		{
			ID:          "KASA_NEGATIVE",
			AccountCode: accounts.CodeKasa,
			Evaluate: func(ctx Context) *models.CriticalAccountFinding {
				balance := ctx.BalanceForRoot(accounts.CodeKasa)
				if !balance.IsNegative() {
					return nil
				}
				return &models.CriticalAccountFinding{
					Severity:       models.FindingCritical,
					Balance:        balance,
					Message:        fmt.Sprintf("cash account balance is negative (%s); physical cash cannot be below zero", balance),
					Recommendation: "check for postings recorded before the related cash receipt, or receipts booked to the wrong account",
				}
			},
		},
		{
			ID:          "KASA_RATIO",
			AccountCode: accounts.CodeKasa,
			Evaluate: func(ctx Context) *models.CriticalAccountFinding {
				balance := ctx.BalanceForRoot(accounts.CodeKasa)
				assets := ctx.TotalAssets()
				if !balance.IsPositive() || !assets.IsPositive() {
					return nil
				}
				share := balance.DivRound(assets, 6)
				switch {
				case share.GreaterThan(cashAssetsCritical):
					return &models.CriticalAccountFinding{
						Severity:       models.FindingCritical,
						Balance:        balance,
						Threshold:      ptr(cashAssetsCritical.Mul(decimal.NewFromInt(100))),
						Message:        fmt.Sprintf("cash is %s%% of total assets, above the 15%% audit threshold", share.Mul(decimal.NewFromInt(100)).Round(2)),
						Recommendation: "an implausibly large cash balance draws audit attention; verify the physical count and look for fictitious cash entries",
					}
				case share.GreaterThan(cashAssetsWarning):
					return &models.CriticalAccountFinding{
						Severity:       models.FindingWarning,
						Balance:        balance,
						Threshold:      ptr(cashAssetsWarning.Mul(decimal.NewFromInt(100))),
						Message:        fmt.Sprintf("cash is %s%% of total assets, above the 5%% comfort level", share.Mul(decimal.NewFromInt(100)).Round(2)),
						Recommendation: "consider moving idle cash to bank accounts and document the business need for the balance held",
					}
				}
				return nil
			},
		},
		{
			ID:          "BANKA_NEGATIVE",
			AccountCode: accounts.CodeBankalar,
			Evaluate: func(ctx Context) *models.CriticalAccountFinding {
				balance := ctx.BalanceForRoot(accounts.CodeBankalar)
				if !balance.IsNegative() {
					return nil
				}
				return &models.CriticalAccountFinding{
					Severity:       models.FindingWarning,
					Balance:        balance,
					Message:        fmt.Sprintf("bank accounts carry a credit balance (%s)", balance),
					Recommendation: "an overdraft should be reclassified to short-term bank loans; otherwise check for mispostings",
				}
			},
		},
		{
			ID:          "TAHSILAT_SURESI",
			AccountCode: accounts.CodeAlicilar,
			Evaluate: func(ctx Context) *models.CriticalAccountFinding {
				receivables := ctx.BalanceForRoot(accounts.CodeAlicilar)
				revenue := ctx.Revenue()
				if revenue.IsZero() || !receivables.IsPositive() {
					return nil
				}
				days := receivables.Mul(daysInYear).DivRound(revenue, 2)
				if days.LessThanOrEqual(collectionDaysWarning) {
					return nil
				}
				return &models.CriticalAccountFinding{
					Severity:       models.FindingWarning,
					Balance:        receivables,
					Threshold:      ptr(collectionDaysWarning),
					Message:        fmt.Sprintf("implied collection period is %s days against the 90-day threshold", days),
					Recommendation: "review aged receivables for doubtful balances and related-party items parked as trade receivables",
				}
			},
		},
		{
			ID:          "SATICILAR_DEBIT",
			AccountCode: accounts.CodeSaticilar,
			Evaluate: func(ctx Context) *models.CriticalAccountFinding {
				balance := ctx.BalanceForRoot(accounts.CodeSaticilar)
				if !balance.IsPositive() {
					return nil
				}
				return &models.CriticalAccountFinding{
					Severity:       models.FindingCritical,
					Balance:        balance,
					Message:        fmt.Sprintf("supplier account sits on the debit side (%s); payables normally carry a credit balance", balance),
					Recommendation: "look for supplier overpayments that belong in advances (159/195) or invoices posted to the wrong supplier",
				}
			},
		},
		{
			ID:          "ORTAKLAR_SERMAYE",
			AccountCode: accounts.CodeOrtaklardan,
			Evaluate: func(ctx Context) *models.CriticalAccountFinding {
				receivable := ctx.BalanceForRoot(accounts.CodeOrtaklardan)
				capital := ctx.BalanceForRoot(accounts.CodeSermaye).Neg() // capital is a credit balance
				if !receivable.IsPositive() || !capital.IsPositive() {
					return nil
				}
				limit := capital.Mul(shareholderCapital)
				if receivable.LessThanOrEqual(limit) {
					return nil
				}
				return &models.CriticalAccountFinding{
					Severity:       models.FindingWarning,
					Balance:        receivable,
					Threshold:      ptr(limit),
					Message:        fmt.Sprintf("shareholder receivables (%s) exceed 10%% of paid-in capital (%s)", receivable, capital),
					Recommendation: "sustained shareholder debit balances risk being treated as disguised profit distribution; document terms and apply deemed interest",
					RegulatoryRisk: true,
				}
			},
		},
	}
}
