// Package ratios computes the standard liquidity and efficiency ratio set
// from trial-balance aggregates grouped by chart class. Definitions are
// data: numerator/denominator selectors plus a tiered classifier.
package ratios

import (
	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/accounts"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

// Inputs are the class totals every ratio draws from. All values are net
// balances on the account's normal side.
type Inputs struct {
	CurrentAssets        decimal.Decimal
	FixedAssets          decimal.Decimal
	Cash                 decimal.Decimal // 100 + 102 and other 10x liquid accounts
	Receivables          decimal.Decimal // 12x trade receivables
	Inventory            decimal.Decimal // 15x stock
	ShortTermLiabilities decimal.Decimal
	LongTermLiabilities  decimal.Decimal
	Equity               decimal.Decimal
	Revenue              decimal.Decimal
	CostOfSales          decimal.Decimal // 62x, falling back to the 7xx cost class
}

// InputsFromAggregates derives the class totals from trial-balance
// aggregates. Liability, equity and revenue classes are read credit-side.
func InputsFromAggregates(aggs []models.AccountAggregate) Inputs {
	var in Inputs
	var costClass decimal.Decimal
	for _, a := range aggs {
		net := a.Net()
		switch accounts.GroupOf(a.AccountCode) {
		case accounts.GroupCurrentAssets:
			in.CurrentAssets = in.CurrentAssets.Add(net)
			if accounts.HasRoot(a.AccountCode, "10") {
				in.Cash = in.Cash.Add(net)
			}
			if accounts.HasRoot(a.AccountCode, "12") {
				in.Receivables = in.Receivables.Add(net)
			}
			if accounts.HasRoot(a.AccountCode, accounts.CodeStoklar) {
				in.Inventory = in.Inventory.Add(net)
			}
		case accounts.GroupFixedAssets:
			in.FixedAssets = in.FixedAssets.Add(net)
		case accounts.GroupShortTermLiabilities:
			in.ShortTermLiabilities = in.ShortTermLiabilities.Sub(net)
		case accounts.GroupLongTermLiabilities:
			in.LongTermLiabilities = in.LongTermLiabilities.Sub(net)
		case accounts.GroupEquity:
			in.Equity = in.Equity.Sub(net)
		case accounts.GroupRevenue:
			if accounts.HasRoot(a.AccountCode, accounts.CodeSatisMaliye) {
				in.CostOfSales = in.CostOfSales.Add(net)
			} else {
				in.Revenue = in.Revenue.Sub(net)
			}
		case accounts.GroupCost:
			costClass = costClass.Add(net)
		}
	}
	// Bookkeepings that never close 7xx into 62x still get a turnover base.
	if in.CostOfSales.IsZero() {
		in.CostOfSales = costClass
	}
	return in
}

// Definition describes one ratio as data.
type Definition struct {
	Name     string
	Formula  string
	Unit     models.RatioUnit
	Min      *decimal.Decimal // normal range lower bound, nil when open
	Max      *decimal.Decimal // normal range upper bound, nil when open
	Compute  func(Inputs) (num, den decimal.Decimal)
	Classify func(value decimal.Decimal) models.FindingSeverity
}

func ptr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// atLeast classifies "higher is better" ratios: normal at or above the
// first bound, warning at or above the second, critical below.
func atLeast(normal, warning string) func(decimal.Decimal) models.FindingSeverity {
	n, w := decimal.RequireFromString(normal), decimal.RequireFromString(warning)
	return func(v decimal.Decimal) models.FindingSeverity {
		switch {
		case v.GreaterThanOrEqual(n):
			return models.FindingNormal
		case v.GreaterThanOrEqual(w):
			return models.FindingWarning
		default:
			return models.FindingCritical
		}
	}
}

// atMost classifies "lower is better" ratios symmetrically.
func atMost(normal, warning string) func(decimal.Decimal) models.FindingSeverity {
	n, w := decimal.RequireFromString(normal), decimal.RequireFromString(warning)
	return func(v decimal.Decimal) models.FindingSeverity {
		switch {
		case v.LessThanOrEqual(n):
			return models.FindingNormal
		case v.LessThanOrEqual(w):
			return models.FindingWarning
		default:
			return models.FindingCritical
		}
	}
}

var hundred = decimal.NewFromInt(100)
var daysInYear = decimal.NewFromInt(365)

// Definitions is the fixed ratio set.
func Definitions() []Definition {
	return []Definition{
		{
			Name: "current_ratio", Formula: "current assets / short-term liabilities",
			Unit: models.UnitRatio, Min: ptr("1.5"),
			Compute:  func(in Inputs) (decimal.Decimal, decimal.Decimal) { return in.CurrentAssets, in.ShortTermLiabilities },
			Classify: atLeast("1.5", "1.0"),
		},
		{
			Name: "quick_ratio", Formula: "(current assets - inventory) / short-term liabilities",
			Unit: models.UnitRatio, Min: ptr("1.0"),
			Compute: func(in Inputs) (decimal.Decimal, decimal.Decimal) {
				return in.CurrentAssets.Sub(in.Inventory), in.ShortTermLiabilities
			},
			Classify: atLeast("1.0", "0.7"),
		},
		{
			Name: "cash_ratio", Formula: "liquid assets / short-term liabilities",
			Unit: models.UnitRatio, Min: ptr("0.2"),
			Compute:  func(in Inputs) (decimal.Decimal, decimal.Decimal) { return in.Cash, in.ShortTermLiabilities },
			Classify: atLeast("0.2", "0.1"),
		},
		{
			Name: "debt_to_equity", Formula: "total liabilities / equity",
			Unit: models.UnitRatio, Max: ptr("1.0"),
			Compute: func(in Inputs) (decimal.Decimal, decimal.Decimal) {
				return in.ShortTermLiabilities.Add(in.LongTermLiabilities), in.Equity
			},
			Classify: atMost("1.0", "2.0"),
		},
		{
			Name: "receivables_turnover", Formula: "revenue / trade receivables",
			Unit: models.UnitRatio, Min: ptr("4"),
			Compute:  func(in Inputs) (decimal.Decimal, decimal.Decimal) { return in.Revenue, in.Receivables },
			Classify: atLeast("4", "2"),
		},
		{
			Name: "average_collection_period", Formula: "trade receivables x 365 / revenue",
			Unit: models.UnitDays, Max: ptr("90"),
			Compute: func(in Inputs) (decimal.Decimal, decimal.Decimal) {
				return in.Receivables.Mul(daysInYear), in.Revenue
			},
			Classify: atMost("90", "120"),
		},
		{
			Name: "inventory_turnover", Formula: "cost of sales / inventory",
			Unit: models.UnitRatio, Min: ptr("4"),
			Compute:  func(in Inputs) (decimal.Decimal, decimal.Decimal) { return in.CostOfSales, in.Inventory },
			Classify: atLeast("4", "2"),
		},
		{
			Name: "cash_to_assets", Formula: "liquid assets / total assets x 100",
			Unit: models.UnitPercent, Max: ptr("5"),
			Compute: func(in Inputs) (decimal.Decimal, decimal.Decimal) {
				return in.Cash.Mul(hundred), in.CurrentAssets.Add(in.FixedAssets)
			},
			Classify: atMost("5", "15"),
		},
	}
}

// Compute evaluates the whole definition set. A zero denominator yields
// value 0 run through the same classifier — a defined boundary, not an
// error.
func Compute(in Inputs) []models.FinancialRatio {
	defs := Definitions()
	out := make([]models.FinancialRatio, 0, len(defs))
	for _, def := range defs {
		num, den := def.Compute(in)
		value := decimal.Zero
		if !den.IsZero() {
			value = num.DivRound(den, 4)
		}
		out = append(out, models.FinancialRatio{
			Name:        def.Name,
			Formula:     def.Formula,
			Value:       value,
			Unit:        def.Unit,
			NormalRange: models.NormalRange{Min: def.Min, Max: def.Max},
			Status:      def.Classify(value),
		})
	}
	return out
}
