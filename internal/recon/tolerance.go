package recon

import "github.com/shopspring/decimal"

// Tolerance is the shared matching policy:
//
//	|a-b| <= max(Abs, Rel*max(|a|,|b|))
//
// Abs defaults to 1 currency unit. Rel defaults to 0 — accounting work
// normally demands exact relative agreement.
type Tolerance struct {
	Abs decimal.Decimal
	Rel decimal.Decimal
}

// DefaultTolerance is the policy used when the caller configures nothing.
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: decimal.NewFromInt(1), Rel: decimal.Zero}
}

// Within reports whether a and b agree under the policy. A difference of
// exactly the limit passes; anything beyond it fails.
func (t Tolerance) Within(a, b decimal.Decimal) bool {
	limit := t.Abs
	if t.Rel.IsPositive() {
		rel := decimal.Max(a.Abs(), b.Abs()).Mul(t.Rel)
		if rel.GreaterThan(limit) {
			limit = rel
		}
	}
	return a.Sub(b).Abs().LessThanOrEqual(limit)
}
