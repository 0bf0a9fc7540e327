// Package rules evaluates the critical-account catalogue against the
// trial-balance aggregates. Rules are data, not a class hierarchy: each is
// an identifier, the account it watches and a pure evaluate function.
// New rules plug in without touching the engine's control flow.
package rules

import (
	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/accounts"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

// GroupTotals are one chart group's summed sides across the trial balance.
type GroupTotals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Net is debit minus credit for the group.
func (g GroupTotals) Net() decimal.Decimal { return g.Debit.Sub(g.Credit) }

// Context is the immutable view a rule evaluates against: per-account
// aggregates from the trial balance plus group roll-ups.
type Context struct {
	Aggregates map[string]models.AccountAggregate
	Groups     map[accounts.Group]GroupTotals
}

// NewContext indexes trial-balance aggregates for rule evaluation.
func NewContext(aggs []models.AccountAggregate) Context {
	ctx := Context{
		Aggregates: make(map[string]models.AccountAggregate, len(aggs)),
		Groups:     make(map[accounts.Group]GroupTotals),
	}
	for _, a := range aggs {
		ctx.Aggregates[a.AccountCode] = a
		g := ctx.Groups[accounts.GroupOf(a.AccountCode)]
		g.Debit = g.Debit.Add(a.Debit)
		g.Credit = g.Credit.Add(a.Credit)
		ctx.Groups[accounts.GroupOf(a.AccountCode)] = g
	}
	return ctx
}

// BalanceForRoot sums the net (debit minus credit) balance of every
// account under the given chart root.
func (c Context) BalanceForRoot(root string) decimal.Decimal {
	total := decimal.Zero
	for code, a := range c.Aggregates {
		if accounts.HasRoot(code, root) {
			total = total.Add(a.Net())
		}
	}
	return total
}

// TotalAssets is the combined net balance of the asset groups.
func (c Context) TotalAssets() decimal.Decimal {
	return c.Groups[accounts.GroupCurrentAssets].Net().
		Add(c.Groups[accounts.GroupFixedAssets].Net())
}

// Revenue is the net credit balance of the revenue group.
func (c Context) Revenue() decimal.Decimal {
	g := c.Groups[accounts.GroupRevenue]
	return g.Credit.Sub(g.Debit)
}

// Rule is one entry of the catalogue. Evaluate returns nil when the rule
// does not trigger.
type Rule struct {
	ID          string
	AccountCode string
	Evaluate    func(Context) *models.CriticalAccountFinding
}

// Engine runs every rule of its catalogue on every evaluation,
// independently and without short-circuiting.
type Engine struct {
	catalogue []Rule
}

// NewEngine builds a rule engine. With no rules given it carries the
// default catalogue.
func NewEngine(catalogue ...Rule) *Engine {
	if len(catalogue) == 0 {
		catalogue = DefaultCatalogue()
	}
	return &Engine{catalogue: catalogue}
}

// Evaluate runs the whole catalogue and collects triggered findings in
// catalogue order. No trigger means an empty list, not an error.
func (e *Engine) Evaluate(ctx Context) []models.CriticalAccountFinding {
	findings := make([]models.CriticalAccountFinding, 0)
	for _, rule := range e.catalogue {
		if f := rule.Evaluate(ctx); f != nil {
			f.RuleID = rule.ID
			if f.AccountCode == "" {
				f.AccountCode = rule.AccountCode
			}
			findings = append(findings, *f)
		}
	}
	return findings
}
