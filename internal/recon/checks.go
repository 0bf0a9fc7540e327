// Package recon implements the four three-way reconciliation checks:
// C1 journal self-balance, C4 trial-balance self-balance, C2 journal vs
// ledger and C3 ledger vs trial balance. Every check is a pure function
// over immutable aggregates; findings are values, never errors.
package recon

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/aggregate"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

// Engine carries the tolerance policy and the large-difference threshold
// that escalates a DIFFERS row from WARNING to CRITICAL.
type Engine struct {
	tol       Tolerance
	largeDiff decimal.Decimal
}

// DefaultLargeDiffThreshold is the escalation threshold in currency units.
// Kept configurable: the authoritative figure must be confirmed against
// the source regulation before bit-exact audits.
var DefaultLargeDiffThreshold = decimal.NewFromInt(100)

// New builds a reconciliation engine. A zero largeDiff falls back to the
// default threshold.
func New(tol Tolerance, largeDiff decimal.Decimal) *Engine {
	if largeDiff.IsZero() {
		largeDiff = DefaultLargeDiffThreshold
	}
	return &Engine{tol: tol, largeDiff: largeDiff}
}

// JournalBalance is check C1: the journal's global debit and credit must
// agree, and every voucher must balance on its own. A voucher imbalance is
// CRITICAL even when the global totals net out — offsetting errors must
// never be masked by a balanced grand total.
func (e *Engine) JournalBalance(j aggregate.Journal) models.CheckResult {
	if j.Totals.LineCount == 0 {
		return noData(models.CheckJournalBalance, "journal carries no lines for the period")
	}

	res := models.CheckResult{
		Type:         models.CheckJournalBalance,
		TotalAbsDiff: j.Totals.Difference.Abs(),
	}
	res.Passed = e.tol.Within(j.Totals.Debit, j.Totals.Credit)

	for _, v := range j.Vouchers {
		if !e.tol.Within(v.Debit, v.Credit) {
			res.UnbalancedVouchers = append(res.UnbalancedVouchers, models.VoucherImbalance{
				VoucherID:  v.VoucherID,
				Debit:      v.Debit,
				Credit:     v.Credit,
				Difference: v.Debit.Sub(v.Credit),
			})
		}
	}

	switch {
	case len(res.UnbalancedVouchers) > 0:
		res.Severity = models.SeverityCritical
		res.Message = fmt.Sprintf("%d voucher(s) do not balance internally", len(res.UnbalancedVouchers))
	case !res.Passed:
		res.Severity = models.SeverityCritical
		res.Message = fmt.Sprintf("journal debit/credit totals differ by %s", j.Totals.Difference.Abs())
	default:
		res.Severity = models.SeverityOK
		res.Message = fmt.Sprintf("journal balanced: %d lines in %d vouchers", j.Totals.LineCount, j.Totals.VoucherCount)
	}
	return res
}

// TrialBalanceBalance is check C4: the trial balance's own debit and
// credit totals must agree within tolerance. No voucher grouping here.
func (e *Engine) TrialBalanceBalance(tb aggregate.TrialBalance) models.CheckResult {
	if tb.Totals.LineCount == 0 {
		return noData(models.CheckTrialBalanceBalance, "trial balance carries no rows for the period")
	}

	res := models.CheckResult{
		Type:         models.CheckTrialBalanceBalance,
		TotalAbsDiff: tb.Totals.Difference.Abs(),
	}
	res.Passed = e.tol.Within(tb.Totals.Debit, tb.Totals.Credit)
	if res.Passed {
		res.Severity = models.SeverityOK
		res.Message = fmt.Sprintf("trial balance balanced across %d accounts", len(tb.Accounts))
	} else {
		res.Severity = models.SeverityCritical
		res.Message = fmt.Sprintf("trial balance debit/credit totals differ by %s", tb.Totals.Difference.Abs())
	}
	return res
}

// JournalVsLedger is check C2: every account's journal aggregate must
// match its ledger aggregate.
func (e *Engine) JournalVsLedger(j aggregate.Journal, l aggregate.Ledger) models.CheckResult {
	if j.Totals.LineCount == 0 || l.Totals.LineCount == 0 {
		return noData(models.CheckJournalVsLedger, "journal or ledger carries no rows for the period")
	}
	res := e.compare(j.Accounts, l.Accounts)
	res.Type = models.CheckJournalVsLedger
	res.Message = compareMessage("journal", "ledger", res)
	return res
}

// LedgerVsTrialBalance is check C3: every account's ledger aggregate must
// match its trial-balance row. On failure the period-mismatch heuristic
// runs and, when it localizes a candidate month, attaches its descriptor
// alongside (never instead of) the raw difference.
func (e *Engine) LedgerVsTrialBalance(l aggregate.Ledger, tb aggregate.TrialBalance) models.CheckResult {
	if l.Totals.LineCount == 0 || tb.Totals.LineCount == 0 {
		return noData(models.CheckLedgerVsTrialBalance, "ledger or trial balance carries no rows for the period")
	}
	res := e.compare(l.Accounts, tb.Accounts)
	res.Type = models.CheckLedgerVsTrialBalance
	res.Message = compareMessage("ledger", "trial balance", res)
	if !res.Passed {
		res.PeriodMismatch = e.suspectMissingMonth(l, tb)
	}
	return res
}

// compare unions the account codes of both sides and classifies each as
// MATCHED, DIFFERS, ONLY_IN_SOURCE or ONLY_IN_TARGET. Debit and credit
// are compared independently. Rows come out sorted by account code.
func (e *Engine) compare(source, target []models.AccountAggregate) models.CheckResult {
	srcByCode := make(map[string]models.AccountAggregate, len(source))
	for _, a := range source {
		srcByCode[a.AccountCode] = a
	}
	tgtByCode := make(map[string]models.AccountAggregate, len(target))
	for _, a := range target {
		tgtByCode[a.AccountCode] = a
	}

	codes := make([]string, 0, len(srcByCode)+len(tgtByCode))
	for code := range srcByCode {
		codes = append(codes, code)
	}
	for code := range tgtByCode {
		if _, dup := srcByCode[code]; !dup {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	res := models.CheckResult{Rows: make([]models.ComparisonRow, 0, len(codes))}
	escalate := false
	for _, code := range codes {
		s, inSource := srcByCode[code]
		tgt, inTarget := tgtByCode[code]

		row := models.ComparisonRow{
			AccountCode:  code,
			AccountName:  firstNonEmpty(s.AccountName, tgt.AccountName),
			SourceDebit:  s.Debit,
			SourceCredit: s.Credit,
			TargetDebit:  tgt.Debit,
			TargetCredit: tgt.Credit,
			DebitDiff:    s.Debit.Sub(tgt.Debit),
			CreditDiff:   s.Credit.Sub(tgt.Credit),
		}

		switch {
		case !inTarget:
			// Present on one side only: missing period data, not a footnote.
			row.Status = models.RowOnlyInSource
			res.MissingCount++
		case !inSource:
			row.Status = models.RowOnlyInTarget
			res.MissingCount++
		case e.tol.Within(s.Debit, tgt.Debit) && e.tol.Within(s.Credit, tgt.Credit):
			row.Status = models.RowMatched
			res.MatchedCount++
		default:
			row.Status = models.RowDiffers
			res.DiffersCount++
			if row.DebitDiff.Abs().GreaterThan(e.largeDiff) || row.CreditDiff.Abs().GreaterThan(e.largeDiff) {
				escalate = true
			}
		}

		if row.Status != models.RowMatched {
			res.TotalAbsDiff = res.TotalAbsDiff.Add(row.DebitDiff.Abs()).Add(row.CreditDiff.Abs())
		}
		res.Rows = append(res.Rows, row)
	}

	res.Passed = res.DiffersCount == 0 && res.MissingCount == 0
	switch {
	case res.MissingCount > 0 || escalate:
		res.Severity = models.SeverityCritical
	case res.DiffersCount > 0:
		res.Severity = models.SeverityWarning
	default:
		res.Severity = models.SeverityOK
	}
	return res
}

// suspectMissingMonth tests, for each month the ledger covers, whether the
// ledger total minus that month's debit subtotal lands on the trial-balance
// total within tolerance. Best effort: returns nil when no single month
// explains the gap or the ledger has no monthly breakdown to work with.
func (e *Engine) suspectMissingMonth(l aggregate.Ledger, tb aggregate.TrialBalance) *models.PeriodMismatch {
	if len(l.Months) < 2 {
		return nil
	}
	if !l.Totals.Debit.GreaterThan(tb.Totals.Debit) {
		return nil
	}
	for _, m := range l.Months {
		monthDebit := l.MonthDebits[m]
		if monthDebit.IsZero() {
			continue
		}
		if e.tol.Within(l.Totals.Debit.Sub(monthDebit), tb.Totals.Debit) {
			return &models.PeriodMismatch{
				SuspectedMissingMonth: m,
				MonthDebit:            monthDebit,
				Explanation: fmt.Sprintf(
					"ledger total debit excluding %s (%s) matches the trial balance total (%s); %s activity may be missing from the trial balance",
					m, l.Totals.Debit.Sub(monthDebit), tb.Totals.Debit, m),
			}
		}
	}
	return nil
}

func compareMessage(source, target string, res models.CheckResult) string {
	if res.Passed {
		return fmt.Sprintf("%s and %s agree on all %d accounts", source, target, res.MatchedCount)
	}
	return fmt.Sprintf("%s vs %s: %d matched, %d differ, %d missing on one side, total absolute difference %s",
		source, target, res.MatchedCount, res.DiffersCount, res.MissingCount, res.TotalAbsDiff)
}

func noData(t models.CheckType, msg string) models.CheckResult {
	return models.CheckResult{Type: t, Severity: models.SeverityNoData, Passed: false, Message: msg}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
