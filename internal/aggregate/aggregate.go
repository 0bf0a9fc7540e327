// Package aggregate reduces line-level records from the three bookkeeping
// sources into per-account aggregates and per-source global totals.
// Pure summation: output does not depend on input order.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

// VoucherTotals are one journal voucher's summed sides, kept for the
// per-voucher balance check.
type VoucherTotals struct {
	VoucherID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// Journal is the reduced journal: per-account aggregates, global totals
// and per-voucher totals.
type Journal struct {
	Accounts []models.AccountAggregate
	Totals   models.SourceTotals
	Vouchers []VoucherTotals
}

// Ledger is the reduced general ledger. MonthDebits holds per-month debit
// subtotals when the source carries a monthly breakdown; Months lists the
// covered months in calendar order.
type Ledger struct {
	Accounts    []models.AccountAggregate
	Totals      models.SourceTotals
	MonthDebits map[time.Month]decimal.Decimal
	Months      []time.Month
}

// TrialBalance is the reduced trial balance.
type TrialBalance struct {
	Accounts []models.AccountAggregate
	Totals   models.SourceTotals
}

type accumulator struct {
	byCode map[string]*models.AccountAggregate
	debit  decimal.Decimal
	credit decimal.Decimal
	lines  int
}

func newAccumulator() *accumulator {
	return &accumulator{byCode: make(map[string]*models.AccountAggregate)}
}

func (a *accumulator) add(code, name string, debit, credit decimal.Decimal) {
	agg, ok := a.byCode[code]
	if !ok {
		agg = &models.AccountAggregate{AccountCode: code}
		a.byCode[code] = agg
	}
	if agg.AccountName == "" {
		agg.AccountName = name
	}
	agg.Debit = agg.Debit.Add(debit)
	agg.Credit = agg.Credit.Add(credit)
	agg.LineCount++
	a.debit = a.debit.Add(debit)
	a.credit = a.credit.Add(credit)
	a.lines++
}

// accounts returns the aggregates sorted by account code so that every
// run over the same snapshot emits them in the same order.
func (a *accumulator) accounts() []models.AccountAggregate {
	out := make([]models.AccountAggregate, 0, len(a.byCode))
	for _, agg := range a.byCode {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountCode < out[j].AccountCode })
	return out
}

func (a *accumulator) totals(source models.Source) models.SourceTotals {
	return models.SourceTotals{
		Source:     source,
		Debit:      a.debit,
		Credit:     a.credit,
		Difference: a.debit.Sub(a.credit),
		LineCount:  a.lines,
	}
}

// ReduceJournal groups journal lines by account and by voucher.
func ReduceJournal(lines []models.JournalLine) Journal {
	acc := newAccumulator()
	byVoucher := make(map[string]*VoucherTotals)
	for _, l := range lines {
		acc.add(l.AccountCode, "", l.Debit, l.Credit)
		v, ok := byVoucher[l.VoucherID]
		if !ok {
			v = &VoucherTotals{VoucherID: l.VoucherID}
			byVoucher[l.VoucherID] = v
		}
		v.Debit = v.Debit.Add(l.Debit)
		v.Credit = v.Credit.Add(l.Credit)
	}

	vouchers := make([]VoucherTotals, 0, len(byVoucher))
	for _, v := range byVoucher {
		vouchers = append(vouchers, *v)
	}
	sort.Slice(vouchers, func(i, j int) bool { return vouchers[i].VoucherID < vouchers[j].VoucherID })

	totals := acc.totals(models.SourceJournal)
	totals.VoucherCount = len(vouchers)
	return Journal{Accounts: acc.accounts(), Totals: totals, Vouchers: vouchers}
}

// ReduceLedger groups ledger postings by account and collects per-month
// debit subtotals for the period-mismatch heuristic.
func ReduceLedger(lines []models.LedgerLine) Ledger {
	acc := newAccumulator()
	monthDebits := make(map[time.Month]decimal.Decimal)
	for _, l := range lines {
		acc.add(l.AccountCode, l.AccountName, l.Debit, l.Credit)
		if l.Month >= time.January && l.Month <= time.December {
			monthDebits[l.Month] = monthDebits[l.Month].Add(l.Debit)
		}
	}

	months := make([]time.Month, 0, len(monthDebits))
	for m := range monthDebits {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	return Ledger{
		Accounts:    acc.accounts(),
		Totals:      acc.totals(models.SourceLedger),
		MonthDebits: monthDebits,
		Months:      months,
	}
}

// ReduceTrialBalance groups trial-balance rows by account.
func ReduceTrialBalance(rows []models.TrialBalanceRow) TrialBalance {
	acc := newAccumulator()
	for _, r := range rows {
		acc.add(r.AccountCode, r.AccountName, r.Debit, r.Credit)
	}
	return TrialBalance{Accounts: acc.accounts(), Totals: acc.totals(models.SourceTrialBalance)}
}

// ReduceOpening groups opening-balance lines by account.
func ReduceOpening(lines []models.OpeningBalanceLine) ([]models.AccountAggregate, models.SourceTotals) {
	acc := newAccumulator()
	for _, l := range lines {
		acc.add(l.AccountCode, "", l.Debit, l.Credit)
	}
	return acc.accounts(), acc.totals(models.Source("OPENING"))
}
