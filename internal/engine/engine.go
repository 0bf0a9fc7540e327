// Package engine orchestrates one reconciliation run: it validates the
// input snapshot, aggregates each source once, fans the four checks, the
// rule catalogue and the ratio set out in parallel and assembles the
// report. Everything past validation is pure; two runs over the same
// snapshot differ only in report id and timestamp.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cemsak/lyntos-updated-sub006/internal/aggregate"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
	"github.com/cemsak/lyntos-updated-sub006/internal/opening"
	"github.com/cemsak/lyntos-updated-sub006/internal/ratios"
	"github.com/cemsak/lyntos-updated-sub006/internal/recon"
	"github.com/cemsak/lyntos-updated-sub006/internal/rules"
)

// ErrInvalidSnapshot wraps every input-shape rejection. The run never
// computes partially: a malformed record rejects the whole snapshot.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Config carries the tunable knobs of a run.
type Config struct {
	Tolerance          recon.Tolerance
	LargeDiffThreshold decimal.Decimal
}

// Engine is safe for concurrent use; it holds no per-run state.
type Engine struct {
	recon    *recon.Engine
	rules    *rules.Engine
	tol      recon.Tolerance
	validate *validator.Validate
	logger   *logrus.Logger
}

// New wires an engine with the default rule catalogue.
func New(cfg Config, logger *logrus.Logger) *Engine {
	tol := cfg.Tolerance
	if tol.Abs.IsZero() && tol.Rel.IsZero() {
		tol = recon.DefaultTolerance()
	}
	return &Engine{
		recon:    recon.New(tol, cfg.LargeDiffThreshold),
		rules:    rules.NewEngine(),
		tol:      tol,
		validate: validator.New(),
		logger:   logger,
	}
}

// Run executes the full check, rule and ratio set over one snapshot.
func (e *Engine) Run(ctx context.Context, snap models.Snapshot) (*models.Report, error) {
	if err := e.validateSnapshot(snap); err != nil {
		return nil, err
	}

	report := &models.Report{
		ID:          uuid.New().String(),
		ClientID:    snap.ClientID,
		PeriodID:    snap.PeriodID,
		GeneratedAt: time.Now().UTC(),
	}

	if len(snap.Journal) == 0 && len(snap.Ledger) == 0 && len(snap.TrialBalance) == 0 {
		report.BalanceChecks = []models.CheckResult{
			noDataCheck(models.CheckJournalBalance),
			noDataCheck(models.CheckTrialBalanceBalance),
		}
		report.ReconciliationChecks = []models.CheckResult{
			noDataCheck(models.CheckJournalVsLedger),
			noDataCheck(models.CheckLedgerVsTrialBalance),
		}
		report.ComparisonRowsC2 = []models.ComparisonRow{}
		report.ComparisonRowsC3 = []models.ComparisonRow{}
		report.CriticalFindings = []models.CriticalAccountFinding{}
		report.Ratios = []models.FinancialRatio{}
		report.OpeningBalance = opening.BuildStatus(snap.Opening, snap.OpeningSourceKind, snap.FiscalYear, e.tol)
		report.Summary = models.Summary{TotalChecks: 4, OverallStatus: models.OverallNoData}
		return report, nil
	}

	// One reduction per source; the snapshot is immutable from here on.
	journal := aggregate.ReduceJournal(snap.Journal)
	ledger := aggregate.ReduceLedger(snap.Ledger)
	trialBalance := aggregate.ReduceTrialBalance(snap.TrialBalance)
	ruleCtx := rules.NewContext(trialBalance.Accounts)
	ratioIn := ratios.InputsFromAggregates(trialBalance.Accounts)

	// Checks, rules and ratios are independent pure functions; run them
	// across goroutines and collect into distinct result slots.
	var (
		c1, c2, c3, c4 models.CheckResult
		findings       []models.CriticalAccountFinding
		ratioList      []models.FinancialRatio
		openingStatus  models.OpeningBalanceStatus
		wg             sync.WaitGroup
	)
	wg.Add(7)
	go func() { defer wg.Done(); c1 = e.recon.JournalBalance(journal) }()
	go func() { defer wg.Done(); c2 = e.recon.JournalVsLedger(journal, ledger) }()
	go func() { defer wg.Done(); c3 = e.recon.LedgerVsTrialBalance(ledger, trialBalance) }()
	go func() { defer wg.Done(); c4 = e.recon.TrialBalanceBalance(trialBalance) }()
	go func() { defer wg.Done(); findings = e.rules.Evaluate(ruleCtx) }()
	go func() { defer wg.Done(); ratioList = ratios.Compute(ratioIn) }()
	go func() {
		defer wg.Done()
		openingStatus = opening.BuildStatus(snap.Opening, snap.OpeningSourceKind, snap.FiscalYear, e.tol)
	}()
	wg.Wait()

	report.BalanceChecks = []models.CheckResult{c1, c4}
	report.ReconciliationChecks = []models.CheckResult{c2, c3}
	report.ComparisonRowsC2 = rowsOrEmpty(c2.Rows)
	report.ComparisonRowsC3 = rowsOrEmpty(c3.Rows)
	report.CriticalFindings = findings
	report.Ratios = ratioList
	report.OpeningBalance = openingStatus
	report.Summary = summarize(report)

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"module":    "engine",
			"client_id": snap.ClientID,
			"period_id": snap.PeriodID,
			"report_id": report.ID,
			"status":    report.Summary.OverallStatus,
			"critical":  report.Summary.Critical,
		}).Info("reconciliation run completed")
	}
	return report, nil
}

// validateSnapshot is the single boundary pass: struct tags via the
// validator plus the non-negativity invariant the tags cannot express.
func (e *Engine) validateSnapshot(snap models.Snapshot) error {
	if err := e.validate.Struct(snap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	for i, l := range snap.Journal {
		if err := e.validate.Struct(l); err != nil {
			return fmt.Errorf("%w: journal line %d: %v", ErrInvalidSnapshot, i, err)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: journal line %d: negative amount", ErrInvalidSnapshot, i)
		}
	}
	for i, l := range snap.Ledger {
		if err := e.validate.Struct(l); err != nil {
			return fmt.Errorf("%w: ledger line %d: %v", ErrInvalidSnapshot, i, err)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: ledger line %d: negative amount", ErrInvalidSnapshot, i)
		}
		if l.Month < 0 || l.Month > time.December {
			return fmt.Errorf("%w: ledger line %d: month out of range", ErrInvalidSnapshot, i)
		}
	}
	for i, r := range snap.TrialBalance {
		if err := e.validate.Struct(r); err != nil {
			return fmt.Errorf("%w: trial balance row %d: %v", ErrInvalidSnapshot, i, err)
		}
		if r.Debit.IsNegative() || r.Credit.IsNegative() {
			return fmt.Errorf("%w: trial balance row %d: negative amount", ErrInvalidSnapshot, i)
		}
	}
	for i, l := range snap.Opening {
		if err := e.validate.Struct(l); err != nil {
			return fmt.Errorf("%w: opening line %d: %v", ErrInvalidSnapshot, i, err)
		}
	}
	return nil
}

// summarize rolls the run up into counts and the worst overall status
// (CRITICAL > FAIL > WARNING > PASS). A per-check NO_DATA counts as a
// failure: a missing source is an error condition, not a pass.
func summarize(r *models.Report) models.Summary {
	s := models.Summary{TotalChecks: 4}
	worst := models.OverallPass

	checks := append(append([]models.CheckResult{}, r.BalanceChecks...), r.ReconciliationChecks...)
	for _, c := range checks {
		if c.Passed {
			s.Passed++
		}
		switch c.Severity {
		case models.SeverityCritical:
			s.Critical++
			worst = worse(worst, models.OverallCritical)
		case models.SeverityError, models.SeverityNoData:
			s.Errors++
			worst = worse(worst, models.OverallFail)
		case models.SeverityWarning:
			s.Warnings++
			worst = worse(worst, models.OverallWarning)
		}
	}
	for _, f := range r.CriticalFindings {
		switch f.Severity {
		case models.FindingCritical:
			s.Critical++
			worst = worse(worst, models.OverallCritical)
		case models.FindingWarning:
			s.Warnings++
			worst = worse(worst, models.OverallWarning)
		}
	}
	for _, ratio := range r.Ratios {
		switch ratio.Status {
		case models.FindingCritical:
			s.Critical++
			worst = worse(worst, models.OverallCritical)
		case models.FindingWarning:
			s.Warnings++
			worst = worse(worst, models.OverallWarning)
		}
	}

	s.OverallStatus = worst
	return s
}

var statusRank = map[models.OverallStatus]int{
	models.OverallPass:     0,
	models.OverallWarning:  1,
	models.OverallFail:     2,
	models.OverallCritical: 3,
}

func worse(a, b models.OverallStatus) models.OverallStatus {
	if statusRank[b] > statusRank[a] {
		return b
	}
	return a
}

func noDataCheck(t models.CheckType) models.CheckResult {
	return models.CheckResult{Type: t, Severity: models.SeverityNoData, Message: "no source data for the period"}
}

func rowsOrEmpty(rows []models.ComparisonRow) []models.ComparisonRow {
	if rows == nil {
		return []models.ComparisonRow{}
	}
	return rows
}
