package rules

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func agg(code string, debit, credit string) models.AccountAggregate {
	return models.AccountAggregate{AccountCode: code, Debit: dec(debit), Credit: dec(credit)}
}

func findByRule(findings []models.CriticalAccountFinding, id string) *models.CriticalAccountFinding {
	for i := range findings {
		if findings[i].RuleID == id {
			return &findings[i]
		}
	}
	return nil
}

func TestNegativeCashIsCritical(t *testing.T) {
	ctx := NewContext([]models.AccountAggregate{
		agg("100", "900", "1000"), // net -100
		agg("600", "0", "5000"),
	})
	findings := NewEngine().Evaluate(ctx)

	f := findByRule(findings, "KASA_NEGATIVE")
	if f == nil {
		t.Fatal("expected KASA_NEGATIVE finding")
	}
	if f.Severity != models.FindingCritical {
		t.Fatalf("expected critical, got %s", f.Severity)
	}
	if !f.Balance.Equal(dec("-100")) {
		t.Fatalf("balance expected -100, got %s", f.Balance)
	}
	if f.AccountCode != "100" {
		t.Fatalf("account code expected 100, got %s", f.AccountCode)
	}
}

func TestCashShareOfAssets(t *testing.T) {
	// Cash 20, total assets 100: 20% > 15% critical tier.
	ctx := NewContext([]models.AccountAggregate{
		agg("100", "20", "0"),
		agg("153", "80", "0"),
	})
	f := findByRule(NewEngine().Evaluate(ctx), "KASA_RATIO")
	if f == nil || f.Severity != models.FindingCritical {
		t.Fatalf("expected critical cash-ratio finding, got %+v", f)
	}

	// Cash 10 of 100: warning tier only.
	ctx = NewContext([]models.AccountAggregate{
		agg("100", "10", "0"),
		agg("153", "90", "0"),
	})
	f = findByRule(NewEngine().Evaluate(ctx), "KASA_RATIO")
	if f == nil || f.Severity != models.FindingWarning {
		t.Fatalf("expected warning cash-ratio finding, got %+v", f)
	}

	// Cash 4 of 100: no finding.
	ctx = NewContext([]models.AccountAggregate{
		agg("100", "4", "0"),
		agg("153", "96", "0"),
	})
	if f = findByRule(NewEngine().Evaluate(ctx), "KASA_RATIO"); f != nil {
		t.Fatalf("expected no cash-ratio finding at 4%%, got %+v", f)
	}
}

func TestSupplierDebitBalanceIsCritical(t *testing.T) {
	ctx := NewContext([]models.AccountAggregate{
		agg("320.01", "8000", "5000"), // suppliers net debit 3000
	})
	f := findByRule(NewEngine().Evaluate(ctx), "SATICILAR_DEBIT")
	if f == nil || f.Severity != models.FindingCritical {
		t.Fatalf("expected critical supplier finding, got %+v", f)
	}
	if !f.Balance.Equal(dec("3000")) {
		t.Fatalf("balance expected 3000, got %s", f.Balance)
	}
}

func TestShareholderReceivableVsCapital(t *testing.T) {
	ctx := NewContext([]models.AccountAggregate{
		agg("131", "25000", "0"),
		agg("500", "0", "100000"),
	})
	f := findByRule(NewEngine().Evaluate(ctx), "ORTAKLAR_SERMAYE")
	if f == nil {
		t.Fatal("expected shareholder-receivable finding above 10% of capital")
	}
	if !f.RegulatoryRisk {
		t.Fatal("expected regulatory_risk_flag set")
	}
	if f.Threshold == nil || !f.Threshold.Equal(dec("10000")) {
		t.Fatalf("threshold expected 10000, got %v", f.Threshold)
	}

	// At exactly 10% no finding.
	ctx = NewContext([]models.AccountAggregate{
		agg("131", "10000", "0"),
		agg("500", "0", "100000"),
	})
	if f = findByRule(NewEngine().Evaluate(ctx), "ORTAKLAR_SERMAYE"); f != nil {
		t.Fatalf("expected no finding at the 10%% boundary, got %+v", f)
	}
}

func TestCollectionDays(t *testing.T) {
	// Receivables 30000, revenue 100000: 109.5 days > 90.
	ctx := NewContext([]models.AccountAggregate{
		agg("120", "30000", "0"),
		agg("600", "0", "100000"),
	})
	f := findByRule(NewEngine().Evaluate(ctx), "TAHSILAT_SURESI")
	if f == nil || f.Severity != models.FindingWarning {
		t.Fatalf("expected collection-days warning, got %+v", f)
	}

	// Zero revenue: rule stays silent instead of dividing by zero.
	ctx = NewContext([]models.AccountAggregate{agg("120", "30000", "0")})
	if f = findByRule(NewEngine().Evaluate(ctx), "TAHSILAT_SURESI"); f != nil {
		t.Fatalf("expected no finding without revenue, got %+v", f)
	}
}

func TestNoTriggersYieldsEmptyList(t *testing.T) {
	ctx := NewContext([]models.AccountAggregate{
		agg("100", "4", "0"),
		agg("153", "96", "0"),
		agg("320", "0", "50"),
	})
	findings := NewEngine().Evaluate(ctx)
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestCatalogueIsExtensible(t *testing.T) {
	custom := Rule{
		ID:          "ALWAYS",
		AccountCode: "999",
		Evaluate: func(Context) *models.CriticalAccountFinding {
			return &models.CriticalAccountFinding{Severity: models.FindingWarning, Message: "always triggers"}
		},
	}
	findings := NewEngine(custom).Evaluate(NewContext(nil))
	if len(findings) != 1 || findings[0].RuleID != "ALWAYS" || findings[0].AccountCode != "999" {
		t.Fatalf("custom rule not evaluated: %+v", findings)
	}
}
