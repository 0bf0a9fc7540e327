package ratios

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ratioByName(list []models.FinancialRatio, name string) *models.FinancialRatio {
	for i := range list {
		if list[i].Name == name {
			return &list[i]
		}
	}
	return nil
}

func TestCurrentRatioBoundary(t *testing.T) {
	// 1.5 exactly is normal.
	r := ratioByName(Compute(Inputs{
		CurrentAssets:        dec("150"),
		ShortTermLiabilities: dec("100"),
	}), "current_ratio")
	if r == nil || r.Status != models.FindingNormal {
		t.Fatalf("current ratio 1.5 expected normal, got %+v", r)
	}
	if !r.Value.Equal(dec("1.5")) {
		t.Fatalf("value expected 1.5, got %s", r.Value)
	}

	// 1.4999 drops to warning.
	r = ratioByName(Compute(Inputs{
		CurrentAssets:        dec("149.99"),
		ShortTermLiabilities: dec("100"),
	}), "current_ratio")
	if r == nil || r.Status != models.FindingWarning {
		t.Fatalf("current ratio 1.4999 expected warning, got %+v", r)
	}

	// 0.8 is critical.
	r = ratioByName(Compute(Inputs{
		CurrentAssets:        dec("80"),
		ShortTermLiabilities: dec("100"),
	}), "current_ratio")
	if r == nil || r.Status != models.FindingCritical {
		t.Fatalf("current ratio 0.8 expected critical, got %+v", r)
	}
}

func TestZeroDenominatorYieldsZeroNotError(t *testing.T) {
	list := Compute(Inputs{CurrentAssets: dec("100")}) // no liabilities at all
	r := ratioByName(list, "current_ratio")
	if r == nil || !r.Value.IsZero() {
		t.Fatalf("zero denominator expected value 0, got %+v", r)
	}
	// The zero value runs through the same classifier.
	if r.Status != models.FindingCritical {
		t.Fatalf("classified zero expected critical for current ratio, got %s", r.Status)
	}
}

func TestDebtToEquityTiers(t *testing.T) {
	cases := []struct {
		liabilities string
		expected    models.FindingSeverity
	}{
		{"80", models.FindingNormal},    // 0.8
		{"150", models.FindingWarning},  // 1.5
		{"250", models.FindingCritical}, // 2.5
	}
	for _, tc := range cases {
		r := ratioByName(Compute(Inputs{
			ShortTermLiabilities: dec(tc.liabilities),
			Equity:               dec("100"),
		}), "debt_to_equity")
		if r == nil || r.Status != tc.expected {
			t.Fatalf("debt/equity with liabilities %s expected %s, got %+v", tc.liabilities, tc.expected, r)
		}
	}
}

func TestAverageCollectionPeriod(t *testing.T) {
	r := ratioByName(Compute(Inputs{
		Receivables: dec("30000"),
		Revenue:     dec("100000"),
	}), "average_collection_period")
	if r == nil {
		t.Fatal("missing average_collection_period")
	}
	if !r.Value.Equal(dec("109.5")) {
		t.Fatalf("expected 109.5 days, got %s", r.Value)
	}
	if r.Unit != models.UnitDays || r.Status != models.FindingWarning {
		t.Fatalf("expected days/warning, got %+v", r)
	}
}

func TestComputeEmitsAllEightRatios(t *testing.T) {
	list := Compute(Inputs{})
	if len(list) != 8 {
		t.Fatalf("expected 8 ratios, got %d", len(list))
	}
	for _, r := range list {
		if r.Name == "" || r.Formula == "" || r.Unit == "" {
			t.Fatalf("incomplete ratio definition: %+v", r)
		}
	}
}

func TestInputsFromAggregates(t *testing.T) {
	aggs := []models.AccountAggregate{
		{AccountCode: "100", Debit: dec("50"), Credit: dec("0")},
		{AccountCode: "120", Debit: dec("200"), Credit: dec("0")},
		{AccountCode: "153", Debit: dec("300"), Credit: dec("0")},
		{AccountCode: "254", Debit: dec("400"), Credit: dec("0")},
		{AccountCode: "320", Debit: dec("0"), Credit: dec("250")},
		{AccountCode: "400", Debit: dec("0"), Credit: dec("100")},
		{AccountCode: "500", Debit: dec("0"), Credit: dec("600")},
		{AccountCode: "600", Debit: dec("0"), Credit: dec("900")},
		{AccountCode: "621", Debit: dec("500"), Credit: dec("0")},
	}
	in := InputsFromAggregates(aggs)

	if !in.CurrentAssets.Equal(dec("550")) {
		t.Fatalf("current assets expected 550, got %s", in.CurrentAssets)
	}
	if !in.Cash.Equal(dec("50")) || !in.Receivables.Equal(dec("200")) || !in.Inventory.Equal(dec("300")) {
		t.Fatalf("liquid splits wrong: %+v", in)
	}
	if !in.ShortTermLiabilities.Equal(dec("250")) || !in.LongTermLiabilities.Equal(dec("100")) {
		t.Fatalf("liability classes wrong: %+v", in)
	}
	if !in.Equity.Equal(dec("600")) || !in.Revenue.Equal(dec("900")) {
		t.Fatalf("equity/revenue wrong: %+v", in)
	}
	if !in.CostOfSales.Equal(dec("500")) {
		t.Fatalf("cost of sales expected 500, got %s", in.CostOfSales)
	}
}
