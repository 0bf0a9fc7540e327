package opening

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/models"
	"github.com/cemsak/lyntos-updated-sub006/internal/recon"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildStatus_BalancedIsGreen(t *testing.T) {
	lines := []models.OpeningBalanceLine{
		{AccountCode: "100", Debit: dec("5000"), SourceKind: models.OpeningFromVoucher},
		{AccountCode: "500", Credit: dec("5000"), SourceKind: models.OpeningFromVoucher},
	}
	s := BuildStatus(lines, "", 2025, recon.DefaultTolerance())

	if !s.HasData || !s.IsBalanced || s.StatusColor != models.StatusGreen {
		t.Fatalf("expected balanced green status, got %+v", s)
	}
	if s.SourceKind != models.OpeningFromVoucher {
		t.Fatalf("source kind expected from lines, got %s", s.SourceKind)
	}
	if s.AccountCount != 2 || s.FiscalYear != 2025 {
		t.Fatalf("metadata wrong: %+v", s)
	}
}

func TestBuildStatus_SmallImbalanceIsYellow(t *testing.T) {
	lines := []models.OpeningBalanceLine{
		{AccountCode: "100", Debit: dec("5008")},
		{AccountCode: "500", Credit: dec("5000")},
	}
	s := BuildStatus(lines, models.OpeningFromTrialBalance, 2025, recon.DefaultTolerance())
	if s.IsBalanced || s.StatusColor != models.StatusYellow {
		t.Fatalf("8-unit imbalance expected yellow, got %+v", s)
	}
}

func TestBuildStatus_LargeImbalanceIsRed(t *testing.T) {
	lines := []models.OpeningBalanceLine{
		{AccountCode: "100", Debit: dec("6000")},
		{AccountCode: "500", Credit: dec("5000")},
	}
	s := BuildStatus(lines, models.OpeningFromManualEntry, 2025, recon.DefaultTolerance())
	if s.StatusColor != models.StatusRed {
		t.Fatalf("1000-unit imbalance expected red, got %+v", s)
	}
}

func TestBuildStatus_NoDataIsRed(t *testing.T) {
	s := BuildStatus(nil, "", 2025, recon.DefaultTolerance())
	if s.HasData || s.StatusColor != models.StatusRed {
		t.Fatalf("missing opening expected red no-data status, got %+v", s)
	}
}
