package accounts

import "testing"

func TestGroupOf(t *testing.T) {
	cases := []struct {
		code     string
		expected Group
	}{
		{"100", GroupCurrentAssets},
		{"153.01", GroupCurrentAssets},
		{"255", GroupFixedAssets},
		{"320", GroupShortTermLiabilities},
		{"400", GroupLongTermLiabilities},
		{"500", GroupEquity},
		{"600", GroupRevenue},
		{"770", GroupCost},
		{"800", GroupExpense},
		{"900", GroupOffBalance},
		{"", GroupOther},
		{"X01", GroupOther},
	}
	for _, tc := range cases {
		if got := GroupOf(tc.code); got != tc.expected {
			t.Fatalf("GroupOf(%q) expected %s, got %s", tc.code, tc.expected, got)
		}
	}
}

func TestNormalSideOf(t *testing.T) {
	cases := []struct {
		code     string
		expected Side
	}{
		{"100", SideDebit},
		{"253", SideDebit},
		{"320", SideCredit},
		{"472", SideCredit},
		{"500", SideCredit},
		{"600", SideCredit},
		{"770", SideDebit},
	}
	for _, tc := range cases {
		if got := NormalSideOf(tc.code); got != tc.expected {
			t.Fatalf("NormalSideOf(%q) expected %s, got %s", tc.code, tc.expected, got)
		}
	}
}

func TestHasRoot(t *testing.T) {
	if !HasRoot("120.01.001", "120") {
		t.Fatal("expected 120.01.001 to match root 120")
	}
	if !HasRoot("120", "120") {
		t.Fatal("expected 120 to match root 120")
	}
	if HasRoot("12", "120") {
		t.Fatal("did not expect 12 to match root 120")
	}
	if HasRoot("121", "120") {
		t.Fatal("did not expect 121 to match root 120")
	}
}
