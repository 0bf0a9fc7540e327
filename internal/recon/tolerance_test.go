package recon

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTolerance_BoundaryExact(t *testing.T) {
	tol := DefaultTolerance() // Abs = 1

	// A difference of exactly the tolerance passes.
	if !tol.Within(dec("100"), dec("101")) {
		t.Fatal("difference equal to tolerance must pass")
	}
	// One smallest unit beyond fails.
	if tol.Within(dec("100"), dec("101.01")) {
		t.Fatal("difference beyond tolerance must fail")
	}
}

func TestTolerance_RelativeComponent(t *testing.T) {
	tol := Tolerance{Abs: dec("1"), Rel: dec("0.01")} // 1%

	// 1% of 100000 is 1000, well above the absolute floor.
	if !tol.Within(dec("100000"), dec("100900")) {
		t.Fatal("difference within relative tolerance must pass")
	}
	if tol.Within(dec("100000"), dec("101100")) {
		t.Fatal("difference beyond relative tolerance must fail")
	}
}

func TestTolerance_ZeroRelKeepsAbsoluteFloor(t *testing.T) {
	tol := DefaultTolerance()
	if !tol.Within(dec("50000"), dec("50000.01")) {
		t.Fatal("0.01 difference within absolute tolerance 1 must pass")
	}
}
