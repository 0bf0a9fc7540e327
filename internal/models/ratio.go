package models

import "github.com/shopspring/decimal"

// RatioUnit is how a ratio value should be read.
type RatioUnit string

const (
	UnitRatio   RatioUnit = "ratio"
	UnitPercent RatioUnit = "percent"
	UnitDays    RatioUnit = "days"
)

// NormalRange bounds a ratio's healthy band. A nil bound is open.
type NormalRange struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

// FinancialRatio is one computed ratio with its classification.
type FinancialRatio struct {
	Name        string          `json:"name"`
	Formula     string          `json:"formula_description"`
	Value       decimal.Decimal `json:"value"`
	Unit        RatioUnit       `json:"unit"`
	NormalRange NormalRange     `json:"normal_range"`
	Status      FindingSeverity `json:"status"`
}
