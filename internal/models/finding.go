package models

import "github.com/shopspring/decimal"

// FindingSeverity grades critical-account findings and ratio statuses.
type FindingSeverity string

const (
	FindingNormal   FindingSeverity = "normal"
	FindingWarning  FindingSeverity = "warning"
	FindingCritical FindingSeverity = "critical"
)

// CriticalAccountFinding is one triggered rule from the critical-account
// catalogue. Stateless, recomputed every run.
type CriticalAccountFinding struct {
	RuleID         string           `json:"rule_id"`
	AccountCode    string           `json:"account_code"`
	Severity       FindingSeverity  `json:"severity"`
	Balance        decimal.Decimal  `json:"balance"`
	Threshold      *decimal.Decimal `json:"threshold,omitempty"`
	Message        string           `json:"message"`
	Recommendation string           `json:"recommendation"`
	RegulatoryRisk bool             `json:"regulatory_risk_flag"`
}
