package events

import "time"

// ReconciliationCompleted is published after every finished run so that
// downstream consumers (reporting, notifications) can react without
// polling the API.
type ReconciliationCompleted struct {
	ReportID         string    `json:"report_id"`
	ClientID         string    `json:"client_id"`
	PeriodID         string    `json:"period_id"`
	OverallStatus    string    `json:"overall_status"`
	CriticalFindings int       `json:"critical_findings"`
	FailedChecks     int       `json:"failed_checks"`
	GeneratedAt      time.Time `json:"generated_at"`
}
