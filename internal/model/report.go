package model

import (
	"time"

	"proofcheck.app/server/internal/engine"
)

// QAReport is a persisted evaluation result. ReportData holds the full
// engine.Report; OverallStatus and RiskScore are denormalized for listing and
// filtering without decoding the report body.
type QAReport struct {
	ID            int64                `json:"id"`
	TemplateID    int64                `json:"template_id"`
	OverallStatus engine.OverallStatus `json:"overall_status"`
	RiskScore     float64              `json:"risk_score"`
	ReportData    engine.Report        `json:"report_data"`
	IsUploaded    bool                 `json:"is_uploaded"`
	CreatedAt     time.Time            `json:"created_at"`
}
