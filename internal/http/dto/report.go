package dto

import (
	"time"

	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/model"
)

type ReportResponse struct {
	ID            int64                `json:"id,string"`
	TemplateID    int64                `json:"template_id,string"`
	OverallStatus engine.OverallStatus `json:"overall_status"`
	RiskScore     float64              `json:"risk_score"`
	Report        engine.Report        `json:"report"`
	IsUploaded    bool                 `json:"is_uploaded"`
	CreatedAt     time.Time            `json:"created_at"`
}

func ToReportResponse(r *model.QAReport) *ReportResponse {
	return &ReportResponse{
		ID:            r.ID,
		TemplateID:    r.TemplateID,
		OverallStatus: r.OverallStatus,
		RiskScore:     r.RiskScore,
		Report:        r.ReportData,
		IsUploaded:    r.IsUploaded,
		CreatedAt:     r.CreatedAt,
	}
}
