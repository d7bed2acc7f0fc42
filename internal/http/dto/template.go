package dto

import (
	"time"

	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/model"
)

type CreateTemplateRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=255"`
	HTMLContent string          `json:"html_content" binding:"required"`
	Metadata    engine.Metadata `json:"metadata"`
	Filename    string          `json:"filename,omitempty" binding:"omitempty,max=512"`
}

type TemplateResponse struct {
	ID        int64                `json:"id,string"`
	Name      string               `json:"name"`
	Status    model.TemplateStatus `json:"status"`
	Metadata  engine.Metadata      `json:"metadata"`
	CreatedAt time.Time            `json:"created_at"`
}

// TemplateDetailResponse includes the stored markup; list endpoints omit it.
type TemplateDetailResponse struct {
	TemplateResponse
	HTMLContent string `json:"html_content"`
}

func ToTemplateResponse(t *model.EmailTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Status:    t.Status,
		Metadata:  t.Metadata,
		CreatedAt: t.CreatedAt,
	}
}

func ToTemplateDetailResponse(t *model.EmailTemplate) *TemplateDetailResponse {
	return &TemplateDetailResponse{
		TemplateResponse: *ToTemplateResponse(t),
		HTMLContent:      t.HTMLContent,
	}
}

func ToTemplateListResponse(templates []model.EmailTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		out = append(out, *ToTemplateResponse(&templates[i]))
	}
	return out
}
