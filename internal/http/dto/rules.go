package dto

import (
	"time"

	"proofcheck.app/server/internal/model"
)

type UpdateRuleRequest struct {
	Description          string  `json:"description" binding:"omitempty,max=1024"`
	Weight               float64 `json:"weight" binding:"gte=0,lte=100"`
	Priority             int     `json:"priority" binding:"gte=0"`
	OverrideEnabled      bool    `json:"override_enabled"`
	BusinessOverrideText *string `json:"business_override_text,omitempty" binding:"omitempty,max=1024"`
	ErrorMessage         *string `json:"error_message,omitempty" binding:"omitempty,max=1024"`
	Category             string  `json:"category" binding:"omitempty,oneof=deterministic compliance tone accessibility"`
}

type RuleResponse struct {
	ID                   int64     `json:"id,string"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Weight               float64   `json:"weight"`
	Priority             int       `json:"priority"`
	OverrideEnabled      bool      `json:"override_enabled"`
	BusinessOverrideText *string   `json:"business_override_text,omitempty"`
	ErrorMessage         *string   `json:"error_message,omitempty"`
	Category             string    `json:"category"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func ToRuleResponse(rc *model.RuleConfiguration) *RuleResponse {
	return &RuleResponse{
		ID:                   rc.ID,
		Name:                 rc.Name,
		Description:          rc.Description,
		Weight:               rc.Weight,
		Priority:             rc.Priority,
		OverrideEnabled:      rc.OverrideEnabled,
		BusinessOverrideText: rc.BusinessOverrideText,
		ErrorMessage:         rc.ErrorMessage,
		Category:             rc.Category,
		CreatedAt:            rc.CreatedAt,
		UpdatedAt:            rc.UpdatedAt,
	}
}

func ToRuleListResponse(configs []model.RuleConfiguration) []RuleResponse {
	out := make([]RuleResponse, 0, len(configs))
	for i := range configs {
		out = append(out, *ToRuleResponse(&configs[i]))
	}
	return out
}
