package model

import (
	"time"

	"proofcheck.app/server/internal/engine"
)

type TemplateStatus string

const (
	TemplateStatusDraft    TemplateStatus = "draft"
	TemplateStatusActive   TemplateStatus = "active"
	TemplateStatusArchived TemplateStatus = "archived"
)

// EmailTemplate is one uploaded marketing email. HTMLContent is stored
// verbatim; Metadata carries the recognized subject/preheader/template_name/
// locale keys.
type EmailTemplate struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Status      TemplateStatus  `json:"status"`
	HTMLContent string          `json:"html_content"`
	Metadata    engine.Metadata `json:"metadata"`
	CreatedAt   time.Time       `json:"created_at"`
}
