package model

import "time"

// RuleConfiguration is the stored, administratively editable state of one
// rule: its scoring weight, display priority, and an optional business
// override that excludes the rule from scoring with a recorded justification.
type RuleConfiguration struct {
	ID                   int64     `json:"id"`
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
