package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment, so every log statement in
// an evaluation carries its template_id and report_id without touching each
// call site.
type LogFields struct {
	TemplateID *int64  // Email template ID
	ReportID   *int64  // QA report ID
	MessageID  *string // Redis stream message ID
	RuleName   *string // Rule configuration name being applied or updated
	Component  string  // Component name (e.g. "proofcheck.queue.consumer")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.TemplateID != nil {
		result.TemplateID = next.TemplateID
	}
	if next.ReportID != nil {
		result.ReportID = next.ReportID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.RuleName != nil {
		result.RuleName = next.RuleName
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{TemplateID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
