package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"proofcheck.app/server/common/id"
	"proofcheck.app/server/internal/model"
	"proofcheck.app/server/internal/queue"
	"proofcheck.app/server/internal/store"
)

type RuleConfigService interface {
	List(ctx context.Context) ([]model.RuleConfiguration, error)
	Get(ctx context.Context, name string) (*model.RuleConfiguration, error)
	Update(ctx context.Context, rc *model.RuleConfiguration) (*model.RuleConfiguration, error)
}

type ruleConfigService struct {
	ruleStore     store.RuleConfigStore
	templateStore store.TemplateStore
	producer      queue.Producer
}

func NewRuleConfigService(ruleStore store.RuleConfigStore, templateStore store.TemplateStore, producer queue.Producer) RuleConfigService {
	return &ruleConfigService{
		ruleStore:     ruleStore,
		templateStore: templateStore,
		producer:      producer,
	}
}

func (s *ruleConfigService) List(ctx context.Context) ([]model.RuleConfiguration, error) {
	return s.ruleStore.List(ctx)
}

func (s *ruleConfigService) Get(ctx context.Context, name string) (*model.RuleConfiguration, error) {
	return s.ruleStore.GetByName(ctx, name)
}

// Update persists the configuration and enqueues re-evaluation of every
// active template, since their stored reports were scored under the old
// weights. Enqueue failures are logged but do not fail the update: the
// configuration change itself has already committed.
func (s *ruleConfigService) Update(ctx context.Context, rc *model.RuleConfiguration) (*model.RuleConfiguration, error) {
	if rc.ID == 0 {
		rc.ID = id.New()
	}

	if err := s.ruleStore.Upsert(ctx, rc); err != nil {
		slog.ErrorContext(ctx, "failed to update rule configuration",
			"error", err,
			"rule_name", rc.Name,
		)
		return nil, fmt.Errorf("updating rule configuration: %w", err)
	}

	slog.InfoContext(ctx, "rule configuration updated",
		"rule_name", rc.Name,
		"weight", rc.Weight,
		"override_enabled", rc.OverrideEnabled,
	)

	s.enqueueReevaluations(ctx, rc.Name)
	return rc, nil
}

func (s *ruleConfigService) enqueueReevaluations(ctx context.Context, ruleName string) {
	templates, err := s.templateStore.ListByStatus(ctx, model.TemplateStatusActive)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list templates for re-evaluation",
			"error", err,
			"rule_name", ruleName,
		)
		return
	}

	var traceID *string
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		t := sc.TraceID().String()
		traceID = &t
	}

	enqueued := 0
	for _, tmpl := range templates {
		msg := queue.EvaluationMessage{
			TemplateID: tmpl.ID,
			RuleName:   ruleName,
			TraceID:    traceID,
		}
		if err := s.producer.Enqueue(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "failed to enqueue re-evaluation",
				"error", err,
				"template_id", tmpl.ID,
				"rule_name", ruleName,
			)
			continue
		}
		enqueued++
	}

	slog.InfoContext(ctx, "re-evaluations enqueued",
		"rule_name", ruleName,
		"count", enqueued,
	)
}
