package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"proofcheck.app/server/common/id"
	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/model"
	"proofcheck.app/server/internal/store"
)

type QAService interface {
	Run(ctx context.Context, templateID int64) (*model.QAReport, error)
	GetReport(ctx context.Context, reportID int64) (*model.QAReport, error)
	LatestReport(ctx context.Context, templateID int64) (*model.QAReport, error)
}

type qaService struct {
	templateStore store.TemplateStore
	reportStore   store.ReportStore
	ruleStore     store.RuleConfigStore
	baseCfg       engine.Config
}

func NewQAService(templateStore store.TemplateStore, reportStore store.ReportStore, ruleStore store.RuleConfigStore, baseCfg engine.Config) QAService {
	return &qaService{
		templateStore: templateStore,
		reportStore:   reportStore,
		ruleStore:     ruleStore,
		baseCfg:       baseCfg,
	}
}

// Run executes the full evaluation pipeline for one template and persists the
// resulting report. Rule configurations are loaded fresh on every run so a
// weight change takes effect without a restart.
func (s *qaService) Run(ctx context.Context, templateID int64) (*model.QAReport, error) {
	tmpl, err := s.templateStore.GetByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	cfg, err := s.effectiveConfig(ctx)
	if err != nil {
		return nil, err
	}

	orch := engine.NewOrchestrator(cfg)
	result := orch.Evaluate(ctx, strconv.FormatInt(tmpl.ID, 10), tmpl.HTMLContent, tmpl.Metadata)

	report := &model.QAReport{
		ID:            id.New(),
		TemplateID:    tmpl.ID,
		OverallStatus: result.OverallStatus,
		RiskScore:     result.RiskScore,
		ReportData:    result,
	}

	if err := s.reportStore.Create(ctx, report); err != nil {
		slog.ErrorContext(ctx, "failed to persist qa report",
			"error", err,
			"template_id", tmpl.ID,
		)
		return nil, fmt.Errorf("persisting report: %w", err)
	}

	slog.InfoContext(ctx, "qa report created",
		"report_id", report.ID,
		"template_id", tmpl.ID,
		"overall_status", report.OverallStatus,
		"risk_score", report.RiskScore,
	)
	return report, nil
}

func (s *qaService) GetReport(ctx context.Context, reportID int64) (*model.QAReport, error) {
	return s.reportStore.GetByID(ctx, reportID)
}

func (s *qaService) LatestReport(ctx context.Context, templateID int64) (*model.QAReport, error) {
	return s.reportStore.GetLatestByTemplate(ctx, templateID)
}

// effectiveConfig overlays stored rule configurations on the base engine
// config. An overridden rule scores as zero weight, which removes it from the
// risk calculation while its results remain visible in the report.
func (s *qaService) effectiveConfig(ctx context.Context) (engine.Config, error) {
	configs, err := s.ruleStore.List(ctx)
	if err != nil {
		return engine.Config{}, fmt.Errorf("loading rule configurations: %w", err)
	}

	cfg := s.baseCfg
	if len(configs) > 0 {
		weights := make(map[engine.Rule]float64, len(configs))
		for r, w := range cfg.RuleWeights {
			weights[r] = w
		}
		for _, rc := range configs {
			if rc.OverrideEnabled {
				weights[engine.Rule(rc.Name)] = 0
				continue
			}
			weights[engine.Rule(rc.Name)] = rc.Weight
		}
		cfg.RuleWeights = weights
	}
	return cfg, nil
}
