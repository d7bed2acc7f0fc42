package handler_test

import (
	"context"

	"proofcheck.app/server/internal/connector"
	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/model"
)

type mockTemplateService struct {
	createFn  func(ctx context.Context, name, htmlContent string, meta engine.Metadata, filename string) (*model.EmailTemplate, error)
	getFn     func(ctx context.Context, id int64) (*model.EmailTemplate, error)
	listFn    func(ctx context.Context, limit int32) ([]model.EmailTemplate, error)
	archiveFn func(ctx context.Context, id int64) error
}

func (m *mockTemplateService) Create(ctx context.Context, name, htmlContent string, meta engine.Metadata, filename string) (*model.EmailTemplate, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, htmlContent, meta, filename)
	}
	return &model.EmailTemplate{ID: 1, Name: name, Status: model.TemplateStatusActive, HTMLContent: htmlContent, Metadata: meta}, nil
}

func (m *mockTemplateService) Get(ctx context.Context, id int64) (*model.EmailTemplate, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.EmailTemplate{ID: id}, nil
}

func (m *mockTemplateService) List(ctx context.Context, limit int32) ([]model.EmailTemplate, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return []model.EmailTemplate{}, nil
}

func (m *mockTemplateService) Archive(ctx context.Context, id int64) error {
	if m.archiveFn != nil {
		return m.archiveFn(ctx, id)
	}
	return nil
}

type mockQAService struct {
	runFn          func(ctx context.Context, templateID int64) (*model.QAReport, error)
	getReportFn    func(ctx context.Context, reportID int64) (*model.QAReport, error)
	latestReportFn func(ctx context.Context, templateID int64) (*model.QAReport, error)
}

func (m *mockQAService) Run(ctx context.Context, templateID int64) (*model.QAReport, error) {
	if m.runFn != nil {
		return m.runFn(ctx, templateID)
	}
	return &model.QAReport{ID: 1, TemplateID: templateID}, nil
}

func (m *mockQAService) GetReport(ctx context.Context, reportID int64) (*model.QAReport, error) {
	if m.getReportFn != nil {
		return m.getReportFn(ctx, reportID)
	}
	return &model.QAReport{ID: reportID}, nil
}

func (m *mockQAService) LatestReport(ctx context.Context, templateID int64) (*model.QAReport, error) {
	if m.latestReportFn != nil {
		return m.latestReportFn(ctx, templateID)
	}
	return &model.QAReport{ID: 1, TemplateID: templateID}, nil
}

type mockRuleConfigService struct {
	listFn   func(ctx context.Context) ([]model.RuleConfiguration, error)
	getFn    func(ctx context.Context, name string) (*model.RuleConfiguration, error)
	updateFn func(ctx context.Context, rc *model.RuleConfiguration) (*model.RuleConfiguration, error)
}

func (m *mockRuleConfigService) List(ctx context.Context) ([]model.RuleConfiguration, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.RuleConfiguration{}, nil
}

func (m *mockRuleConfigService) Get(ctx context.Context, name string) (*model.RuleConfiguration, error) {
	if m.getFn != nil {
		return m.getFn(ctx, name)
	}
	return &model.RuleConfiguration{Name: name}, nil
}

func (m *mockRuleConfigService) Update(ctx context.Context, rc *model.RuleConfiguration) (*model.RuleConfiguration, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, rc)
	}
	return rc, nil
}

type mockProofService struct {
	listFn func(ctx context.Context) ([]connector.Proof, error)
	getFn  func(ctx context.Context, proofID string) (*connector.Proof, error)
}

func (m *mockProofService) List(ctx context.Context) ([]connector.Proof, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []connector.Proof{}, nil
}

func (m *mockProofService) Get(ctx context.Context, proofID string) (*connector.Proof, error) {
	if m.getFn != nil {
		return m.getFn(ctx, proofID)
	}
	return &connector.Proof{ID: proofID}, nil
}
