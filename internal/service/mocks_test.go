package service_test

import (
	"context"

	"proofcheck.app/server/internal/model"
	"proofcheck.app/server/internal/queue"
	"proofcheck.app/server/internal/service"
	"proofcheck.app/server/internal/store"
)

// mockTxRunner runs the transactional function directly against the mock
// stores, doubling as the StoreProvider.
type mockTxRunner struct {
	templates *mockTemplateStore
	uploads   *mockUploadStore
}

func (m *mockTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	return fn(m)
}

func (m *mockTxRunner) Templates() store.TemplateStore { return m.templates }
func (m *mockTxRunner) Uploads() store.UploadStore     { return m.uploads }

type mockTemplateStore struct {
	getByIDFn      func(ctx context.Context, id int64) (*model.EmailTemplate, error)
	createFn       func(ctx context.Context, tmpl *model.EmailTemplate) error
	updateStatusFn func(ctx context.Context, id int64, status model.TemplateStatus) error
	deleteFn       func(ctx context.Context, id int64) error
	listFn         func(ctx context.Context, limit int32) ([]model.EmailTemplate, error)
	listByStatusFn func(ctx context.Context, status model.TemplateStatus) ([]model.EmailTemplate, error)
}

func (m *mockTemplateStore) GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.EmailTemplate{ID: id}, nil
}

func (m *mockTemplateStore) Create(ctx context.Context, tmpl *model.EmailTemplate) error {
	if m.createFn != nil {
		return m.createFn(ctx, tmpl)
	}
	return nil
}

func (m *mockTemplateStore) UpdateStatus(ctx context.Context, id int64, status model.TemplateStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockTemplateStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTemplateStore) List(ctx context.Context, limit int32) ([]model.EmailTemplate, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return []model.EmailTemplate{}, nil
}

func (m *mockTemplateStore) ListByStatus(ctx context.Context, status model.TemplateStatus) ([]model.EmailTemplate, error) {
	if m.listByStatusFn != nil {
		return m.listByStatusFn(ctx, status)
	}
	return []model.EmailTemplate{}, nil
}

type mockReportStore struct {
	getByIDFn             func(ctx context.Context, id int64) (*model.QAReport, error)
	getLatestByTemplateFn func(ctx context.Context, templateID int64) (*model.QAReport, error)
	createFn              func(ctx context.Context, report *model.QAReport) error
	markUploadedFn        func(ctx context.Context, id int64) error
	listByTemplateFn      func(ctx context.Context, templateID int64, limit int32) ([]model.QAReport, error)
}

func (m *mockReportStore) GetByID(ctx context.Context, id int64) (*model.QAReport, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.QAReport{ID: id}, nil
}

func (m *mockReportStore) GetLatestByTemplate(ctx context.Context, templateID int64) (*model.QAReport, error) {
	if m.getLatestByTemplateFn != nil {
		return m.getLatestByTemplateFn(ctx, templateID)
	}
	return &model.QAReport{TemplateID: templateID}, nil
}

func (m *mockReportStore) Create(ctx context.Context, report *model.QAReport) error {
	if m.createFn != nil {
		return m.createFn(ctx, report)
	}
	return nil
}

func (m *mockReportStore) MarkUploaded(ctx context.Context, id int64) error {
	if m.markUploadedFn != nil {
		return m.markUploadedFn(ctx, id)
	}
	return nil
}

func (m *mockReportStore) ListByTemplate(ctx context.Context, templateID int64, limit int32) ([]model.QAReport, error) {
	if m.listByTemplateFn != nil {
		return m.listByTemplateFn(ctx, templateID, limit)
	}
	return []model.QAReport{}, nil
}

type mockUploadStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*model.UploadRecord, error)
	createFn          func(ctx context.Context, rec *model.UploadRecord) error
	markProcessedFn   func(ctx context.Context, id int64, qaReportID int64) error
	listUnprocessedFn func(ctx context.Context, limit int32) ([]model.UploadRecord, error)
}

func (m *mockUploadStore) GetByID(ctx context.Context, id int64) (*model.UploadRecord, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.UploadRecord{ID: id}, nil
}

func (m *mockUploadStore) Create(ctx context.Context, rec *model.UploadRecord) error {
	if m.createFn != nil {
		return m.createFn(ctx, rec)
	}
	return nil
}

func (m *mockUploadStore) MarkProcessed(ctx context.Context, id int64, qaReportID int64) error {
	if m.markProcessedFn != nil {
		return m.markProcessedFn(ctx, id, qaReportID)
	}
	return nil
}

func (m *mockUploadStore) ListUnprocessed(ctx context.Context, limit int32) ([]model.UploadRecord, error) {
	if m.listUnprocessedFn != nil {
		return m.listUnprocessedFn(ctx, limit)
	}
	return []model.UploadRecord{}, nil
}

type mockRuleConfigStore struct {
	getByNameFn func(ctx context.Context, name string) (*model.RuleConfiguration, error)
	upsertFn    func(ctx context.Context, rc *model.RuleConfiguration) error
	listFn      func(ctx context.Context) ([]model.RuleConfiguration, error)
}

func (m *mockRuleConfigStore) GetByName(ctx context.Context, name string) (*model.RuleConfiguration, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return &model.RuleConfiguration{Name: name}, nil
}

func (m *mockRuleConfigStore) Upsert(ctx context.Context, rc *model.RuleConfiguration) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, rc)
	}
	return nil
}

func (m *mockRuleConfigStore) List(ctx context.Context) ([]model.RuleConfiguration, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.RuleConfiguration{}, nil
}

type mockProducer struct {
	enqueueFn func(ctx context.Context, msg queue.EvaluationMessage) error
	closeFn   func() error
}

func (m *mockProducer) Enqueue(ctx context.Context, msg queue.EvaluationMessage) error {
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, msg)
	}
	return nil
}

func (m *mockProducer) Close() error {
	if m.closeFn != nil {
		return m.closeFn()
	}
	return nil
}
