package store

import (
	"context"
	"errors"

	"proofcheck.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// TemplateStore defines the contract for email template data access
type TemplateStore interface {
	GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error)
	Create(ctx context.Context, tmpl *model.EmailTemplate) error
	UpdateStatus(ctx context.Context, id int64, status model.TemplateStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit int32) ([]model.EmailTemplate, error)
	ListByStatus(ctx context.Context, status model.TemplateStatus) ([]model.EmailTemplate, error)
}

// ReportStore defines the contract for QA report data access
type ReportStore interface {
	GetByID(ctx context.Context, id int64) (*model.QAReport, error)
	GetLatestByTemplate(ctx context.Context, templateID int64) (*model.QAReport, error)
	Create(ctx context.Context, report *model.QAReport) error
	MarkUploaded(ctx context.Context, id int64) error
	ListByTemplate(ctx context.Context, templateID int64, limit int32) ([]model.QAReport, error)
}

// UploadStore defines the contract for upload record data access
type UploadStore interface {
	GetByID(ctx context.Context, id int64) (*model.UploadRecord, error)
	Create(ctx context.Context, rec *model.UploadRecord) error
	MarkProcessed(ctx context.Context, id int64, qaReportID int64) error
	ListUnprocessed(ctx context.Context, limit int32) ([]model.UploadRecord, error)
}

// RuleConfigStore defines the contract for rule configuration data access
type RuleConfigStore interface {
	GetByName(ctx context.Context, name string) (*model.RuleConfiguration, error)
	Upsert(ctx context.Context, rc *model.RuleConfiguration) error
	List(ctx context.Context) ([]model.RuleConfiguration, error)
}
