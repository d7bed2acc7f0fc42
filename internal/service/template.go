package service

import (
	"context"
	"fmt"
	"log/slog"

	"proofcheck.app/server/common/id"
	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/model"
	"proofcheck.app/server/internal/store"
)

type TemplateService interface {
	Create(ctx context.Context, name, htmlContent string, meta engine.Metadata, filename string) (*model.EmailTemplate, error)
	Get(ctx context.Context, id int64) (*model.EmailTemplate, error)
	List(ctx context.Context, limit int32) ([]model.EmailTemplate, error)
	Archive(ctx context.Context, id int64) error
}

type templateService struct {
	templateStore store.TemplateStore
	txRunner      TxRunner
}

func NewTemplateService(templateStore store.TemplateStore, txRunner TxRunner) TemplateService {
	return &templateService{
		templateStore: templateStore,
		txRunner:      txRunner,
	}
}

// Create stores an uploaded template. When filename is non-empty an upload
// record is created in the same transaction so the raw file ingress stays
// traceable.
func (s *templateService) Create(ctx context.Context, name, htmlContent string, meta engine.Metadata, filename string) (*model.EmailTemplate, error) {
	tmpl := &model.EmailTemplate{
		ID:          id.New(),
		Name:        name,
		Status:      model.TemplateStatusActive,
		HTMLContent: htmlContent,
		Metadata:    meta,
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Templates().Create(ctx, tmpl); err != nil {
			return fmt.Errorf("creating template: %w", err)
		}
		if filename != "" {
			rec := &model.UploadRecord{
				ID:               id.New(),
				OriginalFilename: filename,
			}
			if err := stores.Uploads().Create(ctx, rec); err != nil {
				return fmt.Errorf("recording upload: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create template",
			"error", err,
			"name", name,
		)
		return nil, err
	}

	slog.InfoContext(ctx, "template created", "template_id", tmpl.ID, "name", name)
	return tmpl, nil
}

func (s *templateService) Get(ctx context.Context, templateID int64) (*model.EmailTemplate, error) {
	return s.templateStore.GetByID(ctx, templateID)
}

func (s *templateService) List(ctx context.Context, limit int32) ([]model.EmailTemplate, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.templateStore.List(ctx, limit)
}

func (s *templateService) Archive(ctx context.Context, templateID int64) error {
	if err := s.templateStore.UpdateStatus(ctx, templateID, model.TemplateStatusArchived); err != nil {
		return fmt.Errorf("archiving template: %w", err)
	}
	slog.InfoContext(ctx, "template archived", "template_id", templateID)
	return nil
}
