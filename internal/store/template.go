package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"proofcheck.app/server/core/db"
	"proofcheck.app/server/internal/engine"
	"proofcheck.app/server/internal/model"
)

type templateStore struct {
	q db.Querier
}

func newTemplateStore(q db.Querier) TemplateStore {
	return &templateStore{q: q}
}

const templateColumns = `id, name, status, html_content, metadata, created_at`

func (s *templateStore) GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM email_templates WHERE id = $1`, id)

	tmpl, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tmpl, nil
}

func (s *templateStore) Create(ctx context.Context, tmpl *model.EmailTemplate) error {
	meta, err := json.Marshal(tmpl.Metadata)
	if err != nil {
		return fmt.Errorf("encoding template metadata: %w", err)
	}

	row := s.q.QueryRow(ctx,
		`INSERT INTO email_templates (id, name, status, html_content, metadata)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		tmpl.ID, tmpl.Name, tmpl.Status, tmpl.HTMLContent, meta)

	return row.Scan(&tmpl.CreatedAt)
}

func (s *templateStore) UpdateStatus(ctx context.Context, id int64, status model.TemplateStatus) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE email_templates SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *templateStore) Delete(ctx context.Context, id int64) error {
	_, err := s.q.Exec(ctx, `DELETE FROM email_templates WHERE id = $1`, id)
	return err
}

func (s *templateStore) List(ctx context.Context, limit int32) ([]model.EmailTemplate, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+templateColumns+` FROM email_templates ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTemplates(rows)
}

func (s *templateStore) ListByStatus(ctx context.Context, status model.TemplateStatus) ([]model.EmailTemplate, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+templateColumns+` FROM email_templates WHERE status = $1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTemplates(rows)
}

func collectTemplates(rows pgx.Rows) ([]model.EmailTemplate, error) {
	var out []model.EmailTemplate
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *tmpl)
	}
	return out, rows.Err()
}

func scanTemplate(row pgx.Row) (*model.EmailTemplate, error) {
	var tmpl model.EmailTemplate
	var meta []byte
	if err := row.Scan(&tmpl.ID, &tmpl.Name, &tmpl.Status, &tmpl.HTMLContent, &meta, &tmpl.CreatedAt); err != nil {
		return nil, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &tmpl.Metadata); err != nil {
			return nil, fmt.Errorf("decoding template metadata: %w", err)
		}
	} else {
		tmpl.Metadata = engine.Metadata{}
	}
	return &tmpl, nil
}
