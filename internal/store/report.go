package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"proofcheck.app/server/core/db"
	"proofcheck.app/server/internal/model"
)

type reportStore struct {
	q db.Querier
}

func newReportStore(q db.Querier) ReportStore {
	return &reportStore{q: q}
}

const reportColumns = `id, template_id, overall_status, risk_score, report_data, is_uploaded, created_at`

func (s *reportStore) GetByID(ctx context.Context, id int64) (*model.QAReport, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+reportColumns+` FROM qa_reports WHERE id = $1`, id)

	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

func (s *reportStore) GetLatestByTemplate(ctx context.Context, templateID int64) (*model.QAReport, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+reportColumns+` FROM qa_reports
		 WHERE template_id = $1 ORDER BY created_at DESC LIMIT 1`, templateID)

	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

func (s *reportStore) Create(ctx context.Context, report *model.QAReport) error {
	data, err := json.Marshal(report.ReportData)
	if err != nil {
		return fmt.Errorf("encoding report data: %w", err)
	}

	row := s.q.QueryRow(ctx,
		`INSERT INTO qa_reports (id, template_id, overall_status, risk_score, report_data, is_uploaded)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		report.ID, report.TemplateID, report.OverallStatus, report.RiskScore, data, report.IsUploaded)

	return row.Scan(&report.CreatedAt)
}

func (s *reportStore) MarkUploaded(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE qa_reports SET is_uploaded = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *reportStore) ListByTemplate(ctx context.Context, templateID int64, limit int32) ([]model.QAReport, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+reportColumns+` FROM qa_reports
		 WHERE template_id = $1 ORDER BY created_at DESC LIMIT $2`, templateID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.QAReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *report)
	}
	return out, rows.Err()
}

func scanReport(row pgx.Row) (*model.QAReport, error) {
	var report model.QAReport
	var data []byte
	if err := row.Scan(&report.ID, &report.TemplateID, &report.OverallStatus,
		&report.RiskScore, &data, &report.IsUploaded, &report.CreatedAt); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &report.ReportData); err != nil {
			return nil, fmt.Errorf("decoding report data: %w", err)
		}
	}
	return &report, nil
}
