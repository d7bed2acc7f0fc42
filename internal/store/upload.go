package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"proofcheck.app/server/core/db"
	"proofcheck.app/server/internal/model"
)

type uploadStore struct {
	q db.Querier
}

func newUploadStore(q db.Querier) UploadStore {
	return &uploadStore{q: q}
}

func (s *uploadStore) GetByID(ctx context.Context, id int64) (*model.UploadRecord, error) {
	var rec model.UploadRecord
	err := s.q.QueryRow(ctx,
		`SELECT id, original_filename, uploaded_at, processed, qa_report_id
		 FROM upload_records WHERE id = $1`, id).
		Scan(&rec.ID, &rec.OriginalFilename, &rec.UploadedAt, &rec.Processed, &rec.QAReportID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *uploadStore) Create(ctx context.Context, rec *model.UploadRecord) error {
	row := s.q.QueryRow(ctx,
		`INSERT INTO upload_records (id, original_filename, processed)
		 VALUES ($1, $2, FALSE)
		 RETURNING uploaded_at`,
		rec.ID, rec.OriginalFilename)

	return row.Scan(&rec.UploadedAt)
}

func (s *uploadStore) MarkProcessed(ctx context.Context, id int64, qaReportID int64) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE upload_records SET processed = TRUE, qa_report_id = $2 WHERE id = $1`,
		id, qaReportID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *uploadStore) ListUnprocessed(ctx context.Context, limit int32) ([]model.UploadRecord, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, original_filename, uploaded_at, processed, qa_report_id
		 FROM upload_records WHERE processed = FALSE ORDER BY uploaded_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UploadRecord
	for rows.Next() {
		var rec model.UploadRecord
		if err := rows.Scan(&rec.ID, &rec.OriginalFilename, &rec.UploadedAt, &rec.Processed, &rec.QAReportID); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
