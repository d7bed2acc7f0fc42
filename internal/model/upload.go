package model

import "time"

// UploadRecord tracks one raw file upload and, once the pipeline has run,
// links it to the resulting QA report.
type UploadRecord struct {
	ID               int64     `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	UploadedAt       time.Time `json:"uploaded_at"`
	Processed        bool      `json:"processed"`
	QAReportID       *int64    `json:"qa_report_id,omitempty"`
}
