package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docjudge"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docjudge.ReportService = (*ReportService)(nil)

// ReportService implements docjudge.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReport persists a new report. The ID is assigned here; a zero
// timestamp is replaced with the current time.
func (s *ReportService) CreateReport(ctx context.Context, report *docjudge.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now().UTC()
	}

	analysis, err := json.Marshal(report.Analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, url, timestamp, overall_score, analysis)
		VALUES (?, ?, ?, ?, ?)
	`, report.ID, report.URL, report.Timestamp.Format(time.RFC3339),
		string(report.OverallScore), string(analysis))

	return err
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*docjudge.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, timestamp, overall_score, analysis
		FROM reports
		WHERE id = ?
	`, id)

	report, err := scanReport(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docjudge.Errorf(docjudge.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}

// FindReports retrieves reports matching the filter, most recent first.
func (s *ReportService) FindReports(ctx context.Context, filter docjudge.ReportFilter) ([]*docjudge.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, timestamp, overall_score, analysis FROM reports WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY timestamp DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*docjudge.Report
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// DeleteReport permanently removes a report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docjudge.Errorf(docjudge.ENOTFOUND, "report not found")
	}

	return nil
}

// scanReport reads one report row through the given scan function.
func scanReport(scan func(dest ...any) error) (*docjudge.Report, error) {
	var report docjudge.Report
	var timestamp, overallScore, analysis string

	if err := scan(&report.ID, &report.URL, &timestamp, &overallScore, &analysis); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	report.Timestamp = ts
	report.OverallScore = docjudge.Score(overallScore)

	if err := json.Unmarshal([]byte(analysis), &report.Analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	return &report, nil
}
