package mock

import (
	"context"

	"github.com/fwojciec/docjudge"
)

var _ docjudge.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of docjudge.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *docjudge.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*docjudge.Report, error)
	FindReportsFn    func(ctx context.Context, filter docjudge.ReportFilter) ([]*docjudge.Report, error)
	DeleteReportFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *docjudge.Report) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*docjudge.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter docjudge.ReportFilter) ([]*docjudge.Report, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}

var _ docjudge.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of docjudge.ReportWriter.
type ReportWriter struct {
	SaveReportFn   func(report *docjudge.Report) (string, error)
	SaveRevisionFn func(report *docjudge.Report, content string) (string, error)
}

func (w *ReportWriter) SaveReport(report *docjudge.Report) (string, error) {
	return w.SaveReportFn(report)
}

func (w *ReportWriter) SaveRevision(report *docjudge.Report, content string) (string, error) {
	return w.SaveRevisionFn(report, content)
}
