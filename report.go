package docjudge

import (
	"context"
	"net/url"
	"time"
)

// Report is the persisted outcome of one analysis run. Created once per
// invocation and immutable after construction.
type Report struct {
	ID           string            `json:"id,omitempty"`
	URL          string            `json:"url"`
	Timestamp    time.Time         `json:"timestamp"`
	OverallScore Score             `json:"overall_score"`
	Analysis     *DocumentJudgment `json:"analysis"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "report URL required")
	}
	if r.Analysis == nil {
		return Errorf(EINVALID, "report analysis required")
	}
	if !r.OverallScore.Valid() {
		return Errorf(EINVALID, "report overall score required")
	}
	return nil
}

// ReportService represents a service for managing saved reports.
type ReportService interface {
	// CreateReport persists a new report.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReports retrieves reports matching the filter, most recent
	// first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// DeleteReport permanently removes a report.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportWriter persists report artifacts outside the database.
type ReportWriter interface {
	// SaveReport writes the report as a JSON artifact and returns its
	// path.
	SaveReport(report *Report) (string, error)

	// SaveRevision writes revised content as a text artifact alongside
	// the report and returns its path.
	SaveRevision(report *Report, content string) (string, error)
}

// ValidateURL checks that the raw URL is an absolute http or https URL.
// Invalid input is a user-correctable error, reported before any
// extraction is attempted.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL must begin with http:// or https://")
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL host required")
	}
	return nil
}
