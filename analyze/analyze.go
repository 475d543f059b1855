// Package analyze orchestrates the full analysis run: extraction, model
// judgment, normalization, scoring, and optional revision.
package analyze

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docjudge"
)

// Options controls an analysis run.
type Options struct {
	// Static fetches raw HTML instead of driving a browser. Suitable for
	// static documentation sites only.
	Static bool

	// Revise requests a rewritten version of the content based on the
	// analysis feedback.
	Revise bool
}

// Result is the complete outcome of one analysis run.
type Result struct {
	// Report is the persisted outcome: URL, timestamp, scores.
	Report *docjudge.Report

	// Content is the extracted text the judgment was made on.
	Content string

	// Revised is the rewritten content. Empty unless revision was
	// requested and succeeded.
	Revised string

	// Events records judgment fields that had to be repaired during
	// normalization.
	Events []docjudge.DataQualityEvent

	// Warnings are degradations that did not abort the run, such as a
	// failed model call answered with a defaulted judgment.
	Warnings []string
}

// Analyzer runs the analysis workflow against a documentation URL.
type Analyzer struct {
	Renderer docjudge.Renderer
	Fetcher  docjudge.Fetcher
	Pipeline *docjudge.Pipeline
	Static   *docjudge.StaticPipeline
	Judge    docjudge.Judge
	Logger   *slog.Logger
}

// Run analyzes the documentation page at url. Extraction failures abort
// the run; a failed model assessment degrades to a fully-defaulted
// judgment with a warning, so a report is still produced. A failed
// revision likewise only produces a warning.
func (a *Analyzer) Run(ctx context.Context, url string, opts Options) (*Result, error) {
	if err := docjudge.ValidateURL(url); err != nil {
		return nil, err
	}

	doc, err := a.extract(ctx, url, opts)
	if err != nil {
		return nil, err
	}
	content := doc.Text()

	result := &Result{Content: content}

	raw, err := a.Judge.Assess(ctx, content, url)
	if err != nil {
		if code := docjudge.ErrorCode(err); code == docjudge.EINVALID {
			return nil, err
		}
		a.logger().Warn("assessment failed, scoring defaults", "url", url, "err", err)
		result.Warnings = append(result.Warnings, "assessment failed: "+docjudge.ErrorMessage(err))
		raw = nil
	}

	judgment, events := docjudge.NormalizeJudgment(raw)
	result.Events = events
	for _, e := range events {
		a.logger().Warn("invalid judgment field",
			"category", e.Category,
			"field", e.Field,
			"value", e.Value,
		)
	}

	result.Report = &docjudge.Report{
		URL:          url,
		Timestamp:    time.Now().UTC(),
		OverallScore: docjudge.Overall(judgment),
		Analysis:     judgment,
	}

	if opts.Revise {
		revised, err := a.Judge.Rewrite(ctx, content, docjudge.FormatFeedback(judgment))
		if err != nil {
			a.logger().Warn("revision failed", "url", url, "err", err)
			result.Warnings = append(result.Warnings, "no revised content available: "+docjudge.ErrorMessage(err))
		} else {
			result.Revised = revised
		}
	}

	return result, nil
}

// extract obtains the document text, live or static.
func (a *Analyzer) extract(ctx context.Context, url string, opts Options) (*docjudge.ExtractedDocument, error) {
	if opts.Static {
		html, err := a.Fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		return a.Static.Run(html)
	}

	page, err := a.Renderer.Load(ctx, url)
	if err != nil {
		return nil, err
	}
	// Pipeline.Run owns the page and closes it.
	return a.Pipeline.Run(page)
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
