package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docjudge"
)

// Ensure LoggingJudge implements docjudge.Judge.
var _ docjudge.Judge = (*LoggingJudge)(nil)

// LoggingJudge wraps a Judge with timing and outcome logging. Model calls
// are the slowest and flakiest part of an analysis run, so they get their
// own log lines.
type LoggingJudge struct {
	next   docjudge.Judge
	logger *slog.Logger
}

// NewLoggingJudge creates a new LoggingJudge.
func NewLoggingJudge(next docjudge.Judge, logger *slog.Logger) *LoggingJudge {
	return &LoggingJudge{next: next, logger: logger}
}

// Assess logs the call and delegates to the wrapped judge.
func (j *LoggingJudge) Assess(ctx context.Context, content, url string) (raw map[string]any, err error) {
	defer func(begin time.Time) {
		j.logger.Info("assess",
			"url", url,
			"content_chars", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.Assess(ctx, content, url)
}

// Rewrite logs the call and delegates to the wrapped judge.
func (j *LoggingJudge) Rewrite(ctx context.Context, content, feedback string) (revised string, err error) {
	defer func(begin time.Time) {
		j.logger.Info("rewrite",
			"content_chars", len(content),
			"revised_chars", len(revised),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.Rewrite(ctx, content, feedback)
}
