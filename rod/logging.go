package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docjudge"
)

// Ensure LoggingRenderer implements docjudge.Renderer.
var _ docjudge.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   docjudge.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next docjudge.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Load logs the URL being loaded and delegates to the wrapped renderer.
func (r *LoggingRenderer) Load(ctx context.Context, url string) (page docjudge.Page, err error) {
	defer func(begin time.Time) {
		r.logger.Info("load",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Load(ctx, url)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
