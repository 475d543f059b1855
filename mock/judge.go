package mock

import (
	"context"

	"github.com/fwojciec/docjudge"
)

var _ docjudge.Judge = (*Judge)(nil)

// Judge is a mock implementation of docjudge.Judge.
type Judge struct {
	AssessFn  func(ctx context.Context, content, url string) (map[string]any, error)
	RewriteFn func(ctx context.Context, content, feedback string) (string, error)
}

func (j *Judge) Assess(ctx context.Context, content, url string) (map[string]any, error) {
	return j.AssessFn(ctx, content, url)
}

func (j *Judge) Rewrite(ctx context.Context, content, feedback string) (string, error) {
	return j.RewriteFn(ctx, content, feedback)
}
