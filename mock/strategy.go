package mock

import "github.com/fwojciec/docjudge"

var _ docjudge.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of docjudge.Strategy.
type Strategy struct {
	NameFn    func() string
	ExtractFn func(page docjudge.Page) ([]docjudge.ContentBlock, error)
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Extract(page docjudge.Page) ([]docjudge.ContentBlock, error) {
	return s.ExtractFn(page)
}

var _ docjudge.StaticStrategy = (*StaticStrategy)(nil)

// StaticStrategy is a mock implementation of docjudge.StaticStrategy.
type StaticStrategy struct {
	NameFn    func() string
	ExtractFn func(html string) ([]docjudge.ContentBlock, error)
}

func (s *StaticStrategy) Name() string {
	return s.NameFn()
}

func (s *StaticStrategy) Extract(html string) ([]docjudge.ContentBlock, error) {
	return s.ExtractFn(html)
}
