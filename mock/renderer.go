package mock

import (
	"context"

	"github.com/fwojciec/docjudge"
)

var _ docjudge.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docjudge.Renderer.
type Renderer struct {
	LoadFn  func(ctx context.Context, url string) (docjudge.Page, error)
	CloseFn func() error
}

func (r *Renderer) Load(ctx context.Context, url string) (docjudge.Page, error) {
	return r.LoadFn(ctx, url)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

var _ docjudge.Page = (*Page)(nil)

// Page is a mock implementation of docjudge.Page.
type Page struct {
	ElementsFn func(selector string) ([]docjudge.Element, error)
	EvalFn     func(script string) (string, error)
	CloseFn    func() error
}

func (p *Page) Elements(selector string) ([]docjudge.Element, error) {
	return p.ElementsFn(selector)
}

func (p *Page) Eval(script string) (string, error) {
	return p.EvalFn(script)
}

func (p *Page) Close() error {
	return p.CloseFn()
}

var _ docjudge.Element = (*Element)(nil)

// Element is a mock implementation of docjudge.Element.
type Element struct {
	TagFn      func() (string, error)
	TextFn     func() (string, error)
	ElementsFn func(selector string) ([]docjudge.Element, error)
}

func (e *Element) Tag() (string, error) {
	return e.TagFn()
}

func (e *Element) Text() (string, error) {
	return e.TextFn()
}

func (e *Element) Elements(selector string) ([]docjudge.Element, error) {
	return e.ElementsFn(selector)
}
