package mock

import "github.com/fwojciec/docjudge"

var _ docjudge.Converter = (*Converter)(nil)

// Converter is a mock implementation of docjudge.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
