package mock

import "github.com/mwidmann/homeseek"

var _ homeseek.Converter = (*Converter)(nil)

// Converter is a mock implementation of homeseek.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
