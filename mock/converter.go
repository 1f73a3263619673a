package mock

import gitbookconvert "github.com/SyllaJay/gitbook-convert"

var _ gitbookconvert.Converter = (*Converter)(nil)

// Converter is a mock implementation of gitbookconvert.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
