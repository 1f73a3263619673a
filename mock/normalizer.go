package mock

import gitbookconvert "github.com/SyllaJay/gitbook-convert"

var _ gitbookconvert.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of gitbookconvert.Normalizer.
type Normalizer struct {
	NormalizeFn func(html string) (string, error)
}

func (n *Normalizer) Normalize(html string) (string, error) {
	return n.NormalizeFn(html)
}
