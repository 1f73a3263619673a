package mock

import gitbookconvert "github.com/SyllaJay/gitbook-convert"

var _ gitbookconvert.Splitter = (*Splitter)(nil)

// Splitter is a mock implementation of gitbookconvert.Splitter.
type Splitter struct {
	SplitFn func(html string) (*gitbookconvert.Book, error)
}

func (s *Splitter) Split(html string) (*gitbookconvert.Book, error) {
	return s.SplitFn(html)
}
