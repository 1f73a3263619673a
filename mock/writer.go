package mock

import (
	"context"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
)

var _ gitbookconvert.BookWriter = (*BookWriter)(nil)

// BookWriter is a mock implementation of gitbookconvert.BookWriter.
type BookWriter struct {
	WriteBookFn func(ctx context.Context, book *gitbookconvert.RenderedBook) (*gitbookconvert.WriteResult, error)
}

func (w *BookWriter) WriteBook(ctx context.Context, book *gitbookconvert.RenderedBook) (*gitbookconvert.WriteResult, error) {
	return w.WriteBookFn(ctx, book)
}
