package mock

import (
	"context"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
)

var _ gitbookconvert.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of gitbookconvert.Transformer.
type Transformer struct {
	TransformFn func(ctx context.Context, sourcePath string) (string, error)
	TitleFn     func(sourcePath string) (string, error)
}

func (t *Transformer) Transform(ctx context.Context, sourcePath string) (string, error) {
	return t.TransformFn(ctx, sourcePath)
}

func (t *Transformer) Title(sourcePath string) (string, error) {
	return t.TitleFn(sourcePath)
}
