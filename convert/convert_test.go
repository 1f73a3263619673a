package convert_test

import (
	"context"
	"errors"
	"testing"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
	"github.com/SyllaJay/gitbook-convert/convert"
	"github.com/SyllaJay/gitbook-convert/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook() *gitbookconvert.Book {
	c1 := &gitbookconvert.Chapter{ID: "c1", Title: "One", Content: "<div>one</div>", Level: 0, Num: 1}
	c2 := &gitbookconvert.Chapter{ID: "c2", Title: "Two", Content: "<div>two</div>", Level: 0, Num: 2}
	return &gitbookconvert.Book{
		FrontMatter: &gitbookconvert.FrontMatter{Title: "Book", Content: "<p>intro</p>"},
		Chapters:    []*gitbookconvert.Chapter{c1, c2},
	}
}

func testPipeline(book *gitbookconvert.Book) (*convert.Pipeline, *mock.BookWriter) {
	writer := &mock.BookWriter{
		WriteBookFn: func(ctx context.Context, b *gitbookconvert.RenderedBook) (*gitbookconvert.WriteResult, error) {
			return &gitbookconvert.WriteResult{Written: len(b.Chapters) + 2}, nil
		},
	}

	return &convert.Pipeline{
		Transformer: &mock.Transformer{
			TransformFn: func(ctx context.Context, sourcePath string) (string, error) {
				return "<html>raw</html>", nil
			},
			TitleFn: func(sourcePath string) (string, error) {
				return "", gitbookconvert.Errorf(gitbookconvert.ENOTFOUND, "no title")
			},
		},
		Normalizer: &mock.Normalizer{
			NormalizeFn: func(html string) (string, error) { return html, nil },
		},
		Splitter: &mock.Splitter{
			SplitFn: func(html string) (*gitbookconvert.Book, error) { return book, nil },
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "md:" + html, nil },
		},
		Writer: writer,
	}, writer
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders every chapter in outline order", func(t *testing.T) {
		t.Parallel()

		var got *gitbookconvert.RenderedBook
		p, writer := testPipeline(testBook())
		writer.WriteBookFn = func(ctx context.Context, b *gitbookconvert.RenderedBook) (*gitbookconvert.WriteResult, error) {
			got = b
			return &gitbookconvert.WriteResult{Written: 4, Bytes: 42}, nil
		}

		result, err := p.Run(context.Background(), "book.xml", nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Chapters)
		assert.Equal(t, 4, result.Written)
		assert.Equal(t, 42, result.Bytes)

		require.NotNil(t, got)
		assert.Equal(t, "Book", got.Title)
		assert.Equal(t, "md:<p>intro</p>", got.Readme)
		require.Len(t, got.Chapters, 2)
		assert.Equal(t, "One", got.Chapters[0].Chapter.Title)
		assert.Equal(t, "md:<div>one</div>", got.Chapters[0].Markdown)
		assert.Equal(t, "Two", got.Chapters[1].Chapter.Title)
	})

	t.Run("transform failure is fatal", func(t *testing.T) {
		t.Parallel()

		p, _ := testPipeline(testBook())
		p.Transformer = &mock.Transformer{
			TransformFn: func(ctx context.Context, sourcePath string) (string, error) {
				return "", gitbookconvert.Errorf(gitbookconvert.ETRANSFORM, "pandoc failed")
			},
		}

		_, err := p.Run(context.Background(), "book.xml", nil)

		require.Error(t, err)
		assert.Equal(t, gitbookconvert.ETRANSFORM, gitbookconvert.ErrorCode(err))
	})

	t.Run("falls back to the source title", func(t *testing.T) {
		t.Parallel()

		book := testBook()
		book.FrontMatter.Title = ""

		var got *gitbookconvert.RenderedBook
		p, writer := testPipeline(book)
		p.Transformer.(*mock.Transformer).TitleFn = func(sourcePath string) (string, error) {
			return "From Source", nil
		}
		writer.WriteBookFn = func(ctx context.Context, b *gitbookconvert.RenderedBook) (*gitbookconvert.WriteResult, error) {
			got = b
			return &gitbookconvert.WriteResult{}, nil
		}

		_, err := p.Run(context.Background(), "book.xml", nil)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "From Source", got.Title)
	})

	t.Run("render failure surfaces with the chapter title", func(t *testing.T) {
		t.Parallel()

		p, _ := testPipeline(testBook())
		p.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				if html == "<div>two</div>" {
					return "", errors.New("bad markup")
				}
				return "", nil
			},
		}

		_, err := p.Run(context.Background(), "book.xml", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Two"`)
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		var events []convert.ProgressType
		p, _ := testPipeline(testBook())

		_, err := p.Run(context.Background(), "book.xml", func(event convert.ProgressEvent) {
			events = append(events, event.Type)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, convert.ProgressStarted, events[0])
		assert.Equal(t, convert.ProgressFinished, events[3])
	})
}
