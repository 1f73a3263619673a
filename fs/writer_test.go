package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
	"github.com/SyllaJay/gitbook-convert/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderedBook() *gitbookconvert.RenderedBook {
	intro := &gitbookconvert.Chapter{Title: "Introduction", Level: 0, Num: 1}
	deep := &gitbookconvert.Chapter{Title: "Details", Level: 1, Num: 1, Parent: intro}
	return &gitbookconvert.RenderedBook{
		Title:  "My Book",
		Readme: "Welcome.",
		Chapters: []gitbookconvert.RenderedChapter{
			{Chapter: intro, Markdown: "# Introduction\n\nBody.\n"},
			{Chapter: deep, Markdown: "## Details\n\nMore.\n"},
		},
	}
}

func TestWriter_WriteBook(t *testing.T) {
	t.Parallel()

	t.Run("writes readme, summary, and chapter files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		result, err := w.WriteBook(context.Background(), testRenderedBook())

		require.NoError(t, err)
		assert.Equal(t, 4, result.Written)
		assert.Zero(t, result.Skipped)
		assert.Positive(t, result.Bytes)

		readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
		require.NoError(t, err)
		assert.Contains(t, string(readme), "# My Book")
		assert.Contains(t, string(readme), "Welcome.")

		summary, err := os.ReadFile(filepath.Join(dir, "SUMMARY.md"))
		require.NoError(t, err)
		assert.Contains(t, string(summary), "* [My Book](README.md)")
		assert.Contains(t, string(summary), "* [Introduction](introduction.md)")
		assert.Contains(t, string(summary), "    * [Details](details.md)")

		chapter, err := os.ReadFile(filepath.Join(dir, "introduction.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Introduction\n\nBody.\n", string(chapter))
	})

	t.Run("assigns filenames before building the summary", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		book := testRenderedBook()
		_, err := w.WriteBook(context.Background(), book)

		require.NoError(t, err)
		assert.Equal(t, "introduction.md", book.Chapters[0].Chapter.Filename)
		assert.Equal(t, "details.md", book.Chapters[1].Chapter.Filename)
	})

	t.Run("ordinal prefixes keep document order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		w.PrefixFilenames = true

		book := testRenderedBook()
		_, err := w.WriteBook(context.Background(), book)

		require.NoError(t, err)
		assert.Equal(t, "01-introduction.md", book.Chapters[0].Chapter.Filename)
		assert.Equal(t, "02-details.md", book.Chapters[1].Chapter.Filename)
		assert.FileExists(t, filepath.Join(dir, "01-introduction.md"))
	})

	t.Run("unchanged files are skipped on rerun", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		_, err := w.WriteBook(context.Background(), testRenderedBook())
		require.NoError(t, err)

		result, err := w.WriteBook(context.Background(), testRenderedBook())
		require.NoError(t, err)

		assert.Zero(t, result.Written)
		assert.Equal(t, 4, result.Skipped)
	})

	t.Run("rewrites a changed chapter only", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		_, err := w.WriteBook(context.Background(), testRenderedBook())
		require.NoError(t, err)

		book := testRenderedBook()
		book.Chapters[1].Markdown = "## Details\n\nRevised.\n"

		result, err := w.WriteBook(context.Background(), book)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Written)
		assert.Equal(t, 3, result.Skipped)
	})

	t.Run("nil book is invalid", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		_, err := w.WriteBook(context.Background(), nil)

		assert.Equal(t, gitbookconvert.EINVALID, gitbookconvert.ErrorCode(err))
	})

	t.Run("untitled book links the readme as Introduction", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		book := testRenderedBook()
		book.Title = ""

		_, err := w.WriteBook(context.Background(), book)
		require.NoError(t, err)

		summary, err := os.ReadFile(filepath.Join(dir, "SUMMARY.md"))
		require.NoError(t, err)
		assert.Contains(t, string(summary), "* [Introduction](README.md)")
	})
}
