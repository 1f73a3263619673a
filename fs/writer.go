// Package fs writes converted books to disk in the GitBook layout:
// README.md for the front matter, SUMMARY.md for the outline, and one
// Markdown file per chapter.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Ensure Writer implements gitbookconvert.BookWriter at compile time.
var _ gitbookconvert.BookWriter = (*Writer)(nil)

// Writer writes a rendered book to a directory.
type Writer struct {
	// BaseDir is the output directory; created if absent.
	BaseDir string

	// Extension for chapter files. Defaults to ".md".
	Extension string

	// PrefixFilenames prepends a zero-padded ordinal to chapter
	// filenames so they sort in document order.
	PrefixFilenames bool

	// Concurrency limits parallel chapter file writes. Defaults to 8.
	Concurrency int
}

// NewWriter creates a Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{BaseDir: baseDir, Extension: ".md", Concurrency: 8}
}

// WriteBook writes the README, the summary, and every chapter file.
// Chapter filenames are assigned here, before the summary is built.
// Files whose content is unchanged since a previous run are left
// untouched and counted as skipped.
func (w *Writer) WriteBook(ctx context.Context, book *gitbookconvert.RenderedBook) (*gitbookconvert.WriteResult, error) {
	if book == nil {
		return nil, gitbookconvert.Errorf(gitbookconvert.EINVALID, "book required")
	}

	if err := os.MkdirAll(w.BaseDir, 0o755); err != nil {
		return nil, err
	}

	ext := w.Extension
	if ext == "" {
		ext = ".md"
	}
	for i, rc := range book.Chapters {
		rc.Chapter.Filename = gitbookconvert.ChapterFilename(rc.Chapter, i+1, ext, w.PrefixFilenames)
	}

	var written, skipped, bytes atomic.Int64

	write := func(name, content string) error {
		changed, err := w.writeFile(name, content)
		if err != nil {
			return err
		}
		if changed {
			written.Add(1)
			bytes.Add(int64(len(content)))
		} else {
			skipped.Add(1)
		}
		return nil
	}

	if err := write("README.md", readme(book)); err != nil {
		return nil, err
	}
	if err := write("SUMMARY.md", summary(book)); err != nil {
		return nil, err
	}

	concurrency := w.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, rc := range book.Chapters {
		g.Go(func() error {
			return write(rc.Chapter.Filename, rc.Markdown)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &gitbookconvert.WriteResult{
		Written: int(written.Load()),
		Skipped: int(skipped.Load()),
		Bytes:   int(bytes.Load()),
	}, nil
}

// writeFile writes content to name under BaseDir. Returns false when
// the file already holds identical content and was left untouched.
func (w *Writer) writeFile(name, content string) (bool, error) {
	path := filepath.Join(w.BaseDir, name)

	if existing, err := os.ReadFile(path); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
			return false, nil
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// readme renders the front matter with the book title as its heading.
func readme(book *gitbookconvert.RenderedBook) string {
	var b strings.Builder
	if book.Title != "" {
		b.WriteString("# ")
		b.WriteString(book.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(book.Readme)
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// summary renders SUMMARY.md: the README link followed by one indented
// list entry per chapter, nesting by outline level.
func summary(book *gitbookconvert.RenderedBook) string {
	var b strings.Builder
	b.WriteString("# Summary\n\n")

	intro := book.Title
	if intro == "" {
		intro = "Introduction"
	}
	fmt.Fprintf(&b, "* [%s](README.md)\n", intro)

	for _, rc := range book.Chapters {
		ch := rc.Chapter
		fmt.Fprintf(&b, "%s* [%s](%s)\n", strings.Repeat("    ", ch.Level), ch.Title, ch.Filename)
	}

	return b.String()
}
