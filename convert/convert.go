// Package convert provides book conversion orchestration. It
// coordinates the external DocBook transform, markup normalization,
// outline splitting, Markdown rendering, and output writing.
package convert

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
	"golang.org/x/sync/errgroup"
)

// Pipeline orchestrates one conversion run.
//
// Transform, normalization, and splitting are strictly sequential: the
// splitter consumes one shared mutable document and extraction order
// determines correctness. Only Markdown rendering, which operates on
// already-partitioned fragments, runs concurrently.
type Pipeline struct {
	Transformer gitbookconvert.Transformer
	Normalizer  gitbookconvert.Normalizer
	Splitter    gitbookconvert.Splitter
	Converter   gitbookconvert.Converter
	Writer      gitbookconvert.BookWriter

	// Concurrency limits parallel Markdown rendering. Defaults to 8.
	Concurrency int
}

// Result holds the outcome of a conversion run.
type Result struct {
	Chapters int
	Written  int
	Skipped  int
	Bytes    int
}

// ProgressEvent reports progress during a conversion run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Chapter   *gitbookconvert.Chapter
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressRendered
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// Run converts the DocBook source at sourcePath end to end. The
// progress callback, if provided, receives events as chapters are
// rendered. Transform failures are fatal; a book whose TOC claims
// nothing degenerates to a front-matter-only output.
func (p *Pipeline) Run(ctx context.Context, sourcePath string, progress ProgressFunc) (*Result, error) {
	html, err := p.Transformer.Transform(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	normalized, err := p.Normalizer.Normalize(html)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	book, err := p.Splitter.Split(normalized)
	if err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}

	// The rendered HTML may carry no title at all; fall back to the
	// DocBook source.
	if book.FrontMatter.Title == "" {
		if title, err := p.Transformer.Title(sourcePath); err == nil {
			book.FrontMatter.Title = title
		}
	}

	rendered, err := p.render(ctx, book, progress)
	if err != nil {
		return nil, err
	}

	wr, err := p.Writer.WriteBook(ctx, rendered)
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Total: len(book.Chapters)})
	}

	return &Result{
		Chapters: len(book.Chapters),
		Written:  wr.Written,
		Skipped:  wr.Skipped,
		Bytes:    wr.Bytes,
	}, nil
}

// render converts the front matter and every chapter to Markdown.
// Chapter order in the rendered book matches the flattened outline.
func (p *Pipeline) render(ctx context.Context, book *gitbookconvert.Book, progress ProgressFunc) (*gitbookconvert.RenderedBook, error) {
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(book.Chapters)})
	}

	readme, err := p.Converter.Convert(book.FrontMatter.Content)
	if err != nil {
		return nil, fmt.Errorf("render front matter: %w", err)
	}

	rendered := &gitbookconvert.RenderedBook{
		Title:    book.FrontMatter.Title,
		Readme:   readme,
		Chapters: make([]gitbookconvert.RenderedChapter, len(book.Chapters)),
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	// Workers report progress from their own goroutines; serialize the
	// callback so callers can write to a terminal without locking.
	var completed atomic.Int64
	var progressMu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, ch := range book.Chapters {
		g.Go(func() error {
			md, err := p.Converter.Convert(ch.Content)
			if err != nil {
				return fmt.Errorf("render chapter %q: %w", ch.Title, err)
			}
			rendered.Chapters[i] = gitbookconvert.RenderedChapter{Chapter: ch, Markdown: md}

			completed.Add(1)
			if progress != nil {
				progressMu.Lock()
				progress(ProgressEvent{
					Type:      ProgressRendered,
					Completed: int(completed.Load()),
					Total:     len(book.Chapters),
					Chapter:   ch,
				})
				progressMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rendered, nil
}
