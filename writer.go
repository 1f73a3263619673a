package gitbookconvert

import "context"

// RenderedChapter pairs a chapter with its Markdown rendering.
type RenderedChapter struct {
	Chapter  *Chapter
	Markdown string
}

// RenderedBook is a Book after Markdown rendering: the front matter
// becomes the README, the chapters keep their flattened order.
type RenderedBook struct {
	Title    string
	Readme   string
	Chapters []RenderedChapter
}

// BookWriter persists a rendered book to its output layout: README,
// summary, and one file per chapter.
type BookWriter interface {
	WriteBook(ctx context.Context, book *RenderedBook) (*WriteResult, error)
}

// WriteResult summarizes a WriteBook call.
type WriteResult struct {
	// Files written, including README and summary.
	Written int

	// Chapter files left untouched because their content was unchanged.
	Skipped int

	// Total bytes written.
	Bytes int
}
