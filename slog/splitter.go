// Package slog provides logging decorators for the conversion pipeline.
package slog

import (
	"log/slog"
	"time"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
)

// Ensure LoggingSplitter implements gitbookconvert.Splitter.
var _ gitbookconvert.Splitter = (*LoggingSplitter)(nil)

// LoggingSplitter wraps a Splitter with progress logging.
type LoggingSplitter struct {
	next   gitbookconvert.Splitter
	logger *slog.Logger
}

// NewLoggingSplitter creates a new LoggingSplitter.
func NewLoggingSplitter(next gitbookconvert.Splitter, logger *slog.Logger) *LoggingSplitter {
	return &LoggingSplitter{next: next, logger: logger}
}

// Split delegates to the wrapped splitter and logs the outcome: chapter
// count, unresolved anchors, and duration.
func (s *LoggingSplitter) Split(html string) (*gitbookconvert.Book, error) {
	begin := time.Now()
	book, err := s.next.Split(html)
	if err != nil {
		s.logger.Error("split failed",
			"error", gitbookconvert.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	unresolved := 0
	for _, ch := range book.Chapters {
		if ch.Content == "" {
			unresolved++
		}
	}

	s.logger.Info("document split",
		"title", book.FrontMatter.Title,
		"chapters", len(book.Chapters),
		"unresolved_anchors", unresolved,
		"duration", time.Since(begin),
	)
	return book, nil
}
