package slog

import (
	"context"
	"log/slog"
	"time"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
)

// Ensure LoggingTransformer implements gitbookconvert.Transformer.
var _ gitbookconvert.Transformer = (*LoggingTransformer)(nil)

// LoggingTransformer wraps a Transformer with toolchain timing logs.
type LoggingTransformer struct {
	next   gitbookconvert.Transformer
	logger *slog.Logger
}

// NewLoggingTransformer creates a new LoggingTransformer.
func NewLoggingTransformer(next gitbookconvert.Transformer, logger *slog.Logger) *LoggingTransformer {
	return &LoggingTransformer{next: next, logger: logger}
}

// Transform delegates to the wrapped transformer and logs the toolchain
// run.
func (t *LoggingTransformer) Transform(ctx context.Context, sourcePath string) (string, error) {
	begin := time.Now()
	html, err := t.next.Transform(ctx, sourcePath)
	if err != nil {
		t.logger.Error("transform failed",
			"source", sourcePath,
			"error", gitbookconvert.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return "", err
	}

	t.logger.Info("source transformed",
		"source", sourcePath,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Title delegates to the wrapped transformer.
func (t *LoggingTransformer) Title(sourcePath string) (string, error) {
	return t.next.Title(sourcePath)
}
