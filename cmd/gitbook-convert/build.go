package main

import (
	"fmt"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
	"github.com/SyllaJay/gitbook-convert/convert"
	"github.com/SyllaJay/gitbook-convert/fs"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	writer := fs.NewWriter(c.Output)
	writer.Extension = c.Ext
	writer.PrefixFilenames = c.Prefix
	writer.Concurrency = c.Concurrency

	pipeline := &convert.Pipeline{
		Transformer: deps.Transformer,
		Normalizer:  deps.Normalizer,
		Splitter:    deps.Splitter,
		Converter:   deps.Converter,
		Writer:      writer,
		Concurrency: c.Concurrency,
	}

	progress := func(event convert.ProgressEvent) {
		switch event.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d chapters\n", event.Total)
		case convert.ProgressRendered:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.Chapter.Title)
		case convert.ProgressFinished:
			// Summary printed below
		}
	}

	result, err := pipeline.Run(deps.Ctx, c.Source, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gitbookconvert.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d files to %s (%d unchanged, %d bytes)\n",
		result.Written, c.Output, result.Skipped, result.Bytes)
	return nil
}
