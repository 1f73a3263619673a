package main

import (
	"fmt"
	"strings"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	html, err := deps.Transformer.Transform(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gitbookconvert.ErrorMessage(err))
		return err
	}

	normalized, err := deps.Normalizer.Normalize(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gitbookconvert.ErrorMessage(err))
		return err
	}

	book, err := deps.Splitter.Split(normalized)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gitbookconvert.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", book.FrontMatter.Title)
	for _, ch := range book.Chapters {
		marker := ""
		if ch.Content == "" {
			marker = "  (no content)"
		}
		fmt.Fprintf(deps.Stdout, "%s%d. [%s] %s #%s%s\n",
			strings.Repeat("  ", ch.Level+1), ch.Num, ch.Type, ch.Title, ch.ID, marker)
	}
	return nil
}
