// Package htmltomarkdown renders chapter HTML fragments as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	gitbookconvert "github.com/SyllaJay/gitbook-convert"
)

// Ensure Converter implements gitbookconvert.Converter at compile time.
var _ gitbookconvert.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to render chapter fragments.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a normalized HTML fragment into Markdown. An empty
// fragment converts to the empty string; chapters whose TOC anchor
// resolved to no element legitimately have no content.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
