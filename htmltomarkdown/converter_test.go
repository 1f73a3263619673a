package htmltomarkdown_test

import (
	"testing"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
	"github.com/SyllaJay/gitbook-convert/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements gitbookconvert.Converter at compile time.
var _ gitbookconvert.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><h2>Subtitle</h2><h6>Caption</h6>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "###### Caption")
	})

	t.Run("converts normalized program listings to code blocks", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<pre><code>x := 1\ny := 2</code></pre>")

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, "x := 1")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="https://example.com">Example</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "| A | B |")
	})

	t.Run("empty chapter content converts to empty string", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("")

		require.NoError(t, err)
		assert.Empty(t, md)
	})

	t.Run("whitespace-only content converts to empty string", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("  \n\t")

		require.NoError(t, err)
		assert.Empty(t, md)
	})
}
