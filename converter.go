package gitbookconvert

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// The input should be normalized HTML (e.g., one chapter's
	// extracted content). Returns the Markdown representation.
	Convert(html string) (string, error)
}
