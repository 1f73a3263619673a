package gitbookconvert

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Chapter represents one node of the document outline: a chapter,
// appendix, section, or similar division reconstructed from the rendered
// document's table of contents.
//
// Parent, Previous and Next are back-references only; Children is the
// sole ownership edge. Sibling links and Num reflect document order
// among entries at the same level under the same parent.
type Chapter struct {
	// Stable anchor derived from the TOC link's URI fragment.
	// Unique within a conversion run.
	ID string `json:"id"`

	// Open classification string copied from the TOC entry's label
	// class, e.g. "chapter", "appendix", "sect1". The set of values is
	// defined by the input document, not by this program.
	Type string `json:"type"`

	// Plain-text title from the TOC link.
	Title string `json:"title"`

	// Depth in the outline. Root-level entries are level 0.
	Level int `json:"level"`

	// 1-based position among siblings at the same level.
	Num int `json:"num"`

	// Extracted HTML fragment. Empty until extraction runs, and empty
	// forever when the TOC anchor resolves to no element.
	Content string `json:"content"`

	// Output filename, assigned after flattening. Not an invariant of
	// the extraction core.
	Filename string `json:"filename"`

	Parent   *Chapter   `json:"-"`
	Children []*Chapter `json:"-"`
	Previous *Chapter   `json:"-"`
	Next     *Chapter   `json:"-"`
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.Title == "" {
		return Errorf(EINVALID, "chapter title required")
	}
	if c.Level < 0 {
		return Errorf(EINVALID, "chapter level must be non-negative")
	}
	return nil
}

// ContentHash returns a stable hash of the chapter's content, used to
// detect unchanged output files.
func (c *Chapter) ContentHash() string {
	return strconv.FormatUint(xxhash.Sum64String(c.Content), 16)
}

// Flatten linearizes the chapter tree rooted at the given sequence into
// pre-order: each chapter followed immediately by its flattened
// descendants. This is the final ordering used for output.
func Flatten(chapters []*Chapter) []*Chapter {
	var flat []*Chapter
	for _, ch := range chapters {
		flat = append(flat, ch)
		flat = append(flat, Flatten(ch.Children)...)
	}
	return flat
}

// FrontMatter is the synthetic leading chapter holding whatever content
// no TOC entry claimed, typically introductory material preceding the
// first section. It becomes the book's README.
type FrontMatter struct {
	// Document title.
	Title string `json:"title"`

	// Residual HTML fragment.
	Content string `json:"content"`
}

// Book is the result of splitting one rendered document: the residual
// front matter followed by the flattened, document-ordered chapters.
type Book struct {
	FrontMatter *FrontMatter `json:"frontMatter"`
	Chapters    []*Chapter   `json:"chapters"`
}
