package gitbookconvert

// Splitter partitions one rendered HTML5 document into a Book.
//
// Implementations walk the document's table of contents, extract each
// outline entry's HTML subtree from the shared document, and collect
// whatever remains as front matter. Extraction is order-sensitive and
// strictly sequential: children are claimed before their parent so that
// no two fragments overlap and nothing is lost.
type Splitter interface {
	// Split consumes a full HTML5 document and returns the partitioned
	// book. A document with an empty or absent TOC degenerates to a
	// front-matter-only book; this is not an error.
	Split(html string) (*Book, error)
}
