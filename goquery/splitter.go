package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	gitbookconvert "github.com/SyllaJay/gitbook-convert"
)

// Ensure Splitter implements gitbookconvert.Splitter at compile time.
var _ gitbookconvert.Splitter = (*Splitter)(nil)

// sectionContainers matches the DocBook HTML sectioning wrappers that
// have no Markdown equivalent and get discarded during rendering.
const sectionContainers = "div.section, div.sect1, div.sect2, div.sect3, div.sect4, div.sect5, div.chapter, div.appendix, div.preface, div.part, section"

// Splitter partitions a rendered HTML5 document along its table of
// contents.
//
// The TOC is expected as a div tagged "toc" holding a nested list tagged
// "toc" of list items, each with a label span (whose class conveys the
// entry type) wrapping a link (whose href fragment conveys the anchor
// and whose text conveys the title). Every anchor must appear as an id
// attribute on some element elsewhere in the same document to be
// resolvable; an unresolvable anchor yields a chapter with empty
// content, not an error.
type Splitter struct{}

// NewSplitter creates a new Splitter.
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Split consumes one full HTML5 document and returns the partitioned
// book: the flattened, document-ordered chapter sequence plus whatever
// the TOC never claimed as front matter. The shared document is
// consumed bottom-up: each entry's descendants are extracted before the
// entry itself, so no two fragments overlap and a parent's content is
// exactly its own markup minus everything claimed by descendants.
func (s *Splitter) Split(htmlStr string) (*gitbookconvert.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, gitbookconvert.Errorf(gitbookconvert.EINVALID, "failed to parse HTML: %v", err)
	}

	title := documentTitle(doc)

	var chapters []*gitbookconvert.Chapter
	if list := tocList(doc); list.Length() > 0 {
		chapters = s.walk(doc, list, 0, nil)
	}

	flat := gitbookconvert.Flatten(chapters)
	for _, ch := range flat {
		ch.Content = reconcileAnchors(ch.Content)
	}

	// The TOC itself is not front matter; the summary replaces it.
	doc.Find("div.toc").Remove()
	residual, err := doc.Find("body").Html()
	if err != nil {
		return nil, gitbookconvert.Errorf(gitbookconvert.EINTERNAL, "failed to serialize residual content: %v", err)
	}

	return &gitbookconvert.Book{
		FrontMatter: &gitbookconvert.FrontMatter{
			Title:   title,
			Content: strings.TrimSpace(residual),
		},
		Chapters: flat,
	}, nil
}

// walk recursively interprets one level of the TOC list into an ordered
// sibling group of chapters.
//
// Per list item the order is load-bearing: descend into the nested
// sub-list first, then extract this entry's own subtree from the shared
// document. Extracting the parent first would capture all descendant
// markup and leave nothing for the children to claim.
func (s *Splitter) walk(doc *goquery.Document, list *goquery.Selection, level int, parent *gitbookconvert.Chapter) []*gitbookconvert.Chapter {
	var siblings []*gitbookconvert.Chapter

	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		label := li.ChildrenFiltered("span").First()
		link := label.Find("a").First()

		typ, _ := label.Attr("class")
		ch := &gitbookconvert.Chapter{
			ID:     anchorID(link),
			Type:   typ,
			Title:  strings.TrimSpace(link.Text()),
			Level:  level,
			Num:    len(siblings) + 1,
			Parent: parent,
		}

		if sub := li.ChildrenFiltered("ul").First(); sub.Length() > 0 {
			ch.Children = s.walk(doc, sub, level+1, ch)
		}

		ch.Content = extract(doc, ch.ID)
		siblings = append(siblings, ch)
	})

	for i, ch := range siblings {
		if i > 0 {
			ch.Previous = siblings[i-1]
		}
		if i < len(siblings)-1 {
			ch.Next = siblings[i+1]
		}
	}

	return siblings
}

// tocList locates the top-level TOC list.
func tocList(doc *goquery.Document) *goquery.Selection {
	list := doc.Find("div.toc ul.toc").First()
	if list.Length() == 0 {
		list = doc.Find("div.toc ul").First()
	}
	return list
}

// anchorID returns the fragment of the link's href, or "" when the link
// has no href or the href carries no fragment.
func anchorID(link *goquery.Selection) string {
	href, ok := link.Attr("href")
	if !ok {
		return ""
	}
	if i := strings.Index(href, "#"); i >= 0 {
		return href[i+1:]
	}
	return ""
}

// extract captures the outer HTML of the element whose id equals the
// given anchor and detaches it from the shared document, so later
// extractions see a strictly smaller remainder. An unresolvable anchor
// yields "".
func extract(doc *goquery.Document, id string) string {
	if id == "" {
		return ""
	}

	sel := doc.Find(`[id="` + strings.ReplaceAll(id, `"`, `\"`) + `"]`).First()
	if sel.Length() == 0 {
		return ""
	}

	outer, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	sel.Remove()
	return outer
}

// reconcileAnchors migrates a sectioning container's anchor onto the
// container's first heading. The containers are discarded during
// Markdown rendering, so an anchor left on one would become
// unreachable; the heading survives. Containers without an anchor, and
// headings that already carry one, are left untouched.
func reconcileAnchors(fragment string) string {
	if fragment == "" {
		return fragment
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	changed := false
	doc.Find(sectionContainers).Each(func(_ int, sel *goquery.Selection) {
		id, ok := sel.Attr("id")
		if !ok {
			return
		}

		heading := sel.Find("h1, h2, h3, h4, h5, h6").First()
		if heading.Length() == 0 {
			return
		}
		if _, ok := heading.Attr("id"); ok {
			return
		}

		heading.SetAttr("id", id)
		sel.RemoveAttr("id")
		changed = true
	})

	if !changed {
		return fragment
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return fragment
	}
	return out
}

// documentTitle returns the document's title, falling back to the first
// h1 when the head carries none.
func documentTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("head title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
