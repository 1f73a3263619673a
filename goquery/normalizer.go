package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	gitbookconvert "github.com/SyllaJay/gitbook-convert"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements gitbookconvert.Normalizer at compile time.
var _ gitbookconvert.Normalizer = (*Normalizer)(nil)

// Normalizer rewrites DocBook HTML idioms into generic semantic HTML.
//
// It applies a fixed sequence of independent passes, each scoped to its
// matching elements only. A malformed element (e.g. an example container
// with no caption) causes that rule instance to be skipped; the pass
// never fails the run. Every pass is idempotent.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// rewritePass mutates the shared document in place.
type rewritePass func(doc *goquery.Document)

// passes run in fixed order.
var passes = []rewritePass{
	rewriteLiteralLayouts,
	wrapProgramListings,
	rewriteExampleCaptions,
	rewriteFootnoteRefs,
	rewriteFootnoteBodies,
}

// Normalize applies all rewrite passes and returns the full document.
func (n *Normalizer) Normalize(htmlStr string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return "", gitbookconvert.Errorf(gitbookconvert.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, pass := range passes {
		pass(doc)
	}

	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return "", gitbookconvert.Errorf(gitbookconvert.EINTERNAL, "failed to serialize HTML: %v", err)
	}
	return out, nil
}

// rewriteLiteralLayouts replaces a literal-layout container whose sole
// meaningful content is one paragraph with a preformatted block wrapping
// a code span.
func rewriteLiteralLayouts(doc *goquery.Document) {
	doc.Find("div.literallayout").Each(func(_ int, sel *goquery.Selection) {
		paras := sel.ChildrenFiltered("p")
		if sel.Children().Length() != 1 || paras.Length() != 1 {
			return
		}
		if strings.TrimSpace(sel.Contents().Not("*").Text()) != "" {
			return
		}

		inner, err := paras.First().Html()
		if err != nil {
			return
		}
		sel.ReplaceWithHtml("<pre><code>" + strings.TrimSpace(inner) + "</code></pre>")
	})
}

// wrapProgramListings wraps the inner markup of program listings and
// terminal transcripts in a code span. Already-wrapped blocks are left
// alone so running the pass twice changes nothing.
func wrapProgramListings(doc *goquery.Document) {
	doc.Find("pre.programlisting, pre.screen").Each(func(_ int, sel *goquery.Selection) {
		contents := sel.Contents()
		if contents.Length() == 1 && goquery.NodeName(contents.First()) == "code" {
			return
		}

		inner, err := sel.Html()
		if err != nil {
			return
		}
		sel.SetHtml("<code>" + inner + "</code>")
	})
}

// rewriteExampleCaptions converts a numbered example's caption into a
// level-6 heading carrying the example's anchor. The rest of the
// example's content stays where it is, following the heading.
func rewriteExampleCaptions(doc *goquery.Document) {
	doc.Find("div.example").Each(func(_ int, sel *goquery.Selection) {
		caption := sel.ChildrenFiltered("div.example-title").First()
		if caption.Length() == 0 {
			return
		}

		inner, err := caption.Html()
		if err != nil {
			return
		}

		if id, ok := sel.Attr("id"); ok {
			sel.RemoveAttr("id")
			caption.ReplaceWithHtml(`<h6 id="` + html.EscapeString(id) + `">` + inner + "</h6>")
		} else {
			caption.ReplaceWithHtml("<h6>" + inner + "</h6>")
		}
	})
}

// rewriteFootnoteRefs restructures a footnote-reference link so the
// superscript marker carries the link instead of the other way around:
// <a><sup>3</sup></a> becomes <sup>3<a></a></sup>. Links with zero or
// more than one child, or whose single child is not a superscript
// marker, are left untouched.
func rewriteFootnoteRefs(doc *goquery.Document) {
	doc.Find("a.footnote, a.footnoteref").Each(func(_ int, sel *goquery.Selection) {
		if !hasSoleElementChild(sel.Get(0), "sup") {
			return
		}

		sup := sel.ChildrenFiltered("sup").First()
		sel.BeforeSelection(sup)
		sup.AppendSelection(sel)
	})
}

// rewriteFootnoteBodies moves a footnote body's anchor onto its
// superscript marker and turns the backlink into an upward arrow nested
// after the footnote number, so the marker survives Markdown rendering.
func rewriteFootnoteBodies(doc *goquery.Document) {
	doc.Find("div.footnote").Each(func(_ int, sel *goquery.Selection) {
		para := sel.Find("p").First()
		link := sel.Find("a").First()
		sup := sel.Find("sup").First()
		if para.Length() == 0 || link.Length() == 0 || sup.Length() == 0 {
			return
		}

		id, ok := sel.Attr("id")
		if !ok {
			return
		}

		sup.SetAttr("id", id)
		sel.RemoveAttr("id")

		// The marker usually sits inside the backlink; pull it out
		// before the link is detached.
		para.PrependSelection(sup)

		removed := link.Remove()
		removed.SetText("↑")
		sup.AppendSelection(removed)
	})
}

// hasSoleElementChild reports whether n's only non-whitespace child node
// is an element with the given tag.
func hasSoleElementChild(n *html.Node, tag string) bool {
	if n == nil {
		return false
	}

	var only *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		if only != nil {
			return false
		}
		only = c
	}
	return only != nil && only.Type == html.ElementNode && only.Data == tag
}
