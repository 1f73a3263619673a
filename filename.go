package gitbookconvert

import (
	"fmt"
	"strings"
	"unicode"
)

// Slug creates a URL- and filesystem-safe slug from a chapter title.
// Converts to lowercase, replaces whitespace runs with single hyphens,
// and drops everything that is not a letter or digit.
func Slug(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '.' || r == '/' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		return "chapter"
	}
	return slug
}

// ChapterFilename builds the output filename for a chapter: an optional
// zero-padded ordinal prefix, the slugified title, and the extension.
// The ordinal is the chapter's 1-based position in the flattened
// sequence, so prefixed filenames sort in document order.
func ChapterFilename(ch *Chapter, ordinal int, ext string, prefix bool) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	name := Slug(ch.Title)
	if prefix {
		return fmt.Sprintf("%02d-%s%s", ordinal, name, ext)
	}
	return name + ext
}
