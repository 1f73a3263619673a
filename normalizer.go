package gitbookconvert

// Normalizer rewrites format-specific markup idioms in a rendered
// document into generic semantic HTML suitable for Markdown rendering.
//
// Implementations apply a fixed sequence of independent, idempotent
// passes; a malformed element causes that rule instance to be skipped,
// never the whole pass to fail. All non-matching markup passes through
// unchanged.
type Normalizer interface {
	Normalize(html string) (string, error)
}
