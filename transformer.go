package gitbookconvert

import "context"

// Transformer renders a DocBook source file to a single HTML5 document.
//
// Implementations hide the external toolchain invocation and the
// intermediate artifact handling. A non-zero toolchain exit or an
// unreadable artifact is fatal to the run and surfaces as ETRANSFORM.
type Transformer interface {
	// Transform renders the source at the given path and returns the
	// full HTML5 document.
	Transform(ctx context.Context, sourcePath string) (string, error)

	// Title reads the book title from the DocBook source. Returns
	// ENOTFOUND if the source carries none.
	Title(sourcePath string) (string, error)
}
