// Package docbook invokes the external DocBook toolchain.
package docbook

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	gitbookconvert "github.com/SyllaJay/gitbook-convert"
	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// Ensure Transformer implements gitbookconvert.Transformer at compile time.
var _ gitbookconvert.Transformer = (*Transformer)(nil)

// DefaultCommand is the toolchain used when none is configured.
// Pandoc reads DocBook 4 and 5 and emits a standalone HTML5 document.
var DefaultCommand = []string{"pandoc", "--from", "docbook", "--to", "html5", "--standalone"}

// Transformer renders DocBook sources to HTML5 by shelling out to an
// external toolchain. The toolchain writes a uuid-named intermediate
// artifact under the system temp directory; the artifact is read back
// and removed before Transform returns.
type Transformer struct {
	// Command is the toolchain invocation, e.g. ["pandoc", "--from",
	// "docbook", "--to", "html5", "--standalone"]. The source path and
	// "--output <artifact>" are appended per run.
	Command []string
}

// NewTransformer creates a Transformer using DefaultCommand.
func NewTransformer() *Transformer {
	return &Transformer{Command: DefaultCommand}
}

// Transform renders the DocBook source at sourcePath and returns the
// full HTML5 document. A non-zero toolchain exit is fatal and surfaces
// as ETRANSFORM with the toolchain's stderr in the message.
func (t *Transformer) Transform(ctx context.Context, sourcePath string) (string, error) {
	if len(t.Command) == 0 {
		return "", gitbookconvert.Errorf(gitbookconvert.EINVALID, "transform command required")
	}
	if _, err := os.Stat(sourcePath); err != nil {
		return "", gitbookconvert.Errorf(gitbookconvert.ENOTFOUND, "source %q not readable: %v", sourcePath, err)
	}

	artifact := filepath.Join(os.TempDir(), "gitbook-convert-"+uuid.NewString()+".html")
	defer os.Remove(artifact)

	args := append(append([]string{}, t.Command[1:]...), sourcePath, "--output", artifact)
	cmd := exec.CommandContext(ctx, t.Command[0], args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", gitbookconvert.Errorf(gitbookconvert.ETRANSFORM, "%s failed: %s", t.Command[0], msg)
	}

	html, err := os.ReadFile(artifact)
	if err != nil {
		return "", gitbookconvert.Errorf(gitbookconvert.ETRANSFORM, "toolchain produced no readable artifact: %v", err)
	}

	return string(html), nil
}

// Title reads the book title from the DocBook source. It checks the
// usual locations in order: /book/info/title, /book/bookinfo/title,
// /book/title, and the article equivalents. Returns ENOTFOUND when the
// source carries none.
func (t *Transformer) Title(sourcePath string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(sourcePath); err != nil {
		return "", gitbookconvert.Errorf(gitbookconvert.ENOTFOUND, "source %q not readable: %v", sourcePath, err)
	}

	for _, path := range []string{
		"/book/info/title",
		"/book/bookinfo/title",
		"/book/title",
		"/article/info/title",
		"/article/articleinfo/title",
		"/article/title",
	} {
		if el := doc.FindElement(path); el != nil {
			if title := strings.TrimSpace(el.Text()); title != "" {
				return title, nil
			}
		}
	}

	return "", gitbookconvert.Errorf(gitbookconvert.ENOTFOUND, "no title in %q", sourcePath)
}
