package natvisgen

import (
	"io/fs"

	"github.com/goliatone/go-natvisgen/pkg/natvis"
)

// EmbeddedTemplates exposes the bundled natvis template so callers can reuse
// or extend it without importing the natvis package directly.
func EmbeddedTemplates() fs.FS {
	return natvis.TemplatesFS()
}
