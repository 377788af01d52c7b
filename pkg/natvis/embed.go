// Package natvis bundles the fkYAML debugger visualization template.
package natvis

import (
	"embed"
	"io/fs"
)

// TemplateName is the bundled template, without the .j2 extension.
const TemplateName = "fkYAML.natvis"

// DefaultOutputPath mirrors the generator's historical location two levels
// below the repository root.
const DefaultOutputPath = "../../fkYAML.natvis"

//go:embed templates/*.j2
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle rooted at the templates
// directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
