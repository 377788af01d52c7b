// Package template defines the renderer-agnostic template contract used by the
// natvis generator. The pongo2-backed implementation lives in the gotemplate
// subpackage and follows Jinja whitespace rules (trim_blocks, lstrip_blocks,
// kept trailing newline) so generated files stay byte-stable.
package template
