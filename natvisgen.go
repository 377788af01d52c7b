// Package natvisgen renders the fkYAML debugger visualization (natvis) file
// for a given library version. The version is read from a params file and
// turned into the versioned namespace (fkyaml::vX_Y_Z) the template expects.
package natvisgen

import (
	"context"

	"github.com/goliatone/go-natvisgen/pkg/generator"
	"github.com/goliatone/go-natvisgen/pkg/namespace"
)

// Result aliases generator.Result for callers of the root package.
type Result = generator.Result

// New exposes the generator constructor from the top-level module.
func New(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate reads the params file, renders the natvis template and writes the
// output file. It is the simplest entry point for build scripts.
func Generate(ctx context.Context, options ...generator.Option) (Result, error) {
	return generator.New(options...).Generate(ctx)
}

// Namespace validates version and returns the qualified fkyaml namespace.
func Namespace(version string) (string, error) {
	ns, err := namespace.Derive(namespace.DefaultPrefix, version)
	if err != nil {
		return "", err
	}
	return ns.String(), nil
}
