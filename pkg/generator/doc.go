// Package generator wires the natvis pipeline: it loads the params file,
// validates the version, derives the fkyaml namespace, renders the template
// and writes the output file.
//
// Rendering happens entirely in memory, so a failed run never creates or
// modifies the output file:
//
//	gen := generator.New(
//		generator.WithParamsPath("params.json"),
//		generator.WithOutputPath("../../fkYAML.natvis"),
//	)
//	result, err := gen.Generate(ctx)
package generator
