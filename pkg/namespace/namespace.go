// Package namespace derives the versioned C++ namespace that fkYAML wraps its
// ABI in, e.g. fkyaml::v1_2_3 for version 1.2.3.
package namespace

import (
	"strings"

	"github.com/goliatone/go-natvisgen/pkg/semver"
)

const (
	// DefaultPrefix is the project namespace of the fkYAML library.
	DefaultPrefix = "fkyaml"
	// Separator joins the project namespace and the ABI namespace.
	Separator = "::"
)

// Namespace is a derived, fully qualified namespace.
type Namespace struct {
	Prefix  string `json:"prefix"`
	Version string `json:"version"`
	ABI     string `json:"abiNamespace"`
}

// String returns the qualified form, e.g. fkyaml::v1_2_3.
func (n Namespace) String() string {
	return n.Prefix + Separator + n.ABI
}

// ABI converts an already validated version into its inline namespace token.
func ABI(version string) string {
	return "v" + strings.ReplaceAll(version, ".", "_")
}

// Qualify joins prefix and the ABI token for version.
func Qualify(prefix, version string) string {
	return prefix + Separator + ABI(version)
}

// Derive validates raw and builds the Namespace for it. An empty prefix
// selects DefaultPrefix.
func Derive(prefix, raw string) (Namespace, error) {
	version, err := semver.Check(raw)
	if err != nil {
		return Namespace{}, err
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return Namespace{
		Prefix:  prefix,
		Version: version,
		ABI:     ABI(version),
	}, nil
}
