// Package semver validates the MAJOR.MINOR.PATCH version strings that feed
// namespace derivation. Only plain numeric triples are accepted: pre-release
// and build metadata suffixes are rejected.
package semver
