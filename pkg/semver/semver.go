package semver

import (
	"errors"
	"regexp"
)

// ErrInvalidVersion is matched by every error returned from Check.
var ErrInvalidVersion = errors.New("invalid semantic version specified")

var pattern = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

// InvalidVersionError reports the offending value.
type InvalidVersionError struct {
	Value string
}

func (e *InvalidVersionError) Error() string {
	return ErrInvalidVersion.Error() + ". ver=" + e.Value
}

// Is lets errors.Is match ErrInvalidVersion.
func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// Check returns version unchanged when it is exactly three dot-separated
// non-negative integers.
func Check(version string) (string, error) {
	if !pattern.MatchString(version) {
		return "", &InvalidVersionError{Value: version}
	}
	return version, nil
}

// Valid reports whether Check would accept version.
func Valid(version string) bool {
	return pattern.MatchString(version)
}
