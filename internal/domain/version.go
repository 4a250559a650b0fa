package domain

import (
	"github.com/Masterminds/semver/v3"
)

// Version wraps semver.Version for additional methods.
type Version struct {
	*semver.Version
}

// Tag returns the version string with v prefix.
func (v *Version) Tag() string {
	return "v" + v.Version.String()
}
