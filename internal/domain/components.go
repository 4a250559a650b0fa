package domain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Masterminds/semver/v3"
)

// Field names one component of a header version.
type Field string

const (
	FieldMajor   Field = "MAJOR"
	FieldMinor   Field = "MINOR"
	FieldRelease Field = "RELEASE"
)

// Fields lists the version fields in extraction order.
var Fields = []Field{FieldMajor, FieldMinor, FieldRelease}

// Components holds the numeric parts read from a version header.
// Values are unbounded; a Components is never modified after NewComponents.
type Components struct {
	major   *big.Int
	minor   *big.Int
	release *big.Int
}

// NewComponents copies the three values into a new record.
func NewComponents(major, minor, release *big.Int) *Components {
	return &Components{
		major:   new(big.Int).Set(major),
		minor:   new(big.Int).Set(minor),
		release: new(big.Int).Set(release),
	}
}

// Major returns a copy of the major component.
func (c *Components) Major() *big.Int { return new(big.Int).Set(c.major) }

// Minor returns a copy of the minor component.
func (c *Components) Minor() *big.Int { return new(big.Int).Set(c.minor) }

// Release returns a copy of the release component.
func (c *Components) Release() *big.Int { return new(big.Int).Set(c.release) }

// Number packs the components the way the library header does:
// major*10000 + minor*100 + release.
func (c *Components) Number() *big.Int {
	hundred := big.NewInt(100)
	n := new(big.Int).Mul(c.major, hundred)
	n.Add(n, c.minor)
	n.Mul(n, hundred)
	return n.Add(n, c.release)
}

// Version converts the components into a semantic version.
// It fails when a component does not fit in uint64.
func (c *Components) Version() (*Version, error) {
	for _, part := range []struct {
		field Field
		value *big.Int
	}{{FieldMajor, c.major}, {FieldMinor, c.minor}, {FieldRelease, c.release}} {
		if !part.value.IsUint64() {
			return nil, fmt.Errorf("%s value %s exceeds semantic version range", part.field, part.value)
		}
	}
	return &Version{semver.New(c.major.Uint64(), c.minor.Uint64(), c.release.Uint64(), "", "")}, nil
}

// String returns MAJOR.MINOR.RELEASE.
func (c *Components) String() string {
	return fmt.Sprintf("%s.%s.%s", c.major, c.minor, c.release)
}

// FieldNotFoundError reports a version field missing from the header.
type FieldNotFoundError struct {
	Field Field
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("unable to find %s version string", e.Field)
}

// IsFieldNotFound reports whether err carries a FieldNotFoundError.
func IsFieldNotFound(err error) bool {
	var target *FieldNotFoundError
	return errors.As(err, &target)
}
