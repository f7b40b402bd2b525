// Package resolvers checks descriptor versions against constraints.
package resolvers

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SemverResolver implements ports.VersionMatcher using Masterminds/semver.
type SemverResolver struct{}

// NewSemverResolver creates a new SemverResolver.
func NewSemverResolver() *SemverResolver {
	return &SemverResolver{}
}

// Satisfies reports whether version meets constraint.
// "latest" and "" accept any parseable version.
func (r *SemverResolver) Satisfies(constraint, version string) (bool, error) {
	if constraint == "" || constraint == "latest" {
		constraint = ">= 0"
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", version, err)
	}

	return c.Check(v), nil
}
