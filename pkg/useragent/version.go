package useragent

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver"
)

// Package defaults. They are never handed out; getters return copies.
var (
	defaultOSVersion      = semver.MustParse(DefaultOSVersion)
	defaultLibraryVersion = semver.MustParse(DefaultLibraryVersion)
)

// parseVersion accepts only canonical semantic versions: three numeric
// components without a "v" prefix or leading zeros, optionally followed by
// pre-release and build metadata. semver.NewVersion is lenient about all of
// these, so the canonical rendering of the result must match the input.
func parseVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidVersion, err)
	}
	if v.String() != s {
		return nil, fmt.Errorf("%w: %q is not in major.minor.patch form", ErrInvalidVersion, s)
	}
	return v, nil
}

// parseVersionValue adapts parseVersion to decodeOptional.
func parseVersionValue(s string) (semver.Version, error) {
	v, err := parseVersion(s)
	if err != nil {
		return semver.Version{}, err
	}
	return *v, nil
}

func formatVersion(v semver.Version) string { return v.String() }

func cloneVersion(v *semver.Version) *semver.Version {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func sameVersion(a, b *semver.Version) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
