package useragent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errEmptySegment      = errors.New("empty segment")
	errLeadingZero       = errors.New("leading zero")
	errNonNumericSegment = errors.New("non-numeric segment")
)

// AppBuild is an application build number of up to three dot-separated
// integers. Missing components are zero. Each component covers the full
// uint64 range.
//
// Parsing accepts "1", "1.2" and "1.2.3"; String drops trailing zero
// components, so "1.0.0" is rendered as "1" and "1.2.0" as "1.2".
type AppBuild struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ParseAppBuild parses a build number. The Unknown sentinel yields nil.
func ParseAppBuild(s string) (*AppBuild, error) {
	return decodeOptional(s, parseAppBuildValue)
}

func parseAppBuildValue(s string) (AppBuild, error) {
	segments := strings.Split(s, ".")
	if len(segments) > 3 {
		return AppBuild{}, fmt.Errorf("%w: %d segments in %q", ErrInvalidAppBuild, len(segments), s)
	}

	var parts [3]uint64
	for i, seg := range segments {
		n, err := parseBuildSegment(seg)
		if err != nil {
			return AppBuild{}, fmt.Errorf("%w: segment %d of %q: %w", ErrInvalidAppBuild, i+1, s, err)
		}
		parts[i] = n
	}

	return AppBuild{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// parseBuildSegment accepts a decimal number without sign or leading zeros
// that fits in uint64, so every AppBuild value survives String and Parse.
func parseBuildSegment(seg string) (uint64, error) {
	if seg == "" {
		return 0, errEmptySegment
	}
	if len(seg) > 1 && seg[0] == '0' {
		return 0, errLeadingZero
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, errNonNumericSegment
		}
	}
	return strconv.ParseUint(seg, 10, 64)
}

// String returns the shortest form of the build number.
func (b AppBuild) String() string {
	switch {
	case b.Minor == 0 && b.Patch == 0:
		return strconv.FormatUint(b.Major, 10)
	case b.Patch == 0:
		return fmt.Sprintf("%d.%d", b.Major, b.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", b.Major, b.Minor, b.Patch)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b AppBuild) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The Unknown sentinel
// is rejected since an AppBuild value cannot be absent.
func (b *AppBuild) UnmarshalText(data []byte) error {
	v, err := parseAppBuildValue(string(data))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func formatAppBuild(b AppBuild) string { return b.String() }
