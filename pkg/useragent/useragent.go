package useragent

import (
	"fmt"

	"github.com/Masterminds/semver"
)

// UserAgent is the parsed form of a signature string. It is immutable:
// values come from Parse, New or NewFromConfig and are never modified.
// Options copy the versions they are given and getters return copies, so
// no caller ever holds a pointer into a UserAgent.
//
// The zero value is equivalent to DefaultUserAgent().
type UserAgent struct {
	executable *string
	appVersion *semver.Version
	bundle     *string
	appBuild   *AppBuild
	osName     OSName

	// nil means the package default
	osVersion      *semver.Version
	libraryVersion *semver.Version
}

// Option configures a UserAgent built by New.
type Option func(*UserAgent)

// WithExecutable sets the application name. Passing Unknown leaves it absent.
// A name containing '/' does not survive a round trip through String and Parse.
func WithExecutable(name string) Option {
	return func(ua *UserAgent) { ua.executable, _ = decodeOptional(name, text) }
}

// WithAppVersion sets the application version, nil leaves it absent.
func WithAppVersion(v *semver.Version) Option {
	v = cloneVersion(v)
	return func(ua *UserAgent) { ua.appVersion = cloneVersion(v) }
}

// WithBundle sets the bundle identifier. Passing Unknown leaves it absent.
func WithBundle(id string) Option {
	return func(ua *UserAgent) { ua.bundle, _ = decodeOptional(id, text) }
}

// WithAppBuild sets the application build number.
func WithAppBuild(b AppBuild) Option {
	return func(ua *UserAgent) { ua.appBuild = &b }
}

// WithOSName sets the OS name. OSNameUnknown leaves it absent.
// Panics for values outside the enumeration so that a misconfigured client
// fails at startup instead of sending a signature it cannot parse back.
func WithOSName(n OSName) Option {
	return func(ua *UserAgent) {
		if n != OSNameUnknown && !n.Valid() {
			panic(fmt.Errorf("invalid os name %q", string(n)))
		}
		ua.osName = n
	}
}

// WithOSVersion sets the OS version. Nil is ignored.
func WithOSVersion(v *semver.Version) Option {
	v = cloneVersion(v)
	return func(ua *UserAgent) {
		if v != nil {
			ua.osVersion = cloneVersion(v)
		}
	}
}

// WithLibraryVersion sets the client library version. Nil is ignored.
func WithLibraryVersion(v *semver.Version) Option {
	v = cloneVersion(v)
	return func(ua *UserAgent) {
		if v != nil {
			ua.libraryVersion = cloneVersion(v)
		}
	}
}

// New builds a UserAgent from the defaults and the given options.
func New(opts ...Option) UserAgent {
	ua := DefaultUserAgent()
	for _, opt := range opts {
		opt(&ua)
	}
	return ua
}

// DefaultUserAgent returns a UserAgent with every optional field absent,
// OS version 0.0.0 and library version DefaultLibraryVersion.
func DefaultUserAgent() UserAgent {
	return UserAgent{}
}

// Executable returns the application name and whether it is present.
func (ua UserAgent) Executable() (string, bool) {
	if ua.executable == nil {
		return "", false
	}
	return *ua.executable, true
}

// AppVersion returns a copy of the application version and whether it is
// present.
func (ua UserAgent) AppVersion() (*semver.Version, bool) {
	return cloneVersion(ua.appVersion), ua.appVersion != nil
}

// Bundle returns the bundle identifier and whether it is present.
func (ua UserAgent) Bundle() (string, bool) {
	if ua.bundle == nil {
		return "", false
	}
	return *ua.bundle, true
}

// AppBuild returns the build number and whether it is present.
func (ua UserAgent) AppBuild() (AppBuild, bool) {
	if ua.appBuild == nil {
		return AppBuild{}, false
	}
	return *ua.appBuild, true
}

// OSName returns the OS name and whether it is present.
func (ua UserAgent) OSName() (OSName, bool) {
	return ua.osName, ua.osName != OSNameUnknown
}

// OSVersion always returns a version. The result is a copy.
func (ua UserAgent) OSVersion() *semver.Version {
	return cloneVersion(ua.osVersionRef())
}

// LibraryVersion always returns a version. The result is a copy.
func (ua UserAgent) LibraryVersion() *semver.Version {
	return cloneVersion(ua.libraryVersionRef())
}

// osVersionRef and libraryVersionRef resolve defaults without copying.
// The results must not escape the package.
func (ua UserAgent) osVersionRef() *semver.Version {
	if ua.osVersion == nil {
		return defaultOSVersion
	}
	return ua.osVersion
}

func (ua UserAgent) libraryVersionRef() *semver.Version {
	if ua.libraryVersion == nil {
		return defaultLibraryVersion
	}
	return ua.libraryVersion
}

// Equal reports whether both values render the same fields.
func (ua UserAgent) Equal(other UserAgent) bool {
	return sameText(ua.executable, other.executable) &&
		sameVersion(ua.appVersion, other.appVersion) &&
		sameText(ua.bundle, other.bundle) &&
		sameAppBuild(ua.appBuild, other.appBuild) &&
		ua.osName == other.osName &&
		sameVersion(ua.osVersionRef(), other.osVersionRef()) &&
		sameVersion(ua.libraryVersionRef(), other.libraryVersionRef())
}

// String renders the canonical signature:
//
//	<executable>/<appVersion> (<bundle>; build:<appBuild>; <osName> <osVersion>) Alamofire/<libraryVersion>
//
// Absent optional fields are written as Unknown.
func (ua UserAgent) String() string {
	return fmt.Sprintf("%s/%s (%s; build:%s; %s %s) %s/%s",
		encodeOptional(ua.executable, identity),
		encodeOptional(ua.appVersion, formatVersion),
		encodeOptional(ua.bundle, identity),
		encodeOptional(ua.appBuild, formatAppBuild),
		ua.osName.String(),
		ua.osVersionRef().String(),
		LibraryName,
		ua.libraryVersionRef().String(),
	)
}

// MarshalText implements encoding.TextMarshaler.
func (ua UserAgent) MarshalText() ([]byte, error) {
	return []byte(ua.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ua *UserAgent) UnmarshalText(data []byte) error {
	parsed, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*ua = parsed
	return nil
}

func sameText(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameAppBuild(a, b *AppBuild) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
