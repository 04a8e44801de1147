package useragent

import "fmt"

// OSName is the operating system tag of the signature. The zero value
// OSNameUnknown stands for an absent OS name.
type OSName string

// Supported OS names, spelled exactly as they appear on the wire.
const (
	OSNameUnknown       OSName = ""
	OSNameMacOSCatalyst OSName = "macOS(Catalyst)"
	OSNameIOS           OSName = "iOS"
	OSNameWatchOS       OSName = "watchOS"
	OSNameTVOS          OSName = "tvOS"
	OSNameMacOS         OSName = "macOS"
	OSNameLinux         OSName = "Linux"
	OSNameWindows       OSName = "Windows"
)

// OSNames returns every known OS name in declaration order.
func OSNames() []OSName {
	return []OSName{
		OSNameMacOSCatalyst,
		OSNameIOS,
		OSNameWatchOS,
		OSNameTVOS,
		OSNameMacOS,
		OSNameLinux,
		OSNameWindows,
	}
}

// ParseOSName matches s against the known spellings. Matching is exact:
// no case folding and no trimming. The Unknown sentinel yields
// OSNameUnknown, any other unrecognized text is ErrOSNameMismatch.
func ParseOSName(s string) (OSName, error) {
	name, err := decodeOptional(s, lookupOSName)
	if err != nil || name == nil {
		return OSNameUnknown, err
	}
	return *name, nil
}

func lookupOSName(s string) (OSName, error) {
	switch OSName(s) {
	case OSNameMacOSCatalyst:
		return OSNameMacOSCatalyst, nil
	case OSNameIOS:
		return OSNameIOS, nil
	case OSNameWatchOS:
		return OSNameWatchOS, nil
	case OSNameTVOS:
		return OSNameTVOS, nil
	case OSNameMacOS:
		return OSNameMacOS, nil
	case OSNameLinux:
		return OSNameLinux, nil
	case OSNameWindows:
		return OSNameWindows, nil
	}
	return OSNameUnknown, fmt.Errorf("%w: %q", ErrOSNameMismatch, s)
}

// Valid reports whether n is one of the known OS names.
func (n OSName) Valid() bool {
	_, err := lookupOSName(string(n))
	return err == nil
}

// String returns the wire spelling of n, or Unknown for OSNameUnknown and
// values outside the enumeration.
func (n OSName) String() string {
	switch n {
	case OSNameMacOSCatalyst, OSNameIOS, OSNameWatchOS, OSNameTVOS,
		OSNameMacOS, OSNameLinux, OSNameWindows:
		return string(n)
	}
	return Unknown
}

// MarshalText implements encoding.TextMarshaler.
func (n OSName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *OSName) UnmarshalText(data []byte) error {
	v, err := ParseOSName(string(data))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
