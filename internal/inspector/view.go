package inspector

import "github.com/dmitrymomot/useragentkit/pkg/useragent"

// Signature is the structured view of a parsed value. Absent optional
// fields are omitted.
type Signature struct {
	Signature      string `json:"signature" yaml:"signature"`
	Executable     string `json:"executable,omitempty" yaml:"executable,omitempty"`
	AppVersion     string `json:"app_version,omitempty" yaml:"app_version,omitempty"`
	Bundle         string `json:"bundle,omitempty" yaml:"bundle,omitempty"`
	AppBuild       string `json:"app_build,omitempty" yaml:"app_build,omitempty"`
	OSName         string `json:"os_name,omitempty" yaml:"os_name,omitempty"`
	OSVersion      string `json:"os_version" yaml:"os_version"`
	LibraryVersion string `json:"library_version" yaml:"library_version"`
}

// NewSignature describes ua.
func NewSignature(ua useragent.UserAgent) Signature {
	s := Signature{
		Signature:      ua.String(),
		OSVersion:      ua.OSVersion().String(),
		LibraryVersion: ua.LibraryVersion().String(),
	}
	s.Executable, _ = ua.Executable()
	if v, ok := ua.AppVersion(); ok {
		s.AppVersion = v.String()
	}
	s.Bundle, _ = ua.Bundle()
	if b, ok := ua.AppBuild(); ok {
		s.AppBuild = b.String()
	}
	if n, ok := ua.OSName(); ok {
		s.OSName = n.String()
	}
	return s
}

// Config converts s back to the wire spelling NewFromConfig expects.
// Empty optional fields become Unknown and empty versions keep the defaults.
func (s Signature) Config() useragent.Config {
	orUnknown := func(v string) string {
		if v == "" {
			return useragent.Unknown
		}
		return v
	}
	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return useragent.Config{
		Executable:     orUnknown(s.Executable),
		AppVersion:     orUnknown(s.AppVersion),
		Bundle:         orUnknown(s.Bundle),
		AppBuild:       orUnknown(s.AppBuild),
		OSName:         orUnknown(s.OSName),
		OSVersion:      orDefault(s.OSVersion, useragent.DefaultOSVersion),
		LibraryVersion: orDefault(s.LibraryVersion, useragent.DefaultLibraryVersion),
	}
}
