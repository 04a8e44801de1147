package useragent

import (
	"github.com/dmitrymomot/useragentkit/pkg/config"
)

// Config describes a signature through environment variables. Values use
// the wire spelling, including Unknown for absent fields.
type Config struct {
	Executable     string `env:"USERAGENT_EXECUTABLE" envDefault:"Unknown"`    // Executable is the application display name.
	AppVersion     string `env:"USERAGENT_APP_VERSION" envDefault:"Unknown"`   // AppVersion is a semantic version such as "1.4.0".
	Bundle         string `env:"USERAGENT_BUNDLE" envDefault:"Unknown"`        // Bundle is the bundle or package identifier.
	AppBuild       string `env:"USERAGENT_APP_BUILD" envDefault:"Unknown"`     // AppBuild is one to three dot-separated integers.
	OSName         string `env:"USERAGENT_OS_NAME" envDefault:"Unknown"`       // OSName is one of the OSName spellings.
	OSVersion      string `env:"USERAGENT_OS_VERSION" envDefault:"0.0.0"`      // OSVersion is a semantic version.
	LibraryVersion string `env:"USERAGENT_LIBRARY_VERSION" envDefault:"5.6.4"` // LibraryVersion is a semantic version.
}

// NewFromConfig validates every field with the same decoders Parse uses.
// Failures are *ParseError values scoped to the offending field.
func NewFromConfig(cfg Config) (UserAgent, error) {
	var ua UserAgent
	var err error

	if ua.executable, err = decodeField(FieldExecutable, cfg.Executable, decodeText); err != nil {
		return UserAgent{}, err
	}
	if ua.appVersion, err = decodeField(FieldAppVersion, cfg.AppVersion, decodeAppVersion); err != nil {
		return UserAgent{}, err
	}
	if ua.bundle, err = decodeField(FieldBundle, cfg.Bundle, decodeText); err != nil {
		return UserAgent{}, err
	}
	if ua.appBuild, err = decodeField(FieldAppBuild, cfg.AppBuild, ParseAppBuild); err != nil {
		return UserAgent{}, err
	}
	if ua.osName, err = decodeField(FieldOSName, cfg.OSName, ParseOSName); err != nil {
		return UserAgent{}, err
	}
	if ua.osVersion, err = decodeField(FieldOSVersion, cfg.OSVersion, parseVersion); err != nil {
		return UserAgent{}, err
	}
	if ua.libraryVersion, err = decodeField(FieldLibraryVersion, cfg.LibraryVersion, parseVersion); err != nil {
		return UserAgent{}, err
	}

	return ua, nil
}

// FromEnv loads Config from the environment (and a .env file, if present)
// and builds the UserAgent it describes.
func FromEnv() (UserAgent, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return UserAgent{}, err
	}
	return NewFromConfig(cfg)
}
