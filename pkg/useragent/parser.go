package useragent

import (
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver"
)

// Parse decodes a signature string produced by String or by an Alamofire
// client. Fields are read strictly left to right and the first failure is
// returned as a *ParseError or *MismatchError; no partial value is ever
// returned.
//
// A single trailing '\n' after the library version is accepted.
func Parse(s string) (UserAgent, error) {
	p := &parser{input: s}
	var ua UserAgent

	raw, err := p.readUntil(FieldExecutable, executableEnd)
	if err != nil {
		return UserAgent{}, err
	}
	if ua.executable, err = decodeField(FieldExecutable, raw, decodeText); err != nil {
		return UserAgent{}, err
	}

	if raw, err = p.readUntil(FieldAppVersion, appVersionEnd); err != nil {
		return UserAgent{}, err
	}
	if ua.appVersion, err = decodeField(FieldAppVersion, raw, decodeAppVersion); err != nil {
		return UserAgent{}, err
	}

	if err = p.expect(FieldAppVersion, commentStart); err != nil {
		return UserAgent{}, err
	}

	if raw, err = p.readUntil(FieldBundle, bundleEnd); err != nil {
		return UserAgent{}, err
	}
	if ua.bundle, err = decodeField(FieldBundle, raw, decodeText); err != nil {
		return UserAgent{}, err
	}

	if err = p.expect(FieldBundle, appBuildPrefix); err != nil {
		return UserAgent{}, err
	}

	if raw, err = p.readUntil(FieldAppBuild, appBuildEnd); err != nil {
		return UserAgent{}, err
	}
	if ua.appBuild, err = decodeField(FieldAppBuild, raw, ParseAppBuild); err != nil {
		return UserAgent{}, err
	}

	if err = p.expect(FieldAppBuild, osNamePrefix); err != nil {
		return UserAgent{}, err
	}

	if raw, err = p.readUntil(FieldOSName, osNameEnd); err != nil {
		return UserAgent{}, err
	}
	if ua.osName, err = decodeField(FieldOSName, raw, ParseOSName); err != nil {
		return UserAgent{}, err
	}

	if raw, err = p.readUntil(FieldOSVersion, osVersionEnd); err != nil {
		return UserAgent{}, err
	}
	if ua.osVersion, err = decodeField(FieldOSVersion, raw, parseVersion); err != nil {
		return UserAgent{}, err
	}

	if err = p.expect(FieldOSVersion, libraryPrefix); err != nil {
		return UserAgent{}, err
	}

	if raw, err = p.readLine(FieldLibraryVersion); err != nil {
		return UserAgent{}, err
	}
	if ua.libraryVersion, err = decodeField(FieldLibraryVersion, raw, parseVersion); err != nil {
		return UserAgent{}, err
	}

	return ua, nil
}

// ParseBytes is Parse for a byte slice. The slice is not retained.
func ParseBytes(b []byte) (UserAgent, error) {
	return Parse(string(b))
}

// MustParse is like Parse but panics on error. Intended for constants
// and tests.
func MustParse(s string) UserAgent {
	ua, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ua
}

// parser is a forward-only cursor over the input.
type parser struct {
	input string
	pos   int
}

// readUntil returns the text up to delim and moves past delim.
func (p *parser) readUntil(field Field, delim byte) (string, error) {
	rest := p.input[p.pos:]
	i := strings.IndexByte(rest, delim)
	if i < 0 {
		p.pos = len(p.input)
		return "", readError(field, delim)
	}
	p.pos += i + 1
	return rest[:i], nil
}

// expect consumes literal, which must follow the previous field directly.
func (p *parser) expect(after Field, literal string) error {
	if !strings.HasPrefix(p.input[p.pos:], literal) {
		return mismatch(after, literal)
	}
	p.pos += len(literal)
	return nil
}

// readLine returns the rest of the input without its line terminator.
// Anything after the terminator is a mismatch.
func (p *parser) readLine(field Field) (string, error) {
	rest := p.input[p.pos:]
	p.pos = len(p.input)
	if i := strings.IndexByte(rest, lineTerminator); i >= 0 {
		if i != len(rest)-1 {
			return "", mismatch(field, "")
		}
		rest = rest[:i]
	}
	return rest, nil
}

// decodeField validates the encoding of raw and runs decode on it, scoping
// any failure to field.
func decodeField[T any](field Field, raw string, decode func(string) (T, error)) (T, error) {
	var zero T
	if !utf8.ValidString(raw) {
		return zero, &ParseError{Field: field, Stage: StageParse, Err: ErrInvalidUTF8}
	}
	v, err := decode(raw)
	if err != nil {
		return zero, &ParseError{Field: field, Stage: StageParse, Err: err}
	}
	return v, nil
}

func decodeText(raw string) (*string, error) {
	return decodeOptional(raw, text)
}

func decodeAppVersion(raw string) (*semver.Version, error) {
	return decodeOptional(raw, parseVersionValue)
}
