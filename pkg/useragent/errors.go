package useragent

import (
	"errors"
	"fmt"
)

var (
	// Stage sentinels. Every *ParseError matches exactly one of them.
	ErrReadFailed  = errors.New("user agent field read failed")
	ErrParseFailed = errors.New("user agent field parse failed")

	// ErrMismatch is matched by *MismatchError.
	ErrMismatch = errors.New("user agent structure mismatch")

	ErrDelimiterNotFound = errors.New("delimiter not found")
	ErrInvalidUTF8       = errors.New("invalid utf-8 sequence")
	ErrInvalidVersion    = errors.New("invalid semantic version")
	ErrInvalidAppBuild   = errors.New("invalid app build")
	ErrOSNameMismatch    = errors.New("unrecognized os name")
)

// Field names a position in the signature string.
type Field string

const (
	FieldExecutable     Field = "executable"
	FieldAppVersion     Field = "app_version"
	FieldBundle         Field = "bundle"
	FieldAppBuild       Field = "app_build"
	FieldOSName         Field = "os_name"
	FieldOSVersion      Field = "os_version"
	FieldLibraryVersion Field = "library_version"
)

// Stage tells whether a field failed while its boundary was searched for
// or while its extracted text was decoded.
type Stage string

const (
	StageRead  Stage = "read"
	StageParse Stage = "parse"
)

// ParseError reports a failure scoped to a single field.
type ParseError struct {
	Field Field
	Stage Stage
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("useragent: %s %s failed: %v", e.Field, e.Stage, e.Err)
}

// Unwrap exposes the stage sentinel together with the underlying cause, so
// both errors.Is(err, ErrReadFailed) and errors.Is(err, ErrInvalidAppBuild)
// work on the same value.
func (e *ParseError) Unwrap() []error {
	stage := ErrParseFailed
	if e.Stage == StageRead {
		stage = ErrReadFailed
	}
	return []error{stage, e.Err}
}

// MismatchError reports a fixed literal missing right after a field.
// An empty Expected means the input should have ended there.
type MismatchError struct {
	After    Field
	Expected string
}

func (e *MismatchError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("useragent: expected end of input after %s", e.After)
	}
	return fmt.Sprintf("useragent: expected %q after %s", e.Expected, e.After)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

func readError(field Field, delim byte) error {
	return &ParseError{
		Field: field,
		Stage: StageRead,
		Err:   fmt.Errorf("%w: %q", ErrDelimiterNotFound, delim),
	}
}

func mismatch(after Field, literal string) error {
	return &MismatchError{After: after, Expected: literal}
}
