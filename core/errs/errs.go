package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind string

const (
	KindSyntax       Kind = "syntax"
	KindResource     Kind = "resource"
	KindArgument     Kind = "argument"
	KindImportFormat Kind = "import_format"
	KindWrite        Kind = "write"
)

// Error is the single error type returned by the resource pipeline.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Path is the file the failure is attributed to. It may be empty when
	// the failure happened before any file was involved.
	Path string
	// Line is the 1-based line of the offending input, zero when unknown.
	Line int
	// Msg describes the failure.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}

	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s error in %s:%d: %s", e.Kind, e.Path, e.Line, msg)
	case e.Path != "":
		return fmt.Sprintf("%s error in %s: %s", e.Kind, e.Path, msg)
	default:
		return fmt.Sprintf("%s error: %s", e.Kind, msg)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Syntax reports malformed resource content.
func Syntax(format string, args ...any) error {
	return &Error{Kind: KindSyntax, Msg: fmt.Sprintf(format, args...)}
}

// MissingAttribute reports an entry element without a required attribute.
func MissingAttribute(tag, attr string) error {
	return &Error{Kind: KindSyntax, Msg: fmt.Sprintf("<%s> is missing required attribute %q", tag, attr)}
}

// Resource reports that path could not be accessed.
func Resource(path string, err error) error {
	return &Error{Kind: KindResource, Path: path, Msg: "cannot access resource", Err: err}
}

// Argument reports an unusable caller argument.
func Argument(format string, args ...any) error {
	return &Error{Kind: KindArgument, Msg: fmt.Sprintf(format, args...)}
}

// ImportFormat reports a malformed translation import row.
func ImportFormat(path string, line int, msg string, err error) error {
	return &Error{Kind: KindImportFormat, Path: path, Line: line, Msg: msg, Err: err}
}

// Write reports a failure while writing the output for path.
func Write(path string, err error) error {
	return &Error{Kind: KindWrite, Path: path, Msg: "cannot write resource", Err: err}
}

// WithPath attributes err to path. Errors that already carry a path are
// returned unchanged, foreign errors are wrapped as syntax errors.
func WithPath(err error, path string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Path != "" {
			return err
		}
		cp := *e
		cp.Path = path
		return &cp
	}
	return &Error{Kind: KindSyntax, Path: path, Err: err}
}

// KindOf returns the kind of err, or an empty Kind when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// PathOf returns the path err is attributed to.
func PathOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Path
	}
	return ""
}
