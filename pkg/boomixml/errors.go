package boomixml

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRoot is returned for input without any element.
	ErrNoRoot = errors.New("no root element found")
	// ErrTooLarge is returned when the input exceeds Options.MaxBytes.
	ErrTooLarge = errors.New("document too large")
	// ErrIsDirectory is returned by ParseFile for directory paths.
	ErrIsDirectory = errors.New("is a directory")
)

// Op identifies the stage at which parsing failed.
type Op string

const (
	OpOpen  Op = "open"
	OpRead  Op = "read"
	OpParse Op = "parse"
)

// ParseError reports why a process definition could not be turned into an
// element tree. Err is the underlying cause and is what users see.
type ParseError struct {
	Path string
	Op   Op
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsSyntax reports whether the failure came from the document contents
// rather than from opening or reading the file.
func (e *ParseError) IsSyntax() bool {
	return e.Op == OpParse
}
