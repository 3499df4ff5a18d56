package acceptencoding

import (
	"errors"
	"fmt"
)

// NewParseError creates a new ParseError of the specified kind with a
// formatted message.
func NewParseError(kind ErrorKind, format string, a ...any) error {
	return &ParseError{
		Kind: kind,
		Err:  fmt.Errorf(format, a...),
	}
}

// ErrorKind is the machine-matchable category of a ParseError.
type ErrorKind string

const (
	// KindInvalidEncoding marks a header whose quality value is not a
	// well-formed number in [0.0, 1.0], or whose text is not a valid
	// header field value at all.
	KindInvalidEncoding ErrorKind = "invalid encoding"

	// KindUnknownEncoding marks a token outside the recognized set. Only
	// the strict single-token entry point reports it; the header-wide scan
	// drops unknown tokens instead.
	KindUnknownEncoding ErrorKind = "unknown encoding"
)

// ParseError represents a failure to interpret an Accept-Encoding value.
type ParseError struct {
	Kind ErrorKind
	Err  error
}

// String formats the ParseError as a string, including the underlying
// failure if it exists.
func (e *ParseError) String() string {
	if e.Err != nil {
		return fmt.Sprintf("accept-encoding/%s: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("accept-encoding/%s", e.Kind)
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return e.String()
}

// Unwrap exposes the lower-level failure wrapped by the ParseError.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports kind equality, so errors.Is(err, ErrInvalidEncoding) matches
// any ParseError of that kind regardless of the wrapped detail.
func (e *ParseError) Is(target error) bool {
	terr, ok := target.(*ParseError)
	return ok && terr.Kind == e.Kind
}

// Match checks if err is a ParseError of the same kind.
func (e *ParseError) Match(err error) bool {
	var perr *ParseError
	if errors.As(err, &perr) {
		return e != nil && perr != nil && e.Kind == perr.Kind
	}
	return errors.Is(e, err)
}
