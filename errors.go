package argparse

import (
	"errors"
)

// Registration errors.
var (
	// ErrInvalidName indicates that a name passed to a registration call
	// does not match the grammar for that kind of argument.
	ErrInvalidName = errors.New("invalid name")

	// ErrDuplicateName indicates that a name passed to a registration call
	// collides with an earlier registration in the same namespace.
	ErrDuplicateName = errors.New("name already registered")
)

// Parse errors. ParseArgs wraps these with the offending name or token, so
// callers should match them with errors.Is.
var (
	// ErrUnknownToken indicates a token that matches no registered flag or
	// option and could not be consumed as a positional value.
	ErrUnknownToken = errors.New("unknown token")

	// ErrMissingOptionValue indicates that input ended while an option was
	// still waiting for its value token.
	ErrMissingOptionValue = errors.New("option requires a value")

	// ErrConversionFailure indicates that a value token could not be
	// converted to the bound type.
	ErrConversionFailure = errors.New("cannot convert value")

	// ErrMissingPositional indicates that input ended before every
	// registered positional received a value.
	ErrMissingPositional = errors.New("missing required positional argument")

	// ErrExcessToken indicates more positional tokens than registered
	// positionals.
	ErrExcessToken = errors.New("excess positional token")
)
