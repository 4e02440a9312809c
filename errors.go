package smaz

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// SmazError is the error type returned by every operation in this package.
// Use [errors.Is] with one of the exported sentinels to find out what went
// wrong.
type SmazError interface {
	error
	WithMessage(message string) SmazError
	Wrap(err error) SmazError
}

type baseSmazError string

const rootError = baseSmazError("")

// ErrConfiguration is returned when a dictionary can't be compiled, either
// because it has too many terms or because a term has an invalid length. A
// codec can't be built from such a dictionary.
var ErrConfiguration = rootError.WithMessage("Invalid dictionary configuration")

// ErrBufferTooSmall is returned when the output buffer given to a compress or
// decompress call can't hold the result. Retrying with a larger buffer is safe.
var ErrBufferTooSmall = rootError.WithMessage("Buffer too small")

// ErrMalformedInput is returned when a compressed stream contains a literal
// run header claiming more bytes than are left in the input.
var ErrMalformedInput = rootError.WithMessage("Malformed compressed input")

func (e baseSmazError) Error() string {
	return string(e)
}

func (e baseSmazError) WithMessage(message string) SmazError {
	return customSmazError{
		message:       message,
		originalError: e,
	}
}

func (e baseSmazError) Wrap(err error) SmazError {
	return customSmazError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customSmazError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customSmazError) Error() string {
	return e.message
}

func (e customSmazError) WithMessage(message string) SmazError {
	return customSmazError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customSmazError) Wrap(err error) SmazError {
	return customSmazError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customSmazError) Unwrap() error {
	return e.originalError
}
