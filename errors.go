package rwf

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Code is the outcome of a codec operation. Every failure returned by
// this package carries one, possibly wrapped with more context.
type Code int8

// List of codes.
const (
	CodeSuccess Code = iota
	CodeFailure
	CodeInvalidArgument
	CodeBlankData
	CodeIncompleteData
	CodeBufferTooSmall
	CodeValueOutOfRange
	CodeIteratorOverrun
	CodeVersionNotSupported
	CodeInvalidData
)

var (
	// ErrFailure is returned when an operation fails for a reason not
	// covered by a more specific code, like using an unbound iterator.
	ErrFailure error = CodeFailure

	// ErrInvalidArgument is returned for malformed caller input: an
	// absent buffer, an unparsable string or an out of range field.
	ErrInvalidArgument error = CodeInvalidArgument

	// ErrBlankData is returned by decoders when the encoded value is blank.
	// It is an expected outcome, not a failure.
	ErrBlankData error = CodeBlankData

	// ErrIncompleteData is returned when fewer bytes are available at the
	// current level than any valid encoding of the type requires.
	ErrIncompleteData error = CodeIncompleteData

	// ErrBufferTooSmall is returned when the destination cannot hold the value.
	ErrBufferTooSmall error = CodeBufferTooSmall

	// ErrValueOutOfRange is returned when a value does not fit the chosen
	// wire width.
	ErrValueOutOfRange error = CodeValueOutOfRange

	// ErrIteratorOverrun is returned when nesting exceeds MaxLevels.
	ErrIteratorOverrun error = CodeIteratorOverrun

	// ErrVersionNotSupported is returned when binding an iterator with an
	// unknown major version.
	ErrVersionNotSupported error = CodeVersionNotSupported

	// ErrInvalidData is returned when the encoded bytes cannot be a valid
	// encoding of the requested type.
	ErrInvalidData error = CodeInvalidData
)

func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "SUCCESS"
	case CodeFailure:
		return "FAILURE"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeBlankData:
		return "BLANK_DATA"
	case CodeIncompleteData:
		return "INCOMPLETE_DATA"
	case CodeBufferTooSmall:
		return "BUFFER_TOO_SMALL"
	case CodeValueOutOfRange:
		return "VALUE_OUT_OF_RANGE"
	case CodeIteratorOverrun:
		return "ITERATOR_OVERRUN"
	case CodeVersionNotSupported:
		return "VERSION_NOT_SUPPORTED"
	case CodeInvalidData:
		return "INVALID_DATA"
	}

	return fmt.Sprintf("Code(%d)", int8(c))
}

// Error implements the error interface.
func (c Code) Error() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeFailure:
		return "failure"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeBlankData:
		return "blank data"
	case CodeIncompleteData:
		return "incomplete data"
	case CodeBufferTooSmall:
		return "buffer too small"
	case CodeValueOutOfRange:
		return "value out of range"
	case CodeIteratorOverrun:
		return "iterator overrun"
	case CodeVersionNotSupported:
		return "version not supported"
	case CodeInvalidData:
		return "invalid data"
	}

	return c.String()
}

// CodeOf returns the code carried by err. A nil error is CodeSuccess and
// an error that doesn't come from this package is CodeFailure.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}

	var c Code
	if errors.As(err, &c) {
		return c
	}

	return CodeFailure
}

// IsBlank reports whether err signals a blank value.
func IsBlank(err error) bool {
	return errors.Is(err, ErrBlankData)
}

func invalidArgf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
