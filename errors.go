package fixwire

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMandatoryField indicates that one of the mandatory framing
	// fields (BeginString, BodyLength, MsgType) is absent or out of order.
	ErrMissingMandatoryField = errors.New("fixwire: message is missing mandatory field")

	// ErrBadTag indicates a structurally valid field carrying the wrong tag
	// in a fixed header slot.
	ErrBadTag = errors.New("fixwire: invalid tag")

	// ErrBadValue indicates that a well-known field's bytes failed its typed
	// conversion.
	ErrBadValue = errors.New("fixwire: invalid value")

	// ErrUnexpectedChecksum indicates that a field followed the checksum
	// field, which must be last.
	ErrUnexpectedChecksum = errors.New("fixwire: checksum reached but message contains more fields")

	// ErrUnexpectedEOI indicates the lexer reached end of input while a
	// token was still expected.
	ErrUnexpectedEOI = errors.New("fixwire: unexpected end of input")

	// ErrMalformedTag indicates tag bytes that are not parseable ASCII
	// decimal digits (including an empty tag before '=').
	ErrMalformedTag = errors.New("fixwire: tag contains characters other than ascii 0-9 digits")

	// ErrInvalidDigit indicates a byte outside '0'-'9' in a decimal integer.
	ErrInvalidDigit = errors.New("fixwire: bytes contain values that are not decimal digits")

	// ErrOverflow indicates a decimal value outside the target integer
	// type's bounds. A leading minus sign on an unsigned target is reported
	// as overflow, not as an invalid digit.
	ErrOverflow = errors.New("fixwire: bytes contain number out of integer type bounds")

	// ErrEmptyInput indicates an integer parse over zero digits.
	ErrEmptyInput = errors.New("fixwire: unexpected empty input")
)

// UnexpectedByteError reports a lexed byte that differs from the byte the
// grammar requires at that position.
type UnexpectedByteError struct {
	Expected byte
	Got      byte
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("fixwire: expected %q but got %q", e.Expected, e.Got)
}

// ChecksumMismatchError reports a trailer checksum that differs from the
// modulo-256 sum computed over the received bytes.
type ChecksumMismatchError struct {
	Calculated uint8
	Expected   uint8
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("fixwire: calculated and expected checksums don't match 'calculated(%d) != (%d)'", e.Calculated, e.Expected)
}

// BodyLengthError reports a declared body length that differs from the
// measured byte count of the regular section.
type BodyLengthError struct {
	Received int
	Expected int
}

func (e *BodyLengthError) Error() string {
	return fmt.Sprintf("fixwire: expected body length %d but received %d bytes", e.Expected, e.Received)
}

// badTag wraps ErrBadTag with the offending tag number.
func badTag(tag uint16) error {
	return fmt.Errorf("%w: %d", ErrBadTag, tag)
}

// badValue wraps a typed conversion failure under ErrBadValue so callers
// can match the class with errors.Is and still reach the cause.
func badValue(err error) error {
	return fmt.Errorf("%w: %w", ErrBadValue, err)
}
