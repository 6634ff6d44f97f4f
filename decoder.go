package fixwire

import "fmt"

// Decode parses one complete FIX message from data. The buffer must be
// trimmed (no leading or trailing bytes around the message) and contain
// exactly one message; anything else fails with a typed error.
//
// The state machine is strict: version marker (tag 8), body length
// (tag 9) and message type (tag 35) must come first in that order, at
// least one body field must follow, and the checksum (tag 10) must be the
// final field. The declared body length is checked against the measured
// byte count of the regular section and the trailer checksum against the
// modulo-256 sum of all preceding bytes.
//
// Decoded fields alias data; the caller must not mutate the buffer while
// the message is in use. On failure no partial message is returned.
func Decode(data []byte) (*Message, error) {
	lx := newLexer(data)

	// version marker
	tag, err := lx.tag()
	if err != nil {
		return nil, err
	}
	value, err := lx.value()
	if err != nil {
		return nil, err
	}
	if tag != TagBeginString {
		return nil, badTag(tag)
	}
	beginString, err := ParseBeginString(value)
	if err != nil {
		return nil, badValue(err)
	}

	// body length
	tag, err = lx.tag()
	if err != nil {
		return nil, err
	}
	value, err = lx.value()
	if err != nil {
		return nil, err
	}
	if tag != TagBodyLength {
		return nil, fmt.Errorf("%w 'body length'", ErrMissingMandatoryField)
	}
	declaredLength, err := ParseInt[uint](value)
	if err != nil {
		return nil, badValue(err)
	}
	// The measured length window starts right after the body-length
	// field's trailing SOH.
	bodyStart := lx.cursor

	// message type
	tag, err = lx.tag()
	if err != nil {
		return nil, err
	}
	if tag != TagMsgType {
		return nil, badTag(tag)
	}
	value, err = lx.value()
	if err != nil {
		return nil, err
	}
	msgType, err := ParseMsgType(value)
	if err != nil {
		return nil, badValue(err)
	}

	// first body field: the builder cannot finalize an empty body, so
	// exactly one field must follow the message type.
	tag, err = lx.tag()
	if err != nil {
		return nil, err
	}
	value, err = lx.value()
	if err != nil {
		return nil, err
	}
	field, err := NewField(tag, value)
	if err != nil {
		return nil, badValue(err)
	}
	builder := NewBuilder(beginString, msgType).WithField(field)

	// remaining fields until the checksum trailer; the loop ends
	// normally when no further tag can be lexed.
	for {
		fieldStart := lx.cursor

		tag, err = lx.tag()
		if err != nil {
			break
		}
		value, err = lx.value()
		if err != nil {
			return nil, err
		}

		if tag != TagChecksum {
			field, err := NewField(tag, value)
			if err != nil {
				return nil, badValue(err)
			}
			builder = builder.WithField(field)
			continue
		}

		// checksum must be the last field
		if _, err := lx.tag(); err == nil {
			return nil, ErrUnexpectedChecksum
		}

		// The regular section runs from right after the body-length
		// field to the first byte of the checksum field.
		received := fieldStart - bodyStart
		if received != int(declaredLength) {
			return nil, &BodyLengthError{Received: received, Expected: int(declaredLength)}
		}

		var digest Digest
		digest.Push(data[:fieldStart])
		calculated := digest.Sum()

		expected, err := ParseInt[uint8](value)
		if err != nil {
			return nil, badValue(err)
		}
		if calculated != expected {
			return nil, &ChecksumMismatchError{Calculated: calculated, Expected: expected}
		}
	}

	return builder.Build(), nil
}
