// Package fixwire is a low-level codec for the FIX 4.4 tag=value wire
// format: it decodes one complete, pre-trimmed message buffer into a
// Message and encodes a Message back into its canonical, checksum-framed
// byte layout. It performs no I/O and keeps no state between calls.
package fixwire

import (
	"encoding"
	"io"
)

// SOH is the ASCII control byte (0x01) terminating every field on the wire.
const SOH byte = 0x01

// equals separates a field's tag digits from its value bytes.
const equals byte = '='

// Framing tags every message carries in fixed positions.
const (
	TagBeginString uint16 = 8  // first field, protocol version
	TagBodyLength  uint16 = 9  // second field, byte count of the regular section
	TagMsgType     uint16 = 35 // third field, message type code
	TagChecksum    uint16 = 10 // last field, modulo-256 trailer
)

// Well-known body/header tags the codec decodes into typed fields.
const (
	TagMsgSeqNum    uint16 = 34
	TagSenderCompID uint16 = 49
	TagSendingTime  uint16 = 52
	TagTargetCompID uint16 = 56
)

// Marshaler defines the encoding surface of a message. MarshalBinary
// allocates the canonical byte buffer; WriteTo streams it; MarshalTo
// encodes into a pre-allocated buffer and returns io.ErrShortBuffer if
// the buffer is too small.
type Marshaler interface {
	encoding.BinaryMarshaler
	io.WriterTo

	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the decoding surface of a message. UnmarshalBinary
// decodes from a byte slice; ReadFrom drains a reader to EOF and decodes
// the result (it is not a streaming partial decode).
type Unmarshaler interface {
	encoding.BinaryUnmarshaler
	io.ReaderFrom
}

// Codec aggregates both directions. *Message is the canonical implementation.
type Codec interface {
	Marshaler
	Unmarshaler
}
