package fixwire

import (
	"strconv"

	"github.com/puzpuzpuz/xsync/v4"
)

// Field is one tag=value unit of a message. Tag returns the field's
// numeric tag, Value its serialized value bytes, and AppendTo appends the
// "<tag>=<value>" form without a trailing SOH; framing is the encoder's
// responsibility, not the field's.
type Field interface {
	Tag() uint16
	Value() []byte
	AppendTo(dst []byte) []byte
}

// FieldFunc converts raw value bytes into a typed Field for one tag.
type FieldFunc func(value []byte) (Field, error)

// fieldRegistry maps well-known tags to their typed constructors. An
// xsync.Map keeps concurrent decoders and RegisterField callers safe
// without locking.
var fieldRegistry = xsync.NewMap[uint16, FieldFunc]()

func init() {
	fieldRegistry.Store(TagMsgSeqNum, func(value []byte) (Field, error) {
		n, err := ParseInt[uint64](value)
		if err != nil {
			return nil, err
		}
		return MsgSeqNum(n), nil
	})
	fieldRegistry.Store(TagSenderCompID, func(value []byte) (Field, error) {
		return SenderCompID(value), nil
	})
	fieldRegistry.Store(TagSendingTime, func(value []byte) (Field, error) {
		return SendingTime(value), nil
	})
	fieldRegistry.Store(TagTargetCompID, func(value []byte) (Field, error) {
		return TargetCompID(value), nil
	})
}

// RegisterField adds or replaces the typed constructor for a tag. The
// framing tags (8, 9, 35, 10) are handled structurally by the decoder and
// never reach the registry.
func RegisterField(tag uint16, fn FieldFunc) {
	fieldRegistry.Store(tag, fn)
}

// NewField constructs a Field by tag dispatch: a well-known tag runs its
// typed conversion and can fail; any other tag yields a Custom field
// carrying the exact input bytes and cannot fail.
func NewField(tag uint16, value []byte) (Field, error) {
	if fn, ok := fieldRegistry.Load(tag); ok {
		return fn(value)
	}
	return NewCustom(tag, value), nil
}

// appendTagValue appends "<tag>=<value>" to dst.
func appendTagValue(dst []byte, tag uint16, value []byte) []byte {
	dst = strconv.AppendUint(dst, uint64(tag), 10)
	dst = append(dst, equals)
	return append(dst, value...)
}

// MsgSeqNum is the message sequence number field (tag 34).
type MsgSeqNum uint64

func (f MsgSeqNum) Tag() uint16 { return TagMsgSeqNum }

func (f MsgSeqNum) Value() []byte {
	return strconv.AppendUint(nil, uint64(f), 10)
}

func (f MsgSeqNum) AppendTo(dst []byte) []byte {
	dst = strconv.AppendUint(dst, uint64(TagMsgSeqNum), 10)
	dst = append(dst, equals)
	return strconv.AppendUint(dst, uint64(f), 10)
}

// SenderCompID identifies the message sender (tag 49).
type SenderCompID []byte

func (f SenderCompID) Tag() uint16   { return TagSenderCompID }
func (f SenderCompID) Value() []byte { return f }

func (f SenderCompID) AppendTo(dst []byte) []byte {
	return appendTagValue(dst, TagSenderCompID, f)
}

// SendingTime is the free-form message timestamp (tag 52).
type SendingTime []byte

func (f SendingTime) Tag() uint16   { return TagSendingTime }
func (f SendingTime) Value() []byte { return f }

func (f SendingTime) AppendTo(dst []byte) []byte {
	return appendTagValue(dst, TagSendingTime, f)
}

// TargetCompID identifies the message recipient (tag 56).
type TargetCompID []byte

func (f TargetCompID) Tag() uint16   { return TagTargetCompID }
func (f TargetCompID) Value() []byte { return f }

func (f TargetCompID) AppendTo(dst []byte) []byte {
	return appendTagValue(dst, TagTargetCompID, f)
}

// Custom is the catch-all field for any tag without a typed constructor.
// It carries the tag number and the exact value bytes.
type Custom struct {
	tag   uint16
	value []byte
}

// NewCustom builds a Custom field. It cannot fail.
func NewCustom(tag uint16, value []byte) Custom {
	return Custom{tag: tag, value: value}
}

func (f Custom) Tag() uint16   { return f.tag }
func (f Custom) Value() []byte { return f.value }

func (f Custom) AppendTo(dst []byte) []byte {
	return appendTagValue(dst, f.tag, f.value)
}
