package fixwire

import (
	"fmt"
	"strconv"
)

// Encode assembles the canonical byte representation of the message: the
// version and body-length framing fields, the regular section (message
// type, optional header fields, body fields, each SOH-terminated), and
// the trailing checksum field. It cannot fail: the message holds only
// values that already passed typed conversion.
//
// The trailer checksum is zero-padded to three digits, the width fixed by
// FIX interoperability practice.
func (m *Message) Encode() []byte {
	regular := m.appendRegularSection(nil)

	// 45 covers the three framing fields at the usual ~15 bytes per field.
	out := make([]byte, 0, len(regular)+45)
	out = appendTagValue(out, TagBeginString, m.Header.BeginString.Bytes())
	out = append(out, SOH)
	out = strconv.AppendUint(out, uint64(TagBodyLength), 10)
	out = append(out, equals)
	out = strconv.AppendUint(out, uint64(len(regular)), 10)
	out = append(out, SOH)
	out = append(out, regular...)

	var digest Digest
	digest.Push(out)
	out = strconv.AppendUint(out, uint64(TagChecksum), 10)
	out = append(out, equals)
	out = fmt.Appendf(out, "%03d", digest.Sum())
	out = append(out, SOH)

	return out
}

// appendRegularSection appends the message type, the optional header
// fields and the body fields to dst, each followed by one SOH. The byte
// length of this section is the declared body length.
func (m *Message) appendRegularSection(dst []byte) []byte {
	if dst == nil {
		// Each field takes at least 4 bytes ("X=Y" plus SOH); ~15 is the
		// usual average, so reserve that much to limit regrowth. +1 is
		// the message type outside the field slices.
		dst = make([]byte, 0, (len(m.Header.Fields)+len(m.Body.Fields)+1)*15)
	}

	dst = appendTagValue(dst, TagMsgType, m.Header.MsgType.Bytes())
	dst = append(dst, SOH)

	for _, field := range m.Header.Fields {
		dst = field.AppendTo(dst)
		dst = append(dst, SOH)
	}
	for _, field := range m.Body.Fields {
		dst = field.AppendTo(dst)
		dst = append(dst, SOH)
	}

	return dst
}
