package fixwire

import (
	"bytes"
	"io"
)

// Header holds the two fields every message must start with (version
// marker and message type) plus the optional header fields in wire order.
type Header struct {
	BeginString BeginString
	MsgType     MsgType
	Fields      []Field
}

// Body is the ordered business content of a message. Insertion order is
// wire order and is never reordered by the codec.
type Body struct {
	Fields []Field
}

// Message owns exactly one Header and one Body. Decoded messages have
// additionally passed the body-length and checksum checks; those values
// are verified, not stored.
type Message struct {
	Header Header
	Body   Body
}

// Statically assert that Message is a complete Codec.
var _ Codec = (*Message)(nil)

// NewBuilder starts the staged construction of a message. The returned
// Builder cannot Build until at least one body field has been added; see
// InitializedBuilder.
func NewBuilder(beginString BeginString, msgType MsgType) *Builder {
	return &Builder{
		inner: Message{
			Header: Header{BeginString: beginString, MsgType: msgType},
		},
	}
}

// Builder is the "no body fields yet" stage of message construction. It
// deliberately has no Build method: finalizing requires the transition to
// InitializedBuilder via WithField.
type Builder struct {
	inner Message
}

// WithHeader appends an optional header field and stays in the same stage.
func (b *Builder) WithHeader(field Field) *Builder {
	b.inner.Header.Fields = append(b.inner.Header.Fields, field)
	return b
}

// WithField appends the first body field and transitions to the
// initialized stage, from which the message can be built.
func (b *Builder) WithField(field Field) *InitializedBuilder {
	b.inner.Body.Fields = append(b.inner.Body.Fields, field)
	return &InitializedBuilder{inner: b.inner}
}

// InitializedBuilder is the "at least one body field" stage. Only this
// stage can finalize a message.
type InitializedBuilder struct {
	inner Message
}

// WithHeader appends an optional header field.
func (b *InitializedBuilder) WithHeader(field Field) *InitializedBuilder {
	b.inner.Header.Fields = append(b.inner.Header.Fields, field)
	return b
}

// WithField appends another body field.
func (b *InitializedBuilder) WithField(field Field) *InitializedBuilder {
	b.inner.Body.Fields = append(b.inner.Body.Fields, field)
	return b
}

// Build finalizes the message.
func (b *InitializedBuilder) Build() *Message {
	m := b.inner
	return &m
}

// MarshalBinary implements encoding.BinaryMarshaler. It is equivalent to
// Encode and never fails: the encoder operates on already-validated
// in-memory values.
func (m *Message) MarshalBinary() ([]byte, error) {
	return m.Encode(), nil
}

// MarshalTo encodes the message into a pre-allocated buffer, returning
// io.ErrShortBuffer if the buffer cannot hold the canonical form.
func (m *Message) MarshalTo(buf []byte) (int, error) {
	encoded := m.Encode()
	if len(buf) < len(encoded) {
		return 0, io.ErrShortBuffer
	}
	return copy(buf, encoded), nil
}

// WriteTo implements io.WriterTo.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.Encode())
	return int64(n), err
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. On failure the
// receiver is left unmodified.
func (m *Message) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// ReadFrom drains r to EOF into a pooled buffer and decodes the result.
// The reader must deliver exactly one complete message; this is not a
// streaming partial decode.
func (m *Message) ReadFrom(r io.Reader) (int64, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, err
	}
	// Decoded fields alias the input slice, so the pooled buffer's
	// contents must be copied out before the buffer is reused.
	return n, m.UnmarshalBinary(bytes.Clone(buf.Bytes()))
}
