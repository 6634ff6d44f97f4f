package fixwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTagValue(t *testing.T) {
	lx := newLexer([]byte("35=A\x0149=TESTBUY1\x01"))

	tag, err := lx.tag()
	require.NoError(t, err)
	assert.Equal(t, uint16(35), tag)

	value, err := lx.value()
	require.NoError(t, err)
	assert.Equal(t, []byte("A"), value)

	tag, err = lx.tag()
	require.NoError(t, err)
	assert.Equal(t, uint16(49), tag)

	value, err = lx.value()
	require.NoError(t, err)
	assert.Equal(t, []byte("TESTBUY1"), value)

	// nothing left
	_, err = lx.tag()
	assert.ErrorIs(t, err, ErrUnexpectedEOI)
}

func TestLexerValueWithoutTrailingSOH(t *testing.T) {
	// The final field of a message may omit the control byte.
	lx := newLexer([]byte("10=089"))

	tag, err := lx.tag()
	require.NoError(t, err)
	assert.Equal(t, uint16(10), tag)

	value, err := lx.value()
	require.NoError(t, err)
	assert.Equal(t, []byte("089"), value)
}

func TestLexerEmptyValue(t *testing.T) {
	lx := newLexer([]byte("58=\x01"))

	_, err := lx.tag()
	require.NoError(t, err)

	value, err := lx.value()
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestLexerUnexpectedByte(t *testing.T) {
	// 'X' sits where the '=' should be.
	lx := newLexer([]byte("35X=A\x01"))

	_, err := lx.tag()
	var ube *UnexpectedByteError
	require.ErrorAs(t, err, &ube)
	assert.Equal(t, equals, ube.Expected)
	assert.Equal(t, byte('X'), ube.Got)
}

func TestLexerEOIInsideTag(t *testing.T) {
	lx := newLexer([]byte("35"))

	_, err := lx.tag()
	assert.ErrorIs(t, err, ErrUnexpectedEOI)
}

func TestLexerMalformedTag(t *testing.T) {
	// zero digits before '='
	lx := newLexer([]byte("=A\x01"))

	_, err := lx.tag()
	assert.ErrorIs(t, err, ErrMalformedTag)

	// tag value wider than 16 bits
	lx = newLexer([]byte("70000=A\x01"))

	_, err = lx.tag()
	assert.ErrorIs(t, err, ErrMalformedTag)
}

func TestLexerCursorOnlyAdvances(t *testing.T) {
	input := []byte("8=FIX.4.4\x01")
	lx := newLexer(input)

	_, err := lx.tag()
	require.NoError(t, err)
	after := lx.cursor

	_, err = lx.value()
	require.NoError(t, err)
	assert.Greater(t, lx.cursor, after)
	assert.Equal(t, len(input), lx.cursor)
}
