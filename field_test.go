package fixwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldTypedDispatch(t *testing.T) {
	field, err := NewField(TagMsgSeqNum, []byte("1080"))
	require.NoError(t, err)
	assert.Equal(t, MsgSeqNum(1080), field)

	field, err = NewField(TagSenderCompID, []byte("TESTBUY1"))
	require.NoError(t, err)
	assert.Equal(t, SenderCompID("TESTBUY1"), field)

	field, err = NewField(TagSendingTime, []byte("20180920-18:14:19.508"))
	require.NoError(t, err)
	assert.Equal(t, SendingTime("20180920-18:14:19.508"), field)

	field, err = NewField(TagTargetCompID, []byte("TESTSELL1"))
	require.NoError(t, err)
	assert.Equal(t, TargetCompID("TESTSELL1"), field)
}

func TestNewFieldTypedConversionFailure(t *testing.T) {
	_, err := NewField(TagMsgSeqNum, []byte("not-a-number"))
	assert.ErrorIs(t, err, ErrInvalidDigit)
}

func TestNewFieldUnknownTagIsCustom(t *testing.T) {
	value := []byte("arbitrary \x02 bytes")
	field, err := NewField(62000, value)
	require.NoError(t, err)

	custom, ok := field.(Custom)
	require.True(t, ok)
	assert.Equal(t, uint16(62000), custom.Tag())
	assert.Equal(t, value, custom.Value())
}

func TestFieldAppendTo(t *testing.T) {
	assert.Equal(t, []byte("34=4"), MsgSeqNum(4).AppendTo(nil))
	assert.Equal(t, []byte("49=TESTBUY1"), SenderCompID("TESTBUY1").AppendTo(nil))
	assert.Equal(t, []byte("62000=abc"), NewCustom(62000, []byte("abc")).AppendTo(nil))

	// AppendTo grows its destination in place.
	dst := []byte("x")
	dst = MsgSeqNum(7).AppendTo(dst)
	assert.Equal(t, []byte("x34=7"), dst)
}

func TestFieldValue(t *testing.T) {
	assert.Equal(t, []byte("1080"), MsgSeqNum(1080).Value())
	assert.Equal(t, []byte("TESTSELL1"), TargetCompID("TESTSELL1").Value())
	assert.Equal(t, uint16(52), SendingTime(nil).Tag())
}

func TestRegisterField(t *testing.T) {
	const tag uint16 = 9001

	RegisterField(tag, func(value []byte) (Field, error) {
		n, err := ParseInt[uint64](value)
		if err != nil {
			return nil, err
		}
		return MsgSeqNum(n), nil
	})
	defer fieldRegistry.Delete(tag)

	field, err := NewField(tag, []byte("42"))
	require.NoError(t, err)
	assert.Equal(t, MsgSeqNum(42), field)

	_, err = NewField(tag, []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidDigit)
}
