package fixwire

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestSum(t *testing.T) {
	var d Digest
	d.Push([]byte{1, 2, 3})
	assert.Equal(t, uint8(6), d.Sum())

	// (6 + 251) % 256 = 1
	d.Push([]byte{251})
	assert.Equal(t, uint8(1), d.Sum())
}

func TestDigestChunkingIndependence(t *testing.T) {
	data := []byte("8=FIX.4.4\x019=5\x0135=A\x01")

	var whole Digest
	whole.Push(data)

	var chunked Digest
	for _, b := range data {
		chunked.Push([]byte{b})
	}

	assert.Equal(t, whole.Sum(), chunked.Sum())
	assert.Equal(t, uint8(180), whole.Sum())
}

func TestDigestWriter(t *testing.T) {
	var d Digest
	n, err := io.WriteString(&d, "\x01\x02\x03")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, uint8(6), d.Sum())
}
