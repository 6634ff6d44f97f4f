package fixwire

import "io"

// Digest maintains a running FIX checksum: the modulo-256 sum of every
// byte pushed so far. The zero value is ready to use; reset by replacing
// it with a fresh value.
//
// The final sum depends only on the bytes pushed, not on how the pushes
// were chunked.
type Digest struct {
	sum uint8
}

// Digest can sit behind an io.MultiWriter while encoding.
var _ io.Writer = (*Digest)(nil)

// Push folds each byte of input into the running sum with wrapping
// addition.
func (d *Digest) Push(input []byte) {
	for _, b := range input {
		d.sum += b
	}
}

// Sum returns the checksum of all bytes pushed so far.
func (d *Digest) Sum() uint8 {
	return d.sum
}

// Write implements io.Writer. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.Push(p)
	return len(p), nil
}
