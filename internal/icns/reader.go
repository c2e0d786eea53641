package icns

import (
	"encoding/binary"
	"fmt"
	"math"
)

// reader is a sequential cursor over a fixed byte buffer. Reads never go
// past the end of the buffer; a read that would do so fails with the
// sentinel error supplied by the caller, so truncation surfaces as the
// structurally correct error for whatever was being read.
type reader struct {
	data []byte
	off  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() int {
	return len(r.data) - r.off
}

// readBytes reads exactly n bytes into a fresh buffer. The returned slice
// never aliases the input, so elements own their bytes independently.
func (r *reader) readBytes(n int, short error) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", short, n, r.remaining())
	}
	buf := make([]byte, n)
	copy(buf, r.data[r.off:r.off+n])
	r.off += n
	return buf, nil
}

// readUint32 reads a big-endian unsigned 32-bit integer.
func (r *reader) readUint32(short error) (uint32, error) {
	buf, err := r.readBytes(4, short)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// readFloat32 reads a big-endian IEEE-754 single-precision float.
func (r *reader) readFloat32(short error) (float32, error) {
	bits, err := r.readUint32(short)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}
