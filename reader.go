package flvparse

import (
	"encoding/binary"
	"fmt"
	"math"
)

// reader is a positional cursor over one immutable input buffer. Field
// reads fail with a wrapped ErrTruncated once fewer bytes remain than the
// field needs. Slices returned by take alias the buffer.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader { return &reader{buf: buf} }

func (r *reader) remaining() int { return len(r.buf) - r.off }

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.off, r.remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// peek reports the next n bytes without consuming them.
func (r *reader) peek(n int) ([]byte, bool) {
	if r.remaining() < n {
		return nil, false
	}
	return r.buf[r.off : r.off+n], true
}

func (r *reader) skip(n int) { r.off += n }

func (r *reader) u8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) u24() (uint32, error) {
	b, err := r.take(3)
	if err != nil {
		return 0, err
	}
	return be24(b), nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) f64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// be24 reads a 3-byte big-endian unsigned integer.
func be24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// signed24 sign-extends a 3-byte big-endian integer to 32 bits.
func signed24(b []byte) int32 {
	return int32(be24(b)<<8) >> 8
}
