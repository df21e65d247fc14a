package ot

import (
	"bytes"
	"errors"
	"io"
)

// Reading bytes from a font's binary representation

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// Fixed is a 16.16 fixed-point number, as used by sfnt version fields.
type Fixed uint32

// Float converts a 16.16 fixed-point value to a float64.
func (f Fixed) Float() float64 {
	return float64(int32(f)) / 65536.0
}

// binarySegm is a segment of byte data. We use it throughout this module to
// navigate the font's binary data. All multi-byte reads are big-endian, as
// mandated by the sfnt container format. A binarySegm is a view into the
// original font buffer; it is never mutated and never copied, except where
// a string value is decoded out of it.
type binarySegm []byte

// Size returns the segment size in bytes.
func (b binarySegm) Size() int {
	return len(b)
}

// Bytes returns the segment as a byte slice. Clients must treat it as read-only.
func (b binarySegm) Bytes() []byte {
	return b
}

func (b binarySegm) Reader() io.Reader {
	return bytes.NewReader(b)
}

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// i16 returns the int16 in b at the relative offset i.
func (b binarySegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	if err != nil {
		return 0, err
	}
	return int16(n), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// fixed returns the 16.16 fixed-point number in b at the relative offset i.
func (b binarySegm) fixed(i int) (Fixed, error) {
	n, err := b.u32(i)
	if err != nil {
		return 0, err
	}
	return Fixed(n), nil
}

// tag returns the 4-byte tag in b at the relative offset i.
func (b binarySegm) tag(i int) (Tag, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return MakeTag(buf), nil
}
