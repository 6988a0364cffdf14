package ue3

import (
	"encoding/binary"
)

// Cursor is a forward-only positioned reader over an in-memory byte
// source. All integer reads are little-endian.
type Cursor struct {
	data []byte
	pos  int64
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current absolute offset.
func (c *Cursor) Pos() int64 {
	return c.pos
}

// Len returns the total length of the underlying source.
func (c *Cursor) Len() int64 {
	return int64(len(c.data))
}

// Seek moves the cursor to an absolute offset.
func (c *Cursor) Seek(offset int64) error {
	if offset < 0 || offset > int64(len(c.data)) {
		return &ReadError{Offset: offset, Op: "seek"}
	}
	c.pos = offset
	return nil
}

// Bytes returns the next n bytes and advances the cursor. The returned
// slice aliases the underlying source and must not be modified.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, &ReadError{Offset: c.pos, Op: "read", Want: n}
	}
	if c.pos+int64(n) > int64(len(c.data)) {
		return nil, &ReadError{Offset: c.pos, Op: "read", Want: n}
	}
	b := c.data[c.pos : c.pos+int64(n)]
	c.pos += int64(n)
	return b, nil
}

// U16 reads an unsigned 16-bit integer.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U32 reads an unsigned 32-bit integer.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64 reads an unsigned 64-bit integer.
func (c *Cursor) U64() (uint64, error) {
	b, err := c.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// I32 reads a signed 32-bit integer.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// I64 reads a signed 64-bit integer.
func (c *Cursor) I64() (int64, error) {
	v, err := c.U64()
	return int64(v), err
}
