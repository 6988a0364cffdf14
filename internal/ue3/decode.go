package ue3

import (
	"fmt"
	"unicode/utf16"
)

// DecodeList reads a signed 32-bit element count and then exactly that
// many elements via elem. Context an element needs (such as the
// resolved offset width) is captured by the elem closure rather than
// stored on the element.
func DecodeList[E any](c *Cursor, elem func(*Cursor) (E, error)) ([]E, error) {
	start := c.Pos()
	n, err := c.I32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &FormatError{Offset: start, Msg: fmt.Sprintf("negative list count %d", n)}
	}
	if n == 0 {
		return nil, nil
	}
	// Every element consumes at least one byte, so a count larger than
	// the remaining source is malformed regardless of element type.
	if int64(n) > c.Len()-c.Pos() {
		return nil, &FormatError{Offset: start, Msg: fmt.Sprintf("list count %d exceeds remaining data", n)}
	}
	out := make([]E, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := elem(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeString reads a length-prefixed string. A positive length L
// means L single-byte characters including a trailing NUL; a negative
// length means -L bytes of UTF-16LE text including a two-byte NUL. The
// terminator is consumed but not part of the result. Length zero is an
// empty string.
func DecodeString(c *Cursor) (string, error) {
	start := c.Pos()
	l, err := c.I32()
	if err != nil {
		return "", err
	}
	switch {
	case l == 0:
		return "", nil
	case l > 0:
		b, err := c.Bytes(int(l))
		if err != nil {
			return "", err
		}
		return string(b[:l-1]), nil
	default:
		n := int(-int64(l))
		if n%2 != 0 {
			return "", &FormatError{Offset: start, Msg: fmt.Sprintf("odd utf-16 string length %d", n)}
		}
		b, err := c.Bytes(n)
		if err != nil {
			return "", err
		}
		words := make([]uint16, n/2-1)
		for i := range words {
			words[i] = uint16(b[i*2]) | uint16(b[i*2+1])<<8
		}
		return string(utf16.Decode(words)), nil
	}
}
