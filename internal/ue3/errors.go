package ue3

import (
	"fmt"
	"io"
)

// FormatError reports data that does not conform to the package layout.
type FormatError struct {
	Offset int64
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ue3: %s at offset %d", e.Msg, e.Offset)
}

// ReadError reports a read or seek outside the bounds of the source.
type ReadError struct {
	Offset int64
	Op     string
	Want   int
}

func (e *ReadError) Error() string {
	if e.Op == "seek" {
		return fmt.Sprintf("ue3: seek to offset %d out of range", e.Offset)
	}
	return fmt.Sprintf("ue3: short read of %d bytes at offset %d", e.Want, e.Offset)
}

func (e *ReadError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// UnsupportedCompressionError reports compression flags without the
// ZLIB bit, the only codec this pipeline supports.
type UnsupportedCompressionError struct {
	Flags uint32
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("ue3: unsupported compression flags 0x%x (zlib required)", e.Flags)
}
