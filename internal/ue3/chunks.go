package ue3

import "fmt"

// CompressedChunkInfo describes one compressed region of the file in
// both compressed and uncompressed space. Offsets are stored as 32 or
// 64 bits depending on the licensee version; they are widened to int64
// here.
type CompressedChunkInfo struct {
	UncompressedOffset int64
	UncompressedSize   int32
	CompressedOffset   int64
	CompressedSize     int32
}

// DecodeChunkInfo reads one chunk descriptor. offsetWidth is the byte
// width of the two offset fields (4 or 8), resolved from the summary
// by the caller.
func DecodeChunkInfo(c *Cursor, offsetWidth int) (CompressedChunkInfo, error) {
	var info CompressedChunkInfo
	var err error
	readOffset := func() (int64, error) {
		if offsetWidth == 8 {
			return c.I64()
		}
		v, err := c.I32()
		return int64(v), err
	}
	if info.UncompressedOffset, err = readOffset(); err != nil {
		return CompressedChunkInfo{}, err
	}
	if info.UncompressedSize, err = c.I32(); err != nil {
		return CompressedChunkInfo{}, err
	}
	if info.CompressedOffset, err = readOffset(); err != nil {
		return CompressedChunkInfo{}, err
	}
	if info.CompressedSize, err = c.I32(); err != nil {
		return CompressedChunkInfo{}, err
	}
	return info, nil
}

// DecodeChunkTable reads a count-prefixed list of chunk descriptors.
func DecodeChunkTable(c *Cursor, offsetWidth int) ([]CompressedChunkInfo, error) {
	return DecodeList(c, func(c *Cursor) (CompressedChunkInfo, error) {
		return DecodeChunkInfo(c, offsetWidth)
	})
}

// CompressedChunkBlock is a compressed/uncompressed size pair. The
// same structure serves as the chunk-level total and as each sub-block
// descriptor.
type CompressedChunkBlock struct {
	CompressedSize   int32
	UncompressedSize int32
}

// DecodeChunkBlock reads one size pair.
func DecodeChunkBlock(c *Cursor) (CompressedChunkBlock, error) {
	var b CompressedChunkBlock
	var err error
	if b.CompressedSize, err = c.I32(); err != nil {
		return CompressedChunkBlock{}, err
	}
	if b.UncompressedSize, err = c.I32(); err != nil {
		return CompressedChunkBlock{}, err
	}
	return b, nil
}

// CompressedChunkHeader sits at a chunk's compressed offset in the
// original file: the package tag, the nominal block size, and a
// summary block carrying the chunk's total sizes.
type CompressedChunkHeader struct {
	Tag       uint32
	BlockSize int32
	Summary   CompressedChunkBlock
}

// DecodeChunkHeader reads and validates a chunk container header.
func DecodeChunkHeader(c *Cursor) (CompressedChunkHeader, error) {
	var h CompressedChunkHeader
	var err error
	tagOffset := c.Pos()
	if h.Tag, err = c.U32(); err != nil {
		return CompressedChunkHeader{}, err
	}
	if h.Tag != Tag {
		return CompressedChunkHeader{}, &FormatError{Offset: tagOffset, Msg: fmt.Sprintf("bad chunk tag 0x%08X", h.Tag)}
	}
	if h.BlockSize, err = c.I32(); err != nil {
		return CompressedChunkHeader{}, err
	}
	if h.Summary, err = DecodeChunkBlock(c); err != nil {
		return CompressedChunkHeader{}, err
	}
	return h, nil
}

// DecodeChunkBlocks reads sub-block descriptors until their declared
// uncompressed sizes sum to exactly total. A sum passing total without
// hitting it is a format violation.
func DecodeChunkBlocks(c *Cursor, total int32) ([]CompressedChunkBlock, error) {
	var blocks []CompressedChunkBlock
	var sum int64
	for sum < int64(total) {
		start := c.Pos()
		b, err := DecodeChunkBlock(c)
		if err != nil {
			return nil, err
		}
		if b.UncompressedSize < 0 {
			return nil, &FormatError{Offset: start, Msg: fmt.Sprintf("negative sub-block size %d", b.UncompressedSize)}
		}
		sum += int64(b.UncompressedSize)
		if sum > int64(total) {
			return nil, &FormatError{Offset: start, Msg: fmt.Sprintf("sub-block sizes sum to %d, past chunk total %d", sum, total)}
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
