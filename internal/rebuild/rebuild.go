// Package rebuild reconstructs a package file: it overlays the
// decrypted header tail and inflates every compressed chunk into its
// declared uncompressed offset, leaving all other bytes untouched.
package rebuild

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/kk-code-lab/upkdec/internal/headercrypt"
	"github.com/kk-code-lab/upkdec/internal/ue3"
)

// DecompressionError reports a failed inflate or a size-accounting
// mismatch within one chunk.
type DecompressionError struct {
	Chunk int
	Block int
	Err   error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("rebuild: chunk %d block %d: %v", e.Chunk, e.Block, e.Err)
}

func (e *DecompressionError) Unwrap() error {
	return e.Err
}

// Result carries the reconstructed file and the metadata the caller
// reports and catalogs.
type Result struct {
	Output       []byte
	Summary      *ue3.PackageSummary
	ChunkCount   int
	InputDigest  [32]byte
	OutputDigest [32]byte
}

// Reconstruct converts one package held fully in memory. The operation
// is all-or-nothing: any format, crypto, read, or inflate failure
// aborts with no partial result.
func Reconstruct(input []byte) (*Result, error) {
	cur := ue3.NewCursor(input)
	summary, err := ue3.DecodeSummary(cur)
	if err != nil {
		return nil, err
	}
	if !summary.HasCompression(ue3.CompressionZLIB) {
		return nil, &ue3.UnsupportedCompressionError{Flags: summary.CompressionFlags}
	}

	plain, err := decryptHeaderTail(cur, summary)
	if err != nil {
		return nil, err
	}

	// The chunk table inside the decrypted tail supersedes the one
	// decoded from the plaintext leading header.
	table, err := decodeChunkTable(plain, summary)
	if err != nil {
		return nil, err
	}

	output := make([]byte, len(input))
	copy(output, input)
	copy(output[summary.NameOffset:], plain)

	for i, info := range table {
		if err := inflateChunk(output, input, i, info); err != nil {
			return nil, err
		}
	}

	return &Result{
		Output:       output,
		Summary:      summary,
		ChunkCount:   len(table),
		InputDigest:  blake3.Sum256(input),
		OutputDigest: blake3.Sum256(output),
	}, nil
}

// decryptHeaderTail reads and decrypts the encrypted header region,
// [NameOffset, NameOffset + roundUp16(TotalHeaderSize - GarbageSize -
// NameOffset)).
func decryptHeaderTail(cur *ue3.Cursor, s *ue3.PackageSummary) ([]byte, error) {
	length := int(s.TotalHeaderSize) - int(s.GarbageSize) - int(s.NameOffset)
	if length <= 0 {
		return nil, &ue3.FormatError{
			Offset: int64(s.NameOffset),
			Msg:    fmt.Sprintf("non-positive encrypted header length %d", length),
		}
	}
	length = headercrypt.RoundUp(length)
	if err := cur.Seek(int64(s.NameOffset)); err != nil {
		return nil, err
	}
	enc, err := cur.Bytes(length)
	if err != nil {
		return nil, err
	}
	return headercrypt.Decrypt(enc)
}

// decodeChunkTable reads the authoritative chunk table from the
// decrypted header tail. CompressedChunkInfoOffset is relative to the
// decrypted blob, not the file.
func decodeChunkTable(plain []byte, s *ue3.PackageSummary) ([]ue3.CompressedChunkInfo, error) {
	cur := ue3.NewCursor(plain)
	if err := cur.Seek(int64(s.CompressedChunkInfoOffset)); err != nil {
		return nil, err
	}
	return ue3.DecodeChunkTable(cur, s.OffsetWidth())
}

// inflateChunk decodes one chunk's container header and sub-blocks
// from the original input and writes the inflated bytes contiguously
// into output at the chunk's uncompressed offset.
func inflateChunk(output, input []byte, chunk int, info ue3.CompressedChunkInfo) error {
	cur := ue3.NewCursor(input)
	if err := cur.Seek(info.CompressedOffset); err != nil {
		return err
	}
	header, err := ue3.DecodeChunkHeader(cur)
	if err != nil {
		return err
	}
	blocks, err := ue3.DecodeChunkBlocks(cur, header.Summary.UncompressedSize)
	if err != nil {
		return err
	}

	dst := info.UncompressedOffset
	for i, block := range blocks {
		comp, err := cur.Bytes(int(block.CompressedSize))
		if err != nil {
			return err
		}
		plain, err := inflateBlock(comp, int(block.UncompressedSize))
		if err != nil {
			return &DecompressionError{Chunk: chunk, Block: i, Err: err}
		}
		if dst < 0 || dst+int64(len(plain)) > int64(len(output)) {
			return &ue3.FormatError{
				Offset: dst,
				Msg:    fmt.Sprintf("chunk %d writes past end of file", chunk),
			}
		}
		copy(output[dst:], plain)
		dst += int64(len(plain))
	}
	return nil
}

// inflateBlock inflates one zlib-wrapped sub-block into exactly size
// bytes.
func inflateBlock(comp []byte, size int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(comp))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	plain := make([]byte, size)
	if _, err := io.ReadFull(zr, plain); err != nil {
		return nil, err
	}
	return plain, nil
}
