package ue3

import "fmt"

// Tag is the magic constant opening every package file and every
// compressed chunk header.
const Tag uint32 = 0x9E2A83C1

// Compression flag bits declared in the summary. Only ZLIB is
// supported by the reconstruction pipeline.
const (
	CompressionNone       uint32 = 0x00
	CompressionZLIB       uint32 = 0x01
	CompressionGZIP       uint32 = 0x02
	CompressionBiasMemory uint32 = 0x10
	CompressionBiasSpeed  uint32 = 0x20
)

// Licensee versions at or above this parse file offsets as 64-bit.
const wideOffsetLicenseeVersion = 22

// Guid is the 128-bit package identifier.
type Guid struct {
	A, B, C, D uint32
}

// DecodeGuid reads a Guid in place.
func DecodeGuid(c *Cursor) (Guid, error) {
	var g Guid
	var err error
	if g.A, err = c.U32(); err != nil {
		return Guid{}, err
	}
	if g.B, err = c.U32(); err != nil {
		return Guid{}, err
	}
	if g.C, err = c.U32(); err != nil {
		return Guid{}, err
	}
	if g.D, err = c.U32(); err != nil {
		return Guid{}, err
	}
	return g, nil
}

func (g Guid) String() string {
	return fmt.Sprintf("%08X-%08X-%08X-%08X", g.A, g.B, g.C, g.D)
}

// GenerationInfo is one historical snapshot of package counts.
type GenerationInfo struct {
	ExportCount    int32
	NameCount      int32
	NetObjectCount int32
}

// DecodeGenerationInfo reads one generation record.
func DecodeGenerationInfo(c *Cursor) (GenerationInfo, error) {
	var g GenerationInfo
	var err error
	if g.ExportCount, err = c.I32(); err != nil {
		return GenerationInfo{}, err
	}
	if g.NameCount, err = c.I32(); err != nil {
		return GenerationInfo{}, err
	}
	if g.NetObjectCount, err = c.I32(); err != nil {
		return GenerationInfo{}, err
	}
	return g, nil
}

// PackageSummary is the fixed-layout header at the start of a package
// file. It is immutable once decoded.
type PackageSummary struct {
	Tag             uint32
	FileVersion     uint16
	LicenseeVersion uint16
	TotalHeaderSize int32
	FolderName      string
	PackageFlags    uint32

	NameCount     int32
	NameOffset    int32
	ExportCount   int32
	ExportOffset  int32
	ImportCount   int32
	ImportOffset  int32
	DependsOffset int32

	// UnknownStrings is a count-prefixed string array of unknown
	// purpose carried between DependsOffset and the Guid.
	UnknownStrings []string

	Guid        Guid
	Generations []GenerationInfo

	EngineVersion    uint32
	CookerVersion    uint32
	CompressionFlags uint32

	// CompressedChunks is the chunk list as stored in the plaintext
	// leading header. The authoritative table lives inside the
	// decrypted header tail at CompressedChunkInfoOffset.
	CompressedChunks []CompressedChunkInfo

	GarbageSize               int32
	CompressedChunkInfoOffset int32
	LastBlockSize             int32
}

// DecodeSummary reads the package summary from the start of the
// cursor. A tag mismatch fails immediately without consuming further
// bytes.
func DecodeSummary(c *Cursor) (*PackageSummary, error) {
	s := &PackageSummary{}
	var err error
	tagOffset := c.Pos()
	if s.Tag, err = c.U32(); err != nil {
		return nil, err
	}
	if s.Tag != Tag {
		return nil, &FormatError{Offset: tagOffset, Msg: fmt.Sprintf("bad package tag 0x%08X", s.Tag)}
	}
	if s.FileVersion, err = c.U16(); err != nil {
		return nil, err
	}
	if s.LicenseeVersion, err = c.U16(); err != nil {
		return nil, err
	}
	if s.TotalHeaderSize, err = c.I32(); err != nil {
		return nil, err
	}
	if s.FolderName, err = DecodeString(c); err != nil {
		return nil, err
	}
	if s.PackageFlags, err = c.U32(); err != nil {
		return nil, err
	}
	if s.NameCount, err = c.I32(); err != nil {
		return nil, err
	}
	if s.NameOffset, err = c.I32(); err != nil {
		return nil, err
	}
	if s.ExportCount, err = c.I32(); err != nil {
		return nil, err
	}
	if s.ExportOffset, err = c.I32(); err != nil {
		return nil, err
	}
	if s.ImportCount, err = c.I32(); err != nil {
		return nil, err
	}
	if s.ImportOffset, err = c.I32(); err != nil {
		return nil, err
	}
	if s.DependsOffset, err = c.I32(); err != nil {
		return nil, err
	}
	if s.UnknownStrings, err = DecodeList(c, DecodeString); err != nil {
		return nil, err
	}
	if s.Guid, err = DecodeGuid(c); err != nil {
		return nil, err
	}
	if s.Generations, err = DecodeList(c, DecodeGenerationInfo); err != nil {
		return nil, err
	}
	if s.EngineVersion, err = c.U32(); err != nil {
		return nil, err
	}
	if s.CookerVersion, err = c.U32(); err != nil {
		return nil, err
	}
	if s.CompressionFlags, err = c.U32(); err != nil {
		return nil, err
	}
	if s.CompressedChunks, err = DecodeChunkTable(c, s.OffsetWidth()); err != nil {
		return nil, err
	}
	if s.GarbageSize, err = c.I32(); err != nil {
		return nil, err
	}
	if s.CompressedChunkInfoOffset, err = c.I32(); err != nil {
		return nil, err
	}
	if s.LastBlockSize, err = c.I32(); err != nil {
		return nil, err
	}
	return s, nil
}

// OffsetWidth returns the byte width of version-dependent file
// offsets: 8 for licensee versions >= 22, otherwise 4.
func (s *PackageSummary) OffsetWidth() int {
	if s.LicenseeVersion >= wideOffsetLicenseeVersion {
		return 8
	}
	return 4
}

// HasCompression reports whether the given compression flag bit is set.
func (s *PackageSummary) HasCompression(flag uint32) bool {
	return s.CompressionFlags&flag != 0
}
