package ue3

// ObjectExport is one exported-object descriptor from the export
// table. Reconstruction never consults it; the decoder exists so the
// table can be walked by tooling that needs it.
type ObjectExport struct {
	ClassIndex   int32
	SuperIndex   int32
	PackageIndex int32
	NameIndex    int32
	NameNumber   int32
	ObjectFlags  uint64
	SerialSize   int32
	SerialOffset int64 // 32 or 64 bits on disk, licensee-version dependent
	ExportFlags  uint32
	NetObjects   []int32
	Guid         Guid
	PackageFlags uint32
}

// DecodeObjectExport reads one export record. offsetWidth is the byte
// width of SerialOffset, resolved from the summary by the caller.
func DecodeObjectExport(c *Cursor, offsetWidth int) (ObjectExport, error) {
	var e ObjectExport
	var err error
	if e.ClassIndex, err = c.I32(); err != nil {
		return ObjectExport{}, err
	}
	if e.SuperIndex, err = c.I32(); err != nil {
		return ObjectExport{}, err
	}
	if e.PackageIndex, err = c.I32(); err != nil {
		return ObjectExport{}, err
	}
	if e.NameIndex, err = c.I32(); err != nil {
		return ObjectExport{}, err
	}
	if e.NameNumber, err = c.I32(); err != nil {
		return ObjectExport{}, err
	}
	if e.ObjectFlags, err = c.U64(); err != nil {
		return ObjectExport{}, err
	}
	if e.SerialSize, err = c.I32(); err != nil {
		return ObjectExport{}, err
	}
	if offsetWidth == 8 {
		if e.SerialOffset, err = c.I64(); err != nil {
			return ObjectExport{}, err
		}
	} else {
		v, err := c.I32()
		if err != nil {
			return ObjectExport{}, err
		}
		e.SerialOffset = int64(v)
	}
	if e.ExportFlags, err = c.U32(); err != nil {
		return ObjectExport{}, err
	}
	if e.NetObjects, err = DecodeList(c, (*Cursor).I32); err != nil {
		return ObjectExport{}, err
	}
	if e.Guid, err = DecodeGuid(c); err != nil {
		return ObjectExport{}, err
	}
	if e.PackageFlags, err = c.U32(); err != nil {
		return ObjectExport{}, err
	}
	return e, nil
}

// DecodeExportTable reads count export records in table order.
func DecodeExportTable(c *Cursor, count int32, offsetWidth int) ([]ObjectExport, error) {
	exports := make([]ObjectExport, 0, count)
	for i := int32(0); i < count; i++ {
		e, err := DecodeObjectExport(c, offsetWidth)
		if err != nil {
			return nil, err
		}
		exports = append(exports, e)
	}
	return exports, nil
}
