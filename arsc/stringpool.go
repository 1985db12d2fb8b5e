package arsc

import (
	"fmt"

	"github.com/v3l0c1r4pt0r/arscutils/internal/binread"
)

// String pool flags.
const (
	// StringPoolSorted means the strings are sorted by string value
	StringPoolSorted uint32 = 1 << 0

	// StringPoolUTF8 means the strings are encoded as UTF-8 instead of UTF-16
	StringPoolUTF8 uint32 = 1 << 8
)

// StringEntry is a single pooled string, still in its wire encoding.
//
// Raw holds the payload bytes with the length envelope and the trailing
// terminator stripped. Length is the length the envelope declared: a byte
// count for UTF-8 pools and a 16-bit unit count for UTF-16 pools.
type StringEntry struct {
	Length int
	Raw    []byte
}

// StringPool holds the decoded layout of a string pool chunk.
//
// Style data is carried verbatim and never interpreted; resource name
// resolution has no use for it.
type StringPool struct {
	Flags      uint32
	Entries    []StringEntry
	StyleCount uint32
	Styles     []byte
}

// IsUTF8 reports whether the pool stores UTF-8 encoded strings.
func (p *StringPool) IsUTF8() bool {
	return p.Flags&StringPoolUTF8 != 0
}

// IsSorted reports whether the pool declares its strings sorted.
func (p *StringPool) IsSorted() bool {
	return p.Flags&StringPoolSorted != 0
}

// Len returns the number of strings in the pool.
func (p *StringPool) Len() int {
	return len(p.Entries)
}

// parseStringPool decodes a string pool chunk. The reader must be positioned
// at the chunk start; on success it is left at the chunk end.
func parseStringPool(r *binread.Reader) (*StringPool, error) {
	start := r.Offset()

	hdr, err := readChunkHeader(r)
	if err != nil {
		return nil, parseErr(ChunkStringPool, start, "bad chunk header", err)
	}
	if hdr.Type != ChunkStringPool {
		return nil, parseErr(ChunkStringPool, start, fmt.Sprintf("unexpected chunk type %#04x", uint16(hdr.Type)), nil)
	}

	end := start + int(hdr.Size)
	if end > r.Len() {
		return nil, parseErr(ChunkStringPool, start, "chunk extends past end of data", ErrTruncated)
	}

	stringCount, err := r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkStringPool, start, "reading string count", err)
	}
	styleCount, err := r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkStringPool, start, "reading style count", err)
	}
	flags, err := r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkStringPool, start, "reading flags", err)
	}
	stringsStart, err := r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkStringPool, start, "reading strings start", err)
	}
	stylesStart, err := r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkStringPool, start, "reading styles start", err)
	}

	// offset array follows the pool header
	if err := r.SetOffset(start + int(hdr.HeaderSize)); err != nil {
		return nil, parseErr(ChunkStringPool, start, "seeking to offset array", err)
	}
	if int(stringCount) > (end-r.Offset())/4 {
		return nil, parseErr(ChunkStringPool, start, "string count exceeds chunk size", nil)
	}
	offsets, err := r.ReadU32Array(int(stringCount))
	if err != nil {
		return nil, parseErr(ChunkStringPool, start, "reading string offsets", err)
	}

	dataStart := start + int(stringsStart)
	dataEnd := end
	if styleCount > 0 && stylesStart > 0 {
		dataEnd = start + int(stylesStart)
	}
	if dataStart < start+int(hdr.HeaderSize) || dataEnd < dataStart || dataEnd > end {
		return nil, parseErr(ChunkStringPool, start, "string data region out of bounds", nil)
	}

	pool := &StringPool{
		Flags:      flags,
		Entries:    make([]StringEntry, 0, stringCount),
		StyleCount: styleCount,
	}

	for i, off := range offsets {
		entryStart := dataStart + int(off)
		if entryStart >= dataEnd {
			return nil, parseErr(ChunkStringPool, start, fmt.Sprintf("string %d offset out of bounds", i), nil)
		}
		if err := r.SetOffset(entryStart); err != nil {
			return nil, parseErr(ChunkStringPool, start, fmt.Sprintf("string %d offset out of bounds", i), err)
		}

		var entry StringEntry
		if pool.IsUTF8() {
			entry, err = parseUTF8Entry(r)
		} else {
			entry, err = parseUTF16Entry(r)
		}
		if err != nil {
			return nil, parseErr(ChunkStringPool, start, fmt.Sprintf("decoding string %d", i), err)
		}
		if r.Offset() > dataEnd {
			return nil, parseErr(ChunkStringPool, start, fmt.Sprintf("string %d extends past string data", i), ErrTruncated)
		}

		pool.Entries = append(pool.Entries, entry)
	}

	if styleCount > 0 && stylesStart > 0 {
		if err := r.SetOffset(dataEnd); err != nil {
			return nil, parseErr(ChunkStringPool, start, "style data out of bounds", err)
		}
		styles, err := r.ReadBytesRef(end - dataEnd)
		if err != nil {
			return nil, parseErr(ChunkStringPool, start, "style data out of bounds", err)
		}
		pool.Styles = styles
	}

	if err := r.SetOffset(end); err != nil {
		return nil, parseErr(ChunkStringPool, start, "seeking past chunk", err)
	}

	return pool, nil
}

// parseUTF8Entry reads one UTF-8 pool entry at the current position. The
// envelope carries a character count and a byte count, each widened to two
// bytes when the high bit of the first byte is set.
func parseUTF8Entry(r *binread.Reader) (StringEntry, error) {
	// character count precedes the byte count and is otherwise unused
	if _, err := readUTF8Length(r); err != nil {
		return StringEntry{}, err
	}

	byteCount, err := readUTF8Length(r)
	if err != nil {
		return StringEntry{}, err
	}

	raw, err := r.ReadBytesRef(byteCount)
	if err != nil {
		return StringEntry{}, err
	}

	return StringEntry{Length: byteCount, Raw: raw}, nil
}

func readUTF8Length(r *binread.Reader) (int, error) {
	b0, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if b0&0x80 == 0 {
		return int(b0), nil
	}
	b1, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	return int(b0&0x7f)<<8 | int(b1), nil
}

// parseUTF16Entry reads one UTF-16 pool entry at the current position. The
// envelope is a 16-bit unit count, widened to two units when its high bit
// is set.
func parseUTF16Entry(r *binread.Reader) (StringEntry, error) {
	unitCount, err := readUTF16Length(r)
	if err != nil {
		return StringEntry{}, err
	}

	raw, err := r.ReadBytesRef(unitCount * 2)
	if err != nil {
		return StringEntry{}, err
	}

	return StringEntry{Length: unitCount, Raw: raw}, nil
}

func readUTF16Length(r *binread.Reader) (int, error) {
	u0, err := r.ReadU16()
	if err != nil {
		return 0, err
	}
	if u0&0x8000 == 0 {
		return int(u0), nil
	}
	u1, err := r.ReadU16()
	if err != nil {
		return 0, err
	}
	return int(u0&0x7fff)<<16 | int(u1), nil
}
