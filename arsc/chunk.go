package arsc

import "github.com/v3l0c1r4pt0r/arscutils/internal/binread"

// ChunkType identifies the kind of a chunk inside a resource table.
type ChunkType uint16

// Chunk types used by the compiled resource format.
const (
	ChunkNull       ChunkType = 0x0000
	ChunkStringPool ChunkType = 0x0001
	ChunkTable      ChunkType = 0x0002
	ChunkXML        ChunkType = 0x0003

	ChunkTablePackage  ChunkType = 0x0200
	ChunkTableType     ChunkType = 0x0201
	ChunkTableTypeSpec ChunkType = 0x0202
	ChunkTableLibrary  ChunkType = 0x0203
)

func (t ChunkType) String() string {
	switch t {
	case ChunkNull:
		return "null"
	case ChunkStringPool:
		return "string_pool"
	case ChunkTable:
		return "table"
	case ChunkXML:
		return "xml"
	case ChunkTablePackage:
		return "table_package"
	case ChunkTableType:
		return "table_type"
	case ChunkTableTypeSpec:
		return "table_type_spec"
	case ChunkTableLibrary:
		return "table_library"
	default:
		return "unknown"
	}
}

// ChunkHeaderSize is the size of the common chunk header in bytes.
const ChunkHeaderSize = 8

// ChunkHeader prefixes every chunk in a resource table.
type ChunkHeader struct {
	// Type identifies the chunk kind
	Type ChunkType

	// HeaderSize is the size of the chunk header, including this struct.
	// Payload data begins at the chunk start plus HeaderSize.
	HeaderSize uint16

	// Size is the total chunk size, header and payload included
	Size uint32
}

// readChunkHeader reads and sanity-checks a chunk header at the current position.
func readChunkHeader(r *binread.Reader) (ChunkHeader, error) {
	var h ChunkHeader

	t, err := r.ReadU16()
	if err != nil {
		return h, err
	}
	h.Type = ChunkType(t)

	h.HeaderSize, err = r.ReadU16()
	if err != nil {
		return h, err
	}

	h.Size, err = r.ReadU32()
	if err != nil {
		return h, err
	}

	if h.HeaderSize < ChunkHeaderSize || h.Size < uint32(h.HeaderSize) {
		return h, ErrInvalidChunk
	}

	return h, nil
}
