package arsc

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/v3l0c1r4pt0r/arscutils/internal/binread"
)

// TableHeader is the header of the top-level table chunk.
type TableHeader struct {
	ChunkHeader

	// PackageCount is the number of packages the table declares
	PackageCount uint32
}

// Table is a fully decoded resource table.
type Table struct {
	Header TableHeader

	// Strings is the global value string pool
	Strings *StringPool

	// Packages holds the decoded packages in table order
	Packages []*Package
}

// Open reads and decodes the resource table at path.
func Open(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("arsc: failed to open file: %w", err)
	}
	return Decode(data)
}

// Decode parses a compiled resource table from data. The returned table
// aliases data; callers must not modify the buffer afterwards.
func Decode(data []byte) (*Table, error) {
	r := binread.NewReader(data)

	hdr, err := readChunkHeader(r)
	if err != nil {
		return nil, ErrNotResTable
	}
	if hdr.Type != ChunkTable {
		return nil, ErrNotResTable
	}
	if int(hdr.Size) > len(data) {
		return nil, ErrTruncated
	}

	packageCount, err := r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTable, 0, "reading package count", err)
	}

	table := &Table{
		Header: TableHeader{ChunkHeader: hdr, PackageCount: packageCount},
	}

	if err := r.SetOffset(int(hdr.HeaderSize)); err != nil {
		return nil, parseErr(ChunkTable, 0, "seeking to table body", err)
	}

	end := int(hdr.Size)
	for r.Offset() < end {
		chunkStart := r.Offset()
		if end-chunkStart < ChunkHeaderSize {
			Logger().Debug("ignoring trailing bytes in table",
				zap.Int("offset", chunkStart),
				zap.Int("count", end-chunkStart))
			break
		}

		child, err := readChunkHeader(r)
		if err != nil {
			return nil, parseErr(ChunkTable, chunkStart, "reading child chunk header", err)
		}
		if chunkStart+int(child.Size) > end {
			return nil, parseErr(child.Type, chunkStart, "child chunk extends past table", ErrTruncated)
		}
		if err := r.SetOffset(chunkStart); err != nil {
			return nil, parseErr(child.Type, chunkStart, "seeking to child chunk", err)
		}

		switch child.Type {
		case ChunkStringPool:
			pool, err := parseStringPool(r)
			if err != nil {
				return nil, err
			}
			if table.Strings == nil {
				table.Strings = pool
			} else {
				Logger().Debug("ignoring extra top-level string pool",
					zap.Int("offset", chunkStart))
			}

		case ChunkTablePackage:
			pkg, err := parsePackage(r)
			if err != nil {
				return nil, err
			}
			table.Packages = append(table.Packages, pkg)

		default:
			Logger().Debug("skipping chunk",
				zap.String("type", child.Type.String()),
				zap.Int("offset", chunkStart),
				zap.Uint32("size", child.Size))
			if err := r.SetOffset(chunkStart + int(child.Size)); err != nil {
				return nil, parseErr(child.Type, chunkStart, "seeking past chunk", err)
			}
		}
	}

	if uint32(len(table.Packages)) != packageCount {
		Logger().Warn("package count mismatch",
			zap.Uint32("declared", packageCount),
			zap.Int("decoded", len(table.Packages)))
	}

	Logger().Debug("decoded resource table",
		zap.Int("packages", len(table.Packages)),
		zap.Uint32("size", hdr.Size))

	return table, nil
}

// Package returns the package with the given id, or nil if the table has
// no such package.
func (t *Table) Package(id uint8) *Package {
	for _, pkg := range t.Packages {
		if pkg.ID() == id {
			return pkg
		}
	}
	return nil
}
