package arsc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/v3l0c1r4pt0r/arscutils/internal/binread"
)

// PackageNameSize is the size in bytes of the fixed-width package name
// field. The name is UTF-16LE, NUL-padded to the full width.
const PackageNameSize = 256

// PackageHeader mirrors the package chunk header past the common chunk
// fields.
type PackageHeader struct {
	// ID carries the package id in its low 8 bits
	ID uint32

	// RawName is the package name, still in its fixed-width UTF-16LE form
	RawName [PackageNameSize]byte

	// TypeStringsOffset locates the type string pool, relative to the
	// package chunk start
	TypeStringsOffset uint32

	LastPublicType uint32

	// KeyStringsOffset locates the key string pool, relative to the
	// package chunk start
	KeyStringsOffset uint32

	LastPublicKey uint32
}

// TypeSpec is a type specification chunk: the per-entry configuration
// masks for one resource type.
type TypeSpec struct {
	ID         uint8
	Res0       uint8
	Res1       uint16
	EntryCount uint32
	EntryFlags []uint32
}

// TypeVariant is a type chunk: one configuration's worth of entries for a
// resource type. Entry offsets and entry values are not decoded; Config
// holds the raw configuration block, leading size field included.
type TypeVariant struct {
	ID           uint8
	Flags        uint8
	Reserved     uint16
	EntryCount   uint32
	EntriesStart uint32
	Config       []byte
}

// TypeGroup pairs a type specification with the type chunks that share
// its id, in table order.
type TypeGroup struct {
	Spec     *TypeSpec
	Variants []*TypeVariant
}

// Package is one decoded package chunk.
type Package struct {
	Header      PackageHeader
	TypeStrings *StringPool
	KeyStrings  *StringPool
	Types       []*TypeGroup
}

// ID returns the package id from the low 8 bits of the header field.
func (p *Package) ID() uint8 {
	return uint8(p.Header.ID & 0xff)
}

// groupFor returns the most recent type group with the given id.
func (p *Package) groupFor(id uint8) *TypeGroup {
	for i := len(p.Types) - 1; i >= 0; i-- {
		if p.Types[i].Spec.ID == id {
			return p.Types[i]
		}
	}
	return nil
}

// parsePackage decodes a package chunk and its nested string pool, type
// spec and type chunks. The reader must be positioned at the chunk start;
// on success it is left at the chunk end.
func parsePackage(r *binread.Reader) (*Package, error) {
	start := r.Offset()

	hdr, err := readChunkHeader(r)
	if err != nil {
		return nil, parseErr(ChunkTablePackage, start, "bad chunk header", err)
	}
	if hdr.Type != ChunkTablePackage {
		return nil, parseErr(ChunkTablePackage, start, fmt.Sprintf("unexpected chunk type %#04x", uint16(hdr.Type)), nil)
	}

	end := start + int(hdr.Size)
	if end > r.Len() {
		return nil, parseErr(ChunkTablePackage, start, "chunk extends past end of data", ErrTruncated)
	}

	var ph PackageHeader
	ph.ID, err = r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTablePackage, start, "reading package id", err)
	}
	name, err := r.ReadBytesRef(PackageNameSize)
	if err != nil {
		return nil, parseErr(ChunkTablePackage, start, "reading package name", err)
	}
	copy(ph.RawName[:], name)
	ph.TypeStringsOffset, err = r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTablePackage, start, "reading type strings offset", err)
	}
	ph.LastPublicType, err = r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTablePackage, start, "reading last public type", err)
	}
	ph.KeyStringsOffset, err = r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTablePackage, start, "reading key strings offset", err)
	}
	ph.LastPublicKey, err = r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTablePackage, start, "reading last public key", err)
	}

	pkg := &Package{Header: ph}

	if err := r.SetOffset(start + int(hdr.HeaderSize)); err != nil {
		return nil, parseErr(ChunkTablePackage, start, "seeking to package body", err)
	}

	for r.Offset() < end {
		chunkStart := r.Offset()
		if end-chunkStart < ChunkHeaderSize {
			Logger().Debug("ignoring trailing bytes in package chunk",
				zap.Int("offset", chunkStart),
				zap.Int("count", end-chunkStart))
			break
		}

		child, err := readChunkHeader(r)
		if err != nil {
			return nil, parseErr(ChunkTablePackage, chunkStart, "reading child chunk header", err)
		}
		if chunkStart+int(child.Size) > end {
			return nil, parseErr(child.Type, chunkStart, "child chunk extends past package", ErrTruncated)
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
			switch {
			case chunkStart-start == int(ph.TypeStringsOffset):
				pkg.TypeStrings = pool
			case chunkStart-start == int(ph.KeyStringsOffset):
				pkg.KeyStrings = pool
			case pkg.TypeStrings == nil:
				pkg.TypeStrings = pool
			default:
				pkg.KeyStrings = pool
			}

		case ChunkTableTypeSpec:
			spec, err := parseTypeSpec(r)
			if err != nil {
				return nil, err
			}
			pkg.Types = append(pkg.Types, &TypeGroup{Spec: spec})

		case ChunkTableType:
			variant, err := parseTypeVariant(r)
			if err != nil {
				return nil, err
			}
			group := pkg.groupFor(variant.ID)
			if group == nil {
				return nil, parseErr(ChunkTableType, chunkStart,
					fmt.Sprintf("type chunk id %#02x has no preceding type spec", variant.ID), nil)
			}
			group.Variants = append(group.Variants, variant)

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

	return pkg, nil
}

// parseTypeSpec decodes a type specification chunk. The reader must be
// positioned at the chunk start; on success it is left at the chunk end.
func parseTypeSpec(r *binread.Reader) (*TypeSpec, error) {
	start := r.Offset()

	hdr, err := readChunkHeader(r)
	if err != nil {
		return nil, parseErr(ChunkTableTypeSpec, start, "bad chunk header", err)
	}
	if hdr.Type != ChunkTableTypeSpec {
		return nil, parseErr(ChunkTableTypeSpec, start, fmt.Sprintf("unexpected chunk type %#04x", uint16(hdr.Type)), nil)
	}

	end := start + int(hdr.Size)
	if end > r.Len() {
		return nil, parseErr(ChunkTableTypeSpec, start, "chunk extends past end of data", ErrTruncated)
	}

	spec := &TypeSpec{}
	spec.ID, err = r.ReadU8()
	if err != nil {
		return nil, parseErr(ChunkTableTypeSpec, start, "reading type id", err)
	}
	spec.Res0, err = r.ReadU8()
	if err != nil {
		return nil, parseErr(ChunkTableTypeSpec, start, "reading reserved byte", err)
	}
	spec.Res1, err = r.ReadU16()
	if err != nil {
		return nil, parseErr(ChunkTableTypeSpec, start, "reading reserved word", err)
	}
	spec.EntryCount, err = r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTableTypeSpec, start, "reading entry count", err)
	}

	if err := r.SetOffset(start + int(hdr.HeaderSize)); err != nil {
		return nil, parseErr(ChunkTableTypeSpec, start, "seeking to entry flags", err)
	}
	if int(spec.EntryCount) > (end-r.Offset())/4 {
		return nil, parseErr(ChunkTableTypeSpec, start, "entry count exceeds chunk size", nil)
	}
	spec.EntryFlags, err = r.ReadU32Array(int(spec.EntryCount))
	if err != nil {
		return nil, parseErr(ChunkTableTypeSpec, start, "reading entry flags", err)
	}

	if err := r.SetOffset(end); err != nil {
		return nil, parseErr(ChunkTableTypeSpec, start, "seeking past chunk", err)
	}

	return spec, nil
}

// parseTypeVariant decodes a type chunk header and its configuration
// block, skipping the entry data. The reader must be positioned at the
// chunk start; on success it is left at the chunk end.
func parseTypeVariant(r *binread.Reader) (*TypeVariant, error) {
	start := r.Offset()

	hdr, err := readChunkHeader(r)
	if err != nil {
		return nil, parseErr(ChunkTableType, start, "bad chunk header", err)
	}
	if hdr.Type != ChunkTableType {
		return nil, parseErr(ChunkTableType, start, fmt.Sprintf("unexpected chunk type %#04x", uint16(hdr.Type)), nil)
	}

	end := start + int(hdr.Size)
	if end > r.Len() {
		return nil, parseErr(ChunkTableType, start, "chunk extends past end of data", ErrTruncated)
	}

	variant := &TypeVariant{}
	variant.ID, err = r.ReadU8()
	if err != nil {
		return nil, parseErr(ChunkTableType, start, "reading type id", err)
	}
	variant.Flags, err = r.ReadU8()
	if err != nil {
		return nil, parseErr(ChunkTableType, start, "reading flags", err)
	}
	variant.Reserved, err = r.ReadU16()
	if err != nil {
		return nil, parseErr(ChunkTableType, start, "reading reserved word", err)
	}
	variant.EntryCount, err = r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTableType, start, "reading entry count", err)
	}
	variant.EntriesStart, err = r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTableType, start, "reading entries start", err)
	}

	cfgStart := r.Offset()
	cfgSize, err := r.ReadU32()
	if err != nil {
		return nil, parseErr(ChunkTableType, start, "reading config size", err)
	}
	if cfgSize < 4 || cfgStart+int(cfgSize) > end {
		return nil, parseErr(ChunkTableType, start, fmt.Sprintf("bad config size %d", cfgSize), nil)
	}
	if err := r.SetOffset(cfgStart); err != nil {
		return nil, parseErr(ChunkTableType, start, "reading config", err)
	}
	variant.Config, err = r.ReadBytesRef(int(cfgSize))
	if err != nil {
		return nil, parseErr(ChunkTableType, start, "reading config", err)
	}

	if err := r.SetOffset(end); err != nil {
		return nil, parseErr(ChunkTableType, start, "seeking past chunk", err)
	}

	return variant, nil
}
