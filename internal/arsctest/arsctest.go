// Package arsctest builds synthetic resource tables for tests.
//
// The builders assemble well-formed chunks from scratch so tests can
// exercise the decoder without shipping binary fixtures. Malformed inputs
// are made by mutating copies of the built bytes.
package arsctest

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

// Chunk type values, mirrored here to keep the builder self-contained.
const (
	typeStringPool   = 0x0001
	typeTable        = 0x0002
	typeTablePackage = 0x0200
	typeTableType    = 0x0201
	typeTableSpec    = 0x0202
)

// noEntry marks an absent entry in a type chunk offset array.
const noEntry = 0xFFFFFFFF

func u16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Chunk assembles a chunk from its type value, the header fields past the
// common chunk header, and the body. Sizes are computed.
func Chunk(typ uint16, header, body []byte) []byte {
	headerSize := 8 + len(header)
	size := headerSize + len(body)
	out := make([]byte, 0, size)
	out = append(out, u16(typ)...)
	out = append(out, u16(uint16(headerSize))...)
	out = append(out, u32(uint32(size))...)
	out = append(out, header...)
	out = append(out, body...)
	return out
}

// Table assembles a resource table from the given chunks, in order. The
// declared package count matches the package chunks present.
func Table(chunks ...[]byte) []byte {
	var body []byte
	count := uint32(0)
	for _, c := range chunks {
		if len(c) >= 2 && binary.LittleEndian.Uint16(c) == typeTablePackage {
			count++
		}
		body = append(body, c...)
	}
	return Chunk(typeTable, u32(count), body)
}

// Pool encodes a string pool chunk without styles. With utf8Encoded set
// the strings are stored in UTF-8 envelopes, otherwise UTF-16LE.
func Pool(utf8Encoded bool, strs ...string) []byte {
	var offsets, data []byte
	for _, s := range strs {
		offsets = append(offsets, u32(uint32(len(data)))...)
		if utf8Encoded {
			data = append(data, UTF8Entry(s)...)
		} else {
			data = append(data, UTF16Entry(s)...)
		}
	}

	var flags uint32
	if utf8Encoded {
		flags = 1 << 8
	}
	stringsStart := 28 + 4*len(strs)

	header := concat(
		u32(uint32(len(strs))),
		u32(0), // style count
		u32(flags),
		u32(uint32(stringsStart)),
		u32(0), // styles start
	)
	return Chunk(typeStringPool, header, concat(offsets, data))
}

// UTF8Entry encodes one UTF-8 pool entry: character count, byte count,
// payload, NUL terminator. Counts at or above 0x80 use the widened
// two-byte form.
func UTF8Entry(s string) []byte {
	var out []byte
	out = appendUTF8Len(out, utf8.RuneCountInString(s))
	out = appendUTF8Len(out, len(s))
	out = append(out, s...)
	return append(out, 0)
}

func appendUTF8Len(b []byte, n int) []byte {
	if n < 0x80 {
		return append(b, byte(n))
	}
	return append(b, byte(n>>8)|0x80, byte(n))
}

// UTF16Entry encodes one UTF-16 pool entry: unit count, little-endian
// payload, NUL terminator. Counts at or above 0x8000 use the widened
// two-word form.
func UTF16Entry(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := appendUTF16Len(nil, len(units))
	for _, u := range units {
		out = append(out, u16(u)...)
	}
	return append(out, 0, 0)
}

func appendUTF16Len(b []byte, n int) []byte {
	if n < 0x8000 {
		return append(b, u16(uint16(n))...)
	}
	b = append(b, u16(uint16(n>>16)|0x8000)...)
	return append(b, u16(uint16(n))...)
}

// TypeBlock describes one resource type for Package: its numeric id, the
// entry count carried by its spec, and how many configuration chunks
// follow the spec.
type TypeBlock struct {
	ID         uint8
	EntryCount uint32
	Variants   int
}

// Package encodes a package chunk: id, fixed-width UTF-16 name, a UTF-16
// type string pool, a UTF-8 key string pool, and one spec chunk (plus
// type chunks) per TypeBlock.
func Package(id uint32, name string, typeNames, keyNames []string, types ...TypeBlock) []byte {
	var chunks [][]byte
	for _, tb := range types {
		chunks = append(chunks, TypeSpec(tb.ID, tb.EntryCount))
		for i := 0; i < tb.Variants; i++ {
			chunks = append(chunks, TypeChunk(tb.ID, tb.EntryCount))
		}
	}
	return PackageWith(id, name, typeNames, keyNames, chunks...)
}

// PackageWith encodes a package chunk whose body is the type string pool,
// the key string pool, then the given chunks verbatim.
func PackageWith(id uint32, name string, typeNames, keyNames []string, chunks ...[]byte) []byte {
	typePool := Pool(false, typeNames...)
	keyPool := Pool(true, keyNames...)

	const headerSize = 8 + 4 + 256 + 16
	typeStringsOffset := uint32(headerSize)
	keyStringsOffset := typeStringsOffset + uint32(len(typePool))

	body := concat(typePool, keyPool)
	for _, c := range chunks {
		body = append(body, c...)
	}

	header := concat(
		u32(id),
		PackageName(name),
		u32(typeStringsOffset),
		u32(0), // last public type
		u32(keyStringsOffset),
		u32(0), // last public key
	)
	return Chunk(typeTablePackage, header, body)
}

// PackageName encodes a package name as the 256-byte fixed-width,
// NUL-padded UTF-16LE field.
func PackageName(s string) []byte {
	out := make([]byte, 256)
	units := utf16.Encode([]rune(s))
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[2*i:], u)
	}
	return out
}

// TypeSpec encodes a type spec chunk with zeroed entry flags.
func TypeSpec(id uint8, entryCount uint32) []byte {
	header := concat([]byte{id, 0}, u16(0), u32(entryCount))
	return Chunk(typeTableSpec, header, make([]byte, 4*entryCount))
}

// TypeChunk encodes a type chunk whose entries are all absent, with a
// minimal default configuration block.
func TypeChunk(id uint8, entryCount uint32) []byte {
	const configSize = 28
	headerSize := uint32(8 + 12 + configSize)

	config := make([]byte, configSize)
	binary.LittleEndian.PutUint32(config, configSize)

	header := concat(
		[]byte{id, 0},
		u16(0),
		u32(entryCount),
		u32(headerSize+4*entryCount), // entries start
		config,
	)

	var offsets []byte
	for i := uint32(0); i < entryCount; i++ {
		offsets = append(offsets, u32(noEntry)...)
	}
	return Chunk(typeTableType, header, offsets)
}

// Demo builds the table shared across the test suites: package 0x7f
// ("app") holding two string resources (app_name, hello) and one
// drawable (icon).
func Demo() []byte {
	pkg := Package(0x7f, "app",
		[]string{"string", "drawable"},
		[]string{"app_name", "hello", "icon"},
		TypeBlock{ID: 1, EntryCount: 2, Variants: 1},
		TypeBlock{ID: 2, EntryCount: 1, Variants: 1},
	)
	return Table(Pool(true, "App", "Hello world", "res/icon.png"), pkg)
}
