package resource

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
)

// DecodeString converts one pooled string entry to a Go string.
// utf8Encoded selects which envelope the entry came from; it must match
// the encoding flag of the entry's pool. Stray NUL characters at either
// end of the payload are trimmed.
func DecodeString(entry arsc.StringEntry, utf8Encoded bool) (string, error) {
	if utf8Encoded {
		if len(entry.Raw) != entry.Length {
			return "", fmt.Errorf("%w: declared %d bytes, got %d",
				ErrStringDecode, entry.Length, len(entry.Raw))
		}
		if !utf8.Valid(entry.Raw) {
			return "", fmt.Errorf("%w: invalid UTF-8 payload", ErrStringDecode)
		}
		return strings.Trim(string(entry.Raw), "\x00"), nil
	}

	if len(entry.Raw)%2 != 0 {
		return "", fmt.Errorf("%w: odd UTF-16 payload length %d",
			ErrStringDecode, len(entry.Raw))
	}
	if len(entry.Raw)/2 != entry.Length {
		return "", fmt.Errorf("%w: declared %d units, got %d",
			ErrStringDecode, entry.Length, len(entry.Raw)/2)
	}

	units := make([]uint16, len(entry.Raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(entry.Raw[2*i:])
	}
	return strings.Trim(string(utf16.Decode(units)), "\x00"), nil
}

// PackageName decodes the fixed-width UTF-16LE name field of a package.
// The name ends at the first NUL unit; a field with no terminator is
// rejected.
func PackageName(pkg *arsc.Package) (string, error) {
	raw := pkg.Header.RawName[:]
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		u := binary.LittleEndian.Uint16(raw[i:])
		if u == 0 {
			return string(utf16.Decode(units)), nil
		}
		units = append(units, u)
	}
	return "", fmt.Errorf("%w: package name has no terminator", ErrStringDecode)
}
