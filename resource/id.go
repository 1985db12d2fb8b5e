package resource

import (
	"fmt"
	"strconv"
)

// ID is a 32-bit resource identifier in 0xPPTTEEEE form: the package id
// in the top byte, the type id in the byte below it, and the entry id in
// the low 16 bits.
type ID uint32

// Compose builds an identifier from its three components.
func Compose(pkg, typ uint8, entry uint16) ID {
	return ID(uint32(pkg)<<24 | uint32(typ)<<16 | uint32(entry))
}

// ParseID parses an identifier from its textual form. Decimal,
// 0x-prefixed hexadecimal and 0-prefixed octal are accepted.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	return ID(v), nil
}

// PackageID returns the package component, bits 31-24.
func (id ID) PackageID() uint8 {
	return uint8(id >> 24)
}

// TypeID returns the type component, bits 23-16.
func (id ID) TypeID() uint8 {
	return uint8(id >> 16)
}

// EntryID returns the entry component, bits 15-0.
func (id ID) EntryID() uint16 {
	return uint16(id)
}

// Validate checks the identifier's shape: the package and type
// components must both be non-zero. Resolution against a table performs
// its own existence checks; Validate is for rejecting identifiers that
// cannot name any resource at all.
func (id ID) Validate() error {
	if id.PackageID() == 0 {
		return fmt.Errorf("%w: zero package id in %s", ErrMalformedID, id)
	}
	if id.TypeID() == 0 {
		return fmt.Errorf("%w: zero type id in %s", ErrMalformedID, id)
	}
	return nil
}

func (id ID) String() string {
	return fmt.Sprintf("0x%08x", uint32(id))
}
