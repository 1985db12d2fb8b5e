// Package resource maps numeric Android resource identifiers to their
// symbolic names using a decoded resource table.
package resource

import "errors"

// Sentinel errors for resolution failures.
var (
	// ErrMalformedID indicates a structurally invalid resource identifier.
	ErrMalformedID = errors.New("resource: malformed resource identifier")

	// ErrPackageNotFound indicates the table has no package with the
	// requested id.
	ErrPackageNotFound = errors.New("resource: package not found")

	// ErrTypeNotFound indicates the package defines no type with the
	// requested id.
	ErrTypeNotFound = errors.New("resource: type not found")

	// ErrKeyIndexOutOfRange indicates the entry id points past the key
	// range of its type.
	ErrKeyIndexOutOfRange = errors.New("resource: key index out of range")

	// ErrStringDecode indicates a pooled string could not be decoded.
	ErrStringDecode = errors.New("resource: string decode failed")
)
