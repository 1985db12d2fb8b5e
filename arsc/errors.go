// Package arsc provides decoding of compiled Android resource tables.
package arsc

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotResTable indicates the data is not a resource table.
	ErrNotResTable = errors.New("arsc: not a valid resource table")

	// ErrTruncated indicates a chunk claims more data than is present.
	ErrTruncated = errors.New("arsc: truncated resource table")

	// ErrInvalidChunk indicates a malformed chunk header.
	ErrInvalidChunk = errors.New("arsc: invalid chunk header")
)

// ParseError provides detailed information about decoding failures.
type ParseError struct {
	Chunk   string // Chunk kind where error occurred
	Offset  int64  // Byte offset of the chunk within the table
	Message string // Description of the error
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("arsc: parse error in %s chunk at offset 0x%x: %s: %v",
			e.Chunk, e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("arsc: parse error in %s chunk at offset 0x%x: %s",
		e.Chunk, e.Offset, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseErr builds a ParseError for the chunk starting at offset.
func parseErr(chunk ChunkType, offset int, message string, err error) error {
	return &ParseError{
		Chunk:   chunk.String(),
		Offset:  int64(offset),
		Message: message,
		Err:     err,
	}
}
