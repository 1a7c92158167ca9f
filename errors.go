package protowire

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every parse failure in this package wraps one of
// these (directly, or via *FieldParseError), so callers can branch with
// errors.Is regardless of how deeply the failure occurred.
var (
	// ErrMissingTerminator means a varint decode reached the end of the
	// buffer without finding a byte with its continuation bit clear.
	ErrMissingTerminator = errors.New("protowire: varint has no terminating byte")

	// ErrVarintTooLong means a varint decode consumed the maximum 10 bytes
	// without finding a terminator.
	ErrVarintTooLong = errors.New("protowire: varint is too long")

	// ErrInsufficientBytes means a fixed-width carrier (Fixed32/Fixed64)
	// did not have enough remaining bytes to parse.
	ErrInsufficientBytes = errors.New("protowire: buffer has insufficient bytes")

	// ErrLengthOverrun means a length-delimited record's declared length
	// exceeds the bytes remaining in the buffer.
	ErrLengthOverrun = errors.New("protowire: length-delimited record overruns buffer")

	// ErrInvalidWireType means a tag's low 3 bits were 6 or 7, which the
	// wire format never assigns.
	ErrInvalidWireType = errors.New("protowire: invalid wire type")

	// ErrInvalidUTF8 means a caller requested a string view of
	// length-delimited bytes that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("protowire: bytes are not valid UTF-8")

	// ErrGroupTooDeep means group nesting exceeded maxGroupDepth while
	// parsing.
	ErrGroupTooDeep = errors.New("protowire: group nesting exceeds maximum depth")

	// ErrGroupUnterminated means the buffer was exhausted while parsing a
	// group's fields without encountering a matching end-group marker.
	ErrGroupUnterminated = errors.New("protowire: group has no matching end marker")
)

// FieldParseError annotates a parse failure with the wire-type being
// attempted when it occurred, so an outer failure (e.g. "could not parse
// Group") carries the inner cause (e.g. "varint has no terminating byte")
// without losing either piece of context. errors.Is/errors.As see through to
// the wrapped sentinel.
type FieldParseError struct {
	// Context names the construct being parsed, e.g. "field tag" or
	// "group field".
	Context string
	// WireType is the wire-type that was being decoded, if known at the
	// point of failure.
	WireType WireType
	// Err is the underlying error.
	Err error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("protowire: %s: %v", e.Context, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}
