package protowire

// WireType is the 3-bit code in a field tag that says how the payload
// following the tag is encoded.
type WireType uint8

const (
	WireVarint     WireType = 0
	WireFixed64    WireType = 1
	WireBytes      WireType = 2 // length-delimited: bytes, string, embedded message, packed repeated
	WireStartGroup WireType = 3
	WireEndGroup   WireType = 4
	WireFixed32    WireType = 5
)

func (w WireType) String() string {
	switch w {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "fixed32"
	default:
		return "invalid"
	}
}

// Payload is the tagged union of the six wire forms a Field's value may
// take. A discriminated interface stands in for the sum type: each of the
// six concrete *Payload types below implements it, and a type switch or
// assertion recovers the concrete variant.
//
// EndGroupPayload is a parse-time sentinel only. Callers never construct it
// themselves; it surfaces as the payload of a parsed Field whose wire-type 4
// tag did not close a group: an end marker inside a Group whose field-id did
// not match the enclosing group (see parseGroup), or a stray end marker read
// by ParseField or Message iteration outside any group.
type Payload interface {
	// WireType reports the wire-type code this payload variant encodes as.
	WireType() WireType
	// ByteLen returns the exact number of bytes this payload occupies on
	// the wire, not including the field's tag.
	ByteLen() int

	serializeInto(dst *Buffer)
}

// VarintPayload carries a Varint value (wire type 0).
type VarintPayload struct{ Value Varint }

func (p VarintPayload) WireType() WireType { return WireVarint }
func (p VarintPayload) ByteLen() int { return p.Value.ByteLen() }
func (p VarintPayload) serializeInto(dst *Buffer) { dst.Append(p.Value.Bytes()) }

// Fixed64Payload carries a Fixed64 value (wire type 1).
type Fixed64Payload struct{ Value Fixed64 }

func (p Fixed64Payload) WireType() WireType { return WireFixed64 }
func (p Fixed64Payload) ByteLen() int { return p.Value.ByteLen() }
func (p Fixed64Payload) serializeInto(dst *Buffer) { dst.Append(p.Value.Bytes()) }

// LengthDelimitedPayload carries a length-delimited value: bytes, a UTF-8
// string, an embedded message, or a packed repeated scalar array (wire type
// 2).
type LengthDelimitedPayload struct{ Value LengthDelimited }

func (p LengthDelimitedPayload) WireType() WireType { return WireBytes }
func (p LengthDelimitedPayload) ByteLen() int { return p.Value.ByteLen() }
func (p LengthDelimitedPayload) serializeInto(dst *Buffer) { p.Value.serializeInto(dst) }

// GroupPayload carries a Group (wire type 3, the group's start; the group's
// own end marker is serialized as part of it).
type GroupPayload struct{ Value Group }

func (p GroupPayload) WireType() WireType { return WireStartGroup }
func (p GroupPayload) ByteLen() int { return p.Value.ByteLen() }
func (p GroupPayload) serializeInto(dst *Buffer) { p.Value.serializeInto(dst) }

// Fixed32Payload carries a Fixed32 value (wire type 5).
type Fixed32Payload struct{ Value Fixed32 }

func (p Fixed32Payload) WireType() WireType { return WireFixed32 }
func (p Fixed32Payload) ByteLen() int { return p.Value.ByteLen() }
func (p Fixed32Payload) serializeInto(dst *Buffer) { dst.Append(p.Value.Bytes()) }

// EndGroupPayload is the parse-only sentinel for wire type 4. See the
// Payload doc comment.
type EndGroupPayload struct{}

func (EndGroupPayload) WireType() WireType { return WireEndGroup }
func (EndGroupPayload) ByteLen() int { return 0 }
func (EndGroupPayload) serializeInto(*Buffer) {}
