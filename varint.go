package protowire

import "github.com/kevin-logan/protowire/internal/wirecodec"

// Varint owns a Buffer holding the 1..=10 raw bytes of a base-128
// variable-length integer. Every byte except the last has its continuation
// bit (the high bit) set; the last does not.
//
// A Varint's underlying uint64 value has four signed interpretations,
// matching the four ways the Protocol Buffers wire format reuses the same
// varint encoding: a plain two's-complement int32/int64 view (the low
// 32/all 64 bits reinterpreted as signed), and a zig-zag sint32/sint64 view.
type Varint struct {
	buf Buffer
}

// NewVarint constructs a Varint encoding the given unsigned value.
func NewVarint(value uint64) Varint {
	var v Varint
	v.Set(value)
	return v
}

// NewProtoInt32 constructs a Varint encoding value the way Protocol Buffers
// encodes a proto "int32" field: sign-extended to 64 bits first, so a
// negative value occupies the full 10-byte maximal varint form. See
// SetProtoInt32.
func NewProtoInt32(value int32) Varint {
	var v Varint
	v.SetProtoInt32(value)
	return v
}

// NewProtoInt64 constructs a Varint encoding value as a proto "int64" field.
func NewProtoInt64(value int64) Varint {
	var v Varint
	v.SetProtoInt64(value)
	return v
}

// NewProtoSInt32 constructs a Varint encoding value as a proto "sint32"
// field (zig-zag encoded).
func NewProtoSInt32(value int32) Varint {
	var v Varint
	v.SetProtoSInt32(value)
	return v
}

// NewProtoSInt64 constructs a Varint encoding value as a proto "sint64"
// field (zig-zag encoded).
func NewProtoSInt64(value int64) Varint {
	var v Varint
	v.SetProtoSInt64(value)
	return v
}

// ParseVarint reads a varint from the leading bytes of buf, mirroring the
// classic protobuf decode loop: up to 10 groups of 7 bits, terminated by a
// byte whose high bit is clear. It returns the parsed Varint and the
// remaining, unconsumed tail of buf.
func ParseVarint(buf Buffer) (Varint, Buffer, error) {
	_, length, complete := wirecodec.DecodeVarint(buf.Bytes())
	if !complete {
		if length >= wirecodec.MaxVarintLen {
			return Varint{}, Buffer{}, ErrVarintTooLong
		}
		return Varint{}, Buffer{}, ErrMissingTerminator
	}
	rem := buf.SplitOff(length)
	return Varint{buf: buf}, rem, nil
}

// Get returns the Varint's underlying unsigned 64-bit value, reassembled
// from its raw bytes. This assumes the Varint's buffer holds a well-formed
// varint (guaranteed for any Varint returned by ParseVarint or a
// constructor); it does not re-validate continuation bits.
func (v Varint) Get() uint64 {
	value, _, _ := wirecodec.DecodeVarint(v.buf.Bytes())
	return value
}

// Set encodes value as the minimal unsigned varint and replaces the
// Varint's contents.
func (v *Varint) Set(value uint64) {
	bytes, length := wirecodec.EncodeVarint(value)
	v.buf.Overwrite(bytes[:length])
}

// Bytes returns the Varint's raw encoded bytes.
func (v Varint) Bytes() []byte { return v.buf.Bytes() }

// ByteLen returns the number of bytes this Varint occupies on the wire.
func (v Varint) ByteLen() int { return v.buf.Len() }

// AsProtoInt32 reinterprets the low 32 bits of the Varint's value as a
// two's-complement signed int32, matching a proto "int32" field's decode.
func (v Varint) AsProtoInt32() int32 {
	return int32(uint32(v.Get()))
}

// SetProtoInt32 encodes value the way Protocol Buffers encodes a proto
// "int32" field: value is sign-extended to 64 bits before varint encoding,
// so a negative value always occupies the full 10-byte maximal form on the
// wire (a well-documented inefficiency of the wire format, not a bug in this
// implementation).
func (v *Varint) SetProtoInt32(value int32) {
	v.Set(uint64(int64(value)))
}

// AsProtoInt64 reinterprets the Varint's value as a two's-complement signed
// int64, matching a proto "int64" field's decode.
func (v Varint) AsProtoInt64() int64 {
	return int64(v.Get())
}

// SetProtoInt64 encodes value as a proto "int64" field.
func (v *Varint) SetProtoInt64(value int64) {
	v.Set(uint64(value))
}

// AsProtoSInt32 zig-zag decodes the low 32 bits of the Varint's value,
// matching a proto "sint32" field's decode.
func (v Varint) AsProtoSInt32() int32 {
	return wirecodec.DecodeZigZag32(uint32(v.Get()))
}

// SetProtoSInt32 zig-zag encodes value and stores the resulting unsigned
// 32-bit magnitude as a varint (at most 5 bytes), matching a proto "sint32"
// field's encode. Unlike SetProtoInt32, this never sign-extends to 64 bits:
// the zig-zag mapping already folds the full int32 range into an unsigned
// 32-bit space, so the plain (non-sign-extending) varint encoding of that
// magnitude is correct as-is.
func (v *Varint) SetProtoSInt32(value int32) {
	zz := wirecodec.EncodeZigZag32(value)
	v.Set(uint64(zz))
}

// AsProtoSInt64 zig-zag decodes the Varint's value, matching a proto
// "sint64" field's decode.
func (v Varint) AsProtoSInt64() int64 {
	return wirecodec.DecodeZigZag64(v.Get())
}

// SetProtoSInt64 zig-zag encodes value, matching a proto "sint64" field's
// encode.
func (v *Varint) SetProtoSInt64(value int64) {
	zz := wirecodec.EncodeZigZag64(value)
	v.Set(zz)
}
