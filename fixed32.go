package protowire

import (
	"math"

	"github.com/kevin-logan/protowire/internal/wirecodec"
)

// Fixed32 owns a Buffer of exactly 4 bytes, little-endian, reinterpretable
// with no copying as an unsigned or signed 32-bit integer or an IEEE-754
// float. It is the payload carried by wire type 5 (fixed32, sfixed32,
// float).
type Fixed32 struct {
	buf Buffer
}

// NewFixed32 constructs a Fixed32 carrying the given unsigned value.
func NewFixed32(value uint32) Fixed32 {
	var f Fixed32
	f.Set(value)
	return f
}

// NewFixed32Int32 constructs a Fixed32 carrying the given signed value
// (sfixed32).
func NewFixed32Int32(value int32) Fixed32 {
	var f Fixed32
	f.SetInt32(value)
	return f
}

// NewFixed32Float constructs a Fixed32 carrying the given IEEE-754 float.
func NewFixed32Float(value float32) Fixed32 {
	var f Fixed32
	f.SetFloat(value)
	return f
}

// ParseFixed32 splits the leading 4 bytes off buf as a Fixed32, returning the
// remaining tail. It fails with ErrInsufficientBytes if fewer than 4 bytes
// remain.
func ParseFixed32(buf Buffer) (Fixed32, Buffer, error) {
	if buf.Len() < 4 {
		return Fixed32{}, Buffer{}, ErrInsufficientBytes
	}
	rem := buf.SplitOff(4)
	return Fixed32{buf: buf}, rem, nil
}

// Bytes returns the Fixed32's 4 raw little-endian bytes.
func (f Fixed32) Bytes() []byte { return f.buf.Bytes() }

// ByteLen always returns 4.
func (f Fixed32) ByteLen() int { return 4 }

// Get returns the Fixed32's value as an unsigned 32-bit integer.
func (f Fixed32) Get() uint32 { return wirecodec.DecodeFixed32(f.buf.Bytes()) }

// Set stores value as the Fixed32's 4 little-endian bytes.
func (f *Fixed32) Set(value uint32) {
	var b [4]byte
	wirecodec.EncodeFixed32(b[:], value)
	f.buf.Overwrite(b[:])
}

// GetInt32 reinterprets the Fixed32's bytes as a two's-complement signed
// 32-bit integer (sfixed32).
func (f Fixed32) GetInt32() int32 { return int32(f.Get()) }

// SetInt32 stores value as the Fixed32's bytes (sfixed32).
func (f *Fixed32) SetInt32(value int32) { f.Set(uint32(value)) }

// GetFloat reinterprets the Fixed32's bytes as an IEEE-754 binary32 float.
func (f Fixed32) GetFloat() float32 { return math.Float32frombits(f.Get()) }

// SetFloat stores value's IEEE-754 binary32 representation as the Fixed32's
// bytes.
func (f *Fixed32) SetFloat(value float32) { f.Set(math.Float32bits(value)) }
