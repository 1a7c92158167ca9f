package protowire

import (
	"math"

	"github.com/kevin-logan/protowire/internal/wirecodec"
)

// Fixed64 owns a Buffer of exactly 8 bytes, little-endian, reinterpretable
// with no copying as an unsigned or signed 64-bit integer or an IEEE-754
// double. It is the payload carried by wire type 1 (fixed64, sfixed64,
// double).
type Fixed64 struct {
	buf Buffer
}

// NewFixed64 constructs a Fixed64 carrying the given unsigned value.
func NewFixed64(value uint64) Fixed64 {
	var f Fixed64
	f.Set(value)
	return f
}

// NewFixed64Int64 constructs a Fixed64 carrying the given signed value
// (sfixed64).
func NewFixed64Int64(value int64) Fixed64 {
	var f Fixed64
	f.SetInt64(value)
	return f
}

// NewFixed64Double constructs a Fixed64 carrying the given IEEE-754 double.
func NewFixed64Double(value float64) Fixed64 {
	var f Fixed64
	f.SetDouble(value)
	return f
}

// ParseFixed64 splits the leading 8 bytes off buf as a Fixed64, returning the
// remaining tail. It fails with ErrInsufficientBytes if fewer than 8 bytes
// remain.
func ParseFixed64(buf Buffer) (Fixed64, Buffer, error) {
	if buf.Len() < 8 {
		return Fixed64{}, Buffer{}, ErrInsufficientBytes
	}
	rem := buf.SplitOff(8)
	return Fixed64{buf: buf}, rem, nil
}

// Bytes returns the Fixed64's 8 raw little-endian bytes.
func (f Fixed64) Bytes() []byte { return f.buf.Bytes() }

// ByteLen always returns 8.
func (f Fixed64) ByteLen() int { return 8 }

// Get returns the Fixed64's value as an unsigned 64-bit integer.
func (f Fixed64) Get() uint64 { return wirecodec.DecodeFixed64(f.buf.Bytes()) }

// Set stores value as the Fixed64's 8 little-endian bytes.
func (f *Fixed64) Set(value uint64) {
	var b [8]byte
	wirecodec.EncodeFixed64(b[:], value)
	f.buf.Overwrite(b[:])
}

// GetInt64 reinterprets the Fixed64's bytes as a two's-complement signed
// 64-bit integer (sfixed64).
func (f Fixed64) GetInt64() int64 { return int64(f.Get()) }

// SetInt64 stores value as the Fixed64's bytes (sfixed64).
func (f *Fixed64) SetInt64(value int64) { f.Set(uint64(value)) }

// GetDouble reinterprets the Fixed64's bytes as an IEEE-754 binary64 double.
func (f Fixed64) GetDouble() float64 { return math.Float64frombits(f.Get()) }

// SetDouble stores value's IEEE-754 binary64 representation as the Fixed64's
// bytes.
func (f *Fixed64) SetDouble(value float64) { f.Set(math.Float64bits(value)) }
