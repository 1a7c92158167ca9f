package protowire

import "unicode/utf8"

// LengthDelimited owns a length-Varint plus an inner Buffer whose length
// equals the varint's value. It is the payload carried by wire type 2:
// bytes, a UTF-8 string, an embedded Message, or a packed repeated scalar
// array. The inner bytes are opaque; the caller picks which of those views
// to use.
type LengthDelimited struct {
	length Varint
	inner  Buffer
}

// NewLengthDelimitedBytes constructs a LengthDelimited wrapping a copy of b.
func NewLengthDelimitedBytes(b []byte) LengthDelimited {
	var l LengthDelimited
	l.SetBytes(b)
	return l
}

// NewLengthDelimitedString constructs a LengthDelimited wrapping the UTF-8
// bytes of s.
func NewLengthDelimitedString(s string) LengthDelimited {
	var l LengthDelimited
	l.SetString(s)
	return l
}

// NewLengthDelimitedMessage constructs a LengthDelimited wrapping an
// embedded Message's serialized bytes.
func NewLengthDelimitedMessage(m Message) LengthDelimited {
	var l LengthDelimited
	l.SetMessage(m)
	return l
}

// NewLengthDelimitedPackedVarint constructs a LengthDelimited wrapping a
// packed repeated varint array.
func NewLengthDelimitedPackedVarint(p PackedRepeatedVarint) LengthDelimited {
	var l LengthDelimited
	l.SetPackedRepeatedVarint(p)
	return l
}

// NewLengthDelimitedPackedFixed32 constructs a LengthDelimited wrapping a
// packed repeated fixed32 array.
func NewLengthDelimitedPackedFixed32(p PackedRepeatedFixed32) LengthDelimited {
	var l LengthDelimited
	l.SetPackedRepeatedFixed32(p)
	return l
}

// NewLengthDelimitedPackedFixed64 constructs a LengthDelimited wrapping a
// packed repeated fixed64 array.
func NewLengthDelimitedPackedFixed64(p PackedRepeatedFixed64) LengthDelimited {
	var l LengthDelimited
	l.SetPackedRepeatedFixed64(p)
	return l
}

// ParseLengthDelimited reads a length-varint from buf, then splits off that
// many bytes as the inner payload. It fails with ErrLengthOverrun if the
// declared length exceeds the bytes remaining after the length-varint.
func ParseLengthDelimited(buf Buffer) (LengthDelimited, Buffer, error) {
	length, rem, err := ParseVarint(buf)
	if err != nil {
		return LengthDelimited{}, Buffer{}, err
	}
	n := length.Get()
	if n > uint64(rem.Len()) {
		return LengthDelimited{}, Buffer{}, ErrLengthOverrun
	}
	tail := rem.SplitOff(int(n))
	return LengthDelimited{length: length, inner: rem}, tail, nil
}

// Bytes returns the opaque inner payload bytes.
func (l LengthDelimited) Bytes() []byte { return l.inner.Bytes() }

// String views the inner payload as a UTF-8 string, failing with
// ErrInvalidUTF8 if it is not valid UTF-8.
func (l LengthDelimited) String() (string, error) {
	b := l.inner.Bytes()
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// Message views the inner payload as an embedded Message.
func (l LengthDelimited) Message() Message { return Message{buf: l.inner} }

// PackedRepeatedVarint views the inner payload as a packed repeated varint
// array.
func (l LengthDelimited) PackedRepeatedVarint() PackedRepeatedVarint {
	return PackedRepeatedVarint{buf: l.inner}
}

// PackedRepeatedFixed32 views the inner payload as a packed repeated fixed32
// array.
func (l LengthDelimited) PackedRepeatedFixed32() PackedRepeatedFixed32 {
	return PackedRepeatedFixed32{buf: l.inner}
}

// PackedRepeatedFixed64 views the inner payload as a packed repeated fixed64
// array.
func (l LengthDelimited) PackedRepeatedFixed64() PackedRepeatedFixed64 {
	return PackedRepeatedFixed64{buf: l.inner}
}

// SetBytes replaces the inner payload with a copy of b, updating the length
// prefix atomically.
func (l *LengthDelimited) SetBytes(b []byte) {
	l.inner.Overwrite(b)
	l.length.Set(uint64(len(b)))
}

// SetString replaces the inner payload with the UTF-8 bytes of s, updating
// the length prefix atomically.
func (l *LengthDelimited) SetString(s string) {
	l.SetBytes([]byte(s))
}

// SetMessage replaces the inner payload with m's serialized bytes, updating
// the length prefix atomically.
func (l *LengthDelimited) SetMessage(m Message) {
	l.inner = m.buf
	l.length.Set(uint64(m.buf.Len()))
}

// SetPackedRepeatedVarint replaces the inner payload with p's bytes,
// updating the length prefix atomically.
func (l *LengthDelimited) SetPackedRepeatedVarint(p PackedRepeatedVarint) {
	l.inner = p.buf
	l.length.Set(uint64(p.buf.Len()))
}

// SetPackedRepeatedFixed32 replaces the inner payload with p's bytes,
// updating the length prefix atomically.
func (l *LengthDelimited) SetPackedRepeatedFixed32(p PackedRepeatedFixed32) {
	l.inner = p.buf
	l.length.Set(uint64(p.buf.Len()))
}

// SetPackedRepeatedFixed64 replaces the inner payload with p's bytes,
// updating the length prefix atomically.
func (l *LengthDelimited) SetPackedRepeatedFixed64(p PackedRepeatedFixed64) {
	l.inner = p.buf
	l.length.Set(uint64(p.buf.Len()))
}

// ByteLen returns the total on-wire size: the length-varint plus the inner
// payload.
func (l LengthDelimited) ByteLen() int {
	return l.length.ByteLen() + l.inner.Len()
}

func (l LengthDelimited) serializeInto(dst *Buffer) {
	dst.Append(l.length.Bytes())
	dst.Append(l.inner.Bytes())
}
