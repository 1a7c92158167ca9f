package protowire

// PackedRepeatedVarint is a length-delimited payload holding a back-to-back
// run of varints with no intervening tags: the "packed" encoding of a
// repeated scalar field whose base type is varint-coded (int32, int64,
// uint32, uint64, sint32, sint64, bool, enum).
type PackedRepeatedVarint struct {
	buf Buffer
}

// NewPackedRepeatedVarint constructs an empty PackedRepeatedVarint.
func NewPackedRepeatedVarint() PackedRepeatedVarint { return PackedRepeatedVarint{} }

// Push appends value to the packed array.
func (p *PackedRepeatedVarint) Push(value uint64) {
	var v Varint
	v.Set(value)
	p.buf.Append(v.Bytes())
}

// Bytes returns the packed array's raw wire bytes.
func (p PackedRepeatedVarint) Bytes() []byte { return p.buf.Bytes() }

// ByteLen returns the number of bytes the packed array occupies on the wire.
func (p PackedRepeatedVarint) ByteLen() int { return p.buf.Len() }

// PackedRepeatedVarintEachFn is the callback passed to Each.
type PackedRepeatedVarintEachFn func(value uint64) (ok bool, err error)

// Each lazily decodes each varint in the array in turn, calling fn until fn
// returns ok == false, fn returns an error, or the array is exhausted. It
// returns the first error encountered.
func (p PackedRepeatedVarint) Each(fn PackedRepeatedVarintEachFn) error {
	rem := p.buf
	for !rem.IsEmpty() {
		v, next, err := ParseVarint(rem)
		if err != nil {
			return err
		}
		rem = next
		cont, err := fn(v.Get())
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}

// PackedRepeatedFixed32 is a length-delimited payload holding a back-to-back
// run of 4-byte fixed-width values: the "packed" encoding of a repeated
// fixed32, sfixed32, or float field.
type PackedRepeatedFixed32 struct {
	buf Buffer
}

// NewPackedRepeatedFixed32 constructs an empty PackedRepeatedFixed32.
func NewPackedRepeatedFixed32() PackedRepeatedFixed32 { return PackedRepeatedFixed32{} }

// Push appends value to the packed array.
func (p *PackedRepeatedFixed32) Push(value uint32) {
	f := NewFixed32(value)
	p.buf.Append(f.Bytes())
}

// Bytes returns the packed array's raw wire bytes.
func (p PackedRepeatedFixed32) Bytes() []byte { return p.buf.Bytes() }

// ByteLen returns the number of bytes the packed array occupies on the wire.
func (p PackedRepeatedFixed32) ByteLen() int { return p.buf.Len() }

// PackedRepeatedFixed32EachFn is the callback passed to Each.
type PackedRepeatedFixed32EachFn func(value uint32) (ok bool, err error)

// Each lazily decodes each fixed32 in the array in turn, calling fn until fn
// returns ok == false, fn returns an error, or the array is exhausted. It
// returns the first error encountered.
func (p PackedRepeatedFixed32) Each(fn PackedRepeatedFixed32EachFn) error {
	rem := p.buf
	for !rem.IsEmpty() {
		f, next, err := ParseFixed32(rem)
		if err != nil {
			return err
		}
		rem = next
		cont, err := fn(f.Get())
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}

// PackedRepeatedFixed64 is a length-delimited payload holding a back-to-back
// run of 8-byte fixed-width values: the "packed" encoding of a repeated
// fixed64, sfixed64, or double field.
type PackedRepeatedFixed64 struct {
	buf Buffer
}

// NewPackedRepeatedFixed64 constructs an empty PackedRepeatedFixed64.
func NewPackedRepeatedFixed64() PackedRepeatedFixed64 { return PackedRepeatedFixed64{} }

// Push appends value to the packed array.
func (p *PackedRepeatedFixed64) Push(value uint64) {
	f := NewFixed64(value)
	p.buf.Append(f.Bytes())
}

// Bytes returns the packed array's raw wire bytes.
func (p PackedRepeatedFixed64) Bytes() []byte { return p.buf.Bytes() }

// ByteLen returns the number of bytes the packed array occupies on the wire.
func (p PackedRepeatedFixed64) ByteLen() int { return p.buf.Len() }

// PackedRepeatedFixed64EachFn is the callback passed to Each.
type PackedRepeatedFixed64EachFn func(value uint64) (ok bool, err error)

// Each lazily decodes each fixed64 in the array in turn, calling fn until fn
// returns ok == false, fn returns an error, or the array is exhausted. It
// returns the first error encountered.
func (p PackedRepeatedFixed64) Each(fn PackedRepeatedFixed64EachFn) error {
	rem := p.buf
	for !rem.IsEmpty() {
		f, next, err := ParseFixed64(rem)
		if err != nil {
			return err
		}
		rem = next
		cont, err := fn(f.Get())
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}
