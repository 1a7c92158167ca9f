// Package protowire is a schema-less codec for the Protocol Buffers binary
// wire format. It provides primitives for constructing, serializing, and
// parsing a sequence of tagged fields carrying scalar values, length-delimited
// payloads (strings, bytes, embedded messages), and groups.
//
// protowire does not know about field names, proto3 defaults, oneofs, or
// descriptors: it operates directly on wire records (tag plus payload) and
// leaves schema interpretation to the caller.
package protowire

import "fmt"

// Buffer is a byte container that is either a Shared, immutable view over
// bytes it does not own, or an Owned, freely mutable buffer. Reading a Buffer
// never copies. Mutating a Shared buffer promotes it to Owned first, copying
// the existing bytes so that any other holder of the same Shared view is
// unaffected.
//
// The zero value is an empty Shared buffer.
//
// Buffer is a small value type (a slice header plus a flag); library code
// passes it by value when handing off ownership of a byte range (mirroring
// split_off semantics) and by pointer when mutating in place.
type Buffer struct {
	data  []byte
	owned bool
}

// NewBuffer wraps data as a Shared, immutable view. The returned Buffer does
// not copy data; the caller must not mutate data afterward.
func NewBuffer(data []byte) Buffer {
	return Buffer{data: data}
}

// NewOwnedBuffer wraps data as an Owned, mutable buffer. The returned Buffer
// does not copy data; the caller must not retain other mutable references to
// it.
func NewOwnedBuffer(data []byte) Buffer {
	return Buffer{data: data, owned: true}
}

// Len returns the number of bytes remaining in the buffer.
func (b Buffer) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the buffer holds no bytes.
func (b Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Bytes returns the buffer's contents as a slice. The slice is a zero-copy
// view: if the buffer is Shared, callers must not write through it.
func (b Buffer) Bytes() []byte {
	return b.data
}

// Clone returns an independent Buffer with the same contents. A Shared
// buffer clones cheaply (the returned Buffer aliases the same backing
// array); an Owned buffer is deep-copied, since two Owned values must never
// observe each other's in-place mutations.
func (b Buffer) Clone() Buffer {
	if !b.owned {
		return b
	}
	nd := make([]byte, len(b.data))
	copy(nd, b.data)
	return Buffer{data: nd, owned: true}
}

// SplitOff truncates b to its first at bytes and returns a new Buffer over
// the remaining suffix, in the same mode (Shared/Owned) as b. It panics if
// at is negative or greater than b.Len(); callers parsing untrusted input
// must check lengths first and return a typed error instead of calling
// SplitOff out of range.
func (b *Buffer) SplitOff(at int) Buffer {
	if at < 0 || at > len(b.data) {
		panic(fmt.Sprintf("protowire: SplitOff(%d) out of range for buffer of length %d", at, len(b.data)))
	}
	suffix := Buffer{data: b.data[at:], owned: b.owned}
	// Re-slice with cap==len so that appending to either half can never
	// silently clobber the other's bytes through shared spare capacity.
	b.data = b.data[:at:at]
	return suffix
}

// GetMutOrDefault promotes b to Owned, discarding its current contents. Use
// this before overwriting a buffer wholesale, since it never copies the
// bytes being thrown away.
func (b *Buffer) GetMutOrDefault() {
	b.data = nil
	b.owned = true
}

// GetMut promotes b to Owned, preserving its current contents. If b is
// already Owned this is a no-op; if b is Shared, its bytes are copied into a
// freshly allocated array so that writes through b are never visible to any
// other holder of the original Shared bytes.
func (b *Buffer) GetMut() {
	if b.owned {
		return
	}
	nd := make([]byte, len(b.data))
	copy(nd, b.data)
	b.data = nd
	b.owned = true
}

// IntoMut returns an Owned Buffer with b's contents, copying only if b is
// currently Shared.
func (b Buffer) IntoMut() Buffer {
	b.GetMut()
	return b
}

// Overwrite discards b's current contents and replaces them with a copy of
// p. This is the "I'm about to write new contents, discard old" promotion
// path (get_mut_or_default followed by a write).
func (b *Buffer) Overwrite(p []byte) {
	b.GetMutOrDefault()
	b.data = append(b.data, p...)
}

// Append promotes b to Owned (copying only if currently Shared) and appends
// p to its contents. This is the "I want to append to existing contents"
// promotion path (get_mut followed by a write).
func (b *Buffer) Append(p []byte) {
	b.GetMut()
	b.data = append(b.data, p...)
}
