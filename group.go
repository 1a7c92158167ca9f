package protowire

// Group is a legacy, deprecated Protocol Buffers construct: a run of Fields
// delimited by a start-group tag and a matching end-group tag sharing the
// same field number, rather than a length prefix. Group carries the parsed
// fields plus the Varint that encodes the end marker's tag.
type Group struct {
	endTag Varint
	fields []Field
}

// NewGroup constructs an empty Group terminated with the given field number.
func NewGroup(fieldID uint64) Group {
	return NewGroupWithCapacity(fieldID, 0)
}

// NewGroupWithCapacity constructs an empty Group terminated with the given
// field number, pre-sizing its field slice.
func NewGroupWithCapacity(fieldID uint64, capacity int) Group {
	var endTag Varint
	endTag.Set(fieldID<<3 | uint64(WireEndGroup))
	return Group{endTag: endTag, fields: make([]Field, 0, capacity)}
}

// Push appends a field to the group's body.
func (g *Group) Push(f Field) {
	g.fields = append(g.fields, f)
}

// Fields returns the group's parsed fields, in wire order. The returned
// slice aliases the Group's storage; callers must not mutate it.
func (g Group) Fields() []Field {
	return g.fields
}

// SetFields replaces the group's fields wholesale.
func (g *Group) SetFields(fields []Field) {
	g.fields = fields
}

// EndFieldID returns the field number carried by the group's end marker.
func (g Group) EndFieldID() uint64 {
	return g.endTag.Get() >> 3
}

// parseGroup parses a group's body: a sequence of fields following a
// start-group tag for fieldID, up to and including the matching end-group
// marker. An end-group marker whose field number does not match fieldID is
// not the group's terminator; it is stored as an ordinary field of the group
// (mirroring the wire format's own leniency, since wire-type 4 records carry
// no payload of their own to misinterpret) and parsing continues.
func parseGroup(fieldID uint64, buf Buffer, depth int) (Group, Buffer, error) {
	g := NewGroup(fieldID)
	rem := buf
	for {
		if rem.IsEmpty() {
			return Group{}, Buffer{}, ErrGroupUnterminated
		}
		field, next, err := parseFieldDepth(rem, depth)
		if err != nil {
			return Group{}, Buffer{}, err
		}
		rem = next
		if field.WireType() == WireEndGroup {
			if field.FieldID() == fieldID {
				g.endTag = field.Tag
				return g, rem, nil
			}
			g.Push(field)
			continue
		}
		g.Push(field)
	}
}

// ByteLen returns the group's total on-wire size: every field's tag and
// payload, plus the end marker's tag.
func (g Group) ByteLen() int {
	n := g.endTag.ByteLen()
	for _, f := range g.fields {
		n += f.ByteLen()
	}
	return n
}

func (g Group) serializeInto(dst *Buffer) {
	for _, f := range g.fields {
		f.SerializeInto(dst)
	}
	dst.Append(g.endTag.Bytes())
}
