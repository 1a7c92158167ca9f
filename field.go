package protowire

// Field is a single tag-plus-payload record: the fundamental unit a Message
// is a sequence of. The tag is itself a Varint whose value packs a field
// number into the upper bits and a 3-bit WireType into the lower bits
// (tag = field_id<<3 | wire_type); the Payload's concrete type always
// matches that wire type.
type Field struct {
	Tag     Varint
	Payload Payload
}

// NewField constructs a Field from a field number, wire type, and payload.
// It panics if payload's WireType does not match wireType, since a Field
// whose tag and payload disagree cannot be serialized correctly.
func NewField(fieldID uint64, wireType WireType, payload Payload) Field {
	if payload.WireType() != wireType {
		panic("protowire: NewField: payload wire type does not match wireType")
	}
	var tag Varint
	tag.Set(fieldID<<3 | uint64(wireType))
	return Field{Tag: tag, Payload: payload}
}

// FieldID extracts the field number encoded in the tag.
func (f Field) FieldID() uint64 {
	return f.Tag.Get() >> 3
}

// WireType extracts the wire-type code encoded in the tag.
func (f Field) WireType() WireType {
	return WireType(f.Tag.Get() & 0x7)
}

// SetTag replaces the Field's tag, encoding fieldID and wireType. It panics
// if wireType does not match the Field's current Payload, for the same
// reason as NewField.
func (f *Field) SetTag(fieldID uint64, wireType WireType) {
	if f.Payload.WireType() != wireType {
		panic("protowire: SetTag: wire type does not match Payload")
	}
	f.Tag.Set(fieldID<<3 | uint64(wireType))
}

// ByteLen returns the Field's total on-wire size: tag plus payload.
func (f Field) ByteLen() int {
	return f.Tag.ByteLen() + f.Payload.ByteLen()
}

// SerializeInto appends the Field's wire encoding to dst.
func (f Field) SerializeInto(dst *Buffer) {
	dst.Append(f.Tag.Bytes())
	f.Payload.serializeInto(dst)
}

// Serialize returns the Field's wire encoding as a new Owned Buffer.
func (f Field) Serialize() Buffer {
	var dst Buffer
	dst.GetMutOrDefault()
	f.SerializeInto(&dst)
	return dst
}

// AsVarint returns the Field's payload as a Varint, ok reporting whether the
// wire type actually is WireVarint.
func (f Field) AsVarint() (Varint, bool) {
	p, ok := f.Payload.(VarintPayload)
	return p.Value, ok
}

// AsFixed64 returns the Field's payload as a Fixed64, ok reporting whether
// the wire type actually is WireFixed64.
func (f Field) AsFixed64() (Fixed64, bool) {
	p, ok := f.Payload.(Fixed64Payload)
	return p.Value, ok
}

// AsLengthDelimited returns the Field's payload as a LengthDelimited, ok
// reporting whether the wire type actually is WireBytes.
func (f Field) AsLengthDelimited() (LengthDelimited, bool) {
	p, ok := f.Payload.(LengthDelimitedPayload)
	return p.Value, ok
}

// AsGroup returns the Field's payload as a Group, ok reporting whether the
// wire type actually is WireStartGroup.
func (f Field) AsGroup() (Group, bool) {
	p, ok := f.Payload.(GroupPayload)
	return p.Value, ok
}

// AsFixed32 returns the Field's payload as a Fixed32, ok reporting whether
// the wire type actually is WireFixed32.
func (f Field) AsFixed32() (Fixed32, bool) {
	p, ok := f.Payload.(Fixed32Payload)
	return p.Value, ok
}

// maxGroupDepth bounds recursive group parsing so that adversarial input
// cannot exhaust the call stack. Protocol Buffers itself imposes no limit;
// this is a defensive addition of this implementation.
const maxGroupDepth = 100

// ParseField reads one tag-plus-payload Field from the leading bytes of buf,
// dispatching on the tag's wire type. It returns the remaining tail of buf.
//
// A WireEndGroup tag is parsed like any other: the returned Field carries an
// EndGroupPayload and no bytes beyond the tag are consumed. Callers that
// parse a bare Message (rather than a Group) will see such a Field only if
// the input deliberately contains a stray end-group marker; Group parsing
// consumes the matching one itself.
func ParseField(buf Buffer) (Field, Buffer, error) {
	return parseFieldDepth(buf, 0)
}

func parseFieldDepth(buf Buffer, depth int) (Field, Buffer, error) {
	tag, rem, err := ParseVarint(buf)
	if err != nil {
		return Field{}, Buffer{}, &FieldParseError{Context: "field tag", Err: err}
	}
	wireType := WireType(tag.Get() & 0x7)

	switch wireType {
	case WireVarint:
		v, rem2, err := ParseVarint(rem)
		if err != nil {
			return Field{}, Buffer{}, &FieldParseError{Context: "varint field", WireType: wireType, Err: err}
		}
		return Field{Tag: tag, Payload: VarintPayload{Value: v}}, rem2, nil

	case WireFixed64:
		v, rem2, err := ParseFixed64(rem)
		if err != nil {
			return Field{}, Buffer{}, &FieldParseError{Context: "fixed64 field", WireType: wireType, Err: err}
		}
		return Field{Tag: tag, Payload: Fixed64Payload{Value: v}}, rem2, nil

	case WireBytes:
		v, rem2, err := ParseLengthDelimited(rem)
		if err != nil {
			return Field{}, Buffer{}, &FieldParseError{Context: "length-delimited field", WireType: wireType, Err: err}
		}
		return Field{Tag: tag, Payload: LengthDelimitedPayload{Value: v}}, rem2, nil

	case WireStartGroup:
		if depth >= maxGroupDepth {
			return Field{}, Buffer{}, &FieldParseError{Context: "group field", WireType: wireType, Err: ErrGroupTooDeep}
		}
		v, rem2, err := parseGroup(tag.Get()>>3, rem, depth+1)
		if err != nil {
			return Field{}, Buffer{}, &FieldParseError{Context: "group field", WireType: wireType, Err: err}
		}
		return Field{Tag: tag, Payload: GroupPayload{Value: v}}, rem2, nil

	case WireEndGroup:
		return Field{Tag: tag, Payload: EndGroupPayload{}}, rem, nil

	case WireFixed32:
		v, rem2, err := ParseFixed32(rem)
		if err != nil {
			return Field{}, Buffer{}, &FieldParseError{Context: "fixed32 field", WireType: wireType, Err: err}
		}
		return Field{Tag: tag, Payload: Fixed32Payload{Value: v}}, rem2, nil

	default:
		return Field{}, Buffer{}, &FieldParseError{Context: "field tag", WireType: wireType, Err: ErrInvalidWireType}
	}
}
