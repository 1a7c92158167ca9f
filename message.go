package protowire

// Message is a Buffer holding zero or more serialized Fields back to back,
// with no overall length prefix of its own (that prefix, when a Message is
// embedded in another, lives in the enclosing LengthDelimited). Message
// supports building up fields via Push and reading them back either eagerly
// (ParseStrict) or lazily (Iterator, Each).
type Message struct {
	buf Buffer
}

// NewMessage constructs an empty Message.
func NewMessage() Message {
	return Message{}
}

// NewMessageFromBytes wraps existing wire bytes as a Message without parsing
// them; use Iterator, Each, or ParseStrict to read fields back out.
func NewMessageFromBytes(b []byte) Message {
	return Message{buf: NewBuffer(b)}
}

// Push serializes f and appends it to the message.
func (m *Message) Push(f Field) {
	f.SerializeInto(&m.buf)
}

// Bytes returns the message's raw wire bytes.
func (m Message) Bytes() []byte { return m.buf.Bytes() }

// ByteLen returns the number of bytes the message occupies on the wire.
func (m Message) ByteLen() int { return m.buf.Len() }

// Serialize returns the message's wire bytes as a new Owned Buffer.
func (m Message) Serialize() Buffer { return m.buf.Clone().IntoMut() }

// MessageIterator lazily parses a Message's fields one at a time. It holds
// no allocated slice; each call to Next parses exactly the next field and
// advances past it.
type MessageIterator struct {
	rem Buffer
	err error
}

// Iterator returns a MessageIterator positioned at the message's first
// field.
func (m Message) Iterator() *MessageIterator {
	return &MessageIterator{rem: m.buf}
}

// Next parses and returns the next field, and ok reporting whether one was
// available. Once Next returns ok == false, either the message is exhausted
// (Err returns nil) or a parse error occurred (Err returns it); the
// iterator must not be used further either way.
func (it *MessageIterator) Next() (Field, bool) {
	if it.err != nil || it.rem.IsEmpty() {
		return Field{}, false
	}
	field, rem, err := ParseField(it.rem)
	if err != nil {
		it.err = err
		return Field{}, false
	}
	it.rem = rem
	return field, true
}

// Err returns the error that stopped iteration, or nil if iteration reached
// the end of the message cleanly.
func (it *MessageIterator) Err() error { return it.err }

// MessageEachFn is the callback passed to Each. Returning ok == false stops
// iteration early without error, mirroring a "found what I needed" break.
// Returning a non-nil error stops iteration and propagates that error out of
// Each.
type MessageEachFn func(f Field) (ok bool, err error)

// Each lazily parses the message's fields, calling fn with each in turn
// until fn returns ok == false, fn returns an error, or the message is
// exhausted. It returns the first error encountered, whether from parsing a
// malformed field or from fn itself.
func (m Message) Each(fn MessageEachFn) error {
	it := m.Iterator()
	for {
		field, ok := it.Next()
		if !ok {
			return it.Err()
		}
		cont, err := fn(field)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// ParseStrict eagerly parses every field in the message into a slice,
// failing on the first malformed field rather than returning a partial
// result. Most callers that need a slice (as opposed to streaming via Each)
// want this over a bare loop around Iterator, since it makes the
// all-or-nothing behavior explicit at the call site.
func (m Message) ParseStrict() ([]Field, error) {
	var fields []Field
	it := m.Iterator()
	for {
		field, ok := it.Next()
		if !ok {
			if err := it.Err(); err != nil {
				return nil, err
			}
			return fields, nil
		}
		fields = append(fields, field)
	}
}
