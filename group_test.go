package protowire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	protowire "github.com/kevin-logan/protowire"
)

func buildSampleGroup() protowire.Group {
	g := protowire.NewGroupWithCapacity(2, 2)
	g.Push(protowire.NewField(1, protowire.WireFixed64, protowire.Fixed64Payload{Value: protowire.NewFixed64Double(13.37)}))
	g.Push(protowire.NewField(2, protowire.WireBytes, protowire.LengthDelimitedPayload{Value: protowire.NewLengthDelimitedString("hello, world!")}))
	return g
}

func TestGroupRoundTrip(t *testing.T) {
	g := buildSampleGroup()
	field := protowire.NewField(2, protowire.WireStartGroup, protowire.GroupPayload{Value: g})

	var msg protowire.Message
	msg.Push(field)

	fields, err := msg.ParseStrict()
	require.NoError(t, err)
	require.Len(t, fields, 1)

	parsedGroup, ok := fields[0].AsGroup()
	require.True(t, ok)
	require.Equal(t, uint64(2), parsedGroup.EndFieldID())
	require.Len(t, parsedGroup.Fields(), 2)

	doubleField := parsedGroup.Fields()[0]
	fx, ok := doubleField.AsFixed64()
	require.True(t, ok)
	require.InDelta(t, 13.37, fx.GetDouble(), 0.0000001)

	strField := parsedGroup.Fields()[1]
	ld, ok := strField.AsLengthDelimited()
	require.True(t, ok)
	s, err := ld.String()
	require.NoError(t, err)
	require.Equal(t, "hello, world!", s)
}

func TestParseGroupMismatchedEndMarkerIsStoredAsField(t *testing.T) {
	// Start group 1, an end-group tag for field 9 (mismatched, stored as a
	// field), then the real end-group tag for field 1.
	var buf protowire.Buffer
	buf.Append(protowire.NewVarint(9<<3 | uint64(protowire.WireEndGroup)).Bytes())
	buf.Append(protowire.NewVarint(1<<3 | uint64(protowire.WireEndGroup)).Bytes())

	var msg protowire.Message
	startTag := protowire.NewVarint(1<<3 | uint64(protowire.WireStartGroup))
	msg.Push(protowire.Field{Tag: startTag, Payload: protowire.GroupPayload{Value: mustParseGroupBody(t, 1, buf)}})

	fields, err := msg.ParseStrict()
	require.NoError(t, err)
	require.Len(t, fields, 1)
	g, ok := fields[0].AsGroup()
	require.True(t, ok)
	require.Len(t, g.Fields(), 1)
	require.Equal(t, uint64(9), g.Fields()[0].FieldID())
	require.Equal(t, protowire.WireEndGroup, g.Fields()[0].WireType())
	require.Equal(t, uint64(1), g.EndFieldID())
}

func TestGroupRoundTripAtFieldIDExtremes(t *testing.T) {
	// Field id 1 is the smallest assignable; 2^29-1 is the largest the tag
	// encoding admits without spilling past a 32-bit tag.
	for _, fieldID := range []uint64{1, 1<<29 - 1} {
		g := protowire.NewGroup(fieldID)
		g.Push(protowire.NewField(1, protowire.WireVarint, protowire.VarintPayload{Value: protowire.NewVarint(7)}))

		var msg protowire.Message
		msg.Push(protowire.NewField(fieldID, protowire.WireStartGroup, protowire.GroupPayload{Value: g}))

		fields, err := msg.ParseStrict()
		require.NoError(t, err)
		require.Len(t, fields, 1)
		require.Equal(t, fieldID, fields[0].FieldID())
		parsed, ok := fields[0].AsGroup()
		require.True(t, ok)
		require.Equal(t, fieldID, parsed.EndFieldID())
		require.Len(t, parsed.Fields(), 1)
	}
}

func TestParseGroupUnterminated(t *testing.T) {
	// A start-group tag for field 1 followed by one varint field and then
	// nothing: the buffer runs out before any end-group marker.
	buf := protowire.NewBuffer([]byte{0x0b, 0x08, 0x01})
	_, _, err := protowire.ParseField(buf)
	require.ErrorIs(t, err, protowire.ErrGroupUnterminated)
}

func TestParseGroupNestingDepthLimit(t *testing.T) {
	// 101 unclosed start-group tags for field 1 exceed the recursion cap.
	var buf protowire.Buffer
	for i := 0; i < 101; i++ {
		buf.Append([]byte{0x0b})
	}
	_, _, err := protowire.ParseField(buf)
	require.ErrorIs(t, err, protowire.ErrGroupTooDeep)
}

func mustParseGroupBody(t *testing.T, fieldID uint64, buf protowire.Buffer) protowire.Group {
	t.Helper()
	startTag := protowire.NewVarint(fieldID<<3 | uint64(protowire.WireStartGroup))
	var full protowire.Buffer
	full.Append(startTag.Bytes())
	full.Append(buf.Bytes())

	field, rem, err := protowire.ParseField(full)
	require.NoError(t, err)
	require.True(t, rem.IsEmpty())
	g, ok := field.AsGroup()
	require.True(t, ok)
	return g
}
