package protowire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	protowire "github.com/kevin-logan/protowire"
)

func TestLengthDelimitedStringRoundTrip(t *testing.T) {
	l := protowire.NewLengthDelimitedString("hello, world!")
	s, err := l.String()
	require.NoError(t, err)
	require.Equal(t, "hello, world!", s)
	require.Equal(t, 13, l.ByteLen()-1) // 1 length byte + 13 payload bytes
}

func TestLengthDelimitedInvalidUTF8(t *testing.T) {
	l := protowire.NewLengthDelimitedBytes([]byte{0xff, 0xfe})
	_, err := l.String()
	require.ErrorIs(t, err, protowire.ErrInvalidUTF8)
}

func TestLengthDelimitedLengthPrefixWidths(t *testing.T) {
	// Empty payload: a single zero length byte. One byte: length 1 plus the
	// byte itself. 200 bytes: the length itself crosses the one-byte varint
	// boundary and takes two bytes on the wire.
	cases := []struct {
		payloadLen  int
		wantByteLen int
	}{
		{0, 1},
		{1, 2},
		{200, 202},
	}
	for _, tc := range cases {
		payload := make([]byte, tc.payloadLen)
		l := protowire.NewLengthDelimitedBytes(payload)
		require.Equal(t, tc.wantByteLen, l.ByteLen(), "payload length %d", tc.payloadLen)

		var msg protowire.Message
		msg.Push(protowire.NewField(1, protowire.WireBytes, protowire.LengthDelimitedPayload{Value: l}))
		fields, err := msg.ParseStrict()
		require.NoError(t, err)
		require.Len(t, fields, 1)
		got, ok := fields[0].AsLengthDelimited()
		require.True(t, ok)
		require.Equal(t, payload, got.Bytes())
	}
}

func TestParseLengthDelimitedOverrun(t *testing.T) {
	// length-prefix claims 10 bytes follow, but only 2 remain.
	buf := protowire.NewBuffer([]byte{0x0a, 0x01, 0x02})
	_, _, err := protowire.ParseLengthDelimited(buf)
	require.ErrorIs(t, err, protowire.ErrLengthOverrun)
}

func TestParseLengthDelimitedLeavesRemainderIntact(t *testing.T) {
	buf := protowire.NewBuffer([]byte{0x02, 0xaa, 0xbb, 0xcc})
	l, rem, err := protowire.ParseLengthDelimited(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb}, l.Bytes())
	require.Equal(t, []byte{0xcc}, rem.Bytes())
}

func TestLengthDelimitedPackedVarintRoundTrip(t *testing.T) {
	var packed protowire.PackedRepeatedVarint
	packed.Push(1)
	packed.Push(300)
	packed.Push(0)

	l := protowire.NewLengthDelimitedPackedVarint(packed)
	var got []uint64
	err := l.PackedRepeatedVarint().Each(func(v uint64) (bool, error) {
		got = append(got, v)
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 300, 0}, got)
}

func TestLengthDelimitedMessageRoundTrip(t *testing.T) {
	var inner protowire.Message
	inner.Push(protowire.NewField(1, protowire.WireVarint, protowire.VarintPayload{Value: protowire.NewVarint(42)}))

	l := protowire.NewLengthDelimitedMessage(inner)
	fields, err := l.Message().ParseStrict()
	require.NoError(t, err)
	require.Len(t, fields, 1)
	require.Equal(t, uint64(1), fields[0].FieldID())
}
