package protowire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	protowire "github.com/kevin-logan/protowire"
)

func buildThreeFieldMessage() protowire.Message {
	var m protowire.Message
	m.Push(protowire.NewField(1, protowire.WireVarint, protowire.VarintPayload{Value: protowire.NewVarint(1)}))
	m.Push(protowire.NewField(2, protowire.WireVarint, protowire.VarintPayload{Value: protowire.NewVarint(2)}))
	m.Push(protowire.NewField(3, protowire.WireVarint, protowire.VarintPayload{Value: protowire.NewVarint(3)}))
	return m
}

func TestMessageParseStrict(t *testing.T) {
	m := buildThreeFieldMessage()
	fields, err := m.ParseStrict()
	require.NoError(t, err)
	require.Len(t, fields, 3)
	for i, f := range fields {
		require.Equal(t, uint64(i+1), f.FieldID())
	}
}

func TestMessageIteratorLazyStop(t *testing.T) {
	m := buildThreeFieldMessage()
	it := m.Iterator()

	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, uint64(1), first.FieldID())
	require.NoError(t, it.Err())

	second, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, uint64(2), second.FieldID())

	// Stopping early leaves the remaining field unread; no error either way.
	require.NoError(t, it.Err())
}

func TestMessageEachStopsOnFalse(t *testing.T) {
	m := buildThreeFieldMessage()
	var seen []uint64
	err := m.Each(func(f protowire.Field) (bool, error) {
		seen = append(seen, f.FieldID())
		return f.FieldID() < 2, nil
	})
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2}, seen)
}

func TestMessageEachPropagatesError(t *testing.T) {
	m := buildThreeFieldMessage()
	sentinel := require.New(t)
	wantErr := errSentinel
	err := m.Each(func(f protowire.Field) (bool, error) {
		if f.FieldID() == 2 {
			return false, wantErr
		}
		return true, nil
	})
	sentinel.ErrorIs(err, wantErr)
}

func TestMessageParseStrictFailsOnTruncatedField(t *testing.T) {
	m := protowire.NewMessageFromBytes([]byte{0x08}) // varint tag with no value byte
	_, err := m.ParseStrict()
	require.Error(t, err)
}

var errSentinel = testSentinelErr{}

type testSentinelErr struct{}

func (testSentinelErr) Error() string { return "sentinel" }
