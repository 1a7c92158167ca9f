package protowire_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	protowire "github.com/kevin-logan/protowire"
)

func TestFixed32RoundTripUint32(t *testing.T) {
	f := protowire.NewFixed32(0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), f.Get())
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, f.Bytes())
}

func TestFixed32RoundTripInt32(t *testing.T) {
	f := protowire.NewFixed32Int32(-1)
	require.Equal(t, int32(-1), f.GetInt32())
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, f.Bytes())
}

func TestFixed32RoundTripFloat(t *testing.T) {
	f := protowire.NewFixed32Float(-13.37)
	require.InDelta(t, float64(-13.37), float64(f.GetFloat()), 0.0001)
	// Exact bytes from the complex wire-format fixture: -13.37f32.
	require.Equal(t, []byte{0x85, 0xeb, 0x55, 0xc1}, f.Bytes())
}

func TestFixed32FloatSpecialValues(t *testing.T) {
	negZero := protowire.NewFixed32Float(float32(math.Copysign(0, -1)))
	require.Equal(t, uint32(0x80000000), negZero.Get())
	require.True(t, math.Signbit(float64(negZero.GetFloat())))

	nan := protowire.NewFixed32Float(float32(math.NaN()))
	require.True(t, math.IsNaN(float64(nan.GetFloat())))

	posInf := protowire.NewFixed32Float(float32(math.Inf(1)))
	require.True(t, math.IsInf(float64(posInf.GetFloat()), 1))

	negInf := protowire.NewFixed32Float(float32(math.Inf(-1)))
	require.True(t, math.IsInf(float64(negInf.GetFloat()), -1))
}

func TestParseFixed32InsufficientBytes(t *testing.T) {
	buf := protowire.NewBuffer([]byte{1, 2, 3})
	_, _, err := protowire.ParseFixed32(buf)
	require.ErrorIs(t, err, protowire.ErrInsufficientBytes)
}

func TestParseFixed32LeavesRemainderIntact(t *testing.T) {
	buf := protowire.NewBuffer([]byte{0xef, 0xbe, 0xad, 0xde, 0x99})
	f, rem, err := protowire.ParseFixed32(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), f.Get())
	require.Equal(t, []byte{0x99}, rem.Bytes())
}
