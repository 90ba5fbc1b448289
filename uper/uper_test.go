package uper

import (
	"testing"

	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/asn1rt/asn1rt/constraint"
	"github.com/asn1rt/asn1rt/limits"
	"github.com/stretchr/testify/require"
)

func TestBooleanSeedScenario(t *testing.T) {
	w := NewWriter(1)
	require.NoError(t, w.WriteBoolean(true))
	require.Equal(t, []byte{0x80}, w.Bytes())
	require.Equal(t, 1, w.BitLen())

	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	v, err := r.ReadBoolean()
	require.NoError(t, err)
	require.True(t, v)
	require.True(t, r.AtEnd())
}

func TestConstrainedIntegerSeedScenario(t *testing.T) {
	rng := constraint.Constrained(0, 255)
	w := NewWriter(1)
	require.NoError(t, w.WriteInteger(123, rng))
	require.Equal(t, []byte{0x7B}, w.Bytes())

	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	v, err := r.ReadInteger(rng)
	require.NoError(t, err)
	require.EqualValues(t, 123, v)
}

func TestUnconstrainedIntegerSeedScenario(t *testing.T) {
	rng := constraint.Unconstrained()
	w := NewWriter(4)
	require.NoError(t, w.WriteInteger(123, rng))
	require.Equal(t, []byte{0x01, 0x7B}, w.Bytes())

	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	v, err := r.ReadInteger(rng)
	require.NoError(t, err)
	require.EqualValues(t, 123, v)
}

func TestSemiConstrainedIntegerRoundTrip(t *testing.T) {
	rng := constraint.SemiConstrained(10)
	w := NewWriter(4)
	require.NoError(t, w.WriteInteger(1000000, rng))
	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	v, err := r.ReadInteger(rng)
	require.NoError(t, err)
	require.EqualValues(t, 1000000, v)
}

func TestExtensibleIntegerOutsideRoot(t *testing.T) {
	rng := constraint.Constrained(0, 10).WithExtensible()
	w := NewWriter(4)
	require.NoError(t, w.WriteInteger(1000, rng))
	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	v, err := r.ReadInteger(rng)
	require.NoError(t, err)
	require.EqualValues(t, 1000, v)
}

func TestNegativeIntegerRoundTrip(t *testing.T) {
	rng := constraint.Unconstrained()
	for _, v := range []int64{-1, -128, -129, -32768, 0, 127, 128} {
		w := NewWriter(8)
		require.NoError(t, w.WriteInteger(v, rng))
		r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
		got, err := r.ReadInteger(rng)
		require.NoError(t, err)
		require.Equalf(t, v, got, "value %d", v)
	}
}

func TestOctetStringFixedSize(t *testing.T) {
	sc := constraint.FixedSize(3, false)
	w := NewWriter(4)
	require.NoError(t, w.WriteOctetString([]byte{0x01, 0x02, 0x03}, sc))
	require.Equal(t, []byte{0x01, 0x02, 0x03}, w.Bytes())

	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	got, err := r.ReadOctetString(sc)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, got)
}

func TestOctetStringRangedSize(t *testing.T) {
	sc := constraint.RangedSize(0, 10, false)
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	w := NewWriter(8)
	require.NoError(t, w.WriteOctetString(data, sc))
	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	got, err := r.ReadOctetString(sc)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestOctetStringLargeFragmented(t *testing.T) {
	sc := constraint.AnySize()
	data := make([]byte, 16384+500)
	for i := range data {
		data[i] = byte(i)
	}
	w := NewWriter(len(data) + 16)
	require.NoError(t, w.WriteOctetString(data, sc))
	r := NewReader(w.Bytes(), w.BitLen(), limits.Unbounded())
	got, err := r.ReadOctetString(sc)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestIa5StringRoundTrip(t *testing.T) {
	sc := constraint.RangedSize(1, 20, false)
	w := NewWriter(8)
	require.NoError(t, w.WriteIa5String("Hello!", sc))
	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	got, err := r.ReadIa5String(sc)
	require.NoError(t, err)
	require.Equal(t, "Hello!", got)
}

func TestNumericStringRoundTrip(t *testing.T) {
	sc := constraint.FixedSize(5, false)
	w := NewWriter(8)
	require.NoError(t, w.WriteNumericString("01234", sc))
	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	got, err := r.ReadNumericString(sc)
	require.NoError(t, err)
	require.Equal(t, "01234", got)
}

func TestBitStringRoundTrip(t *testing.T) {
	bs := asn1type.BitString{Bits: []byte{0b10110000}, BitLen: 5}
	sc := constraint.RangedSize(1, 32, false)
	w := NewWriter(4)
	require.NoError(t, w.WriteBitString(bs, sc))
	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	got, err := r.ReadBitString(sc)
	require.NoError(t, err)
	require.Equal(t, bs.BitLen, got.BitLen)
	require.Equal(t, bs.Bits, got.Bits)
}

func TestNullRoundTrip(t *testing.T) {
	w := NewWriter(1)
	require.NoError(t, w.WriteNull())
	require.Equal(t, 0, w.BitLen())
	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	require.NoError(t, r.ReadNull())
}
