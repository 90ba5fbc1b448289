package constraint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerRangeKind(t *testing.T) {
	require.Equal(t, KindUnbounded, Unconstrained().Kind())
	require.Equal(t, KindHalfBounded, SemiConstrained(0).Kind())
	require.Equal(t, KindFullyBounded, Constrained(0, 255).Kind())
}

func TestIntegerRangeWidth(t *testing.T) {
	r := Constrained(0, 255)
	require.Equal(t, big.NewInt(256), r.RangeWidth())
}

func TestIntegerRangeContains(t *testing.T) {
	r := Constrained(0, 255)
	require.True(t, r.Contains(big.NewInt(123)))
	require.False(t, r.Contains(big.NewInt(256)))
	require.False(t, r.Contains(big.NewInt(-1)))
}

func TestSizeInRoot(t *testing.T) {
	any := AnySize()
	require.True(t, any.InRoot(999999))

	fixed := FixedSize(4, false)
	require.True(t, fixed.InRoot(4))
	require.False(t, fixed.InRoot(3))

	ranged := RangedSize(1, 16, true)
	require.True(t, ranged.InRoot(1))
	require.True(t, ranged.InRoot(16))
	require.False(t, ranged.InRoot(17))
}

func TestDefaultIsDefault(t *testing.T) {
	d := Default[string]{Value: "solid", Equal: func(a, b string) bool { return a == b }}
	require.True(t, d.IsDefault("solid"))
	require.False(t, d.IsDefault("liquid"))
}

func TestCharsetNumericRoundTrip(t *testing.T) {
	for _, ch := range " 0123456789" {
		idx, ok := CharsetNumeric.Index(ch)
		require.True(t, ok)
		back, ok := CharsetNumeric.Char(idx)
		require.True(t, ok)
		require.Equal(t, ch, back)
	}
	_, ok := CharsetNumeric.Index('A')
	require.False(t, ok)
}

func TestCharsetBitsPerChar(t *testing.T) {
	require.Equal(t, 4, CharsetNumeric.BitsPerChar())
	require.Equal(t, 7, CharsetIa5.BitsPerChar())
	require.Equal(t, 7, CharsetVisible.BitsPerChar())
	require.Equal(t, 7, CharsetPrintable.BitsPerChar())
}
