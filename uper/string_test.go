package uper

import (
	"testing"

	"github.com/asn1rt/asn1rt/constraint"
	"github.com/asn1rt/asn1rt/limits"
	"github.com/stretchr/testify/require"
)

// TestOctetStringPayloadIsUnaligned covers spec.md §4.3's "no octet
// alignment" rule: a string payload immediately follows whatever bit
// offset its length determinant left the cursor at, straddling byte
// boundaries like any other UPER field would. This mirrors spec.md §8
// scenario 4's "Falcon" field, a UTF8String under SIZE(1..16), which
// leaves a 4-bit (not byte-aligned) length determinant before the name.
func TestOctetStringPayloadIsUnaligned(t *testing.T) {
	w := NewWriter(8)
	w.bc.WriteBit(true) // one stray bit so the string starts unaligned
	require.NoError(t, w.WriteUtf8String("Falcon", constraint.RangedSize(1, 16, false)))

	// 1 (stray bit) + 4 (SIZE(1..16) length field) + 48 (6 ASCII bytes) = 53.
	// Byte-aligning before the payload would instead cost 8 + 48 = 56;
	// the point is there must be no pad bits anywhere but the final byte.
	require.Equal(t, 53, w.BitLen())

	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	stray, err := r.bc.ReadBit()
	require.NoError(t, err)
	require.True(t, stray)
	got, err := r.ReadUtf8String(constraint.RangedSize(1, 16, false))
	require.NoError(t, err)
	require.Equal(t, "Falcon", got)
	require.True(t, r.AtEnd())
}

// TestOctetStringGeneralFormIsUnaligned covers the same rule for the
// general (fragmented) length form's fragment payloads, which also must
// not be byte-aligned before their content.
func TestOctetStringGeneralFormIsUnaligned(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01}
	w := NewWriter(8)
	w.bc.WriteBit(true)
	require.NoError(t, w.WriteOctetString(payload, constraint.AnySize()))

	r := NewReader(w.Bytes(), w.BitLen(), limits.Default())
	stray, err := r.bc.ReadBit()
	require.NoError(t, err)
	require.True(t, stray)
	got, err := r.ReadOctetString(constraint.AnySize())
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.True(t, r.AtEnd())
}
