package ber

import (
	"testing"

	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/asn1rt/asn1rt/codec"
	"github.com/asn1rt/asn1rt/constraint"
	"github.com/stretchr/testify/require"
)

// outOfOrderSet declares fields whose TagOverride numbers run backwards
// relative to declaration order, so a DER-correct encoder must reorder them
// on the wire while a BER one leaves them as declared (X.690 §11.6).
type outOfOrderSet struct {
	high, low int64
}

func (s *outOfOrderSet) Fields() []asn1type.FieldDescriptor {
	tag := func(n int) *asn1type.TagOverride {
		return &asn1type.TagOverride{Tag: asn1type.Tag{Class: asn1type.ClassContextSpecific, Number: n}}
	}
	return []asn1type.FieldDescriptor{
		{Name: "high", Kind: asn1type.FieldRequired, Tag: tag(5)},
		{Name: "low", Kind: asn1type.FieldRequired, Tag: tag(1)},
	}
}

func (s *outOfOrderSet) Presence() []bool { return []bool{true, true} }

func (s *outOfOrderSet) WriteFields(w codec.Writer) error {
	if err := w.WriteInteger(s.high, constraint.Unconstrained()); err != nil {
		return err
	}
	return w.WriteInteger(s.low, constraint.Unconstrained())
}

func (s *outOfOrderSet) ReadFields(r codec.Reader, present []bool) error {
	v, err := r.ReadInteger(constraint.Unconstrained())
	if err != nil {
		return err
	}
	s.high = v
	v, err = r.ReadInteger(constraint.Unconstrained())
	if err != nil {
		return err
	}
	s.low = v
	return nil
}

func TestWriteSetDERReordersFieldsByTag(t *testing.T) {
	w := NewWriter(16, RuleDER)
	require.NoError(t, w.WriteSet(&outOfOrderSet{high: 100, low: 7}))

	d := NewDecoder(w.Bytes(), RuleDER)
	content, err := d.ExpectSet()
	require.NoError(t, err)

	inner := NewDecoder(content, RuleDER)
	class, _, number, err := inner.PeekTag()
	require.NoError(t, err)
	require.Equal(t, ClassContextSpecific, class)
	require.Equal(t, 1, number, "the [1] field must come first under DER field ordering")
}

func TestWriteSetBERKeepsDeclarationOrder(t *testing.T) {
	w := NewWriter(16, RuleBER)
	require.NoError(t, w.WriteSet(&outOfOrderSet{high: 100, low: 7}))

	d := NewDecoder(w.Bytes(), RuleBER)
	content, err := d.ExpectSet()
	require.NoError(t, err)

	inner := NewDecoder(content, RuleBER)
	_, _, number, err := inner.PeekTag()
	require.NoError(t, err)
	require.Equal(t, 5, number, "BER must not reorder SET fields")
}

func TestSetRoundTripSurvivesDERFieldReordering(t *testing.T) {
	original := &outOfOrderSet{high: 100, low: 7}
	w := NewWriter(16, RuleDER)
	require.NoError(t, w.WriteSet(original))

	got := &outOfOrderSet{}
	r := NewReader(w.Bytes(), RuleDER)
	require.NoError(t, r.ReadSet(got))
	require.Equal(t, original.high, got.high)
	require.Equal(t, original.low, got.low)
}

func TestReadSequenceContentsInheritsRule(t *testing.T) {
	inner := NewEncoder(4, RuleDER)
	require.NoError(t, inner.WriteBoolean(true))
	outer := NewEncoder(16, RuleDER)
	start := outer.Len()
	outer.WriteRaw(inner.Bytes())
	require.NoError(t, outer.WrapConstructed(start, ClassUniversal, TagSequence))

	d := NewDecoder(outer.Bytes(), RuleDER)
	sub, err := d.ReadSequenceContents()
	require.NoError(t, err)

	// A non-canonical boolean nested under a DER sequence must still be
	// rejected by the sub-decoder, proving rule propagates across the
	// SEQUENCE boundary rather than resetting to a default.
	sub.data[2] = 0x01
	_, err = sub.ReadBoolean()
	require.Error(t, err)
}
