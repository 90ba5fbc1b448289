package ber

import (
	"testing"

	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/asn1rt/asn1rt/codec"
	"github.com/asn1rt/asn1rt/constraint"
	"github.com/stretchr/testify/require"
)

func TestWriterBooleanTrueIsDER0xFF(t *testing.T) {
	w := NewWriter(4, RuleDER)
	require.NoError(t, w.WriteBoolean(true))
	require.Equal(t, []byte{0x01, 0x01, 0xFF}, w.Bytes())
}

func TestIntegerRoundTrip(t *testing.T) {
	w := NewWriter(4, RuleBER)
	require.NoError(t, w.WriteInteger(123, constraint.Unconstrained()))
	r := NewReader(w.Bytes(), RuleBER)
	v, err := r.ReadInteger(constraint.Unconstrained())
	require.NoError(t, err)
	require.EqualValues(t, 123, v)
}

// taggedPair mirrors spec.md §8's DER "two context-tagged integers"
// example: a SEQUENCE of an [0] INTEGER and a [1] INTEGER.
type taggedPair struct {
	A, B int64
}

func (p *taggedPair) Fields() []asn1type.FieldDescriptor {
	tag := func(n int) *asn1type.TagOverride {
		return &asn1type.TagOverride{Tag: asn1type.Tag{Class: asn1type.ClassContextSpecific, Number: n}}
	}
	return []asn1type.FieldDescriptor{
		{Name: "a", Kind: asn1type.FieldRequired, Tag: tag(0)},
		{Name: "b", Kind: asn1type.FieldRequired, Tag: tag(1)},
	}
}

func (p *taggedPair) Presence() []bool { return []bool{true, true} }

func (p *taggedPair) WriteFields(w codec.Writer) error {
	if err := w.WriteInteger(p.A, constraint.Unconstrained()); err != nil {
		return err
	}
	return w.WriteInteger(p.B, constraint.Unconstrained())
}

func (p *taggedPair) ReadFields(r codec.Reader, present []bool) error {
	a, err := r.ReadInteger(constraint.Unconstrained())
	if err != nil {
		return err
	}
	p.A = a
	b, err := r.ReadInteger(constraint.Unconstrained())
	if err != nil {
		return err
	}
	p.B = b
	return nil
}

func TestSequenceRoundTrip(t *testing.T) {
	original := &taggedPair{A: 7, B: 9}
	w := NewWriter(16, RuleDER)
	require.NoError(t, w.WriteSequence(original))

	got := &taggedPair{}
	r := NewReader(w.Bytes(), RuleDER)
	require.NoError(t, r.ReadSequence(got))
	require.Equal(t, original.A, got.A)
	require.Equal(t, original.B, got.B)
	require.True(t, r.AtEnd())
}

type pairChoice struct {
	selected int
	n        int64
	s        string
}

func (c *pairChoice) Alternatives() []asn1type.ChoiceAlternative {
	return []asn1type.ChoiceAlternative{
		{Name: "num", Tag: &asn1type.TagOverride{Tag: asn1type.Tag{Class: asn1type.ClassContextSpecific, Number: 0}, Explicit: true}},
		{Name: "str", Tag: &asn1type.TagOverride{Tag: asn1type.Tag{Class: asn1type.ClassContextSpecific, Number: 1}, Explicit: true}},
	}
}
func (c *pairChoice) Selected() int { return c.selected }
func (c *pairChoice) WriteChosen(w codec.Writer) error {
	if c.selected == 0 {
		return w.WriteInteger(c.n, constraint.Unconstrained())
	}
	return w.WriteUtf8String(c.s, constraint.AnySize())
}
func (c *pairChoice) ReadChosen(r codec.Reader, index int) error {
	c.selected = index
	if index == 0 {
		v, err := r.ReadInteger(constraint.Unconstrained())
		c.n = v
		return err
	}
	v, err := r.ReadUtf8String(constraint.AnySize())
	c.s = v
	return err
}

func TestChoiceRoundTrip(t *testing.T) {
	original := &pairChoice{selected: 1, s: "hi"}
	w := NewWriter(16, RuleBER)
	require.NoError(t, w.WriteChoice(original))

	got := &pairChoice{}
	r := NewReader(w.Bytes(), RuleBER)
	require.NoError(t, r.ReadChoice(got))
	require.Equal(t, 1, got.selected)
	require.Equal(t, "hi", got.s)
}

func TestSetOfDERSortsElements(t *testing.T) {
	values := []int64{300, 1, 127}
	w := NewWriter(32, RuleDER)
	err := w.WriteSetOf(len(values), constraint.AnySize(), func(i int) ([]byte, error) {
		scratch := NewWriter(8, RuleDER)
		if err := scratch.WriteInteger(values[i], constraint.Unconstrained()); err != nil {
			return nil, err
		}
		return scratch.Bytes(), nil
	})
	require.NoError(t, err)

	var got []int64
	r := NewReader(w.Bytes(), RuleDER)
	n, err := r.ReadSetOf(constraint.AnySize(), func(i int) error {
		v, err := r.ReadInteger(constraint.Unconstrained())
		if err != nil {
			return err
		}
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, len(values), n)
	require.Equal(t, []int64{1, 127, 300}, got)
}

func TestBitStringRoundTrip(t *testing.T) {
	bs := asn1type.BitString{Bits: []byte{0b10110000}, BitLen: 5}
	w := NewWriter(8, RuleBER)
	require.NoError(t, w.WriteBitString(bs, constraint.AnySize()))
	r := NewReader(w.Bytes(), RuleBER)
	got, err := r.ReadBitString(constraint.AnySize())
	require.NoError(t, err)
	require.Equal(t, bs, got)
}
