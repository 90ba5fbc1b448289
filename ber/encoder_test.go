package ber

import (
	"testing"

	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/stretchr/testify/require"
)

func TestNewEncoderCapacity(t *testing.T) {
	e := NewEncoder(0, RuleDER)
	require.NotNil(t, e)
	require.Equal(t, 64, cap(e.buf))

	e = NewEncoder(128, RuleBER)
	require.Equal(t, 128, cap(e.buf))
}

func TestEncoderReset(t *testing.T) {
	e := NewEncoder(8, RuleBER)
	require.NoError(t, e.WriteNull())
	require.NotZero(t, e.Len())
	e.Reset()
	require.Zero(t, e.Len())
}

func TestWriteTagForms(t *testing.T) {
	tests := []struct {
		name                   string
		class, constructed, nr int
		want                   []byte
	}{
		{"universal boolean", ClassUniversal, TypePrimitive, TagBoolean, []byte{0x01}},
		{"context constructed 0", ClassContextSpecific, TypeConstructed, 0, []byte{0xA0}},
		{"private primitive long form 31", ClassPrivate, TypePrimitive, 31, []byte{0xDF, 0x1F}},
		{"application long form 300", ClassApplication, TypePrimitive, 300, []byte{0x5F, 0x82, 0x2C}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEncoder(4, RuleDER)
			require.NoError(t, e.WriteTag(tt.class, tt.constructed, tt.nr))
			require.Equal(t, tt.want, e.Bytes())
		})
	}
}

func TestWriteTagRejectsInvalidClass(t *testing.T) {
	e := NewEncoder(4, RuleDER)
	require.ErrorIs(t, e.WriteTag(0x10, TypePrimitive, 1), ErrInvalidTagClass)
}

func TestWriteLengthForms(t *testing.T) {
	tests := []struct {
		length int
		want   []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x80}},
		{300, []byte{0x82, 0x01, 0x2C}},
	}
	for _, tt := range tests {
		e := NewEncoder(4, RuleDER)
		require.NoError(t, e.WriteLength(tt.length))
		require.Equal(t, tt.want, e.Bytes())
	}
}

func TestWriteBooleanAlwaysCanonical(t *testing.T) {
	e := NewEncoder(4, RuleBER)
	require.NoError(t, e.WriteBoolean(true))
	require.Equal(t, []byte{0x01, 0x01, 0xFF}, e.Bytes())

	e.Reset()
	require.NoError(t, e.WriteBoolean(false))
	require.Equal(t, []byte{0x01, 0x01, 0x00}, e.Bytes())
}

func TestEncodeIntegerMinimalForm(t *testing.T) {
	tests := []struct {
		v    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x00, 0x80}},
		{-1, []byte{0xFF}},
		{-128, []byte{0x80}},
		{-129, []byte{0xFF, 0x7F}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, encodeInteger(tt.v))
	}
}

func TestWrapConstructedFramesPriorWrites(t *testing.T) {
	e := NewEncoder(16, RuleDER)
	start := e.Len()
	require.NoError(t, e.WriteInteger(7))
	require.NoError(t, e.WrapConstructed(start, ClassUniversal, TagSequence))

	d := NewDecoder(e.Bytes(), RuleDER)
	content, err := d.ExpectSequence()
	require.NoError(t, err)

	inner := NewDecoder(content, RuleDER)
	v, err := inner.ReadInteger()
	require.NoError(t, err)
	require.EqualValues(t, 7, v)
}

func TestRetagImplicitRewritesIdentifier(t *testing.T) {
	scratch := NewEncoder(4, RuleDER)
	require.NoError(t, scratch.WriteInteger(42))

	ov := &asn1type.TagOverride{Tag: asn1type.Tag{Class: asn1type.ClassContextSpecific, Number: 0}}
	retagged, err := Retag(scratch.Bytes(), ov)
	require.NoError(t, err)
	require.Equal(t, byte(0x80), retagged[0])
	require.Equal(t, scratch.Bytes()[1:], retagged[1:])
}

func TestRetagExplicitWrapsUnchanged(t *testing.T) {
	scratch := NewEncoder(4, RuleDER)
	require.NoError(t, scratch.WriteInteger(42))

	ov := &asn1type.TagOverride{Tag: asn1type.Tag{Class: asn1type.ClassContextSpecific, Number: 1}, Explicit: true}
	retagged, err := Retag(scratch.Bytes(), ov)
	require.NoError(t, err)

	d := NewDecoder(retagged, RuleDER)
	content, err := d.ExpectContextTag(1)
	require.NoError(t, err)
	require.Equal(t, scratch.Bytes(), content)
}
