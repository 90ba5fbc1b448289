package uper

import (
	"math/big"

	"github.com/asn1rt/asn1rt/bitio"
	"github.com/asn1rt/asn1rt/codec"
	"github.com/asn1rt/asn1rt/constraint"
	"github.com/asn1rt/asn1rt/limits"
)

// Writer encodes values using the Unaligned Packed Encoding Rules. It
// implements codec.Writer.
type Writer struct {
	bc  *bitio.Writer
	lim limits.Limits
}

// NewWriter returns a Writer with capacity bytes of initial scratch space.
func NewWriter(capacity int) *Writer {
	return &Writer{bc: bitio.NewWriter(capacity), lim: limits.Default()}
}

// WithLimits records lim on the Writer and returns it. The Writer does not
// consult lim while encoding; limits are enforced only on the decode side,
// by Reader.
func (w *Writer) WithLimits(lim limits.Limits) *Writer {
	w.lim = lim
	return w
}

// Bytes returns the byte-padded encoded form. Any partial final byte is
// zero-padded in its low bits, per spec.md §8's encoding convention.
func (w *Writer) Bytes() []byte { return w.bc.Bytes() }

// BitLen returns the exact number of bits written, needed by a Reader to
// know where the meaningful content ends within the final padded byte.
func (w *Writer) BitLen() int { return w.bc.BitLen() }

var _ codec.Writer = (*Writer)(nil)

// WriteBoolean implements codec.Writer: a single bit, 1 for true.
func (w *Writer) WriteBoolean(v bool) error {
	w.bc.WriteBit(v)
	return nil
}

// WriteInteger implements codec.Writer.
func (w *Writer) WriteInteger(v int64, r constraint.IntegerRange) error {
	return w.writeInteger(big.NewInt(v), r)
}

// WriteBigInteger implements codec.Writer.
func (w *Writer) WriteBigInteger(v codec.BigInt, r constraint.IntegerRange) error {
	return w.writeInteger(twosComplementToBig(v.Bytes), r)
}

// WriteNull implements codec.Writer: NULL carries no bits under PER.
func (w *Writer) WriteNull() error { return nil }
