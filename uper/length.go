package uper

import (
	"github.com/asn1rt/asn1rt/asn1err"
	"github.com/asn1rt/asn1rt/bitio"
	"github.com/asn1rt/asn1rt/internal/chunk"
	"github.com/asn1rt/asn1rt/limits"
)

const fragmentUnit = 16384

// writeLengthDeterminant emits spec.md §4.3's length determinant for n:
// short form (n <= 127, 8 bits), long form (128 <= n <= 16383, 16 bits), or
// a chain of fragment markers (n >= 16384) followed by the short/long form
// for the remainder, per chunk.Plan's largest-chunk-first rule. Unaligned
// PER never byte-aligns the determinant itself; every field below is
// written at the writer's current bit position.
func writeLengthDeterminant(w *bitio.Writer, n int64) error {
	frags, rem := chunk.Plan(n)
	for _, f := range frags {
		k := f / fragmentUnit
		w.WriteBit(true)
		w.WriteBit(true)
		w.WriteBits(uint64(k), 6)
	}
	return writeShortOrLongForm(w, rem)
}

func writeShortOrLongForm(w *bitio.Writer, n int64) error {
	if n <= 127 {
		w.WriteBit(false)
		w.WriteBits(uint64(n), 7)
		return nil
	}
	w.WriteBit(true)
	w.WriteBit(false)
	w.WriteBits(uint64(n), 14)
	return nil
}

// readLengthStep reads one determinant step: either a fragment marker
// (fragSize a multiple of fragmentUnit, isLast false) or the terminal
// short/long form (isLast true).
func readLengthStep(r *bitio.Reader) (fragSize int64, isLast bool, err error) {
	b0, err := r.ReadBit()
	if err != nil {
		return 0, false, err
	}
	if !b0 {
		rest, err := r.ReadBits(7)
		if err != nil {
			return 0, false, err
		}
		return int64(rest), true, nil
	}
	b1, err := r.ReadBit()
	if err != nil {
		return 0, false, err
	}
	if !b1 {
		rest, err := r.ReadBits(14)
		if err != nil {
			return 0, false, err
		}
		return int64(rest), true, nil
	}
	k, err := r.ReadBits(6)
	if err != nil {
		return 0, false, err
	}
	if k < 1 || k > 4 {
		return 0, false, &asn1err.InvalidString{Charset: "length-determinant", Position: r.PositionBits()}
	}
	return int64(k) * fragmentUnit, false, nil
}

// readLengthDeterminant reads a full (possibly fragmented) length
// determinant to completion without streaming; callers that need to
// interleave fragment reads with payload reads (SEQUENCE OF, OCTET STRING)
// should use drainLengthDeterminant instead.
func readLengthDeterminant(r *bitio.Reader, lim limits.Limits) (int64, error) {
	cr := chunk.NewReader(lim, func() (int64, bool, error) { return readLengthStep(r) })
	return cr.Drain(func(int64) error { return nil })
}

// drainLengthDeterminant streams a length determinant, invoking onFragment
// once per fragment (and once more for the final remainder) so the caller
// can consume that many payload items before the next fragment header is
// read, per spec.md §5's streaming requirement.
func drainLengthDeterminant(r *bitio.Reader, lim limits.Limits, onFragment func(n int64) error) (int64, error) {
	cr := chunk.NewReader(lim, func() (int64, bool, error) { return readLengthStep(r) })
	return cr.Drain(onFragment)
}
