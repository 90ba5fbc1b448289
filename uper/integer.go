package uper

import (
	"math/big"

	"github.com/asn1rt/asn1rt/asn1err"
	"github.com/asn1rt/asn1rt/bitio"
	"github.com/asn1rt/asn1rt/constraint"
)

var big1 = big.NewInt(1)
var big0 = big.NewInt(0)

// bitsForWidth returns ceil(log2(width)) for width >= 1: the number of
// bits needed to represent values 0..width-1. width == 1 needs 0 bits
// (spec.md §4.3 rule 1: "If range = 1, emit no bits").
func bitsForWidth(width *big.Int) int {
	if width.Cmp(big1) <= 0 {
		return 0
	}
	return new(big.Int).Sub(width, big1).BitLen()
}

// minimalTwosComplement returns the minimal-length two's-complement
// big-endian encoding of v.
func minimalTwosComplement(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if len(b) == 0 || b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	// Negative: compute two's complement over the minimal number of bytes.
	nBits := new(big.Int).Neg(v)
	nBits.Sub(nBits, big1)
	nBytes := (nBits.BitLen() / 8) + 1
	mod := new(big.Int).Lsh(big1, uint(nBytes*8))
	tc := new(big.Int).Add(v, mod)
	b := tc.Bytes()
	for len(b) < nBytes {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// twosComplementToBig decodes a minimal two's-complement big-endian byte
// slice back into a big.Int.
func twosComplementToBig(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big1, uint(8*len(b)))
		v.Sub(v, mod)
	}
	return v
}

// writeUnconstrainedInt emits a two's-complement minimal-octet
// representation preceded by its length determinant (spec.md §4.3 rule 3).
func (w *Writer) writeUnconstrainedInt(v *big.Int) error {
	enc := minimalTwosComplement(v)
	if err := writeLengthDeterminant(w.bc, int64(len(enc))); err != nil {
		return err
	}
	w.bc.WriteOctets(enc)
	return nil
}

func (r *Reader) readUnconstrainedInt() (*big.Int, error) {
	n, err := readLengthDeterminant(r.bc, r.lim)
	if err != nil {
		return nil, err
	}
	b, err := r.bc.ReadOctets(int(n))
	if err != nil {
		return nil, err
	}
	return twosComplementToBig(b), nil
}

// writeSemiConstrainedInt emits a length determinant giving the octet
// count of (v-min), then the unsigned big-endian bytes (spec.md §4.3 rule 2).
func (w *Writer) writeSemiConstrainedInt(v, min *big.Int) error {
	diff := new(big.Int).Sub(v, min)
	enc := diff.Bytes()
	if len(enc) == 0 {
		enc = []byte{0x00}
	}
	if err := writeLengthDeterminant(w.bc, int64(len(enc))); err != nil {
		return err
	}
	w.bc.WriteOctets(enc)
	return nil
}

func (r *Reader) readSemiConstrainedInt(min *big.Int) (*big.Int, error) {
	n, err := readLengthDeterminant(r.bc, r.lim)
	if err != nil {
		return nil, err
	}
	b, err := r.bc.ReadOctets(int(n))
	if err != nil {
		return nil, err
	}
	diff := new(big.Int).SetBytes(b)
	return new(big.Int).Add(diff, min), nil
}

// writeFullyConstrainedInt emits width bits holding v-min (spec.md §4.3 rule 1).
func (w *Writer) writeFullyConstrainedInt(v, min, width *big.Int) error {
	bits := bitsForWidth(width)
	if bits == 0 {
		return nil
	}
	diff := new(big.Int).Sub(v, min)
	writeBigBits(w.bc, diff, bits)
	return nil
}

func (r *Reader) readFullyConstrainedInt(min, width *big.Int) (*big.Int, error) {
	bits := bitsForWidth(width)
	if bits == 0 {
		return new(big.Int).Set(min), nil
	}
	diff, err := readBigBits(r.bc, bits)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(diff, min), nil
}

// writeBigBits writes the low n bits of v, MSB-first, for n possibly
// exceeding 64 (bitio.Writer.WriteBits only handles up to 64 at a time).
func writeBigBits(w *bitio.Writer, v *big.Int, n int) {
	for n > 64 {
		chunk := n - 64
		hi := new(big.Int).Rsh(v, uint(64))
		writeBigBits(w, hi, chunk)
		low := new(big.Int).And(v, new(big.Int).Sub(new(big.Int).Lsh(big1, 64), big1))
		w.WriteBits(low.Uint64(), 64)
		return
	}
	w.WriteBits(v.Uint64(), n)
}

func readBigBits(r *bitio.Reader, n int) (*big.Int, error) {
	result := new(big.Int)
	remaining := n
	for remaining > 0 {
		take := remaining
		if take > 64 {
			take = 64
		}
		chunkBits, err := r.ReadBits(take)
		if err != nil {
			return nil, err
		}
		result.Lsh(result, uint(take))
		result.Or(result, new(big.Int).SetUint64(chunkBits))
		remaining -= take
	}
	return result, nil
}

// writeInteger is the full spec.md §4.3 INTEGER algorithm, used by both
// the int64 and BigInt entry points.
func (w *Writer) writeInteger(v *big.Int, rng constraint.IntegerRange) error {
	if rng.Extensible {
		inRoot := rng.Contains(v)
		w.bc.WriteBit(!inRoot)
		if !inRoot {
			return w.writeUnconstrainedInt(v)
		}
		rng.Extensible = false
	}

	switch rng.Kind() {
	case constraint.KindFullyBounded:
		if !rng.Contains(v) {
			return &asn1err.ValueNotInRange{Actual: v.String(), Min: rng.Min.String(), Max: rng.Max.String()}
		}
		return w.writeFullyConstrainedInt(v, rng.Min, rng.RangeWidth())
	case constraint.KindHalfBounded:
		if rng.Min != nil {
			if v.Cmp(rng.Min) < 0 {
				return &asn1err.ValueNotInRange{Actual: v.String(), Min: rng.Min.String(), Max: "MAX"}
			}
			return w.writeSemiConstrainedInt(v, rng.Min)
		}
		return w.writeUnconstrainedInt(v)
	default:
		return w.writeUnconstrainedInt(v)
	}
}

func (r *Reader) readInteger(rng constraint.IntegerRange) (*big.Int, error) {
	if rng.Extensible {
		ext, err := r.bc.ReadBit()
		if err != nil {
			return nil, err
		}
		if ext {
			return r.readUnconstrainedInt()
		}
		rng.Extensible = false
	}

	switch rng.Kind() {
	case constraint.KindFullyBounded:
		v, err := r.readFullyConstrainedInt(rng.Min, rng.RangeWidth())
		if err != nil {
			return nil, err
		}
		if !rng.Contains(v) {
			return nil, &asn1err.ValueNotInRange{Actual: v.String(), Min: rng.Min.String(), Max: rng.Max.String()}
		}
		return v, nil
	case constraint.KindHalfBounded:
		if rng.Min != nil {
			return r.readSemiConstrainedInt(rng.Min)
		}
		return r.readUnconstrainedInt()
	default:
		return r.readUnconstrainedInt()
	}
}

// writeNormallySmall encodes the "normally-small non-negative integer"
// PER convention from the GLOSSARY: 1 bit + 6 bits for 0-63, otherwise a
// 1 bit flag followed by an unconstrained integer.
func (w *Writer) writeNormallySmall(v int64) error {
	if v >= 0 && v <= 63 {
		w.bc.WriteBit(false)
		w.bc.WriteBits(uint64(v), 6)
		return nil
	}
	w.bc.WriteBit(true)
	return w.writeUnconstrainedInt(big.NewInt(v))
}

func (r *Reader) readNormallySmall() (int64, error) {
	big6, err := r.bc.ReadBit()
	if err != nil {
		return 0, err
	}
	if !big6 {
		v, err := r.bc.ReadBits(6)
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	}
	v, err := r.readUnconstrainedInt()
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}
