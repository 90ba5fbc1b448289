package uper

import (
	"math/big"

	"github.com/asn1rt/asn1rt/bitio"
	"github.com/asn1rt/asn1rt/constraint"
)

// usesGeneralLength reports whether sc's size field must fall back to the
// general (possibly fragmented) length determinant rather than a fixed-
// width constrained count, per spec.md §4.3: SIZE(*) and any range whose
// width exceeds the fragmentation threshold always use the general form.
func usesGeneralLength(sc constraint.Size) bool {
	if sc.Kind != constraint.SizeRanged {
		return true
	}
	width := sc.Max - sc.Min + 1
	return width > fragmentUnit
}

// writeSizePrefix emits the size/length field that precedes a
// SIZE-constrained string, BIT STRING, or SEQUENCE/SET OF's elements.
// When the general (possibly fragmented) length form applies, it writes
// only the extensibility bit (if any) and leaves the fragment markers
// themselves to the caller, which must interleave them with payload
// writes via chunk.Plan directly (see writeGeneralBytes).
func writeSizePrefix(w *bitio.Writer, n int, sc constraint.Size) (general bool, err error) {
	effective := sc
	if sc.Extensible {
		inRoot := sc.InRoot(n)
		w.WriteBit(!inRoot)
		if !inRoot {
			return true, nil
		}
		effective.Extensible = false
	}

	switch effective.Kind {
	case constraint.SizeFixed:
		return false, nil
	case constraint.SizeRanged:
		if !usesGeneralLength(effective) {
			width := big.NewInt(int64(effective.Max - effective.Min + 1))
			writeBigBits(w, big.NewInt(int64(n-effective.Min)), bitsForWidth(width))
			return false, nil
		}
	}
	return true, nil
}

// readSizePrefix is the decode counterpart of writeSizePrefix's
// non-general path: fixed and small-ranged sizes decode directly. Callers
// needing the general (possibly fragmented) form should use
// drainLengthDeterminant directly instead, since it streams rather than
// returning a single count.
func readSizePrefix(r *bitio.Reader, sc constraint.Size) (n int, general bool, err error) {
	effective := sc
	if sc.Extensible {
		ext, err := r.ReadBit()
		if err != nil {
			return 0, false, err
		}
		if ext {
			return 0, true, nil
		}
		effective.Extensible = false
	}
	switch effective.Kind {
	case constraint.SizeFixed:
		return effective.Min, false, nil
	case constraint.SizeRanged:
		if !usesGeneralLength(effective) {
			width := big.NewInt(int64(effective.Max - effective.Min + 1))
			diff, err := readBigBits(r, bitsForWidth(width))
			if err != nil {
				return 0, false, err
			}
			return int(diff.Int64()) + effective.Min, false, nil
		}
	}
	return 0, true, nil
}
