package uper

import (
	"math/big"

	"github.com/asn1rt/asn1rt/asn1type"
)

// WriteEnumerated implements codec.Writer. Root values are a fixed-width
// field over v's declared RootCount; extension values (spec.md §4.3's
// extensible ENUMERATED rule) are instead a 1-bit flag followed by a
// normally-small non-negative integer holding the extension index.
func (w *Writer) WriteEnumerated(v asn1type.Enumerated) error {
	if v.Extended {
		w.bc.WriteBit(true)
		return w.writeNormallySmall(int64(v.ExtIndex))
	}
	if v.Extensible {
		w.bc.WriteBit(false)
	}
	bits := bitsForWidth(big.NewInt(int64(v.RootCount)))
	if bits == 0 {
		return nil
	}
	writeBigBits(w.bc, big.NewInt(int64(v.Index)), bits)
	return nil
}

// ReadEnumerated implements codec.Reader.
func (r *Reader) ReadEnumerated(rootCount int, labels []int64, extensible bool) (asn1type.Enumerated, error) {
	if extensible {
		ext, err := r.bc.ReadBit()
		if err != nil {
			return asn1type.Enumerated{}, err
		}
		if ext {
			idx, err := r.readNormallySmall()
			if err != nil {
				return asn1type.Enumerated{}, err
			}
			return asn1type.Enumerated{RootCount: rootCount, Extensible: true, Extended: true, ExtIndex: int(idx), Labels: labels}, nil
		}
	}
	bits := bitsForWidth(big.NewInt(int64(rootCount)))
	if bits == 0 {
		return asn1type.Enumerated{RootCount: rootCount, Extensible: extensible, Labels: labels}, nil
	}
	v, err := readBigBits(r.bc, bits)
	if err != nil {
		return asn1type.Enumerated{}, err
	}
	return asn1type.Enumerated{RootCount: rootCount, Index: int(v.Int64()), Extensible: extensible, Labels: labels}, nil
}
