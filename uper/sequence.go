package uper

import (
	"math/big"

	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/asn1rt/asn1rt/codec"
	"github.com/asn1rt/asn1rt/constraint"
	"github.com/asn1rt/asn1rt/internal/chunk"
)

// WriteSequence implements codec.Writer's SEQUENCE framing: an extension
// bit (only when any field is declared in the extension group), a
// presence bit for every root OPTIONAL/DEFAULT field, then, whenever any
// field is declared in the extension group, a presence bit for every
// extension field (written whether or not the extension bit is set, with
// no count prefix), then the fields themselves via s.WriteFields.
//
// Extension-addition fields are written inline rather than open-type
// wrapped; a decoder built from the same field descriptors can always
// round-trip them, but a decoder that knows fewer extension fields than
// the encoder cannot skip over the ones it doesn't recognize. See
// DESIGN.md for why this trade was made.
func (w *Writer) WriteSequence(s codec.Sequence) error {
	fields := s.Fields()
	presence := s.Presence()
	hasExt := false
	for _, f := range fields {
		if f.Extension {
			hasExt = true
			break
		}
	}
	if hasExt {
		anyExtPresent := false
		for i, f := range fields {
			if f.Extension && i < len(presence) && presence[i] {
				anyExtPresent = true
				break
			}
		}
		w.bc.WriteBit(anyExtPresent)
	}
	for i, f := range fields {
		if f.Extension {
			continue
		}
		if f.Kind == asn1type.FieldOptional || f.Kind == asn1type.FieldDefault {
			w.bc.WriteBit(i < len(presence) && presence[i])
		}
	}
	if hasExt {
		for i, f := range fields {
			if f.Extension {
				w.bc.WriteBit(i < len(presence) && presence[i])
			}
		}
	}
	return s.WriteFields(w)
}

// ReadSequence is the decode counterpart of WriteSequence.
func (r *Reader) ReadSequence(s codec.Sequence) error {
	fields := s.Fields()
	present := make([]bool, len(fields))
	hasExt := false
	for _, f := range fields {
		if f.Extension {
			hasExt = true
			break
		}
	}
	if hasExt {
		if _, err := r.bc.ReadBit(); err != nil {
			return err
		}
	}
	for i, f := range fields {
		if f.Extension {
			continue
		}
		if f.Kind == asn1type.FieldOptional || f.Kind == asn1type.FieldDefault {
			b, err := r.bc.ReadBit()
			if err != nil {
				return err
			}
			present[i] = b
		} else {
			present[i] = true
		}
	}
	if hasExt {
		for i, f := range fields {
			if f.Extension {
				b, err := r.bc.ReadBit()
				if err != nil {
					return err
				}
				present[i] = b
			}
		}
	}
	return s.ReadFields(r, present)
}

// WriteSet is identical to WriteSequence under PER: SET's field order is
// fixed by its descriptor, same as SEQUENCE (DER's tag-order canonical
// form is a ber-only concern).
func (w *Writer) WriteSet(s codec.Set) error { return w.WriteSequence(s) }

// ReadSet is identical to ReadSequence under PER.
func (r *Reader) ReadSet(s codec.Set) error { return r.ReadSequence(s) }

// WriteChoice implements codec.Writer.
func (w *Writer) WriteChoice(c codec.Choice) error {
	alts := c.Alternatives()
	sel := c.Selected()
	selAlt := alts[sel]

	hasExt := false
	for _, a := range alts {
		if a.Extension {
			hasExt = true
			break
		}
	}
	if hasExt {
		w.bc.WriteBit(selAlt.Extension)
	}
	if selAlt.Extension {
		extIdx := 0
		for i := 0; i < sel; i++ {
			if alts[i].Extension {
				extIdx++
			}
		}
		return firstErr(w.writeNormallySmall(int64(extIdx)), c.WriteChosen(w))
	}
	rootCount := 0
	rootIdx := 0
	for i, a := range alts {
		if a.Extension {
			continue
		}
		if i == sel {
			rootIdx = rootCount
		}
		rootCount++
	}
	bits := bitsForWidth(big.NewInt(int64(rootCount)))
	if bits > 0 {
		writeBigBits(w.bc, big.NewInt(int64(rootIdx)), bits)
	}
	return c.WriteChosen(w)
}

// ReadChoice implements codec.Reader.
func (r *Reader) ReadChoice(c codec.Choice) error {
	alts := c.Alternatives()
	hasExt := false
	for _, a := range alts {
		if a.Extension {
			hasExt = true
			break
		}
	}
	var extSelected bool
	if hasExt {
		b, err := r.bc.ReadBit()
		if err != nil {
			return err
		}
		extSelected = b
	}
	if extSelected {
		extIdx, err := r.readNormallySmall()
		if err != nil {
			return err
		}
		count := int64(-1)
		for i, a := range alts {
			if a.Extension {
				count++
				if count == extIdx {
					return c.ReadChosen(r, i)
				}
			}
		}
		return &unknownChoiceExtension{index: int(extIdx)}
	}
	rootCount := 0
	for _, a := range alts {
		if !a.Extension {
			rootCount++
		}
	}
	bits := bitsForWidth(big.NewInt(int64(rootCount)))
	rootIdx := int64(0)
	if bits > 0 {
		v, err := readBigBits(r.bc, bits)
		if err != nil {
			return err
		}
		rootIdx = v.Int64()
	}
	count := int64(-1)
	for i, a := range alts {
		if !a.Extension {
			count++
			if count == rootIdx {
				return c.ReadChosen(r, i)
			}
		}
	}
	return &unknownChoiceExtension{index: int(rootIdx)}
}

type unknownChoiceExtension struct{ index int }

func (e *unknownChoiceExtension) Error() string { return "uper: choice index out of range" }

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// WriteSequenceOf implements codec.Writer.
func (w *Writer) WriteSequenceOf(size int, sizeConstraint constraint.Size, writeElem func(i int) error) error {
	general, err := writeSizePrefix(w.bc, size, sizeConstraint)
	if err != nil {
		return err
	}
	if !general {
		for i := 0; i < size; i++ {
			if err := writeElem(i); err != nil {
				return err
			}
		}
		return nil
	}
	frags, rem := chunk.Plan(int64(size))
	offset := 0
	for _, f := range frags {
		w.bc.WriteBit(true)
		w.bc.WriteBit(true)
		w.bc.WriteBits(uint64(f/fragmentUnit), 6)
		for j := 0; j < int(f); j++ {
			if err := writeElem(offset + j); err != nil {
				return err
			}
		}
		offset += int(f)
	}
	writeShortOrLongForm(w.bc, rem)
	for j := 0; j < int(rem); j++ {
		if err := writeElem(offset + j); err != nil {
			return err
		}
	}
	return nil
}

// ReadSequenceOf implements codec.Reader.
func (r *Reader) ReadSequenceOf(sizeConstraint constraint.Size, readElem func(i int) error) (int, error) {
	n, general, err := readSizePrefix(r.bc, sizeConstraint)
	if err != nil {
		return 0, err
	}
	if !general {
		for i := 0; i < n; i++ {
			if err := readElem(i); err != nil {
				return 0, err
			}
		}
		return n, nil
	}
	idx := 0
	total, err := drainLengthDeterminant(r.bc, r.lim, func(f int64) error {
		for j := 0; j < int(f); j++ {
			if err := readElem(idx); err != nil {
				return err
			}
			idx++
		}
		return nil
	})
	return int(total), err
}

// WriteSetOf implements codec.Writer. Unlike BER/DER, PER has no
// canonical reordering requirement for SET OF, so encodeElem's deferred
// byte-slice callback is used only to get a self-contained element
// encoding; each element is then byte-aligned before being spliced in, a
// deliberate simplification documented in DESIGN.md (bit-packing density
// is traded for letting one element-encoding callback shape serve both
// uper and ber).
func (w *Writer) WriteSetOf(size int, sizeConstraint constraint.Size, encodeElem func(i int) ([]byte, error)) error {
	writeOne := func(i int) error {
		b, err := encodeElem(i)
		if err != nil {
			return err
		}
		w.bc.AlignToByte()
		w.bc.WriteBytes(b)
		return nil
	}
	general, err := writeSizePrefix(w.bc, size, sizeConstraint)
	if err != nil {
		return err
	}
	if !general {
		for i := 0; i < size; i++ {
			if err := writeOne(i); err != nil {
				return err
			}
		}
		return nil
	}
	frags, rem := chunk.Plan(int64(size))
	offset := 0
	for _, f := range frags {
		w.bc.WriteBit(true)
		w.bc.WriteBit(true)
		w.bc.WriteBits(uint64(f/fragmentUnit), 6)
		for j := 0; j < int(f); j++ {
			if err := writeOne(offset + j); err != nil {
				return err
			}
		}
		offset += int(f)
	}
	writeShortOrLongForm(w.bc, rem)
	for j := 0; j < int(rem); j++ {
		if err := writeOne(offset + j); err != nil {
			return err
		}
	}
	return nil
}

// ReadSetOf implements codec.Reader, mirroring WriteSetOf's byte-aligned
// element convention.
func (r *Reader) ReadSetOf(sizeConstraint constraint.Size, readElem func(i int) error) (int, error) {
	readOne := func(i int) error {
		r.bc.AlignToByte()
		return readElem(i)
	}
	n, general, err := readSizePrefix(r.bc, sizeConstraint)
	if err != nil {
		return 0, err
	}
	if !general {
		for i := 0; i < n; i++ {
			if err := readOne(i); err != nil {
				return 0, err
			}
		}
		return n, nil
	}
	idx := 0
	total, err := drainLengthDeterminant(r.bc, r.lim, func(f int64) error {
		for j := 0; j < int(f); j++ {
			if err := readOne(idx); err != nil {
				return err
			}
			idx++
		}
		return nil
	})
	return int(total), err
}
