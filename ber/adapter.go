package ber

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/asn1rt/asn1rt/codec"
	"github.com/asn1rt/asn1rt/constraint"
)

// Writer adapts Encoder to codec.Writer. Constraints passed to the
// Integer/string methods are accepted for interface compatibility with
// uper.Writer but not enforced: X.690 never bounds an encoding's shape by
// a declared range, only by the value actually present.
type Writer struct {
	enc  *Encoder
	rule Rule
}

// NewWriter returns a Writer with capacity bytes of initial scratch
// space, operating under rule.
func NewWriter(capacity int, rule Rule) *Writer {
	return &Writer{enc: NewEncoder(capacity, rule), rule: rule}
}

// Bytes returns the encoded TLV stream built so far.
func (w *Writer) Bytes() []byte { return w.enc.Bytes() }

var _ codec.Writer = (*Writer)(nil)

func (w *Writer) WriteBoolean(v bool) error { return w.enc.WriteBoolean(v) }

func (w *Writer) WriteInteger(v int64, _ constraint.IntegerRange) error { return w.enc.WriteInteger(v) }

func (w *Writer) WriteBigInteger(v codec.BigInt, _ constraint.IntegerRange) error {
	if err := w.enc.WriteTag(ClassUniversal, TypePrimitive, TagInteger); err != nil {
		return err
	}
	if err := w.enc.WriteLength(len(v.Bytes)); err != nil {
		return err
	}
	w.enc.WriteRaw(v.Bytes)
	return nil
}

func (w *Writer) WriteEnumerated(v asn1type.Enumerated) error {
	return w.enc.WriteEnumerated(enumeratedLabel(v))
}

// enumeratedLabel resolves the concrete integer value an Enumerated
// carries: Labels maps root indices, then extension indices, to their
// declared ASN.1 values; absent a mapping, the raw index is used.
func enumeratedLabel(v asn1type.Enumerated) int64 {
	idx := v.Index
	if v.Extended {
		idx = v.RootCount + v.ExtIndex
	}
	if idx >= 0 && idx < len(v.Labels) {
		return v.Labels[idx]
	}
	return int64(idx)
}

func (w *Writer) WriteOctetString(v []byte, _ constraint.Size) error { return w.enc.WriteOctetString(v) }

func (w *Writer) WriteBitString(v asn1type.BitString, _ constraint.Size) error {
	return w.enc.WriteBitString(v.Bits, v.BitLen)
}

func (w *Writer) WriteUtf8String(v string, _ constraint.Size) error { return w.enc.WriteUTF8String(v) }

func (w *Writer) WriteIa5String(v string, _ constraint.Size) error { return w.enc.WriteIA5String(v) }

func (w *Writer) WritePrintableString(v string, _ constraint.Size) error {
	return w.enc.WritePrintableString(v)
}

func (w *Writer) WriteNumericString(v string, _ constraint.Size) error {
	return w.enc.WriteNumericString(v)
}

func (w *Writer) WriteNull() error { return w.enc.WriteNull() }

// captureFields runs s.WriteFields through a fieldWriter so each present
// field's TagOverride (if any) is actually applied to its encoded bytes,
// returning one segment per field s.WriteFields wrote. present is
// s.Presence() filtered to s.Fields() (a field WriteFields skips writing
// must not consume a tags slot, since fieldWriter advances one slot per
// call it receives, not per declared field).
func (w *Writer) captureFields(s codec.Sequence) ([][]byte, error) {
	fields := s.Fields()
	present := s.Presence()
	tags := make([]*asn1type.TagOverride, 0, len(fields))
	for i, f := range fields {
		if i < len(present) && present[i] {
			tags = append(tags, f.Tag)
		}
	}
	fw := &fieldWriter{rule: w.rule, tags: tags}
	if err := s.WriteFields(fw); err != nil {
		return nil, err
	}
	return fw.segments, nil
}

// WriteSequence implements codec.Writer. SEQUENCE field order is always
// the declaration order, BER/DER alike, so this needs no rule branching.
func (w *Writer) WriteSequence(s codec.Sequence) error {
	segments, err := w.captureFields(s)
	if err != nil {
		return err
	}
	start := w.enc.Len()
	for _, seg := range segments {
		w.enc.WriteRaw(seg)
	}
	return w.enc.WrapConstructed(start, ClassUniversal, TagSequence)
}

// WriteSet implements codec.Writer. Under RuleDER, fields are reordered by
// ascending (class, number) of each field's resolved tag before framing,
// per X.690 §11.6's canonical SET component ordering; RuleBER keeps
// declaration order.
func (w *Writer) WriteSet(s codec.Set) error {
	segments, err := w.captureFields(s)
	if err != nil {
		return err
	}
	if w.rule == RuleDER {
		sortSegmentsByTag(segments)
	}
	start := w.enc.Len()
	for _, seg := range segments {
		w.enc.WriteRaw(seg)
	}
	return w.enc.WrapConstructed(start, ClassUniversal, TagSet)
}

// sortSegmentsByTag reorders already-encoded field segments in place by
// the (class, number) of each segment's own leading identifier octets.
func sortSegmentsByTag(segments [][]byte) {
	sort.SliceStable(segments, func(i, j int) bool {
		ci, ni, _ := peekClassNumber(segments[i])
		cj, nj, _ := peekClassNumber(segments[j])
		if ci != cj {
			return ci < cj
		}
		return ni < nj
	})
}

// peekClassNumber reads the class and tag number from a segment's leading
// identifier octet(s) without mutating it.
func peekClassNumber(segment []byte) (class, number int, err error) {
	if len(segment) == 0 {
		return 0, 0, NewDecodeError(0, "cannot read tag of empty segment", ErrUnexpectedEOF)
	}
	class = int(segment[0] & 0xC0)
	number = int(segment[0] & 0x1F)
	if number != 0x1F {
		return class, number, nil
	}
	number = 0
	for i := 1; i < len(segment); i++ {
		number = (number << 7) | int(segment[i]&0x7F)
		if segment[i]&0x80 == 0 {
			return class, number, nil
		}
	}
	return 0, 0, NewDecodeError(0, "truncated long-form tag", ErrUnexpectedEOF)
}

// WriteChoice implements codec.Writer. Every alternative must carry an
// explicit TagOverride: BER has no other generic way for a decoder to
// tell which alternative is present without first invoking the (unknown)
// inner type's own tag, so this adapter requires the schema to disambiguate
// alternatives the way real ASN.1 modules do for CHOICE members sharing a
// universal tag.
func (w *Writer) WriteChoice(c codec.Choice) error {
	alts := c.Alternatives()
	sel := c.Selected()
	alt := alts[sel]
	if alt.Tag == nil {
		return fmt.Errorf("ber: choice alternative %q has no tag override", alt.Name)
	}
	start := w.enc.Len()
	if err := c.WriteChosen(w); err != nil {
		return err
	}
	return w.enc.WrapConstructed(start, ClassContextSpecific, alt.Tag.Tag.Number)
}

// WriteSequenceOf implements codec.Writer.
func (w *Writer) WriteSequenceOf(size int, _ constraint.Size, writeElem func(i int) error) error {
	start := w.enc.Len()
	for i := 0; i < size; i++ {
		if err := writeElem(i); err != nil {
			return err
		}
	}
	return w.enc.WrapConstructed(start, ClassUniversal, TagSequence)
}

// WriteSetOf implements codec.Writer. Under RuleDER, elements are sorted
// by their encoded bytes before concatenation, per X.690's canonical SET
// OF ordering rule.
func (w *Writer) WriteSetOf(size int, _ constraint.Size, encodeElem func(i int) ([]byte, error)) error {
	elems := make([][]byte, size)
	for i := 0; i < size; i++ {
		b, err := encodeElem(i)
		if err != nil {
			return err
		}
		elems[i] = b
	}
	if w.rule == RuleDER {
		sort.Slice(elems, func(i, j int) bool { return bytes.Compare(elems[i], elems[j]) < 0 })
	}
	start := w.enc.Len()
	for _, b := range elems {
		w.enc.WriteRaw(b)
	}
	return w.enc.WrapConstructed(start, ClassUniversal, TagSet)
}

// fieldWriter wraps each SEQUENCE/SET field write into its own scratch
// Encoder, then applies that field's TagOverride (if any) to the
// resulting bytes before handing them back to Writer.captureFields. This
// is what makes FieldDescriptor.Tag (spec.md §8 scenario 5's
// context-tagged INTEGER) actually change the wire bytes, rather than
// only being consulted for presence detection on the read side.
type fieldWriter struct {
	rule     Rule
	tags     []*asn1type.TagOverride
	idx      int
	segments [][]byte
}

var _ codec.Writer = (*fieldWriter)(nil)

func (fw *fieldWriter) nextTag() *asn1type.TagOverride {
	var ov *asn1type.TagOverride
	if fw.idx < len(fw.tags) {
		ov = fw.tags[fw.idx]
	}
	fw.idx++
	return ov
}

func (fw *fieldWriter) capture(write func(codec.Writer) error) error {
	scratch := &Writer{enc: NewEncoder(16, fw.rule), rule: fw.rule}
	if err := write(scratch); err != nil {
		return err
	}
	segment := scratch.enc.Bytes()
	if ov := fw.nextTag(); ov != nil {
		var err error
		segment, err = Retag(segment, ov)
		if err != nil {
			return err
		}
	}
	fw.segments = append(fw.segments, segment)
	return nil
}

func (fw *fieldWriter) WriteBoolean(v bool) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteBoolean(v) })
}
func (fw *fieldWriter) WriteInteger(v int64, r constraint.IntegerRange) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteInteger(v, r) })
}
func (fw *fieldWriter) WriteBigInteger(v codec.BigInt, r constraint.IntegerRange) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteBigInteger(v, r) })
}
func (fw *fieldWriter) WriteEnumerated(v asn1type.Enumerated) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteEnumerated(v) })
}
func (fw *fieldWriter) WriteOctetString(v []byte, s constraint.Size) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteOctetString(v, s) })
}
func (fw *fieldWriter) WriteBitString(v asn1type.BitString, s constraint.Size) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteBitString(v, s) })
}
func (fw *fieldWriter) WriteUtf8String(v string, s constraint.Size) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteUtf8String(v, s) })
}
func (fw *fieldWriter) WriteIa5String(v string, s constraint.Size) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteIa5String(v, s) })
}
func (fw *fieldWriter) WritePrintableString(v string, s constraint.Size) error {
	return fw.capture(func(w codec.Writer) error { return w.WritePrintableString(v, s) })
}
func (fw *fieldWriter) WriteNumericString(v string, s constraint.Size) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteNumericString(v, s) })
}
func (fw *fieldWriter) WriteNull() error {
	return fw.capture(func(w codec.Writer) error { return w.WriteNull() })
}
func (fw *fieldWriter) WriteSequence(s codec.Sequence) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteSequence(s) })
}
func (fw *fieldWriter) WriteSet(s codec.Set) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteSet(s) })
}
func (fw *fieldWriter) WriteChoice(c codec.Choice) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteChoice(c) })
}
func (fw *fieldWriter) WriteSequenceOf(size int, s constraint.Size, writeElem func(i int) error) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteSequenceOf(size, s, writeElem) })
}
func (fw *fieldWriter) WriteSetOf(size int, s constraint.Size, encodeElem func(i int) ([]byte, error)) error {
	return fw.capture(func(w codec.Writer) error { return w.WriteSetOf(size, s, encodeElem) })
}

// Reader adapts Decoder to codec.Reader.
type Reader struct {
	dec  *Decoder
	rule Rule
}

// NewReader wraps data for decoding under rule.
func NewReader(data []byte, rule Rule) *Reader {
	return &Reader{dec: NewDecoder(data, rule), rule: rule}
}

var _ codec.Reader = (*Reader)(nil)

// AtEnd reports whether every byte has been consumed.
func (r *Reader) AtEnd() bool { return r.dec.Remaining() == 0 }

func (r *Reader) ReadBoolean() (bool, error) { return r.dec.ReadBoolean() }

func (r *Reader) ReadInteger(_ constraint.IntegerRange) (int64, error) { return r.dec.ReadInteger() }

func (r *Reader) ReadBigInteger(_ constraint.IntegerRange) (codec.BigInt, error) {
	content, err := r.dec.expectTag(ClassUniversal, TypePrimitive, TagInteger)
	if err != nil {
		return codec.BigInt{}, err
	}
	v := make([]byte, len(content))
	copy(v, content)
	return codec.BigInt{Bytes: v}, nil
}

func (r *Reader) ReadEnumerated(rootCount int, labels []int64, extensible bool) (asn1type.Enumerated, error) {
	v, err := r.dec.ReadEnumerated()
	if err != nil {
		return asn1type.Enumerated{}, err
	}
	for i, label := range labels {
		if label == v {
			if i < rootCount {
				return asn1type.Enumerated{RootCount: rootCount, Index: i, Labels: labels}, nil
			}
			return asn1type.Enumerated{RootCount: rootCount, Extended: true, ExtIndex: i - rootCount, Labels: labels}, nil
		}
	}
	// No label matched: v is a raw index, as enumeratedLabel writes for
	// indices past the end of labels.
	idx := int(v)
	if idx >= len(labels) && idx < rootCount {
		return asn1type.Enumerated{RootCount: rootCount, Index: idx, Labels: labels}, nil
	}
	if !extensible || idx < len(labels) || idx < rootCount {
		return asn1type.Enumerated{}, fmt.Errorf("ber: enumerated value %d not in labels", v)
	}
	return asn1type.Enumerated{RootCount: rootCount, Extended: true, ExtIndex: idx - rootCount, Labels: labels}, nil
}

func (r *Reader) ReadOctetString(_ constraint.Size) ([]byte, error) { return r.dec.ReadOctetString() }

func (r *Reader) ReadBitString(_ constraint.Size) (asn1type.BitString, error) {
	bits, bitLen, err := r.dec.ReadBitString()
	if err != nil {
		return asn1type.BitString{}, err
	}
	return asn1type.BitString{Bits: bits, BitLen: bitLen}, nil
}

func (r *Reader) ReadUtf8String(_ constraint.Size) (string, error) { return r.dec.ReadUTF8String() }

func (r *Reader) ReadIa5String(_ constraint.Size) (string, error) { return r.dec.ReadIA5String() }

func (r *Reader) ReadPrintableString(_ constraint.Size) (string, error) {
	return r.dec.ReadPrintableString()
}

func (r *Reader) ReadNumericString(_ constraint.Size) (string, error) {
	return r.dec.ReadNumericString()
}

func (r *Reader) ReadNull() error { return r.dec.ReadNull() }

// readFieldsFrom decides presence for each of s's OPTIONAL/DEFAULT fields
// by peeking sub's next tag against the field's declared TagOverride
// (required wherever two adjacent optional fields could otherwise be
// ambiguous, same constraint X.690 itself imposes on real schemas), then
// runs s.ReadFields through a fieldReader temporarily repointed at sub so
// each present field's TagOverride is actually applied to the bytes that
// field's Read call consumes.
func (r *Reader) readFieldsFrom(sub *Decoder, s codec.Sequence) error {
	fields := s.Fields()
	present := computePresence(sub, fields)

	tags := make([]*asn1type.TagOverride, 0, len(fields))
	for i, f := range fields {
		if present[i] {
			tags = append(tags, f.Tag)
		}
	}

	saved := r.dec
	r.dec = sub
	fr := &fieldReader{r: r, tags: tags}
	err := s.ReadFields(fr, present)
	r.dec = saved
	return err
}

// computePresence decides, field by field in declaration order, whether a
// SEQUENCE/SET field was written: REQUIRED fields are always present;
// an OPTIONAL/DEFAULT field with a TagOverride is present only if the
// next unread tag matches it; one with no TagOverride is assumed present
// whenever any input remains (the adapter has no tag-free way to tell
// apart an omitted field from the one that follows it).
func computePresence(sub *Decoder, fields []asn1type.FieldDescriptor) []bool {
	present := make([]bool, len(fields))
	for i, f := range fields {
		switch {
		case f.Kind == asn1type.FieldRequired:
			present[i] = true
		case sub.Remaining() == 0:
			present[i] = false
		case f.Tag != nil:
			present[i] = sub.IsContextTag(f.Tag.Tag.Number)
		default:
			present[i] = true
		}
	}
	return present
}

// reorderSetContent restores a DER SET's fields to declaration order so
// readFieldsFrom's positional assumption (wire order == declaration
// order, true for SEQUENCE) holds for SET too, undoing the tag sort
// WriteSet applied. Only possible when every field is tagged, since
// matching a segment back to a field requires knowing that field's wire
// tag; a SET with any untagged field is left in wire order (whatever
// WriteSet under the active Rule produced), matching this adapter's
// pre-reorder behavior for that case.
func reorderSetContent(sub *Decoder, fields []asn1type.FieldDescriptor) (*Decoder, error) {
	for _, f := range fields {
		if f.Tag == nil {
			return sub, nil
		}
	}

	raw := append([]byte(nil), sub.data[sub.offset:]...)
	scan := NewDecoder(raw, sub.rule)
	segs, err := scan.segments()
	if err != nil {
		return sub, nil
	}

	byTag := make(map[[2]int][]byte, len(segs))
	for _, seg := range segs {
		class, number, err := peekClassNumber(seg)
		if err != nil {
			return sub, nil
		}
		byTag[[2]int{class, number}] = seg
	}

	ordered := make([]byte, 0, len(raw))
	for _, f := range fields {
		key := [2]int{classByte(f.Tag.Tag.Class), f.Tag.Tag.Number}
		seg, ok := byTag[key]
		if !ok {
			continue // field absent (OPTIONAL/DEFAULT); readFieldsFrom's own presence check handles it
		}
		ordered = append(ordered, seg...)
	}
	return NewDecoder(ordered, sub.rule), nil
}

// ReadSequence implements codec.Reader.
func (r *Reader) ReadSequence(s codec.Sequence) error {
	sub, err := r.dec.ReadSequenceContents()
	if err != nil {
		return err
	}
	return r.readFieldsFrom(sub, s)
}

// ReadSet implements codec.Reader. Fields are restored to declaration
// order before readFieldsFrom runs; see reorderSetContent.
func (r *Reader) ReadSet(s codec.Set) error {
	sub, err := r.dec.ReadSetContents()
	if err != nil {
		return err
	}
	reordered, err := reorderSetContent(sub, s.Fields())
	if err != nil {
		return err
	}
	return r.readFieldsFrom(reordered, s)
}

// ReadChoice implements codec.Reader; see WriteChoice for the explicit-
// tag requirement this relies on.
func (r *Reader) ReadChoice(c codec.Choice) error {
	alts := c.Alternatives()
	class, _, number, err := r.dec.PeekTag()
	if err != nil {
		return err
	}
	if class != ClassContextSpecific {
		return fmt.Errorf("ber: choice expects a context-specific tag, got class %d", class)
	}
	for i, a := range alts {
		if a.Tag != nil && a.Tag.Tag.Number == number {
			sub, err := r.dec.ReadContextTagContents(number)
			if err != nil {
				return err
			}
			return c.ReadChosen(&Reader{dec: sub, rule: r.rule}, i)
		}
	}
	return fmt.Errorf("ber: no choice alternative matches context tag %d", number)
}

// ReadSequenceOf implements codec.Reader.
func (r *Reader) ReadSequenceOf(_ constraint.Size, readElem func(i int) error) (int, error) {
	sub, err := r.dec.ReadSequenceContents()
	if err != nil {
		return 0, err
	}
	saved := r.dec
	r.dec = sub
	i := 0
	for sub.Remaining() > 0 {
		if err := readElem(i); err != nil {
			r.dec = saved
			return i, err
		}
		i++
	}
	r.dec = saved
	return i, nil
}

// ReadSetOf implements codec.Reader.
func (r *Reader) ReadSetOf(_ constraint.Size, readElem func(i int) error) (int, error) {
	sub, err := r.dec.ReadSetContents()
	if err != nil {
		return 0, err
	}
	saved := r.dec
	r.dec = sub
	i := 0
	for sub.Remaining() > 0 {
		if err := readElem(i); err != nil {
			r.dec = saved
			return i, err
		}
		i++
	}
	r.dec = saved
	return i, nil
}

// fieldReader wraps each SEQUENCE/SET field read so a present field's
// TagOverride (if any) is applied before the field's own ordinary Read
// call sees the bytes: implicit tagging rewrites the wire identifier back
// to the field's base universal tag; explicit tagging unwraps the outer
// TLV. Without this, a field encoded under an implicit context-specific
// tag would fail its own Read call's tag check even though
// readFieldsFrom's presence peek had already matched it correctly.
type fieldReader struct {
	r    *Reader
	tags []*asn1type.TagOverride
	idx  int
}

var _ codec.Reader = (*fieldReader)(nil)

func (fr *fieldReader) nextTag() *asn1type.TagOverride {
	var ov *asn1type.TagOverride
	if fr.idx < len(fr.tags) {
		ov = fr.tags[fr.idx]
	}
	fr.idx++
	return ov
}

// withTag applies the current field's TagOverride (if any), running read
// against a standalone Decoder scoped to just that field's TLV, then
// restores fr.r's shared content decoder so the next field keeps reading
// in sequence. hasBase/baseClass/baseNumber describe the field's own
// intrinsic tag, needed to rewrite an implicit override back to something
// the field's ordinary Read method recognizes (see Decoder.applyTagOverride).
func (fr *fieldReader) withTag(hasBase bool, baseClass, baseNumber int, read func(*Reader) error) error {
	ov := fr.nextTag()
	if ov == nil {
		return read(fr.r)
	}
	retagged, err := fr.r.dec.applyTagOverride(ov, hasBase, baseClass, baseNumber)
	if err != nil {
		return err
	}
	saved := fr.r.dec
	fr.r.dec = retagged
	err = read(fr.r)
	fr.r.dec = saved
	return err
}

func (fr *fieldReader) ReadBoolean() (v bool, err error) {
	err = fr.withTag(true, ClassUniversal, TagBoolean, func(r *Reader) error { v, err = r.ReadBoolean(); return err })
	return
}
func (fr *fieldReader) ReadInteger(rng constraint.IntegerRange) (v int64, err error) {
	err = fr.withTag(true, ClassUniversal, TagInteger, func(r *Reader) error { v, err = r.ReadInteger(rng); return err })
	return
}
func (fr *fieldReader) ReadBigInteger(rng constraint.IntegerRange) (v codec.BigInt, err error) {
	err = fr.withTag(true, ClassUniversal, TagInteger, func(r *Reader) error { v, err = r.ReadBigInteger(rng); return err })
	return
}
func (fr *fieldReader) ReadEnumerated(rootCount int, labels []int64, extensible bool) (v asn1type.Enumerated, err error) {
	err = fr.withTag(true, ClassUniversal, TagEnumerated, func(r *Reader) error {
		v, err = r.ReadEnumerated(rootCount, labels, extensible)
		return err
	})
	return
}
func (fr *fieldReader) ReadOctetString(sz constraint.Size) (v []byte, err error) {
	err = fr.withTag(true, ClassUniversal, TagOctetString, func(r *Reader) error { v, err = r.ReadOctetString(sz); return err })
	return
}
func (fr *fieldReader) ReadBitString(sz constraint.Size) (v asn1type.BitString, err error) {
	err = fr.withTag(true, ClassUniversal, TagBitString, func(r *Reader) error { v, err = r.ReadBitString(sz); return err })
	return
}
func (fr *fieldReader) ReadUtf8String(sz constraint.Size) (v string, err error) {
	err = fr.withTag(true, ClassUniversal, TagUTF8String, func(r *Reader) error { v, err = r.ReadUtf8String(sz); return err })
	return
}
func (fr *fieldReader) ReadIa5String(sz constraint.Size) (v string, err error) {
	err = fr.withTag(true, ClassUniversal, TagIA5String, func(r *Reader) error { v, err = r.ReadIa5String(sz); return err })
	return
}
func (fr *fieldReader) ReadPrintableString(sz constraint.Size) (v string, err error) {
	err = fr.withTag(true, ClassUniversal, TagPrintableString, func(r *Reader) error {
		v, err = r.ReadPrintableString(sz)
		return err
	})
	return
}
func (fr *fieldReader) ReadNumericString(sz constraint.Size) (v string, err error) {
	err = fr.withTag(true, ClassUniversal, TagNumericString, func(r *Reader) error {
		v, err = r.ReadNumericString(sz)
		return err
	})
	return
}
func (fr *fieldReader) ReadNull() error {
	return fr.withTag(true, ClassUniversal, TagNull, func(r *Reader) error { return r.ReadNull() })
}
func (fr *fieldReader) ReadSequence(s codec.Sequence) error {
	return fr.withTag(true, ClassUniversal, TagSequence, func(r *Reader) error { return r.ReadSequence(s) })
}
func (fr *fieldReader) ReadSet(s codec.Set) error {
	return fr.withTag(true, ClassUniversal, TagSet, func(r *Reader) error { return r.ReadSet(s) })
}
func (fr *fieldReader) ReadChoice(c codec.Choice) error {
	return fr.withTag(false, 0, 0, func(r *Reader) error { return r.ReadChoice(c) })
}
func (fr *fieldReader) ReadSequenceOf(sz constraint.Size, readElem func(i int) error) (n int, err error) {
	err = fr.withTag(true, ClassUniversal, TagSequence, func(r *Reader) error {
		n, err = r.ReadSequenceOf(sz, readElem)
		return err
	})
	return
}
func (fr *fieldReader) ReadSetOf(sz constraint.Size, readElem func(i int) error) (n int, err error) {
	err = fr.withTag(true, ClassUniversal, TagSet, func(r *Reader) error {
		n, err = r.ReadSetOf(sz, readElem)
		return err
	})
	return
}
