// Package codec defines the reader/writer dispatch protocol spec.md §4.5
// describes: one operation per ASN.1 primitive, plus the structural
// operations composite types need, so that swapping a uper.Writer for a
// ber.Writer changes only which engine executes the call — no user type
// carries encoding-rule-specific source code.
//
// Every primitive call that spec.md constrains (INTEGER, the string
// families, BIT/OCTET STRING) takes its constraint.IntegerRange or
// constraint.Size explicitly, since asn1type's marker types carry no
// constraint of their own — constraints live where the schema author
// declares them (see constraint.IntegerRange's compile-time-constant design
// note in spec.md §9) and are threaded through the call, not the type.
package codec

import (
	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/asn1rt/asn1rt/constraint"
)

// Writer is implemented by uper.Writer and ber.Writer (wrapping BER/DER).
// Every method either succeeds or returns an error; a writer
// that has returned an error is left in an indeterminate state and must be
// discarded (spec.md §7).
type Writer interface {
	WriteBoolean(v bool) error
	WriteInteger(v int64, r constraint.IntegerRange) error
	WriteBigInteger(v BigInt, r constraint.IntegerRange) error
	WriteEnumerated(v asn1type.Enumerated) error
	WriteOctetString(v []byte, size constraint.Size) error
	WriteBitString(v asn1type.BitString, size constraint.Size) error
	WriteUtf8String(v string, size constraint.Size) error
	WriteIa5String(v string, size constraint.Size) error
	WritePrintableString(v string, size constraint.Size) error
	WriteNumericString(v string, size constraint.Size) error
	WriteNull() error

	// WriteSequence emits SEQUENCE framing (extension flag, presence
	// bitmap, TLV header — whichever the engine needs) then invokes the
	// type's WriteFields, which calls back into the same Writer for each
	// present field.
	WriteSequence(s Sequence) error
	// WriteSet is WriteSequence for SET (PER and BER: declaration order;
	// DER: fields ordered by tag, per spec.md §4.4's DER rules).
	WriteSet(s Set) error
	// WriteChoice emits the extension flag and alternative index, then
	// invokes the chosen alternative's write callback.
	WriteChoice(c Choice) error
	// WriteSequenceOf emits the length determinant for size elements then
	// calls writeElem once per element, in order.
	WriteSequenceOf(size int, sizeConstraint constraint.Size, writeElem func(i int) error) error
	// WriteSetOf is WriteSequenceOf, except under DER the engine defers
	// each element's bytes and sorts them before concatenating (spec.md
	// §9's "encode_deferred"). encodeElem must return the fully encoded
	// bytes of element i using a scratch writer of the same kind.
	WriteSetOf(size int, sizeConstraint constraint.Size, encodeElem func(i int) ([]byte, error)) error
}

// Reader is the decode-side counterpart of Writer.
type Reader interface {
	ReadBoolean() (bool, error)
	ReadInteger(r constraint.IntegerRange) (int64, error)
	ReadBigInteger(r constraint.IntegerRange) (BigInt, error)
	ReadEnumerated(rootCount int, labels []int64, extensible bool) (asn1type.Enumerated, error)
	ReadOctetString(size constraint.Size) ([]byte, error)
	ReadBitString(size constraint.Size) (asn1type.BitString, error)
	ReadUtf8String(size constraint.Size) (string, error)
	ReadIa5String(size constraint.Size) (string, error)
	ReadPrintableString(size constraint.Size) (string, error)
	ReadNumericString(size constraint.Size) (string, error)
	ReadNull() error

	ReadSequence(s Sequence) error
	ReadSet(s Set) error
	ReadChoice(c Choice) error
	ReadSequenceOf(sizeConstraint constraint.Size, readElem func(i int) error) (int, error)
	ReadSetOf(sizeConstraint constraint.Size, readElem func(i int) error) (int, error)
}

// Sequence is implemented by user types modeling an ASN.1 SEQUENCE.
// Fields lists the field descriptors in declaration order (root fields
// first, then extension-group fields) so the engine can build the
// extension flag and presence bitmap before invoking the callbacks.
type Sequence interface {
	Fields() []asn1type.FieldDescriptor
	// Presence reports, for each entry in Fields() (same index order),
	// whether that field is present (required fields are always true;
	// OPTIONAL/DEFAULT fields reflect the value actually held). The engine
	// calls this before emitting the presence bitmap, since PER must know
	// which optional root fields are present before it can write any of
	// them.
	Presence() []bool
	// WriteFields is invoked once framing has been emitted. It must write
	// exactly the present fields, in Fields() order, through w.
	WriteFields(w Writer) error
	// ReadFields is invoked once framing has been consumed and decoded,
	// telling the callback which fields are present via present (indexed
	// the same as Fields()).
	ReadFields(r Reader, present []bool) error
}

// Set is identical to Sequence in PER; the ber engine additionally orders
// DER output by tag number using each FieldDescriptor's Tag override.
type Set interface {
	Sequence
}

// Choice is implemented by user types modeling an ASN.1 CHOICE.
type Choice interface {
	Alternatives() []asn1type.ChoiceAlternative
	Selected() int
	WriteChosen(w Writer) error
	ReadChosen(r Reader, index int) error
}

// BigInt is the wire-agnostic carrier for INTEGER/ENUMERATED values wider
// than int64; it wraps math/big.Int's canonical two's-complement byte
// form so neither engine needs to import math/big directly at the
// interface boundary.
type BigInt struct {
	// Bytes is the minimal two's-complement big-endian representation.
	Bytes []byte
}
