package asn1type

import "github.com/asn1rt/asn1rt/constraint"

// FieldKind classifies a SEQUENCE/SET field's presence behavior for the
// presence-bitmap framing in spec.md §4.3 step 2.
type FieldKind int

const (
	// FieldRequired fields are always present; no presence bit is emitted.
	FieldRequired FieldKind = iota
	// FieldOptional fields get a presence bit with no default value.
	FieldOptional
	// FieldDefault fields get a presence bit; the encoder MAY omit the
	// field when it equals the default (decoder MUST accept both forms).
	FieldDefault
)

// FieldDescriptor describes one field of a Sequence/Set for framing
// purposes: whether it is a root or extension-group member, and how its
// presence is signaled. The field's own read/write logic lives in the
// composite type's ReadFields/WriteFields callback; FieldDescriptor only
// carries the framing metadata the engine needs before it calls back in.
type FieldDescriptor struct {
	Name      string
	Kind      FieldKind
	Extension bool // true if this is an extension-group member, not root
	Tag       *TagOverride
}

// ChoiceAlternative describes one CHOICE arm.
type ChoiceAlternative struct {
	Name      string
	Extension bool
	Tag       *TagOverride
}

// Optional wraps a value that may be absent. Present tracks whether the
// presence bit (PER) / field absence (BER/DER) indicated a value.
type Optional[T any] struct {
	Value   T
	Present bool
}

// DefaultField wraps a value together with the constraint.Default it is
// compared against for omission (spec.md §4.3's DEFAULT field rule).
type DefaultField[T any] struct {
	Value   T
	Default constraint.Default[T]
}

// IsDefault reports whether the field's current value equals its default.
func (d DefaultField[T]) IsDefault() bool { return d.Default.IsDefault(d.Value) }

// Enumerated models an ASN.1 ENUMERATED value: an index into the root
// variant list, or an extension index when Extended is true. Labels gives
// the declared numeric label for each root variant in declaration order
// (spec.md §4.3: "declared numeric labels do NOT affect root indexing").
// Extensible reflects the schema's "..." marker independently of Labels —
// a labeled enum need not be extensible, and an extensible enum need not
// declare labels — so it, not len(Labels), is what governs whether the
// root/extension flag is written or read.
type Enumerated struct {
	RootCount  int
	Index      int
	Extensible bool
	Extended   bool
	ExtIndex   int
	Labels     []int64
}

// BitString is the host representation of an ASN.1 BIT STRING: an explicit
// bit length independent of the storage byte length (spec.md §3's BitVec).
type BitString struct {
	Bits   []byte
	BitLen int
}

// ByteLen returns ceil(BitLen/8), the BitVec invariant from spec.md §3.
func (b BitString) ByteLen() int { return (b.BitLen + 7) / 8 }

// Null models the ASN.1 NULL type: a type with exactly one value.
type Null struct{}

// SequenceOf models SEQUENCE OF T: an ordered collection with a size
// constraint (spec.md §4.3).
type SequenceOf[T any] struct {
	Elements []T
	Size     constraint.Size
}

// SetOf models SET OF T. Under DER its elements must be encoded and then
// reordered into ascending lexicographic order of their encoded bytes
// (spec.md §9); that reordering happens in the ber engine, not here, since
// it requires the encoded byte strings.
type SetOf[T any] struct {
	Elements []T
	Size     constraint.Size
}
