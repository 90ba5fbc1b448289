// Package constraint carries the per-type constraint data from spec.md
// §3/§4.2: integer value ranges, size ranges, character sets,
// extensibility, and default values. Constraints are meant to be built
// once, at schema-author time, as package-level values — the "compile-time
// type descriptor" design note in spec.md §9 — so asn1type and the uper/ber
// engines branch on constant data rather than recomputing bounds per call.
package constraint

import "math/big"

// IntegerRange models spec.md's ConstraintRange<T> for INTEGER and
// ENUMERATED-as-integer values. A nil Min or Max means unbounded on that
// side (the "MIN"/"MAX" of spec.md's unbounded-integer PER rule).
type IntegerRange struct {
	Min        *big.Int
	Max        *big.Int
	Extensible bool
}

// Unconstrained returns a range with no bounds.
func Unconstrained() IntegerRange { return IntegerRange{} }

// Constrained returns a fully-bounded, non-extensible range.
func Constrained(min, max int64) IntegerRange {
	return IntegerRange{Min: big.NewInt(min), Max: big.NewInt(max)}
}

// ConstrainedBig is Constrained for values that exceed int64.
func ConstrainedBig(min, max *big.Int) IntegerRange {
	return IntegerRange{Min: min, Max: max}
}

// SemiConstrained returns a range with only a minimum bound.
func SemiConstrained(min int64) IntegerRange {
	return IntegerRange{Min: big.NewInt(min)}
}

// WithExtensible returns a copy of r with the extensible flag set.
func (r IntegerRange) WithExtensible() IntegerRange {
	r.Extensible = true
	return r
}

// Kind classifies a range into the three states spec.md §3 names.
type Kind int

const (
	// KindUnbounded has neither a Min nor a Max.
	KindUnbounded Kind = iota
	// KindHalfBounded has exactly one of Min or Max.
	KindHalfBounded
	// KindFullyBounded has both Min and Max.
	KindFullyBounded
)

// Kind reports which of the three range states r is in.
func (r IntegerRange) Kind() Kind {
	switch {
	case r.Min != nil && r.Max != nil:
		return KindFullyBounded
	case r.Min != nil || r.Max != nil:
		return KindHalfBounded
	default:
		return KindUnbounded
	}
}

// RangeWidth returns max-min+1 for a fully-bounded range. Callers must
// check Kind() == KindFullyBounded first.
func (r IntegerRange) RangeWidth() *big.Int {
	width := new(big.Int).Sub(r.Max, r.Min)
	return width.Add(width, big.NewInt(1))
}

// Contains reports whether v falls within the root range (ignoring
// extensibility — callers decide whether an out-of-range value is legal
// via the extension path).
func (r IntegerRange) Contains(v *big.Int) bool {
	if r.Min != nil && v.Cmp(r.Min) < 0 {
		return false
	}
	if r.Max != nil && v.Cmp(r.Max) > 0 {
		return false
	}
	return true
}

// SizeKind mirrors spec.md's SizeConstraint: Any, Fix(n, extensible), or
// Range(min, max, extensible).
type SizeKind int

const (
	SizeAny SizeKind = iota
	SizeFixed
	SizeRanged
)

// Size models a SIZE constraint on octet strings, bit strings, character
// strings, and SEQUENCE OF/SET OF collections.
type Size struct {
	Kind       SizeKind
	Min        int
	Max        int
	Extensible bool
}

// AnySize returns an unconstrained size.
func AnySize() Size { return Size{Kind: SizeAny} }

// FixedSize returns a SIZE(n) constraint, optionally extensible.
func FixedSize(n int, extensible bool) Size {
	return Size{Kind: SizeFixed, Min: n, Max: n, Extensible: extensible}
}

// RangedSize returns a SIZE(min..max) constraint, optionally extensible.
func RangedSize(min, max int, extensible bool) Size {
	return Size{Kind: SizeRanged, Min: min, Max: max, Extensible: extensible}
}

// InRoot reports whether n satisfies the size constraint's root bounds
// (ignoring extensibility, same convention as IntegerRange.Contains).
func (s Size) InRoot(n int) bool {
	switch s.Kind {
	case SizeAny:
		return true
	case SizeFixed, SizeRanged:
		return n >= s.Min && n <= s.Max
	default:
		return false
	}
}

// Default pairs a default value with the equality function SEQUENCE
// DEFAULT-field omission needs (spec.md §4.3's "DEFAULT fields compare
// values via a defined equality on the host type"). Go has no derived
// equality for slice/map-bearing types, so the equality function is
// supplied explicitly.
type Default[T any] struct {
	Value T
	Equal func(a, b T) bool
}

// IsDefault reports whether v equals the default value.
func (d Default[T]) IsDefault(v T) bool { return d.Equal(v, d.Value) }
