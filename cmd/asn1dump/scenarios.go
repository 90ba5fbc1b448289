package main

import (
	"bytes"
	"fmt"

	"github.com/asn1rt/asn1rt"
	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/asn1rt/asn1rt/ber"
	"github.com/asn1rt/asn1rt/codec"
	"github.com/asn1rt/asn1rt/constraint"
)

// scenario is one of spec.md §8's concrete seed scenarios: a name, a
// description giving the input and its expected wire form, and a run
// function that reproduces it against this module's own codecs.
type scenario struct {
	name string
	desc string
	run  func() error
}

func scenarios() []scenario {
	return []scenario{
		{
			name: "uper-boolean-true",
			desc: "UPER BOOLEAN true alone -> [0x80], 1 bit",
			run:  scenarioBooleanTrue,
		},
		{
			name: "uper-integer-constrained",
			desc: "UPER INTEGER(0..255) value 123 -> [0x7B], 8 bits",
			run:  scenarioIntegerConstrained,
		},
		{
			name: "uper-integer-unconstrained",
			desc: "UPER unconstrained INTEGER value 123 -> [0x01, 0x7B]",
			run:  scenarioIntegerUnconstrained,
		},
		{
			name: "uper-sequence-roundtrip",
			desc: "UPER SEQUENCE{range,name,fuel,payload} round-trips",
			run:  scenarioSequenceRoundTrip,
		},
		{
			name: "der-tagged-pair",
			desc: "DER 30 06 80 01 09 81 01 09 decodes to two [n] INTEGER 9",
			run:  scenarioDerTaggedPair,
		},
		{
			name: "uper-enumerated-extension",
			desc: "UPER extensible ENUMERATED value Ghi (1st extension) -> [0x80]",
			run:  scenarioEnumeratedExtension,
		},
	}
}

// singleBool wraps one required BOOLEAN field, so its PER encoding is
// exactly the field's own bits with no extra framing (no optional fields,
// no extension marker).
type singleBool struct{ v bool }

func (s *singleBool) Fields() []asn1type.FieldDescriptor {
	return []asn1type.FieldDescriptor{{Name: "v", Kind: asn1type.FieldRequired}}
}
func (s *singleBool) Presence() []bool                 { return []bool{true} }
func (s *singleBool) WriteFields(w codec.Writer) error { return w.WriteBoolean(s.v) }
func (s *singleBool) ReadFields(r codec.Reader, _ []bool) error {
	v, err := r.ReadBoolean()
	s.v = v
	return err
}

func scenarioBooleanTrue() error {
	data, bitLen, err := asn1rt.EncodeUPER(&singleBool{v: true})
	if err != nil {
		return err
	}
	return checkWire(data, bitLen, []byte{0x80}, 1)
}

// singleInt wraps one required INTEGER field under a caller-supplied range.
type singleInt struct {
	v   int64
	rng constraint.IntegerRange
}

func (s *singleInt) Fields() []asn1type.FieldDescriptor {
	return []asn1type.FieldDescriptor{{Name: "v", Kind: asn1type.FieldRequired}}
}
func (s *singleInt) Presence() []bool                 { return []bool{true} }
func (s *singleInt) WriteFields(w codec.Writer) error { return w.WriteInteger(s.v, s.rng) }
func (s *singleInt) ReadFields(r codec.Reader, _ []bool) error {
	v, err := r.ReadInteger(s.rng)
	s.v = v
	return err
}

func scenarioIntegerConstrained() error {
	data, bitLen, err := asn1rt.EncodeUPER(&singleInt{v: 123, rng: constraint.Constrained(0, 255)})
	if err != nil {
		return err
	}
	return checkWire(data, bitLen, []byte{0x7B}, 8)
}

func scenarioIntegerUnconstrained() error {
	data, bitLen, err := asn1rt.EncodeUPER(&singleInt{v: 123, rng: constraint.Unconstrained()})
	if err != nil {
		return err
	}
	return checkWire(data, bitLen, []byte{0x01, 0x7B}, 16)
}

// rocket mirrors spec.md §8 scenario 4: a SEQUENCE of an unconstrained
// INTEGER, a SIZE(1..16) UTF8String, a 3-value ENUMERATED, and a
// SEQUENCE OF UTF8String.
type rocket struct {
	Range   int64
	Name    string
	Fuel    asn1type.Enumerated
	Payload []string
}

func (r *rocket) Fields() []asn1type.FieldDescriptor {
	return []asn1type.FieldDescriptor{
		{Name: "range", Kind: asn1type.FieldRequired},
		{Name: "name", Kind: asn1type.FieldRequired},
		{Name: "fuel", Kind: asn1type.FieldRequired},
		{Name: "payload", Kind: asn1type.FieldRequired},
	}
}
func (r *rocket) Presence() []bool { return []bool{true, true, true, true} }

func (r *rocket) WriteFields(w codec.Writer) error {
	if err := w.WriteInteger(r.Range, constraint.Unconstrained()); err != nil {
		return err
	}
	if err := w.WriteUtf8String(r.Name, constraint.RangedSize(1, 16, false)); err != nil {
		return err
	}
	if err := w.WriteEnumerated(r.Fuel); err != nil {
		return err
	}
	return w.WriteSequenceOf(len(r.Payload), constraint.AnySize(), func(i int) error {
		return w.WriteUtf8String(r.Payload[i], constraint.AnySize())
	})
}

func (r *rocket) ReadFields(rd codec.Reader, _ []bool) error {
	v, err := rd.ReadInteger(constraint.Unconstrained())
	if err != nil {
		return err
	}
	r.Range = v

	name, err := rd.ReadUtf8String(constraint.RangedSize(1, 16, false))
	if err != nil {
		return err
	}
	r.Name = name

	fuel, err := rd.ReadEnumerated(3, []int64{0, 1, 2}, false)
	if err != nil {
		return err
	}
	r.Fuel = fuel

	n, err := rd.ReadSequenceOf(constraint.AnySize(), func(i int) error {
		s, err := rd.ReadUtf8String(constraint.AnySize())
		if err != nil {
			return err
		}
		r.Payload = append(r.Payload, s)
		return nil
	})
	if err != nil {
		return err
	}
	_ = n
	return nil
}

func scenarioSequenceRoundTrip() error {
	original := &rocket{
		Range:   34028236692,
		Name:    "Falcon",
		Fuel:    asn1type.Enumerated{RootCount: 3, Index: 0},
		Payload: []string{"Car", "GPS"},
	}
	data, bitLen, err := asn1rt.EncodeUPER(original)
	if err != nil {
		return err
	}
	got := &rocket{}
	if err := asn1rt.DecodeUPER(data, bitLen, got); err != nil {
		return err
	}
	sameFuel := got.Fuel.RootCount == original.Fuel.RootCount &&
		got.Fuel.Index == original.Fuel.Index &&
		got.Fuel.Extensible == original.Fuel.Extensible &&
		got.Fuel.Extended == original.Fuel.Extended &&
		got.Fuel.ExtIndex == original.Fuel.ExtIndex
	if got.Range != original.Range || got.Name != original.Name || !sameFuel {
		return fmt.Errorf("round-trip mismatch: got %+v, want %+v", got, original)
	}
	if len(got.Payload) != len(original.Payload) {
		return fmt.Errorf("payload length mismatch: got %d, want %d", len(got.Payload), len(original.Payload))
	}
	for i := range original.Payload {
		if got.Payload[i] != original.Payload[i] {
			return fmt.Errorf("payload[%d] mismatch: got %q, want %q", i, got.Payload[i], original.Payload[i])
		}
	}
	return nil
}

// taggedPair mirrors spec.md §8 scenario 5: a SEQUENCE of two
// context-specific-tagged INTEGERs.
type taggedPair struct{ a, b int64 }

func (p *taggedPair) Fields() []asn1type.FieldDescriptor {
	tag := func(n int) *asn1type.TagOverride {
		return &asn1type.TagOverride{Tag: asn1type.Tag{Class: asn1type.ClassContextSpecific, Number: n}}
	}
	return []asn1type.FieldDescriptor{
		{Name: "a", Kind: asn1type.FieldRequired, Tag: tag(0)},
		{Name: "b", Kind: asn1type.FieldRequired, Tag: tag(1)},
	}
}
func (p *taggedPair) Presence() []bool { return []bool{true, true} }
func (p *taggedPair) WriteFields(w codec.Writer) error {
	if err := w.WriteInteger(p.a, constraint.Unconstrained()); err != nil {
		return err
	}
	return w.WriteInteger(p.b, constraint.Unconstrained())
}
func (p *taggedPair) ReadFields(r codec.Reader, _ []bool) error {
	a, err := r.ReadInteger(constraint.Unconstrained())
	if err != nil {
		return err
	}
	p.a = a
	b, err := r.ReadInteger(constraint.Unconstrained())
	if err != nil {
		return err
	}
	p.b = b
	return nil
}

func scenarioDerTaggedPair() error {
	wire := []byte{0x30, 0x06, 0x80, 0x01, 0x09, 0x81, 0x01, 0x09}
	got := &taggedPair{}
	r := ber.NewReader(wire, ber.RuleDER)
	if err := r.ReadSequence(got); err != nil {
		return err
	}
	if got.a != 9 || got.b != 9 {
		return fmt.Errorf("decoded (%d, %d), want (9, 9)", got.a, got.b)
	}
	return nil
}

// singleEnum wraps one required ENUMERATED field.
type singleEnum struct{ v asn1type.Enumerated }

func (s *singleEnum) Fields() []asn1type.FieldDescriptor {
	return []asn1type.FieldDescriptor{{Name: "v", Kind: asn1type.FieldRequired}}
}
func (s *singleEnum) Presence() []bool                 { return []bool{true} }
func (s *singleEnum) WriteFields(w codec.Writer) error { return w.WriteEnumerated(s.v) }
func (s *singleEnum) ReadFields(r codec.Reader, _ []bool) error {
	v, err := r.ReadEnumerated(2, []int64{0, 5}, true)
	s.v = v
	return err
}

func scenarioEnumeratedExtension() error {
	// {abc(0), def(5), ..., ghi(8), jkl(9)}: abc/def are root (RootCount=2),
	// ghi is the first extension addition (ExtIndex=0).
	v := asn1type.Enumerated{RootCount: 2, Extensible: true, Extended: true, ExtIndex: 0, Labels: []int64{0, 5}}
	data, bitLen, err := asn1rt.EncodeUPER(&singleEnum{v: v})
	if err != nil {
		return err
	}
	return checkWire(data, bitLen, []byte{0x80}, 8)
}

func checkWire(got []byte, gotBitLen int, want []byte, wantBitLen int) error {
	if gotBitLen != wantBitLen {
		return fmt.Errorf("bit length %d, want %d", gotBitLen, wantBitLen)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("wire bytes %x, want %x", got, want)
	}
	return nil
}
