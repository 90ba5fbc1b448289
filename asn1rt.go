// Package asn1rt is the top-level entry point: EncodeUPER/DecodeUPER and
// EncodeBER/DecodeBER/EncodeDER/DecodeDER wire a schema type (any value
// implementing codec.Sequence, the shape every top-level ASN.1 message
// takes) through the uper or ber engine. It exists as its own package,
// separate from codec, because codec must stay importable by both
// engines without importing either of them back.
package asn1rt

import (
	"github.com/asn1rt/asn1rt/asn1err"
	"github.com/asn1rt/asn1rt/ber"
	"github.com/asn1rt/asn1rt/codec"
	"github.com/asn1rt/asn1rt/limits"
	"github.com/asn1rt/asn1rt/uper"
)

// EncodeUPER encodes m using the Unaligned Packed Encoding Rules,
// returning the byte-padded wire form and the exact bit length, since a
// UPER decoder needs to know where meaningful content ends within the
// final padded byte.
func EncodeUPER(m codec.Sequence) (data []byte, bitLen int, err error) {
	return EncodeUPERWithLimits(m, limits.Default())
}

// EncodeUPERWithLimits is EncodeUPER with lim recorded on the underlying
// uper.Writer; encoding does not check the lengths it writes against lim.
func EncodeUPERWithLimits(m codec.Sequence, lim limits.Limits) (data []byte, bitLen int, err error) {
	w := uper.NewWriter(64).WithLimits(lim)
	if err := w.WriteSequence(m); err != nil {
		return nil, 0, err
	}
	return w.Bytes(), w.BitLen(), nil
}

// DecodeUPER decodes data (bitLen meaningful bits) into m, then verifies
// every meaningful bit was consumed.
func DecodeUPER(data []byte, bitLen int, m codec.Sequence) error {
	return DecodeUPERWithLimits(data, bitLen, m, limits.Default())
}

// DecodeUPERWithLimits is DecodeUPER with an explicit ceiling on any
// fragmented length determinant encountered while decoding.
func DecodeUPERWithLimits(data []byte, bitLen int, m codec.Sequence, lim limits.Limits) error {
	r := uper.NewReader(data, bitLen, lim)
	if err := r.ReadSequence(m); err != nil {
		return err
	}
	if !r.AtEnd() {
		return asn1err.ErrTrailingBytes
	}
	return nil
}

// EncodeBER encodes m using the Basic Encoding Rules.
func EncodeBER(m codec.Sequence) ([]byte, error) { return encodeBER(m, ber.RuleBER) }

// DecodeBER decodes a BER-encoded m. By default it reports
// asn1err.ErrTrailingBytes if unconsumed bytes remain; pass
// codec.WithStrictTrailing(false) to decode a message embedded in a
// larger stream where trailing bytes are expected.
func DecodeBER(data []byte, m codec.Sequence, opts ...codec.DecodeOption) error {
	return decodeBER(data, m, ber.RuleBER, opts)
}

// EncodeDER encodes m using the Distinguished Encoding Rules (BER's
// canonical subset).
func EncodeDER(m codec.Sequence) ([]byte, error) { return encodeBER(m, ber.RuleDER) }

// DecodeDER decodes a DER-encoded m, subject to the same
// codec.WithStrictTrailing option as DecodeBER.
func DecodeDER(data []byte, m codec.Sequence, opts ...codec.DecodeOption) error {
	return decodeBER(data, m, ber.RuleDER, opts)
}

func encodeBER(m codec.Sequence, rule ber.Rule) ([]byte, error) {
	w := ber.NewWriter(64, rule)
	if err := w.WriteSequence(m); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func decodeBER(data []byte, m codec.Sequence, rule ber.Rule, opts []codec.DecodeOption) error {
	resolved := codec.ResolveDecodeOptions(opts...)
	r := ber.NewReader(data, rule)
	if err := r.ReadSequence(m); err != nil {
		return err
	}
	if resolved.StrictTrailing && !r.AtEnd() {
		return asn1err.ErrTrailingBytes
	}
	return nil
}
