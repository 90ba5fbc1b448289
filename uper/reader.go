package uper

import (
	"github.com/asn1rt/asn1rt/bitio"
	"github.com/asn1rt/asn1rt/codec"
	"github.com/asn1rt/asn1rt/constraint"
	"github.com/asn1rt/asn1rt/limits"
)

// Reader decodes values using the Unaligned Packed Encoding Rules. It
// implements codec.Reader.
type Reader struct {
	bc  *bitio.Reader
	lim limits.Limits
}

// NewReader wraps data (bitLen meaningful bits, the rest padding) for
// decoding, enforcing lim's ceiling on any fragmented length determinant
// encountered.
func NewReader(data []byte, bitLen int, lim limits.Limits) *Reader {
	return &Reader{bc: bitio.NewReader(data, bitLen), lim: lim}
}

var _ codec.Reader = (*Reader)(nil)

// AtEnd reports whether every meaningful bit has been consumed, the
// round-trip check spec.md §7 requires callers to run after a top-level
// Decode.
func (r *Reader) AtEnd() bool { return r.bc.AtEnd() }

// ReadBoolean implements codec.Reader.
func (r *Reader) ReadBoolean() (bool, error) { return r.bc.ReadBit() }

// ReadInteger implements codec.Reader.
func (r *Reader) ReadInteger(rng constraint.IntegerRange) (int64, error) {
	v, err := r.readInteger(rng)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// ReadBigInteger implements codec.Reader.
func (r *Reader) ReadBigInteger(rng constraint.IntegerRange) (codec.BigInt, error) {
	v, err := r.readInteger(rng)
	if err != nil {
		return codec.BigInt{}, err
	}
	return codec.BigInt{Bytes: minimalTwosComplement(v)}, nil
}

// ReadNull implements codec.Reader: NULL carries no bits under PER.
func (r *Reader) ReadNull() error { return nil }
