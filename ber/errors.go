package ber

import (
	"errors"

	"github.com/asn1rt/asn1rt/asn1err"
)

// Decoder errors. Tag mismatches and truncated input route through
// asn1err's shared taxonomy (asn1err.InvalidTag, asn1err.PositionError)
// so that callers working across uper and ber can use one errors.Is
// vocabulary; the remaining sentinels here are misuses specific to
// X.690's TLV grammar that asn1err has no equivalent for.
var (
	// ErrUnexpectedEOF is returned when the decoder encounters truncated data.
	ErrUnexpectedEOF = asn1err.ErrInputExhausted

	// ErrInvalidLength is returned when a length value is malformed.
	ErrInvalidLength = errors.New("ber: invalid length encoding")

	// ErrIndefiniteLength is returned when a BER indefinite-length marker
	// (0x80) is used somewhere this decoder does not support one (DER
	// mode uses asn1err.ErrIndefiniteLengthInDer instead; see ReadLength).
	ErrIndefiniteLength = errors.New("ber: indefinite length not supported here")

	// ErrInvalidBoolean is returned when a boolean value has invalid length
	// or, under DER, an encoding other than 0x00/0xFF.
	ErrInvalidBoolean = errors.New("ber: invalid boolean encoding")

	// ErrInvalidInteger is returned when an integer value is malformed.
	ErrInvalidInteger = errors.New("ber: invalid integer encoding")

	// ErrInvalidNull is returned when a null value has non-zero length.
	ErrInvalidNull = errors.New("ber: invalid null encoding")

	// ErrTagMismatch is returned when the expected tag does not match the
	// actual tag; TagMismatchError satisfies errors.Is against it.
	ErrTagMismatch = asn1err.ErrInvalidTag
)

// DecodeError decorates a decoding failure with the byte offset it
// happened at. It is asn1err's shared PositionError, kept under a
// ber-local name so existing call sites in this package read naturally.
type DecodeError = asn1err.PositionError

// NewDecodeError builds a DecodeError.
func NewDecodeError(offset int, message string, err error) *DecodeError {
	return asn1err.NewPositionError(offset, message, err)
}

// TagMismatchError is asn1err's shared identifier-mismatch shape.
type TagMismatchError = asn1err.InvalidTag

// newTagMismatch builds a TagMismatchError from the tag just read at offset.
func newTagMismatch(offset, expectedClass, expectedNumber, gotClass, gotNumber, gotConstructed int) *TagMismatchError {
	return &TagMismatchError{
		Offset:         offset,
		ExpectedClass:  expectedClass,
		ExpectedNumber: expectedNumber,
		GotClass:       gotClass,
		GotNumber:      gotNumber,
		GotConstructed: gotConstructed,
	}
}
