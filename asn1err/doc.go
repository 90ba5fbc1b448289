// Package asn1err defines the codec failure taxonomy shared by bitio,
// constraint, asn1type, uper, ber, and codec.
//
// # Taxonomy
//
//   - InputExhausted — the reader needed more bits/bytes than were available.
//   - InvalidString / SizeNotInRange / ValueNotInRange — decoded bits were
//     well-formed but violated a schema constraint.
//   - UnknownChoiceIndex / UnknownEnumVariant (sentinels) — an extension
//     variant arrived with no root type to map it to.
//   - InvalidTag — a BER/DER identifier did not match what the schema expected.
//   - IndefiniteLengthInDer (sentinel) — BER's 0x80 marker under DER.
//   - TrailingBytes (sentinel) — strict-mode leftover input.
//   - PositionError — a generic offset-carrying wrapper, used where none of
//     the above fits exactly.
//
// Every struct error except PositionError implements Is so callers can
// test with errors.Is against the package's sentinel values instead of
// type-asserting; PositionError implements Unwrap, so errors.Is matches
// against the error it wraps.
package asn1err
