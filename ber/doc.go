// Package ber implements ASN.1 BER and DER (Basic and Distinguished
// Encoding Rules) encoding and decoding as specified in ITU-T X.690.
//
// This package provides low-level primitives for encoding and decoding
// BER/DER data structures, plus a Writer/Reader pair implementing
// codec.Writer/codec.Reader so the same schema types that round-trip
// through uper also round-trip through ber.
//
// # Tag Classes
//
// BER/DER use four tag classes to identify data types:
//
//   - Universal (0x00): Standard ASN.1 types like INTEGER, BOOLEAN, SEQUENCE
//   - Application (0x40): Application-specific types
//   - Context-specific (0x80): Context-dependent types within a structure
//   - Private (0xC0): Organization-specific types
//
// # Encoding
//
// Use Encoder to build BER/DER-encoded data:
//
//	encoder := ber.NewEncoder(256, ber.RuleDER)
//	encoder.WriteInteger(42)
//	encoder.WriteOctetString([]byte("hello"))
//	data := encoder.Bytes()
//
// For constructed types (SEQUENCE, SET), build the content first and let
// WrapConstructed frame it, or use the higher-level Writer adapter below,
// which does this automatically.
//
// # Decoding
//
// Use Decoder to parse BER/DER-encoded data:
//
//	decoder := ber.NewDecoder(data, ber.RuleDER)
//	value, err := decoder.ReadInteger()
//	if err != nil {
//	    // handle error
//	}
//
// For constructed types, use ExpectSequence to get the content:
//
//	decoder := ber.NewDecoder(data, ber.RuleDER)
//	content, err := decoder.ExpectSequence()
//	if err != nil {
//	    // handle error
//	}
//
// # Universal Tags
//
// The package defines constants for common universal tags:
//
//   - TagBoolean (0x01): Boolean values
//   - TagInteger (0x02): Integer values
//   - TagOctetString (0x04): Byte strings
//   - TagNull (0x05): Null value
//   - TagOID (0x06): Object identifiers
//   - TagEnumerated (0x0A): Enumerated values
//   - TagSequence (0x10): Ordered collection
//   - TagSet (0x11): Unordered collection
//
// # Writer and Reader
//
// Writer and Reader (adapter.go) implement codec.Writer/codec.Reader on
// top of Encoder/Decoder. Rule selects BER or DER; under RuleDER,
// WriteBoolean only ever emits canonical TRUE, ReadLength rejects
// indefinite length, WriteSetOf sorts encoded elements before
// concatenation, and WriteSet reorders fields by tag, all per X.690's
// canonical form rules. A FieldDescriptor's TagOverride, if any, is
// applied to that field's bytes on both the write and read path via the
// fieldWriter/fieldReader decorators, implementing implicit and explicit
// tagging (X.690 §8.14).
//
// # References
//
//   - ITU-T X.690: ASN.1 encoding rules
package ber
