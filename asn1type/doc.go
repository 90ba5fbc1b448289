// Package asn1type is documented in tag.go and types.go. The composite
// interfaces a user SEQUENCE/SET/CHOICE implements (Sequence, Set, Choice)
// live in the codec package instead of here, since their callbacks take a
// codec.Writer/codec.Reader and asn1type must not import codec.
package asn1type
