// Package uper implements the Unaligned Packed Encoding Rules (X.691) on
// top of bitio's bit cursor: every write advances the stream by exactly
// as many bits as the value needs, with no padding to byte boundaries
// except where the SET OF convention calls for one (see sequence.go).
//
// Writer and Reader implement codec.Writer/codec.Reader; callers never
// construct uper values directly, going instead through the root
// EncodeUPER/DecodeUPER entry points.
package uper
