// Package codec defines the engine-agnostic Reader/Writer dispatch
// protocol (see dispatch.go) that uper and ber both implement. The
// top-level Encode*/Decode* entry points live in the root asn1rt package,
// and the configurable decode ceiling lives in the limits package, since
// codec must stay importable by both engines without importing either
// back.
package codec
