// Package testutil provides small helpers shared by this module's test
// files: a content fingerprint for comparing large encoded buffers
// without printing them on failure, and a value-diff wrapper for
// comparing decoded structs.
package testutil

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
)

// Fingerprint returns a short hex digest of data, useful for asserting
// two large encodings are identical without dumping megabytes of bytes
// into a test failure message.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Diff returns a human-readable structural diff between want and got, or
// the empty string if they're equal.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}
