// Package limits holds the one real ambient configuration concern this
// codec core has: the caller-configurable ceiling on fragmented-length
// decoding spec.md §5 and §9 call for ("Fragmented-length decoding for
// pathological inputs MUST stream without materialising the entire chunk
// list; the reader returns an InputTooLarge error above a
// caller-configurable ceiling").
//
// A dozen-section server config is usually worth a hand-rolled YAML
// subset parser; this package's surface is two integers, so it loads
// YAML through gopkg.in/yaml.v3 instead of reinventing a parser for it —
// see DESIGN.md.
package limits

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits bounds fragmented-length decoding (spec.md §5, §9).
type Limits struct {
	// MaxFragmentItems caps the total number of SEQUENCE OF/SET OF
	// elements, or octets/bits, a single fragmented length determinant
	// chain may describe across all its chunks.
	MaxFragmentItems int64 `yaml:"maxFragmentItems"`
	// MaxTotalBytes is the bound CheckBytes tests a single decoded value's
	// payload size (octet string, bit string, character string) against.
	// The uper and ber decoders do not call CheckBytes; only
	// MaxFragmentItems is enforced while decoding.
	MaxTotalBytes int64 `yaml:"maxTotalBytes"`
}

// Default returns generous but finite limits: 64M items/bytes. This is the
// resolution of spec.md §9's open question — the source implementation
// enforces no ceiling at all; this port always enforces one, defaulting to
// a large-but-bounded value rather than leaving decode ceilings off by
// default.
func Default() Limits {
	return Limits{
		MaxFragmentItems: 64 << 20,
		MaxTotalBytes:    64 << 20,
	}
}

// Unbounded returns limits that never reject input on size grounds alone.
// Intended for trusted-input contexts (tests, same-process round-trips);
// production decoders should prefer Default or an explicitly tuned value.
func Unbounded() Limits {
	return Limits{MaxFragmentItems: -1, MaxTotalBytes: -1}
}

// CheckItems reports whether n items stay within the ceiling.
func (l Limits) CheckItems(n int64) bool {
	return l.MaxFragmentItems < 0 || n <= l.MaxFragmentItems
}

// CheckBytes reports whether n bytes stay within the ceiling.
func (l Limits) CheckBytes(n int64) bool {
	return l.MaxTotalBytes < 0 || n <= l.MaxTotalBytes
}

// Load reads Limits from a YAML file, starting from Default(): a field
// absent from the file keeps its Default() value, while a field present
// in the file (including an explicit 0) replaces it.
func Load(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("limits: %w", err)
	}
	l := Default()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Limits{}, fmt.Errorf("limits: invalid yaml: %w", err)
	}
	return l, nil
}
