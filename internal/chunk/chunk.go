// Package chunk implements the PER fragmented-length determinant from
// spec.md §4.3: for counts >= 16384, a fragment marker 11ffffff (ffffff in
// {64k,48k,32k,16k} chunks of 16384*k items) repeated until a remainder
// under 16384 closes the chain with the short/long form. Encoders must
// emit the largest chunk that fits at each step; decoders must accept any
// valid chunk sequence.
package chunk

import (
	"github.com/asn1rt/asn1rt/asn1err"
	"github.com/asn1rt/asn1rt/limits"
)

const (
	fragmentUnit = 16384
	maxK         = 4 // 64k, 48k, 32k, 16k
)

// Plan returns the sequence of fragment sizes an encoder should emit for
// total items, each a multiple of fragmentUnit except (implicitly) the
// final short/long-form remainder, which the caller encodes separately.
// Plan always chooses the largest chunk (4*fragmentUnit, then 3, 2, 1)
// that fits at each step, per spec.md's "encoders MUST emit the largest
// chunk that fits" rule.
func Plan(total int64) (fragments []int64, remainder int64) {
	remaining := total
	for remaining >= fragmentUnit {
		k := int64(maxK)
		for k*fragmentUnit > remaining {
			k--
		}
		fragments = append(fragments, k*fragmentUnit)
		remaining -= k * fragmentUnit
	}
	return fragments, remaining
}

// Reader streams a fragmented-length item count without ever
// materializing the full chunk list, enforcing lim's ceiling as chunks are
// consumed (spec.md §5: "MUST stream without materialising the entire
// chunk list").
type Reader struct {
	lim     limits.Limits
	total   int64
	nextFn  func() (fragSize int64, isLast bool, err error)
}

// NewReader builds a Reader whose nextFragment callback is supplied by the
// engine-specific length-determinant decoder (uper's readLengthStep),
// since the underlying bit cursor is engine-owned.
func NewReader(lim limits.Limits, nextFragment func() (fragSize int64, isLast bool, err error)) *Reader {
	return &Reader{lim: lim, nextFn: nextFragment}
}

// ceilingExceededError is returned by Drain when the running total crosses
// the configured ceiling before the fragment chain terminates; it matches
// asn1err.ErrInputTooLarge under errors.Is.
type ceilingExceededError struct {
	total int64
	limit int64
}

func (e *ceilingExceededError) Error() string {
	return "chunk: fragmented length exceeds configured ceiling"
}

func (e *ceilingExceededError) Is(target error) bool { return target == asn1err.ErrInputTooLarge }

// Drain consumes fragments until the chain reports isLast, invoking
// onFragment once per fragment (including the final short/long-form
// remainder) so the caller can read that many payload items/bytes before
// asking for the next fragment. It returns the total item/byte count.
func (r *Reader) Drain(onFragment func(fragSize int64) error) (int64, error) {
	for {
		fragSize, isLast, err := r.nextFn()
		if err != nil {
			return 0, err
		}
		r.total += fragSize
		if !r.lim.CheckItems(r.total) {
			return 0, &ceilingExceededError{total: r.total, limit: r.lim.MaxFragmentItems}
		}
		if err := onFragment(fragSize); err != nil {
			return 0, err
		}
		if isLast {
			return r.total, nil
		}
	}
}
