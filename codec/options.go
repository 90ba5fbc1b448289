package codec

// DecodeOptions configures optional behavior of the BER/DER decode entry
// points in asn1rt. UPER decoding has no such option: spec.md requires a
// strict residual-bit check there unconditionally.
type DecodeOptions struct {
	// StrictTrailing reports trailing bytes after a top-level BER/DER
	// decode as asn1err.ErrTrailingBytes. Default true.
	StrictTrailing bool
}

// DecodeOption mutates a DecodeOptions in place.
type DecodeOption func(*DecodeOptions)

// WithStrictTrailing controls whether DecodeBER/DecodeDER treat unconsumed
// trailing bytes as an error. Callers decoding a message embedded in a
// larger stream (more TLVs follow) pass WithStrictTrailing(false).
func WithStrictTrailing(strict bool) DecodeOption {
	return func(o *DecodeOptions) { o.StrictTrailing = strict }
}

// ResolveDecodeOptions applies opts over the StrictTrailing-by-default
// baseline, the shape every BER/DER decode entry point needs before
// touching its engine-specific Reader.
func ResolveDecodeOptions(opts ...DecodeOption) DecodeOptions {
	o := DecodeOptions{StrictTrailing: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
