// Package constraint is documented in constraint.go and charset.go; see
// those files for the IntegerRange/Size/Charset/Default types.
package constraint
