package juicy

import "github.com/flitsinc/juicy/treespec"

// ValidateSpec checks raw's wire form (spec.md §6.4) without building a
// StreamContinuation from it, for a caller that wants to reject a bad spec
// up front rather than discover it on the first StreamParseIter call.
func ValidateSpec(raw []byte) error {
	return treespec.Validate(raw)
}
