package adapter

import "github.com/flitsinc/juicy/value"

// PathStep mirrors walker.PathEntry without importing the walker package
// into callers that only need to read yields; juicy re-exports it as
// juicy.PathStep.
type PathStep struct {
	IsIndex bool
	Key     string
	Index   int
}

// Yield is one streamed subtree (spec.md §3.5's Stream option): a fully
// decoded value together with the JSON path it was found at, produced as
// soon as it finished parsing instead of waiting for the whole document.
type Yield struct {
	Path  []PathStep
	Value value.Value
}
