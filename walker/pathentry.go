// Package walker implements the spec walker and path tracker of spec.md
// §3.6 and §4.4: a stateful cursor that follows structural parse events
// down and back up a tree spec, exposing the matched node (if any) at each
// event, plus the JSON navigation path it traveled to get there.
package walker

// EntryKind discriminates a PathEntry.
type EntryKind int

const (
	// EntryKey means the entry is an object key.
	EntryKey EntryKind = iota
	// EntryIndex means the entry is an array index.
	EntryIndex
)

// PathEntry is one step of the JSON navigation path: either an object key
// or an array index. Index is 0-based (spec.md §9 Open Question 1; see
// DESIGN.md for why 0-based was chosen over the source's other,
// 1-based definition).
type PathEntry struct {
	Kind  EntryKind
	Key   string
	Index int
}

// Key returns a Key-kind PathEntry.
func Key(k string) PathEntry { return PathEntry{Kind: EntryKey, Key: k} }

// Index returns an Index-kind PathEntry.
func Index(i int) PathEntry { return PathEntry{Kind: EntryIndex, Index: i} }
