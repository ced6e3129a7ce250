package walker

// PathTracker holds, for each currently open container, either the current
// array index or the current key's bytes (spec.md §3.6).
type PathTracker struct {
	stack []PathEntry
}

// NewPathTracker returns an empty tracker (at the document root).
func NewPathTracker() *PathTracker {
	return &PathTracker{}
}

// PushKey records that the tracker just entered an object key.
func (t *PathTracker) PushKey(key string) {
	t.stack = append(t.stack, Key(key))
}

// PushIndex records that the tracker just entered an array at the given
// starting index (always 0, per adapter.Spec.PushArray).
func (t *PathTracker) PushIndex(i int) {
	t.stack = append(t.stack, Index(i))
}

// Pop removes the last path entry, used on container exit after the
// corresponding value-or-key entry has already been consumed by
// UpdateAfterTerminal.
func (t *PathTracker) Pop() {
	if len(t.stack) == 0 {
		panic("walker: Pop on empty path stack")
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// Last returns the most recent path entry and whether the stack is
// non-empty (false at the document root).
func (t *PathTracker) Last() (PathEntry, bool) {
	if len(t.stack) == 0 {
		return PathEntry{}, false
	}
	return t.stack[len(t.stack)-1], true
}

// UpdateAfterTerminal implements spec.md §4.4's update_path: called after a
// terminal or container-exit event consumes one value. If the last entry is
// an Index, it's bumped to the next index (the array is still open,
// awaiting its next element). If it's a Key, it's popped (the key has been
// fully consumed by its value; the parent object awaits its next key).
// At the document root it's a no-op.
func (t *PathTracker) UpdateAfterTerminal() {
	last, ok := t.Last()
	if !ok {
		return
	}
	switch last.Kind {
	case EntryIndex:
		t.stack[len(t.stack)-1] = Index(last.Index + 1)
	case EntryKey:
		t.Pop()
	}
}

// Snapshot returns a copy of the current path, suitable for attaching to a
// Yield (spec.md §4.3) without aliasing the tracker's own backing array.
func (t *PathTracker) Snapshot() []PathEntry {
	out := make([]PathEntry, len(t.stack))
	copy(out, t.stack)
	return out
}

// Depth returns how many containers are currently open.
func (t *PathTracker) Depth() int { return len(t.stack) }
