package juicy

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Registry is a bounded table of live StreamContinuations (spec.md §5): a
// weighted semaphore caps how many StreamParseIter calls may run at once
// across every continuation it holds, while each StreamContinuation's own
// mutex (see stream.go) serializes re-entry into that one continuation
// specifically. Together they realize "guarded by a mutual-exclusion
// primitive" for a host juggling many concurrent decodes.
type Registry struct {
	sem  *semaphore.Weighted
	mu   sync.Mutex
	byID map[string]*StreamContinuation
}

// NewRegistry returns a Registry that allows at most maxConcurrent
// StreamParseIter calls to run simultaneously.
func NewRegistry(maxConcurrent int64) *Registry {
	return &Registry{
		sem:  semaphore.NewWeighted(maxConcurrent),
		byID: make(map[string]*StreamContinuation),
	}
}

// Register associates id with c, so later calls can address it by id
// instead of holding the *StreamContinuation themselves.
func (r *Registry) Register(id string, c *StreamContinuation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id] = c
}

// Forget drops id, e.g. once its decode has fully completed.
func (r *Registry) Forget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

// StreamParseIter acquires a concurrency slot, then drives the
// continuation registered under id. The returned error is non-nil only
// for registry bookkeeping failures (unknown id, context cancellation);
// parse-level outcomes (including grammar errors) are reported through the
// returned StreamOutcome exactly as the free StreamParseIter function does.
func (r *Registry) StreamParseIter(ctx context.Context, id string, chunks []Chunk) (StreamOutcome, error) {
	r.mu.Lock()
	c, ok := r.byID[id]
	r.mu.Unlock()
	if !ok {
		return StreamOutcome{}, fmt.Errorf("juicy: no continuation registered under %q", id)
	}
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return StreamOutcome{}, err
	}
	defer r.sem.Release(1)
	return StreamParseIter(chunks, c), nil
}
