package juicy

import (
	"errors"
	"sync"

	"github.com/flitsinc/juicy/adapter"
	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/parser"
	"github.com/flitsinc/juicy/treespec"
)

// StreamContinuation carries the state of a spec-projected streaming
// decode: the parser kernel's resumable state, a Spec sink, and the
// ChunkList still holding whatever input bytes haven't been released yet.
// A mutex guards re-entry (spec.md §5's "mutual-exclusion primitive"):
// StreamParseIter must never run concurrently against the same
// continuation, since the parser's and sink's internal stacks aren't
// safe for concurrent mutation.
type StreamContinuation struct {
	mu       sync.Mutex
	parser   *parser.Parser
	sink     *adapter.Spec
	src      *adapter.Source
	provider *input.ChunkList
	cfg      *config
}

// StreamParseInit starts a spec-projected streaming decode against tree.
func StreamParseInit(tree *treespec.Spec, opts ...Option) *StreamContinuation {
	cfg := buildConfig(opts)
	prov := input.NewChunkList()
	return &StreamContinuation{
		parser:   parser.New(),
		sink:     adapter.NewSpec(prov, tree),
		src:      adapter.NewSource(prov, 0, cfg.budget),
		provider: prov,
		cfg:      cfg,
	}
}

// StreamParseIter delivers chunks (a prefix of the logical stream with no
// gaps ahead of the continuation's last reported FirstNeeded) and resumes
// parsing. Concurrent calls against the same c serialize on c.mu.
func StreamParseIter(chunks []Chunk, c *StreamContinuation) StreamOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ch := range chunks {
		c.provider.Push(ch.Offset, ch.Data)
	}
	c.src.ResetBudget()

	err := c.parser.Run(c.src, c.sink)
	firstNeeded := c.firstNeeded()
	c.provider.Release(firstNeeded)
	yields := c.sink.DrainYields()
	remaining := c.remainingChunks()

	if err == nil {
		v, _ := c.sink.Result()
		c.log("juicy: stream parse complete")
		return StreamOutcome{
			Kind: StreamOk, Value: v, Yields: yields,
			FirstNeeded: firstNeeded, RemainingChunks: remaining,
		}
	}

	var bail *parser.Bail
	if errors.As(err, &bail) {
		c.logBail(bail)
		kind := StreamIter
		if bail.Kind == parser.BailAwaitInput {
			kind = StreamAwaitInput
		}
		return StreamOutcome{
			Kind: kind, Yields: yields, FirstNeeded: firstNeeded,
			RemainingChunks: remaining, Continuation: c,
		}
	}

	return StreamOutcome{
		Kind: StreamUnexpected, Err: err, Yields: yields,
		FirstNeeded: firstNeeded, RemainingChunks: remaining,
	}
}

// firstNeeded implements spec.md §4.5: the earliest position any
// in-flight token or string builder still refers back into, so the host
// can safely release everything before it.
func (c *StreamContinuation) firstNeeded() input.Position {
	fn := c.src.Position()
	if ts, ok := c.parser.PendingTokenStart(); ok && ts < fn {
		fn = ts
	}
	if bs, ok := c.sink.EarliestBorrowed(); ok && bs < fn {
		fn = bs
	}
	return fn
}

func (c *StreamContinuation) remainingChunks() []Chunk {
	raw := c.provider.Remaining()
	out := make([]Chunk, len(raw))
	for i, r := range raw {
		out[i] = Chunk{Offset: r.Offset, Data: r.Data}
	}
	return out
}

func (c *StreamContinuation) log(msg string) {
	if c.cfg.logger != nil {
		c.cfg.logger.Debug(msg)
	}
}

func (c *StreamContinuation) logBail(b *parser.Bail) {
	if c.cfg.logger != nil {
		c.cfg.logger.Debug("juicy: stream bail", "kind", b.Kind)
	}
}
