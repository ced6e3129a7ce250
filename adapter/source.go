// Package adapter is the source/sink glue of spec.md §4.2-§4.5: it serves
// bytes to the parser kernel from an input.Provider, receives the kernel's
// structural events, and decides when a parse must suspend (budget
// exhaustion or missing streamed input). Two Sink implementations live
// here: Basic, which builds one plain value.Value tree, and Spec, which
// additionally drives a walker.Walker/walker.PathTracker to project the
// document against a tree spec and emit Yields for streamed subtrees.
package adapter

import (
	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/parser"
)

// Budget bounds how much work a single Run call may perform before
// bailing with parser.BailReschedule, implementing spec.md §4.5's
// cooperative rescheduling: a parse of a very large document never blocks
// its caller for longer than this many steps.
type Budget struct {
	// Steps is the number of bytes the source will peek (cumulatively
	// across PeekChar calls) before rescheduling. Zero means unbounded.
	Steps int64
}

// Source implements parser.Source over an input.Provider, applying a
// Budget and translating input.AwaitInput/Eof into parser.Bail/PeekEof.
type Source struct {
	provider input.Provider
	pos      input.Position
	budget   Budget
	spent    int64
}

// NewSource returns a Source reading from p starting at pos, bounded by
// budget (a zero Budget means unbounded).
func NewSource(p input.Provider, pos input.Position, budget Budget) *Source {
	return &Source{provider: p, pos: pos, budget: budget}
}

func (s *Source) Position() input.Position { return s.pos }

func (s *Source) Skip(n int) { s.pos += input.Position(n) }

// PeekChar looks up the current byte, charging one unit against the
// budget first so a Run call that bails mid-token still bailed before
// doing the over-budget work, not after.
func (s *Source) PeekChar() parser.PeekResult {
	if s.budget.Steps > 0 && s.spent >= s.budget.Steps {
		return parser.PeekResult{Outcome: parser.PeekBail, Bail: &parser.Bail{Kind: parser.BailReschedule}}
	}
	s.spent++
	res := s.provider.Byte(s.pos)
	switch res.Outcome {
	case input.Ok:
		return parser.PeekResult{Outcome: parser.PeekOk, Byte: res.Byte}
	case input.AwaitInput:
		return parser.PeekResult{Outcome: parser.PeekBail, Bail: &parser.Bail{Kind: parser.BailAwaitInput}}
	default: // input.Eof
		return parser.PeekResult{Outcome: parser.PeekEof}
	}
}

// PeekSlice never offers the fast path (spec.md §9 Open Question 4): both
// input.Provider implementations are cheap enough per-byte that the extra
// interface surface isn't worth it, and leaving it unimplemented keeps the
// parser kernel honest about never assuming it's available.
func (s *Source) PeekSlice(n int) ([]byte, bool) { return nil, false }

// Spent reports how many budget units this Source has charged so far,
// for a caller wanting to log or meter parse cost.
func (s *Source) Spent() int64 { return s.spent }

// ResetBudget clears the spent counter, called by the juicy package at the
// start of each ParseIter/StreamParseIter call so each resumption gets a
// fresh Budget.
func (s *Source) ResetBudget() { s.spent = 0 }

// SetProvider swaps the input.Provider bytes are read from, leaving
// Position untouched, used when a caller hands a Continuation a new
// buffer or a streaming chunk set.
func (s *Source) SetProvider(p input.Provider) { s.provider = p }
