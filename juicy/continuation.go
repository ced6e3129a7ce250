package juicy

import (
	"errors"

	"github.com/flitsinc/juicy/adapter"
	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/parser"
)

// Continuation carries the state of a non-spec parse that bailed on its
// step budget (spec.md §7): the parser kernel's resumable state plus the
// Basic sink accumulating the decoded tree so far.
type Continuation struct {
	parser *parser.Parser
	sink   *adapter.Basic
	src    *adapter.Source
	cfg    *config
}

// ParseInit starts a non-spec (no tree projection) decode of data.
func ParseInit(data []byte, opts ...Option) Outcome {
	cfg := buildConfig(opts)
	prov := input.NewSingleBuffer(data)
	c := &Continuation{
		parser: parser.New(),
		sink:   adapter.NewBasic(prov),
		src:    adapter.NewSource(prov, 0, cfg.budget),
		cfg:    cfg,
	}
	return c.run()
}

// ParseIter resumes c with the complete document bytes seen so far (the
// same slice ParseInit/a prior ParseIter was given, or a longer one if the
// caller has since received more of it). Each call gets a fresh budget and
// continues from where the previous call bailed, so repeated calls with
// unchanged data keep making progress until the document completes.
func ParseIter(data []byte, c *Continuation) Outcome {
	prov := input.NewSingleBuffer(data)
	c.src.SetProvider(prov)
	c.sink.SetProvider(prov)
	c.src.ResetBudget()
	return c.run()
}

func (c *Continuation) run() Outcome {
	err := c.parser.Run(c.src, c.sink)
	if err == nil {
		v, _ := c.sink.Result()
		c.logDone()
		return Outcome{Kind: OutcomeOk, Value: v}
	}
	var bail *parser.Bail
	if errors.As(err, &bail) {
		c.logBail(bail)
		if bail.Kind == parser.BailAwaitInput {
			return Outcome{Kind: OutcomeAwaitInput, Continuation: c}
		}
		return Outcome{Kind: OutcomeIter, Continuation: c}
	}
	return Outcome{Kind: OutcomeUnexpected, Err: err}
}

func (c *Continuation) logDone() {
	if c.cfg.logger != nil {
		c.cfg.logger.Debug("juicy: parse complete")
	}
}

func (c *Continuation) logBail(b *parser.Bail) {
	if c.cfg.logger != nil {
		c.cfg.logger.Debug("juicy: bail", "kind", b.Kind)
	}
}
