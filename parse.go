package argparse

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// parseState enumerates the states of the token dispatch machine. Keeping
// the loop an explicit machine keeps the failure modes enumerable: every
// terminal condition is a transition to stateFailed with one of the parse
// errors as the reason.
type parseState int

const (
	// stateAwaitingToken means the next token starts a fresh dispatch
	// decision: flag, then option, then positional.
	stateAwaitingToken parseState = iota

	// stateAwaitingOptionValue means the previous token named an option and
	// the next token is consumed as its value.
	stateAwaitingOptionValue

	// stateDone means all tokens were consumed and every positional filled.
	stateDone

	// stateFailed means a fatal condition was hit; err holds the reason.
	stateFailed
)

type tokenParser struct {
	flags       map[string]*bool
	options     map[string]binding
	positionals []binding

	state   parseState
	pending binding // option waiting on its value token
	cursor  int     // next unfilled positional
	err     error
}

// ParseArgs runs the registered bindings against args, which must exclude
// the program name. It returns nil only if every token was dispatched and
// every positional was filled; otherwise the first fatal condition is
// written to the error writer and returned, wrapped around one of the parse
// errors for errors.Is matching.
//
// A failed parse leaves the bound variables in whatever partially-written
// state the tokens before the failure produced; callers must treat failure
// as terminal for that invocation.
func (p *Parser) ParseArgs(args []string) error {
	tp := tokenParser{
		flags:       p.flags,
		options:     p.options,
		positionals: p.positionals,
	}
	if err := tp.run(args); err != nil {
		fmt.Fprintf(p.ctx.ErrWriter, "%s: error: %s\n", p.Name, err)
		return err
	}
	return nil
}

func (tp *tokenParser) run(args []string) error {
	for _, tok := range args {
		tp.next(tok)
		if tp.state == stateFailed {
			return tp.err
		}
	}
	tp.finish()
	if tp.state == stateFailed {
		return tp.err
	}
	return nil
}

// next feeds one token to the machine.
func (tp *tokenParser) next(tok string) {
	switch tp.state {
	case stateAwaitingToken:
		if ref, ok := tp.flags[tok]; ok {
			*ref = true
			return
		}
		if b, ok := tp.options[tok]; ok {
			tp.pending = b
			tp.state = stateAwaitingOptionValue
			return
		}
		// Not a registered name: the token is a positional value if any
		// positional is still unfilled, even when it starts with a dash.
		if tp.cursor < len(tp.positionals) {
			b := tp.positionals[tp.cursor]
			if err := b.value.Set(tok); err != nil {
				tp.fail(errors.Wrapf(ErrConversionFailure, "positional %s: %q: %s", b.name, tok, err))
				return
			}
			tp.cursor++
			return
		}
		if strings.HasPrefix(tok, "-") {
			tp.fail(errors.Wrapf(ErrUnknownToken, "%q", tok))
			return
		}
		tp.fail(errors.Wrapf(ErrExcessToken, "%q", tok))
	case stateAwaitingOptionValue:
		if err := tp.pending.value.Set(tok); err != nil {
			tp.fail(errors.Wrapf(ErrConversionFailure, "option %s: %q: %s", tp.pending.name, tok, err))
			return
		}
		tp.pending = binding{}
		tp.state = stateAwaitingToken
	}
}

// finish settles the machine after the last token.
func (tp *tokenParser) finish() {
	if tp.state == stateAwaitingOptionValue {
		tp.fail(errors.Wrapf(ErrMissingOptionValue, "option %s", tp.pending.name))
		return
	}
	if tp.cursor < len(tp.positionals) {
		unfilled := make([]string, 0, len(tp.positionals)-tp.cursor)
		for _, b := range tp.positionals[tp.cursor:] {
			unfilled = append(unfilled, b.name)
		}
		tp.fail(errors.Wrapf(ErrMissingPositional, "%s", strings.Join(unfilled, ", ")))
		return
	}
	tp.state = stateDone
}

func (tp *tokenParser) fail(err error) {
	tp.state = stateFailed
	tp.err = err
}
