package argparse

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pkg/errors"
)

var (
	flagNameRule       = regexp.MustCompile(`^-[-a-zA-Z]+$`)
	optionNameRule     = flagNameRule
	positionalNameRule = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)
)

// Parser maps command-line tokens onto caller-owned variables. Flags,
// options, and positionals are registered against the variables they should
// populate; ParseArgs then walks a token list and writes through the
// registered bindings. The parser never owns the backing storage, so the
// bound variables must outlive it.
//
// A Parser is not safe for concurrent use; construct, register, and parse
// from a single goroutine.
type Parser struct {
	Name        string
	Description string

	ctx Context

	// flags and options share one namespace; positionals have their own.
	// The name slices preserve registration order for usage rendering.
	flags           map[string]*bool
	flagNames       []string
	options         map[string]binding
	optionNames     []string
	positionals     []binding
	positionalNames map[string]struct{}
}

// binding associates a registered name with the setter that writes a raw
// token through to the caller's variable.
type binding struct {
	name  string
	value Setter
}

// Setter is the narrow write interface a binding stores; the generic
// registration functions wrap a Converter and its destination into one.
type Setter interface {
	Set(s string) error
}

// New creates a Parser using DefaultContext, so diagnostics go to
// os.Stderr.
func New(name string, description string) *Parser {
	return DefaultContext.New(name, description)
}

// AddFlag registers a boolean flag. When the flag name appears as a token,
// *ref is set to true; a flag that never appears leaves *ref untouched. The
// name must match -[-a-zA-Z]+ and must not collide with any registered flag
// or option.
func (p *Parser) AddFlag(name string, ref *bool) error {
	if !flagNameRule.MatchString(name) {
		return p.registrationErr(errors.Wrapf(ErrInvalidName, "%q is not a valid flag name", name))
	}
	if p.nameTaken(name) {
		return p.registrationErr(errors.Wrapf(ErrDuplicateName, "%q", name))
	}
	p.flags[name] = ref
	p.flagNames = append(p.flagNames, name)
	return nil
}

// AddOption registers a named option. When the option name appears as a
// token, the following token is converted with conv and written to *ref.
// The name shares the flag grammar and namespace.
//
// Options are package-level generic functions rather than methods because
// methods cannot introduce type parameters.
func AddOption[T any](p *Parser, name string, ref *T, conv Converter[T]) error {
	if !optionNameRule.MatchString(name) {
		return p.registrationErr(errors.Wrapf(ErrInvalidName, "%q is not a valid option name", name))
	}
	if p.nameTaken(name) {
		return p.registrationErr(errors.Wrapf(ErrDuplicateName, "%q", name))
	}
	p.options[name] = binding{name: name, value: converterSetter[T]{ref: ref, conv: conv}}
	p.optionNames = append(p.optionNames, name)
	return nil
}

// AddPositional registers a required positional argument. Positionals are
// filled in registration order from tokens that match no flag or option.
// The name must be an identifier ([_a-zA-Z][_a-zA-Z0-9]*) and unique among
// positionals.
func AddPositional[T any](p *Parser, name string, ref *T, conv Converter[T]) error {
	if !positionalNameRule.MatchString(name) {
		return p.registrationErr(errors.Wrapf(ErrInvalidName, "%q is not a valid positional name, must be an identifier", name))
	}
	if _, ok := p.positionalNames[name]; ok {
		return p.registrationErr(errors.Wrapf(ErrDuplicateName, "another positional named %q exists", name))
	}
	p.positionalNames[name] = struct{}{}
	p.positionals = append(p.positionals, binding{name: name, value: converterSetter[T]{ref: ref, conv: conv}})
	return nil
}

func (p *Parser) nameTaken(name string) bool {
	if _, ok := p.flags[name]; ok {
		return true
	}
	_, ok := p.options[name]
	return ok
}

// registrationErr reports a failed registration on the context's error
// writer and passes the error through. The registry is never mutated on
// failure, so earlier registrations stay valid.
func (p *Parser) registrationErr(err error) error {
	fmt.Fprintf(p.ctx.ErrWriter, "%s: error: %s\n", p.Name, err)
	return err
}

// Parse is a convenience method for calling ParseArgs(os.Args[1:]).
func (p *Parser) Parse() error {
	return p.ParseArgs(os.Args[1:])
}
