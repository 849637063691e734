package argparse

import (
	"io"
	"os"
)

// Context carries injectable process-level dependencies so parsers can be
// exercised in tests without touching the real stderr.
type Context struct {
	ErrWriter io.Writer
}

var DefaultContext = Context{
	ErrWriter: os.Stderr,
}

// New creates a new Parser bound to this context. The name and description
// are stored for usage rendering; registration happens afterwards via
// AddFlag, AddOption, and AddPositional.
func (ctx Context) New(name string, description string) *Parser {
	return &Parser{
		Name:            name,
		Description:     description,
		ctx:             ctx,
		flags:           map[string]*bool{},
		options:         map[string]binding{},
		positionalNames: map[string]struct{}{},
	}
}
