package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/isobit/argparse"
)

// Options bundles the standard logging arguments for programs built on
// argparse.
type Options struct {
	LogLevel slog.Level
	LogJSON  bool
}

// Register adds --log-level and --log-json to the parser.
func (opts *Options) Register(p *argparse.Parser) error {
	if err := argparse.AddOption(p, "--log-level", &opts.LogLevel, argparse.TextUnmarshal[slog.Level]()); err != nil {
		return err
	}
	return p.AddFlag("--log-json", &opts.LogJSON)
}

// ConfigureWithHandlerOptions installs a text or JSON handler on w as the
// slog default, honoring the parsed level.
func (opts *Options) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) {
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = opts.LogLevel

	var handler slog.Handler
	if opts.LogJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))
}

// Configure calls ConfigureWithHandlerOptions with os.Stderr and default
// handler options.
func (opts *Options) Configure() {
	opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
