/*
Package argparse implements explicit-registration command-line argument
parsing: callers bind flags, options, and positional arguments to variables
they own, then parse a token list onto them.

Example

Greet program:

		package main

		import (
			"fmt"
			"os"

			"github.com/isobit/argparse"
		)

		func main() {
			var (
				excited bool
				repeat  = 1
				name    string
			)

			p := argparse.New("greet", "print a greeting")
			p.AddFlag("--excited", &excited)
			argparse.AddOption(p, "--repeat", &repeat, argparse.Int)
			argparse.AddPositional(p, "name", &name, argparse.String)

			if err := p.Parse(); err != nil {
				os.Exit(1)
			}

			punctuation := "."
			if excited {
				punctuation = "!"
			}
			for i := 0; i < repeat; i++ {
				fmt.Printf("Hello, %s%s\n", name, punctuation)
			}
		}

Usage:

		$ greet --excited --repeat 2 world
		Hello, world!
		Hello, world!
		$ greet --repeat nope world
		greet: error: option --repeat: "nope": strconv.Atoi: parsing "nope": invalid syntax: cannot convert value

Argument Kinds

A flag is a zero-argument switch bound to a bool; it is set to true when its
name appears. An option consumes exactly one following token as its value. A
positional is filled by argument order and is always required. Flag and
option names must match -[-a-zA-Z]+ and share one namespace; positional
names must be identifiers ([_a-zA-Z][_a-zA-Z0-9]*) and only collide with
each other.

Conversion

Options and positionals are typed through a Converter, a plain function from
token to value. Int, Int64, Uint64, Float64, String, Bool, and Duration are
provided; TextUnmarshal adapts any encoding.TextUnmarshaler. Any function
with the right shape works, so project-specific types need no support from
this package:

		level := LogLevel(0)
		argparse.AddOption(p, "--level", &level, func(s string) (LogLevel, error) {
			return ParseLogLevel(s)
		})

Failure

Registration and parsing return errors that wrap the exported sentinel
errors (ErrInvalidName, ErrDuplicateName, ErrUnknownToken,
ErrMissingOptionValue, ErrConversionFailure, ErrMissingPositional,
ErrExcessToken), matchable with errors.Is. A human-readable diagnostic for
the first fatal condition is also written to the parser's error writer,
os.Stderr by default; use a Context to redirect it.
*/
package argparse
