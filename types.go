package argparse

import (
	"encoding"
	"encoding/base64"
	"strconv"
	"time"
)

// Converter is the per-type conversion strategy: it turns a raw token into a
// value of the target type or reports why it can't. Registration is generic
// over Converter, so user-defined types extend the supported set without
// touching the parser.
type Converter[T any] func(s string) (T, error)

// converterSetter adapts a Converter and its destination into the Setter a
// binding stores. The destination is written only on successful conversion.
type converterSetter[T any] struct {
	ref  *T
	conv Converter[T]
}

func (cs converterSetter[T]) Set(s string) error {
	v, err := cs.conv(s)
	if err != nil {
		return err
	}
	*cs.ref = v
	return nil
}

// Int parses a base-10 integer literal with an optional leading sign.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func Uint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Float64 parses a decimal or exponential floating point literal.
func Float64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// String returns the token unchanged; it never fails.
func String(s string) (string, error) {
	return s, nil
}

// Bool parses the forms accepted by strconv.ParseBool.
func Bool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

// Duration parses with time.ParseDuration.
func Duration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// TextUnmarshal builds a Converter for any type whose pointer implements
// encoding.TextUnmarshaler. The second type parameter is inferred:
//
//	AddOption(p, "--when", &t, TextUnmarshal[time.Time]())
func TextUnmarshal[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() Converter[T] {
	return func(s string) (T, error) {
		var v T
		if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}

// Base64String is a byte slice whose tokens are standard (RFC 4648) base64;
// bind it with TextUnmarshal[Base64String]().
type Base64String []byte

func (b *Base64String) UnmarshalText(src []byte) error {
	enc := base64.StdEncoding
	dbuf := make([]byte, enc.DecodedLen(len(src)))
	n, err := enc.Decode(dbuf, src)
	if err != nil {
		return err
	}
	*b = dbuf[:n]
	return nil
}
