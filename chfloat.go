// Package chfloat converts ASCII decimal text to IEEE-754 binary32 and
// binary64 values with correct round-to-nearest-even rounding, and provides
// the matching integer parsers for bases 2 through 36.
//
// All parsers operate on a caller-owned byte slice and consume the longest
// numeric prefix. They return the parsed value, the number of bytes consumed
// and an error. The whole input does not have to be a number; use the
// full-string helpers (Float64, Int64, ...) when a trailing tail should be
// rejected.
//
// The parsers are pure functions: no allocation, no global mutable state, and
// safe for concurrent use from any number of goroutines.
package chfloat

import "errors"

var (
	// ErrSyntax reports input that does not start with a number, a Format
	// other than FormatGeneral, or (for the full-string helpers) bytes left
	// after the number. No bytes of the number are consumed; the WS
	// variants still count the skipped whitespace.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange reports a number that was fully consumed but does not fit
	// the target type.
	ErrRange = errors.New("value out of range")
)

// Format selects the accepted text format. Only FormatGeneral is implemented;
// the remaining values exist so callers dispatching on a format enum get a
// clean ErrSyntax instead of silently wrong parses.
type Format uint8

const (
	FormatGeneral Format = iota
	FormatScientific
	FormatFixed
	FormatHex
)

// ParseFloat64 parses a float64 from the longest numeric prefix of b.
// It returns the value, the number of bytes consumed and an error.
//
// Accepted syntax is an optional sign, then either the case-insensitive
// tokens "nan", "inf" or "infinity", or decimal digits with an optional
// fractional part and an optional e/E exponent. On ErrRange the returned
// value is the signed infinity or signed zero closest to the true value and
// n covers the whole consumed number.
func ParseFloat64(b []byte) (v float64, n int, err error) {
	return parseFloat64(b)
}

// ParseFloat32 is ParseFloat64 for float32.
func ParseFloat32(b []byte) (v float32, n int, err error) {
	return parseFloat32(b)
}

// ParseFloat64Format is ParseFloat64 restricted to the given format.
// Formats other than FormatGeneral are rejected with ErrSyntax.
func ParseFloat64Format(b []byte, format Format) (v float64, n int, err error) {
	if format != FormatGeneral {
		return 0, 0, ErrSyntax
	}
	return parseFloat64(b)
}

// ParseFloat32Format is ParseFloat32 restricted to the given format.
func ParseFloat32Format(b []byte, format Format) (v float32, n int, err error) {
	if format != FormatGeneral {
		return 0, 0, ErrSyntax
	}
	return parseFloat32(b)
}

// skipSpace returns the index of the first byte of b that is not ASCII
// whitespace (space, tab, newline, carriage return, form feed, vertical tab).
func skipSpace(b []byte) int {
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			i++
		default:
			return i
		}
	}
	return i
}

// ParseFloat64WS is ParseFloat64 after skipping leading ASCII whitespace.
// The returned count includes the skipped whitespace.
func ParseFloat64WS(b []byte) (v float64, n int, err error) {
	i := skipSpace(b)
	v, n, err = parseFloat64(b[i:])
	return v, i + n, err
}

// ParseFloat32WS is ParseFloat32 after skipping leading ASCII whitespace.
func ParseFloat32WS(b []byte) (v float32, n int, err error) {
	i := skipSpace(b)
	v, n, err = parseFloat32(b[i:])
	return v, i + n, err
}

// ParseInt64WS is ParseInt64 after skipping leading ASCII whitespace.
func ParseInt64WS(b []byte, base int) (v int64, n int, err error) {
	i := skipSpace(b)
	v, n, err = ParseInt64(b[i:], base)
	return v, i + n, err
}

// ParseUint64WS is ParseUint64 after skipping leading ASCII whitespace.
func ParseUint64WS(b []byte, base int) (v uint64, n int, err error) {
	i := skipSpace(b)
	v, n, err = ParseUint64(b[i:], base)
	return v, i + n, err
}

// Float64 parses b as a float64 and requires the whole input to be consumed.
func Float64(b []byte) (float64, error) {
	v, n, err := parseFloat64(b)
	if err == nil && n != len(b) {
		return 0, ErrSyntax
	}
	return v, err
}

// Float32 parses b as a float32 and requires the whole input to be consumed.
func Float32(b []byte) (float32, error) {
	v, n, err := parseFloat32(b)
	if err == nil && n != len(b) {
		return 0, ErrSyntax
	}
	return v, err
}

// Int64 parses b as a base-10 int64 and requires the whole input to be
// consumed.
func Int64(b []byte) (int64, error) {
	v, n, err := ParseInt64(b, 10)
	if err == nil && n != len(b) {
		return 0, ErrSyntax
	}
	return v, err
}

// Uint64 parses b as a base-10 uint64 and requires the whole input to be
// consumed.
func Uint64(b []byte) (uint64, error) {
	v, n, err := ParseUint64(b, 10)
	if err == nil && n != len(b) {
		return 0, ErrSyntax
	}
	return v, err
}

// ParseDigit converts a single ASCII decimal digit.
func ParseDigit(c byte) (uint8, bool) {
	d := c - '0'
	return d, d <= 9
}
