package chfloat

import "math"

// digitValue maps an ASCII byte to its value in bases up to 36, or 0xff for
// non-digit bytes.
func digitValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'z':
		return c - 'a' + 10
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 10
	}
	return 0xff
}

// parseUintBase accumulates digits of the given base starting at i. On
// overflow it keeps consuming digits so the caller still learns where the
// number ends, then reports ErrRange.
func parseUintBase(b []byte, i, base int) (uint64, int, error) {
	if base < 2 || base > 36 {
		return 0, 0, ErrSyntax
	}
	var v uint64
	ub := uint64(base)
	start := i
	for i < len(b) {
		d := digitValue(b[i])
		if d >= byte(base) {
			break
		}
		ud := uint64(d)
		if v > (math.MaxUint64-ud)/ub {
			i++
			for i < len(b) && digitValue(b[i]) < byte(base) {
				i++
			}
			return 0, i, ErrRange
		}
		v = v*ub + ud
		i++
	}
	if i == start {
		return 0, 0, ErrSyntax
	}
	return v, i, nil
}

// ParseUint64 parses an unsigned integer of the given base (2..36) from the
// longest valid prefix of b. A leading sign is not accepted. On ErrRange the
// count covers every digit of the oversized number.
func ParseUint64(b []byte, base int) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrSyntax
	}
	if b[0] == '-' || b[0] == '+' {
		return 0, 0, ErrSyntax
	}
	return parseUintBase(b, 0, base)
}

// ParseInt64 parses a signed integer of the given base (2..36) from the
// longest valid prefix of b.
func ParseInt64(b []byte, base int) (int64, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrSyntax
	}
	i, neg := scanSign(b, 0)
	mag, n, err := parseUintBase(b, i, base)
	if err != nil {
		if err == ErrSyntax {
			return 0, 0, ErrSyntax
		}
		return 0, n, err
	}
	if !neg {
		if mag > math.MaxInt64 {
			return 0, n, ErrRange
		}
		return int64(mag), n, nil
	}
	if mag > 1<<63 {
		return 0, n, ErrRange
	}
	if mag == 1<<63 {
		return math.MinInt64, n, nil
	}
	return -int64(mag), n, nil
}

// ParseUint32 is ParseUint64 narrowed to uint32.
func ParseUint32(b []byte, base int) (uint32, int, error) {
	v, n, err := ParseUint64(b, base)
	if err != nil {
		return 0, n, err
	}
	if v > math.MaxUint32 {
		return 0, n, ErrRange
	}
	return uint32(v), n, nil
}

// ParseInt32 is ParseInt64 narrowed to int32.
func ParseInt32(b []byte, base int) (int32, int, error) {
	v, n, err := ParseInt64(b, base)
	if err != nil {
		return 0, n, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, n, ErrRange
	}
	return int32(v), n, nil
}
