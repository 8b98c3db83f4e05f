package chfloat

import (
	"math"
	"testing"
)

// TestCursor pins down how far each parse advances, including the partial
// consumption cases.
func TestCursor(t *testing.T) {
	testCases := []struct {
		input string
		n     int
		err   error
	}{
		{"0", 1, nil},
		{"-0", 2, nil},
		{"1..0", 2, nil},       // second dot starts no fraction
		{"1.", 2, nil},         // trailing dot is consumed
		{".5", 2, nil},         // leading dot is fine with digits after
		{"1e5x", 3, nil},       // junk after exponent
		{"1e", 1, nil},         // e without digits rewinds
		{"1e+", 1, nil},        // sign without digits rewinds too
		{"1e+5", 4, nil},
		{"12.5flat", 4, nil},
		{"nan", 3, nil},
		{"nansense", 3, nil},   // nan prefix match, tail untouched
		{"inf", 3, nil},
		{"infinity", 8, nil},
		{"-infinity", 9, nil},
		{"infinite", 3, nil},   // inf prefix, infinity does not match
		{"+inf", 4, nil},
		{"1e9999", 6, ErrRange}, // range errors still consume the number
		{"1e-9999", 7, ErrRange},
		{"", 0, ErrSyntax},
		{".", 0, ErrSyntax},
		{"+", 0, ErrSyntax},
		{"-.", 0, ErrSyntax},
		{"abc", 0, ErrSyntax},
		{"e5", 0, ErrSyntax},
		{"+e5", 0, ErrSyntax},
		{"na", 0, ErrSyntax},
		{"in", 0, ErrSyntax},
		{"infin", 3, nil}, // inf matches, "in" remains
	}
	for _, tc := range testCases {
		_, n, err := ParseFloat64([]byte(tc.input))
		if n != tc.n || err != tc.err {
			t.Errorf("ParseFloat64(%q): got: %d, %v want: %d, %v", tc.input, n, err, tc.n, tc.err)
		}
		_, n, err = ParseFloat32([]byte(tc.input))
		if n != tc.n || err != tc.err {
			t.Errorf("ParseFloat32(%q): got: %d, %v want: %d, %v", tc.input, n, err, tc.n, tc.err)
		}
	}
}

func TestFormat(t *testing.T) {
	if _, n, err := ParseFloat64Format([]byte("1.5"), FormatGeneral); err != nil || n != 3 {
		t.Errorf("general format: got: %d, %v want: 3, nil", n, err)
	}
	for _, format := range []Format{FormatScientific, FormatFixed, FormatHex, Format(200)} {
		if _, n, err := ParseFloat64Format([]byte("1.5"), format); err != ErrSyntax || n != 0 {
			t.Errorf("format %d: got: %d, %v want: 0, ErrSyntax", format, n, err)
		}
		if _, n, err := ParseFloat32Format([]byte("1.5"), format); err != ErrSyntax || n != 0 {
			t.Errorf("format %d: got: %d, %v want: 0, ErrSyntax", format, n, err)
		}
	}
}

func TestWhitespaceVariants(t *testing.T) {
	v32, n, err := ParseFloat32WS([]byte("  \t\n-12.5"))
	if err != nil || v32 != -12.5 || n != 9 {
		t.Errorf("ParseFloat32WS: got: %v, %d, %v want: -12.5, 9, nil", v32, n, err)
	}
	v64, n, err := ParseFloat64WS([]byte("\f\v\r 1e3tail"))
	if err != nil || v64 != 1000 || n != 7 {
		t.Errorf("ParseFloat64WS: got: %v, %d, %v want: 1000, 7, nil", v64, n, err)
	}
	i64, n, err := ParseInt64WS([]byte("   -42"), 10)
	if err != nil || i64 != -42 || n != 6 {
		t.Errorf("ParseInt64WS: got: %v, %d, %v want: -42, 6, nil", i64, n, err)
	}
	u64, n, err := ParseUint64WS([]byte("\tff"), 16)
	if err != nil || u64 != 255 || n != 3 {
		t.Errorf("ParseUint64WS: got: %v, %d, %v want: 255, 3, nil", u64, n, err)
	}
	// whitespace only
	if _, n, err := ParseFloat64WS([]byte("   ")); err != ErrSyntax || n != 3 {
		t.Errorf("ParseFloat64WS(spaces): got: %d, %v want: 3, ErrSyntax", n, err)
	}
}

func TestFullStringHelpers(t *testing.T) {
	if v, err := Float64([]byte("2.5")); err != nil || v != 2.5 {
		t.Errorf("Float64(2.5): got: %v, %v", v, err)
	}
	if _, err := Float64([]byte("2.5x")); err != ErrSyntax {
		t.Errorf("Float64(2.5x): got: %v want: ErrSyntax", err)
	}
	if v, err := Float64([]byte("1e9999")); err != ErrRange || !math.IsInf(v, 1) {
		t.Errorf("Float64(1e9999): got: %v, %v want: +Inf, ErrRange", v, err)
	}
	if v, err := Int64([]byte("-123")); err != nil || v != -123 {
		t.Errorf("Int64(-123): got: %v, %v", v, err)
	}
	if _, err := Int64([]byte("12x")); err != ErrSyntax {
		t.Errorf("Int64(12x): got: %v want: ErrSyntax", err)
	}
	if v, err := Uint64([]byte("18446744073709551615")); err != nil || v != math.MaxUint64 {
		t.Errorf("Uint64(max): got: %v, %v", v, err)
	}
}

func TestParseDigit(t *testing.T) {
	if d, ok := ParseDigit('0'); !ok || d != 0 {
		t.Errorf("ParseDigit('0'): got: %d, %v", d, ok)
	}
	if d, ok := ParseDigit('9'); !ok || d != 9 {
		t.Errorf("ParseDigit('9'): got: %d, %v", d, ok)
	}
	for _, c := range []byte{'a', '/', ':', ' ', 0xff} {
		if _, ok := ParseDigit(c); ok {
			t.Errorf("ParseDigit(%q): got: ok", c)
		}
	}
}
