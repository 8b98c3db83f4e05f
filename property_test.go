package chfloat

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// renderDecimal builds the exact decimal string for m * 10^e.
func renderDecimal(m uint64, e int) string {
	s := strconv.FormatUint(m, 10)
	switch {
	case e == 0:
		return s
	case e > 0:
		return s + strings.Repeat("0", e)
	default:
		if len(s) > -e {
			return s[:len(s)+e] + "." + s[len(s)+e:]
		}
		return "0." + strings.Repeat("0", -e-len(s)) + s
	}
}

func TestParseFloat64_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	properties.Property("exact short decimals round-trip like strconv", prop.ForAll(
		func(m uint64, e int) bool {
			s := renderDecimal(m, e)
			want, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return false
			}
			got, gotErr := Float64([]byte(s))
			return gotErr == nil && math.Float64bits(got) == math.Float64bits(want)
		},
		gen.UInt64Range(0, 1000000000000000),
		gen.IntRange(-15, 15),
	))

	properties.Property("shortest renderings parse back to the same bits", prop.ForAll(
		func(bits uint64) bool {
			x := math.Float64frombits(bits)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return true
			}
			s := strconv.FormatFloat(x, 'g', -1, 64)
			got, err := Float64([]byte(s))
			return err == nil && math.Float64bits(got) == bits
		},
		gen.UInt64(),
	))

	properties.Property("sign prefixes mirror the value", prop.ForAll(
		func(m uint64, e int) bool {
			s := renderDecimal(m, e)
			v, n, err := ParseFloat64([]byte(s))
			vNeg, nNeg, errNeg := ParseFloat64([]byte("-" + s))
			vPos, nPos, errPos := ParseFloat64([]byte("+" + s))
			if err != nil || errNeg != nil || errPos != nil {
				return false
			}
			return math.Float64bits(vNeg) == math.Float64bits(v)^(1<<63) &&
				math.Float64bits(vPos) == math.Float64bits(v) &&
				nNeg == n+1 && nPos == n+1
		},
		gen.UInt64Range(0, 1000000000000000),
		gen.IntRange(-15, 15),
	))

	properties.Property("leading whitespace only moves the cursor", prop.ForAll(
		func(wsLen int, m uint64, e int) bool {
			s := renderDecimal(m, e)
			ws := strings.Repeat(" \t\n\r\f\v", 2)[:wsLen]
			v, n, err := ParseFloat64([]byte(s))
			vWS, nWS, errWS := ParseFloat64WS([]byte(ws + s))
			return err == errWS && nWS == n+len(ws) &&
				math.Float64bits(v) == math.Float64bits(vWS)
		},
		gen.IntRange(0, 12),
		gen.UInt64Range(0, 1000000000000000),
		gen.IntRange(-15, 15),
	))

	properties.Property("trailing junk is left unconsumed", prop.ForAll(
		func(m uint64, e int) bool {
			s := renderDecimal(m, e)
			_, n, err := ParseFloat64([]byte(s + "z9"))
			return err == nil && n == len(s)
		},
		gen.UInt64Range(0, 1000000000000000),
		gen.IntRange(-15, 15),
	))

	properties.TestingRun(t)
}

func TestParseFloat32_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	properties.Property("shortest renderings parse back to the same bits", prop.ForAll(
		func(bits uint32) bool {
			x := math.Float32frombits(bits)
			if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
				return true
			}
			s := strconv.FormatFloat(float64(x), 'g', -1, 32)
			got, err := Float32([]byte(s))
			return err == nil && math.Float32bits(got) == bits
		},
		gen.UInt32(),
	))

	properties.Property("agrees with strconv on short decimals", prop.ForAll(
		func(m uint64, e int) bool {
			s := renderDecimal(m, e)
			want, err := strconv.ParseFloat(s, 32)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return false
			}
			got, gotErr := Float32([]byte(s))
			if gotErr != nil && gotErr != ErrRange {
				return false
			}
			return math.Float32bits(got) == math.Float32bits(float32(want))
		},
		gen.UInt64Range(0, 9999999999),
		gen.IntRange(-30, 30),
	))

	properties.TestingRun(t)
}

func TestParseInt_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	properties.Property("int64 round-trips in every base", prop.ForAll(
		func(v int64, base int) bool {
			s := strconv.FormatInt(v, base)
			got, n, err := ParseInt64([]byte(s), base)
			return err == nil && n == len(s) && got == v
		},
		gen.Int64(),
		gen.IntRange(2, 36),
	))

	properties.Property("uint64 round-trips in every base", prop.ForAll(
		func(v uint64, base int) bool {
			s := strconv.FormatUint(v, base)
			got, n, err := ParseUint64([]byte(s), base)
			return err == nil && n == len(s) && got == v
		},
		gen.UInt64(),
		gen.IntRange(2, 36),
	))

	properties.TestingRun(t)
}
