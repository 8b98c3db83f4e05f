/*
 * chfloat, (C) 2025 chfloat authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package chfloat

import "math"

const (
	quietNaN64 = 0x7ff8000000000000
	infinity64 = 0x7ff0000000000000
	signBit64  = 1 << 63
	maxExact64 = 1<<53 - 1 // largest integer held exactly by a float64
	pow10Max64 = 308
	pow10Min64 = -342
)

// pow10Exact holds 10^0..10^15, the powers of ten that are exact integers
// within the 53-bit float64 mantissa. Multiplying or dividing an exact
// mantissa by one of these rounds once, which is all correct rounding needs.
var pow10Exact = [16]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
}

func parseFloat64(b []byte) (float64, int, error) {
	i, neg := scanSign(b, 0)

	if n, isNaN := scanSpecial(b, i); n != 0 {
		bits := uint64(infinity64)
		if isNaN {
			bits = quietNaN64
		}
		if neg {
			bits |= signBit64
		}
		return math.Float64frombits(bits), i + n, nil
	}

	d, end, ok := scanDecimal(b, i, maxSigDigits64)
	if !ok {
		return 0, 0, ErrSyntax
	}

	if d.exact && d.mant <= maxExact64 {
		e := d.exp10
		// Short fixed-notation inputs (at most two fractional digits)
		// dominate real workloads; one division beats the table walk.
		if d.mant <= 99999999 {
			if e == -1 {
				v := float64(d.mant) / 10
				if neg {
					v = -v
				}
				return v, end, nil
			}
			if e == -2 {
				v := float64(d.mant) / 100
				if neg {
					v = -v
				}
				return v, end, nil
			}
		}
		if e >= -15 && e <= 15 {
			v := float64(d.mant)
			if e > 0 {
				v *= pow10Exact[e]
			} else if e < 0 {
				v /= pow10Exact[-e]
			}
			if neg {
				v = -v
			}
			return v, end, nil
		}
	}

	if d.mant == 0 {
		var bits uint64
		if neg {
			bits = signBit64
		}
		return math.Float64frombits(bits), end, nil
	}

	if d.exp10 > pow10Max64 || d.exp10 < pow10Min64 {
		var bits uint64
		if d.exp10 > pow10Max64 {
			bits = infinity64
		}
		if neg {
			bits |= signBit64
		}
		return math.Float64frombits(bits), end, ErrRange
	}

	m, e2 := buildBinary64(d.exp10, d.mant)
	bits := uint64(e2)<<52 | m
	if neg {
		bits |= signBit64
	}
	return math.Float64frombits(bits), end, nil
}
