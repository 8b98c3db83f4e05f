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
	quietNaN32 = 0x7fc00000
	infinity32 = 0x7f800000
	signBit32  = 1 << 31
	pow10Max32 = 38
	pow10Min32 = -64
)

// pow10Wide holds 10^-38..10^38 as float64. With the scanner's 10-digit
// mantissa cap, one float64 multiply followed by the float32 narrowing stays
// within a quarter binary32 ulp of the true value, so the narrowing rounds
// the same way an exact conversion would.
var pow10Wide = [77]float64{
	1e-38, 1e-37, 1e-36, 1e-35, 1e-34, 1e-33, 1e-32, 1e-31, 1e-30, 1e-29, 1e-28,
	1e-27, 1e-26, 1e-25, 1e-24, 1e-23, 1e-22, 1e-21, 1e-20, 1e-19, 1e-18, 1e-17,
	1e-16, 1e-15, 1e-14, 1e-13, 1e-12, 1e-11, 1e-10, 1e-9, 1e-8, 1e-7, 1e-6,
	1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1e0, 1e1, 1e2, 1e3, 1e4, 1e5,
	1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16,
	1e17, 1e18, 1e19, 1e20, 1e21, 1e22, 1e23, 1e24, 1e25, 1e26, 1e27,
	1e28, 1e29, 1e30, 1e31, 1e32, 1e33, 1e34, 1e35, 1e36, 1e37, 1e38,
}

func parseFloat32(b []byte) (float32, int, error) {
	i, neg := scanSign(b, 0)

	if n, isNaN := scanSpecial(b, i); n != 0 {
		bits := uint32(infinity32)
		if isNaN {
			bits = quietNaN32
		}
		if neg {
			bits |= signBit32
		}
		return math.Float32frombits(bits), i + n, nil
	}

	d, end, ok := scanDecimal(b, i, maxSigDigits32)
	if !ok {
		return 0, 0, ErrSyntax
	}

	if d.exact {
		e := d.exp10
		// Inputs with up to two fractional digits and no exponent are
		// the common case; they never need the table.
		if e >= -2 && e <= 0 {
			var vf float32
			switch e {
			case 0:
				vf = float32(d.mant)
			case -1:
				vf = float32(float64(d.mant) / 10)
			default:
				vf = float32(float64(d.mant) / 100)
			}
			if neg {
				vf = -vf
			}
			return vf, end, nil
		}
		if e >= -38 && e <= 38 {
			vf := float32(float64(d.mant) * pow10Wide[e+38])
			if neg {
				vf = -vf
			}
			return vf, end, nil
		}
	}

	if d.mant == 0 {
		var bits uint32
		if neg {
			bits = signBit32
		}
		return math.Float32frombits(bits), end, nil
	}

	if d.exp10 > pow10Max32 || d.exp10 < pow10Min32 {
		var bits uint32
		if d.exp10 > pow10Max32 {
			bits = infinity32
		}
		if neg {
			bits |= signBit32
		}
		return math.Float32frombits(bits), end, ErrRange
	}

	m, e2 := buildBinary32(d.exp10, d.mant)
	bits := uint32(e2)<<23 | m
	if neg {
		bits |= signBit32
	}
	return math.Float32frombits(bits), end, nil
}
