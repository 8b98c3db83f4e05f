package chfloat

import "encoding/binary"

// decimal is the output of the bounded scanner: the leading significant
// digits packed into mant, and the power of ten that scales mant back to the
// input value. exact is false when digits beyond the cap were dropped; in
// that case mant has already been rounded half-to-even against the dropped
// tail.
type decimal struct {
	mant  uint64
	exp10 int
	exact bool
}

// Significant-digit caps. 19 digits always fit a uint64; 10 digits keep the
// float32 pipeline cheap while leaving binary64 intermediates exact.
const (
	maxSigDigits64 = 19
	maxSigDigits32 = 10
)

// Rollover values: 10^cap, the first mantissa that no longer fits the cap
// after a round-up carry.
const (
	rollover64 = 10000000000000000000 // 10^19
	rollover32 = 10000000000          // 10^10
)

const (
	repeatZeroDigit = 0x3030303030303030
	swarAddMask     = 0x4646464646464646
	swarHighBits    = 0x8080808080808080
)

// allDigits8 reports whether every byte of the little-endian word w is an
// ASCII decimal digit. For each byte, w-'0' underflows below '0' and w+0x46
// carries past 0x7f above '9'; either sets the byte's high bit. The masks are
// byte-replicated, so lane order does not matter.
func allDigits8(w uint64) bool {
	return ((w+swarAddMask)|(w-repeatZeroDigit))&swarHighBits == 0
}

// scanDigitRun consumes a run of digits starting at i, returning the new
// position, the run length and whether any digit was nonzero. Used for the
// tails past the significant-digit cap, where only the count and a sticky
// nonzero flag matter.
func scanDigitRun(b []byte, i int) (_ int, count int, nonzero bool) {
	for len(b)-i >= 8 {
		w := binary.LittleEndian.Uint64(b[i:])
		if !allDigits8(w) {
			break
		}
		count += 8
		nonzero = nonzero || w != repeatZeroDigit
		i += 8
	}
	for i < len(b) {
		d := b[i] - '0'
		if d > 9 {
			break
		}
		count++
		nonzero = nonzero || d != 0
		i++
	}
	return i, count, nonzero
}

// scanDecimal consumes digits[.digits][(e|E)[sign]digits] from b starting at
// i, accumulating at most maxSig significant digits into mant. Leading zeros
// carry no significance and never consume mantissa capacity. Digits past the
// cap only adjust exp10 (integer positions) and feed the final half-to-even
// rounding of mant. A trailing e/E without digits is not consumed.
//
// ok is false when no digit appears before the exponent section; the other
// results are meaningless in that case.
func scanDecimal(b []byte, i, maxSig int) (d decimal, n int, ok bool) {
	rollover := uint64(rollover64)
	if maxSig == maxSigDigits32 {
		rollover = rollover32
	}

	var (
		mant         uint64
		exp10        int
		sig          int
		sawDigit     bool
		dropped      bool
		droppedFirst byte
		droppedTail  bool
	)

	for i < len(b) {
		c := b[i] - '0'
		if c > 9 {
			break
		}
		sawDigit = true
		if sig == 0 && c == 0 {
			i++
			continue
		}
		if sig < maxSig {
			mant = mant*10 + uint64(c)
			sig++
			i++
			continue
		}
		// Integer digits past the cap scale the value up.
		dropped = true
		droppedFirst = c
		exp10++
		i++
		var count int
		var nonzero bool
		i, count, nonzero = scanDigitRun(b, i)
		exp10 += count
		droppedTail = droppedTail || nonzero
		break
	}

	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) {
			c := b[i] - '0'
			if c > 9 {
				break
			}
			sawDigit = true
			if sig == 0 && c == 0 {
				exp10--
				i++
				continue
			}
			if sig < maxSig {
				mant = mant*10 + uint64(c)
				sig++
				exp10--
				i++
				continue
			}
			// Fractional digits past the cap are below mant's
			// precision; they feed the sticky state only.
			if !dropped {
				dropped = true
				droppedFirst = c
			} else {
				droppedTail = droppedTail || c != 0
			}
			i++
			var nonzero bool
			i, _, nonzero = scanDigitRun(b, i)
			droppedTail = droppedTail || nonzero
			break
		}
	}

	if !sawDigit {
		return decimal{}, 0, false
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		epos := i
		i++
		eneg := false
		if i < len(b) && (b[i] == '-' || b[i] == '+') {
			eneg = b[i] == '-'
			i++
		}
		if i == len(b) || b[i]-'0' > 9 {
			// No exponent digits: the e and any sign stay unconsumed.
			i = epos
		} else {
			e := int(b[i] - '0')
			i++
			for i < len(b) {
				c := b[i] - '0'
				if c > 9 {
					break
				}
				// Saturate: anything this large is far outside
				// every supported binary range.
				if e < 10000 {
					e = e*10 + int(c)
				}
				i++
			}
			if eneg {
				e = -e
			}
			exp10 += e
		}
	}

	if dropped {
		if droppedFirst > 5 || (droppedFirst == 5 && (droppedTail || mant&1 == 1)) {
			mant++
			if mant == rollover {
				mant /= 10
				exp10++
			}
		}
	}

	return decimal{mant: mant, exp10: exp10, exact: !dropped}, i, true
}

// scanSign consumes an optional leading sign.
func scanSign(b []byte, i int) (_ int, neg bool) {
	if i < len(b) && (b[i] == '-' || b[i] == '+') {
		neg = b[i] == '-'
		i++
	}
	return i, neg
}

// scanSpecial matches the case-insensitive tokens nan, inf and infinity at
// position i. The 8-byte infinity form wins over inf when it fits; partial
// matches consume nothing. Returns the token length (0 if none matched) and
// whether the token was nan.
func scanSpecial(b []byte, i int) (n int, isNaN bool) {
	if i >= len(b) {
		return 0, false
	}
	switch b[i] | 0x20 {
	case 'n':
		if len(b)-i >= 3 && asciiEqualFold(b[i:i+3], "nan") {
			return 3, true
		}
	case 'i':
		if len(b)-i >= 8 && asciiEqualFold(b[i:i+8], "infinity") {
			return 8, false
		}
		if len(b)-i >= 3 && asciiEqualFold(b[i:i+3], "inf") {
			return 3, false
		}
	}
	return 0, false
}

// asciiEqualFold compares b against a lower-case ASCII literal of the same
// length, ignoring case.
func asciiEqualFold(b []byte, lower string) bool {
	for i := 0; i < len(lower); i++ {
		if b[i]|0x20 != lower[i] {
			return false
		}
	}
	return true
}
