package seximal

import (
	"fmt"
	"math"
	"math/big"
)

// scan validates base-6 text for kind and splits it into its parts. It checks
// the whole text before any digit is accumulated, so a bad character is
// always reported as ErrInvalidDigit even when the digits before it would
// already overflow.
//
// Grammar: ['-'] digit+ [ '.' digit+ ], digit in 0..5. The sign is only
// accepted by signed kinds, the separator only by float kinds.
func scan(kind Kind, s string) (neg bool, whole, frac string, err error) {
	i := 0
	if len(s) > 0 && s[0] == '-' {
		if !kind.Signed() {
			return false, "", "", parseErr(kind, s, 0, ErrInvalidDigit)
		}
		neg, i = true, 1
	}

	start, sep := i, -1
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '5' {
			continue
		}
		if c == '.' && kind.Float() && sep < 0 {
			sep = i
			continue
		}
		return false, "", "", parseErr(kind, s, i, ErrInvalidDigit)
	}

	if sep < 0 {
		whole = s[start:]
	} else {
		whole, frac = s[start:sep], s[sep+1:]
	}
	if whole == "" {
		return false, "", "", parseErr(kind, s, start, ErrInvalidDigit)
	}
	if sep >= 0 && frac == "" {
		return false, "", "", parseErr(kind, s, len(s), ErrInvalidDigit)
	}
	return neg, whole, frac, nil
}

// decodeInt accumulates acc = acc*6 + digit in T, checking each step against
// T's range before committing it. Negative values are accumulated downwards
// so the minimum of a signed type is reachable.
func decodeInt[T Integer](s string) (T, error) {
	kind := intKind[T]()
	neg, digits, _, err := scan(kind, s)
	if err != nil {
		return 0, err
	}

	lo, hi := intBounds[T]()
	var acc T
	for i := 0; i < len(digits); i++ {
		d := T(digits[i] - '0')
		if neg {
			if acc < (lo+d)/6 {
				return 0, parseErr(kind, s, len(s)-len(digits)+i, ErrOverflow)
			}
			acc = acc*6 - d
		} else {
			if acc > (hi-d)/6 {
				return 0, parseErr(kind, s, len(s)-len(digits)+i, ErrOverflow)
			}
			acc = acc*6 + d
		}
	}
	return acc, nil
}

// decodeU128 is decodeInt for U128 magnitudes no larger than limit. limitDiv6
// must be limit/6.
func decodeU128(kind Kind, s, digits string, limit, limitDiv6 U128) (U128, error) {
	var acc U128
	for i := 0; i < len(digits); i++ {
		if acc.GreaterThan(limitDiv6) {
			return acc, parseErr(kind, s, len(s)-len(digits)+i, ErrOverflow)
		}
		next, ok := acc.Mul(six128).addOK(U128From8(digits[i] - '0'))
		if !ok || next.GreaterThan(limit) {
			return acc, parseErr(kind, s, len(s)-len(digits)+i, ErrOverflow)
		}
		acc = next
	}
	return acc, nil
}

// decodeFloat accumulates the whole digits and adds the fractional digits
// with a shrinking place value. Fractional digits are taken in runs short
// enough that the run's value and its 6^n place are exact in T, so a fraction
// of up to one run costs a single rounding.
//
// A whole part of up to one run is exact in T and is accumulated natively.
// Longer whole parts are decoded exactly with math/big and rounded to T once,
// so large values are correctly rounded rather than carrying the error of
// every step.
func decodeFloat[T Floating](s string) (T, error) {
	kind := floatKind[T]()
	neg, whole, frac, err := scan(kind, s)
	if err != nil {
		return 0, err
	}

	chunk := chunk64
	if kind == KindSf52 {
		chunk = chunk32
	}

	var acc T
	if len(whole) <= chunk {
		for i := 0; i < len(whole); i++ {
			acc = acc*6 + T(whole[i]-'0')
		}
	} else {
		acc = roundWhole[T](kind, whole)
		if math.IsInf(float64(acc), 0) {
			return 0, parseErr(kind, s, len(s), ErrOverflow)
		}
	}

	var part T
	place := T(1)
	for len(frac) > 0 && place != 0 {
		n := min(chunk, len(frac))
		var num T
		den := T(1)
		for i := 0; i < n; i++ {
			num = num*6 + T(frac[i]-'0')
			den *= 6
		}
		part += num / den * place
		place /= den
		frac = frac[n:]
	}

	v := acc + part
	if neg {
		v = -v
	}
	return v, nil
}

// roundWhole rounds the base-6 digit run whole to the nearest value of T,
// ties to even. Magnitudes beyond T's range come back as +Inf.
func roundWhole[T Floating](kind Kind, whole string) T {
	b, _ := new(big.Int).SetString(whole, 6)
	f := new(big.Float).SetInt(b)
	if kind == KindSf52 {
		v, _ := f.Float32()
		return T(v)
	}
	v, _ := f.Float64()
	return T(v)
}

// appendInt appends the base-6 text of v to dst by repeatedly taking v mod 6
// and v / 6. Digits of negative values are taken from the negative remainder
// so the minimum of a signed type needs no absolute value.
func appendInt[T Integer](dst []byte, v T) []byte {
	if v == 0 {
		return append(dst, '0')
	}

	var buf [66]byte
	i := len(buf)
	neg := v < 0
	for v != 0 {
		d := v % 6
		if neg {
			d = -d
		}
		i--
		buf[i] = '0' + byte(d)
		v /= 6
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return append(dst, buf[i:]...)
}

func appendU128(dst []byte, u U128) []byte {
	if u.hi == 0 {
		return appendInt(dst, u.lo)
	}

	var buf [maxDigits128]byte
	i := len(buf)
	for !u.IsZero() {
		var r U128
		u, r = u.QuoRem(six128)
		i--
		buf[i] = '0' + byte(r.lo)
	}
	return append(dst, buf[i:]...)
}

func appendI128(dst []byte, v I128) []byte {
	if v.Sign() < 0 {
		dst = append(dst, '-')
	}
	return appendU128(dst, v.Abs().AsU128())
}

// appendFloat appends the base-6 text of f with at most maxFrac fractional
// digits. The whole part uses the integer algorithm; fractional digits come
// from repeatedly multiplying the remainder by 6 and taking the integer part,
// stopping once the remainder is exactly zero or the budget is spent.
// Trailing zero digits are dropped, as is the separator when no digits remain.
//
// NaN and the infinities, which have no base-6 text, are written the way
// strconv writes them.
func appendFloat(dst []byte, f float64, maxFrac int) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, 1):
		return append(dst, "+Inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-Inf"...)
	}

	if f < 0 {
		dst = append(dst, '-')
		f = -f
	}

	whole := math.Trunc(f)
	frac := f - whole

	if whole < wrapUint64Float {
		dst = appendInt(dst, uint64(whole))
	} else {
		b, _ := new(big.Float).SetFloat64(whole).Int(nil)
		dst = b.Append(dst, 6)
	}

	if frac == 0 || maxFrac <= 0 {
		return dst
	}

	mark := len(dst)
	dst = append(dst, '.')
	for n := 0; n < maxFrac && frac != 0; n++ {
		frac *= 6
		d := math.Trunc(frac)
		frac -= d
		if d > 5 {
			d = 5
		}
		dst = append(dst, '0'+byte(d))
	}

	end := len(dst)
	for end > mark+1 && dst[end-1] == '0' {
		end--
	}
	if end == mark+1 {
		end = mark
	}
	return dst[:end]
}

// unquoteJSON strips the quotes from a JSON string holding base-6 text. Bare
// tokens are passed through so that numbers written without quotes still
// decode when every digit is in range.
func unquoteJSON(kind Kind, b []byte) (string, error) {
	if len(b) > 0 && b[0] == '"' {
		ln := len(b)
		if ln < 2 || b[ln-1] != '"' {
			return "", fmt.Errorf("seximal: %s invalid JSON %q", kind, string(b))
		}
		b = b[1 : ln-1]
	}
	return string(b), nil
}

func quoteJSON(text string) []byte {
	out := make([]byte, 0, len(text)+2)
	out = append(out, '"')
	out = append(out, text...)
	return append(out, '"')
}
