package seximal

import (
	"fmt"
	"math"
	"math/big"
)

// I128 is the native signed 128-bit integer stored by Si332, held in two's
// complement form across two uint64s.
type I128 struct {
	hi uint64
	lo uint64
}

const signBit = 0x8000000000000000

// I128FromString creates a I128 from a decimal string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromString(s string) (out I128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("seximal: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	u, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if cmp := u.Cmp(maxI128AsU128); cmp == 0 {
			out = MaxI128
		} else if cmp > 0 {
			out, accurate = MaxI128, false
		} else {
			out = u.AsI128()
		}

	} else {
		if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
			out = MinI128
		} else if cmp > 0 {
			out, accurate = MinI128, false
		} else {
			out = u.AsI128().Neg()
		}
	}

	return out, accurate
}

// I128FromFloat64 creates a I128 from a float64, truncating any fractional
// portion towards zero.
//
// NaN, infinities and values whose truncation falls outside [-(1<<127),
// 1<<127) produce 0 with inRange set to false.
func I128FromFloat64(f float64) (out I128, inRange bool) {
	if f != f || math.IsInf(f, 0) { // f != f == isnan
		return out, false
	}

	f = math.Trunc(f)
	if f < -wrapI128Float || f >= wrapI128Float {
		return out, false
	} else if f >= minInt64 && f < -minInt64 {
		return I128From64(int64(f)), true
	}

	b, _ := new(big.Float).SetFloat64(f).Int(nil)
	return I128FromBigInt(b)
}

// RandI128 generates a positive signed 128-bit random integer from an external
// source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64() & maxInt64, lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// String returns the decimal representation of i. Use Si332 for base 6.
func (i I128) String() string {
	return i.AsBigInt().String()
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	b.SetUint64(0)
	if i.hi > 0 {
		b.SetUint64(i.hi)
		b.Lsh(b, 64)
	}
	var lo big.Int
	lo.SetUint64(i.lo)
	b.Add(b, &lo)

	if neg {
		b.Xor(b, maxBigU128).Add(b, big1).Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

func (i I128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(i.AsBigInt())
}

// AsFloat64 returns the float64 nearest to i, rounding half to even.
func (i I128) AsFloat64() float64 {
	if i.IsInt64() {
		return float64(i.AsInt64())
	}
	f, _ := i.AsBigFloat().Float64()
	return f
}

// AsFloat32 returns the float32 nearest to i, rounding half to even.
func (i I128) AsFloat32() float32 {
	if i.IsInt64() {
		return float32(i.AsInt64())
	}
	f, _ := i.AsBigFloat().Float32()
	return f
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Add(n I128) (v I128) {
	return i.AsU128().Add(n.AsU128()).AsI128()
}

func (i I128) Sub(n I128) (out I128) {
	return i.AsU128().Sub(n.AsU128()).AsI128()
}

// addOK returns i+n and whether the sum stayed in range: two operands of the
// same sign must produce a result of that sign.
func (i I128) addOK(n I128) (v I128, ok bool) {
	v = i.Add(n)
	same := (i.hi^n.hi)&signBit == 0
	return v, !same || (v.hi^i.hi)&signBit == 0
}

// subOK returns i-n and whether the difference stayed in range.
func (i I128) subOK(n I128) (v I128, ok bool) {
	v = i.Sub(n)
	differ := (i.hi^n.hi)&signBit != 0
	return v, !differ || (v.hi^i.hi)&signBit == 0
}

// mulOK multiplies the magnitudes as U128s and checks the product against
// the limit for the result's sign.
func (i I128) mulOK(n I128) (v I128, ok bool) {
	if i.IsZero() || n.IsZero() {
		return v, true
	}
	neg := (i.hi^n.hi)&signBit != 0
	m, ok := i.Abs().AsU128().mulOK(n.Abs().AsU128())
	if !ok {
		return v, false
	}
	if neg {
		if m.GreaterThan(minI128AsAbsU128) {
			return v, false
		}
		return m.AsI128().Neg(), true
	}
	if m.GreaterThan(maxI128AsU128) {
		return v, false
	}
	return m.AsI128(), true
}

func (i I128) Neg() (v I128) {
	if i.hi == 0 && i.lo == 0 {
		return v
	}

	if i == MinI128 {
		// Overflow case: -MinI128 == MinI128
		return i

	} else if i.hi&signBit != 0 {
		v.hi = ^i.hi
		v.lo = ^(i.lo - 1)
	} else {
		v.hi = ^i.hi
		v.lo = (^i.lo) + 1
	}
	if v.lo == 0 { // handle overflow
		v.hi++
	}
	return v
}

// Abs returns the absolute value of i. Abs(MinI128) is MinI128, which read
// as a U128 is the correct magnitude 1<<127.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		i.hi = ^i.hi
		i.lo = ^(i.lo - 1)
		if i.lo == 0 { // handle overflow
			i.hi++
		}
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	return i.Cmp(n) > 0
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	return i.Cmp(n) >= 0
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	return i.Cmp(n) <= 0
}

// Mul returns the product of two I128s. Overflow wraps like Go's native integers.
func (i I128) Mul(n I128) (dest I128) {
	return i.AsU128().Mul(n.AsU128()).AsI128()
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
func (i I128) QuoRem(by I128) (q, r I128) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroI128) {
		qSign, rSign = -1, -1
		i = i.Neg()
	}
	if by.LessThan(zeroI128) {
		qSign = -qSign
		by = by.Neg()
	}

	qu, ru := i.AsU128().QuoRem(by.AsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}
