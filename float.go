package seximal

import (
	"fmt"
	"math"
	"strconv"
)

// Float is a floating point numeral backed by the native type T. Its text
// form is base 6 with '.' separating the whole and fractional digits.
//
// Arithmetic follows IEEE 754 and never fails: infinities and NaN are values
// like any other, though they have no base-6 text.
type Float[T Floating] struct {
	v T
}

type (
	Sf52  = Float[float32]
	Sf144 = Float[float64]
)

func FloatFrom[T Floating](v T) Float[T] { return Float[T]{v: v} }

// ParseFloat decodes base-6 text into a Float. A whole part too large for T
// fails with ErrOverflow; fractional digits beyond T's precision are
// consumed and rounded away.
func ParseFloat[T Floating](s string) (Float[T], error) {
	v, err := decodeFloat[T](s)
	if err != nil {
		return Float[T]{}, err
	}
	return Float[T]{v: v}, nil
}

func MustParseFloat[T Floating](s string) Float[T] {
	n, err := ParseFloat[T](s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Float[T]) Value() T     { return n.v }
func (n Float[T]) Kind() Kind   { return floatKind[T]() }
func (n Float[T]) IsZero() bool { return n.v == 0 }
func (n Float[T]) IsNaN() bool  { return n.v != n.v }

// IsInf reports whether n is an infinity, according to sign. If sign > 0, IsInf
// reports whether n is positive infinity. If sign < 0, IsInf reports whether n
// is negative infinity. If sign == 0, IsInf reports whether n is either
// infinity.
func (n Float[T]) IsInf(sign int) bool { return math.IsInf(float64(n.v), sign) }

// FracDigits returns the default fractional digit budget of n's kind.
func (n Float[T]) FracDigits() int {
	if n.Kind() == KindSf52 {
		return FracDigits32
	}
	return FracDigits64
}

// String returns the base-6 text of n using the kind's fractional digit
// budget.
func (n Float[T]) String() string {
	return n.Text(n.FracDigits())
}

// Text returns the base-6 text of n with at most maxFrac fractional digits.
// Digits past the budget are truncated, not rounded.
func (n Float[T]) Text(maxFrac int) string {
	var buf [64]byte
	return string(appendFloat(buf[:0], float64(n.v), maxFrac))
}

func (n Float[T]) Append(dst []byte) []byte {
	return appendFloat(dst, float64(n.v), n.FracDigits())
}

func (n Float[T]) Add(m Float[T]) Float[T] { return Float[T]{v: n.v + m.v} }
func (n Float[T]) Sub(m Float[T]) Float[T] { return Float[T]{v: n.v - m.v} }
func (n Float[T]) Mul(m Float[T]) Float[T] { return Float[T]{v: n.v * m.v} }
func (n Float[T]) Quo(m Float[T]) Float[T] { return Float[T]{v: n.v / m.v} }

// Rem returns the floating point remainder of n/m, with the sign of n. See
// math.Mod for the special cases.
func (n Float[T]) Rem(m Float[T]) Float[T] {
	return Float[T]{v: T(math.Mod(float64(n.v), float64(m.v)))}
}

func (n Float[T]) Neg() Float[T] { return Float[T]{v: -n.v} }

// Compare orders n and m. ok is false when either is NaN, in which case the
// two are unordered and c is 0.
func (n Float[T]) Compare(m Float[T]) (c int, ok bool) {
	switch {
	case n.v < m.v:
		return -1, true
	case n.v > m.v:
		return 1, true
	case n.v == m.v:
		return 0, true
	}
	return 0, false
}

func (n Float[T]) Equal(m Float[T]) bool            { return n.v == m.v }
func (n Float[T]) LessThan(m Float[T]) bool         { return n.v < m.v }
func (n Float[T]) LessOrEqualTo(m Float[T]) bool    { return n.v <= m.v }
func (n Float[T]) GreaterThan(m Float[T]) bool      { return n.v > m.v }
func (n Float[T]) GreaterOrEqualTo(m Float[T]) bool { return n.v >= m.v }

func (n Float[T]) ToSu12() (Su12, error)     { return floatToInt[uint8](n) }
func (n Float[T]) ToSu24() (Su24, error)     { return floatToInt[uint16](n) }
func (n Float[T]) ToSu52() (Su52, error)     { return floatToInt[uint32](n) }
func (n Float[T]) ToSu144() (Su144, error)   { return floatToInt[uint64](n) }
func (n Float[T]) ToSusize() (Susize, error) { return floatToInt[uint](n) }
func (n Float[T]) ToSi12() (Si12, error)     { return floatToInt[int8](n) }
func (n Float[T]) ToSi24() (Si24, error)     { return floatToInt[int16](n) }
func (n Float[T]) ToSi52() (Si52, error)     { return floatToInt[int32](n) }
func (n Float[T]) ToSi144() (Si144, error)   { return floatToInt[int64](n) }
func (n Float[T]) ToSisize() (Sisize, error) { return floatToInt[int](n) }

func (n Float[T]) ToSu332() (Su332, error) {
	u, ok := U128FromFloat64(float64(n.v))
	if !ok {
		return Su332{}, convErr(n.Kind(), KindSu332, n)
	}
	return Su332{v: u}, nil
}

func (n Float[T]) ToSi332() (Si332, error) {
	i, ok := I128FromFloat64(float64(n.v))
	if !ok {
		return Si332{}, convErr(n.Kind(), KindSi332, n)
	}
	return Si332{v: i}, nil
}

// ToSf52 rounds n to the nearest float32. Values beyond the float32 range
// become infinities.
func (n Float[T]) ToSf52() Sf52 { return Sf52{v: float32(n.v)} }

func (n Float[T]) ToSf144() Sf144 { return Sf144{v: float64(n.v)} }

// MarshalText fails for NaN and the infinities, which have no base-6 text.
func (n Float[T]) MarshalText() ([]byte, error) {
	if n.IsNaN() || n.IsInf(0) {
		return nil, fmt.Errorf("seximal: %s %v has no base-6 text", n.Kind(), n.v)
	}
	return n.Append(nil), nil
}

func (n *Float[T]) UnmarshalText(b []byte) error {
	v, err := ParseFloat[T](string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Float[T]) MarshalJSON() ([]byte, error) {
	text, err := n.MarshalText()
	if err != nil {
		return nil, err
	}
	return quoteJSON(string(text)), nil
}

func (n *Float[T]) UnmarshalJSON(b []byte) error {
	s, err := unquoteJSON(n.Kind(), b)
	if err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

func (n Float[T]) decimal() string {
	return strconv.FormatFloat(float64(n.v), 'g', -1, n.Kind().Bits())
}

func (n Float[T]) apply(op Op, b Numeral) (Numeral, error) {
	m, ok := b.(Float[T])
	if !ok {
		return nil, kindMismatch(n, b)
	}
	switch op {
	case OpAdd:
		return n.Add(m), nil
	case OpSub:
		return n.Sub(m), nil
	case OpMul:
		return n.Mul(m), nil
	case OpQuo:
		return n.Quo(m), nil
	case OpRem:
		return n.Rem(m), nil
	}
	return nil, errUnknownOp(op)
}
