package seximal

import (
	"fmt"
)

// Int is a fixed-width integer numeral backed by the native type T. Its text
// form is base 6: an optional '-' (signed kinds only) followed by digits 0-5.
//
// Int is a value type; all operations return new values. Arithmetic is
// checked: a result that does not fit T is reported as ErrOverflow rather
// than wrapped.
type Int[T Integer] struct {
	v T
}

type (
	Su12   = Int[uint8]
	Su24   = Int[uint16]
	Su52   = Int[uint32]
	Su144  = Int[uint64]
	Susize = Int[uint]

	Si12   = Int[int8]
	Si24   = Int[int16]
	Si52   = Int[int32]
	Si144  = Int[int64]
	Sisize = Int[int]
)

func IntFrom[T Integer](v T) Int[T] { return Int[T]{v: v} }

// ParseInt decodes base-6 text into an Int. Any character outside the
// alphabet fails with ErrInvalidDigit, checked before the value is
// accumulated; a value outside T's range fails with ErrOverflow. Both are
// returned inside a *ParseError.
func ParseInt[T Integer](s string) (Int[T], error) {
	v, err := decodeInt[T](s)
	if err != nil {
		return Int[T]{}, err
	}
	return Int[T]{v: v}, nil
}

// MustParseInt is ParseInt for literals known to be valid. It panics on
// error.
func MustParseInt[T Integer](s string) Int[T] {
	n, err := ParseInt[T](s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Int[T]) Value() T     { return n.v }
func (n Int[T]) Kind() Kind   { return intKind[T]() }
func (n Int[T]) IsZero() bool { return n.v == 0 }

func (n Int[T]) String() string {
	var buf [66]byte
	return string(appendInt(buf[:0], n.v))
}

// Append appends the base-6 text of n to dst.
func (n Int[T]) Append(dst []byte) []byte {
	return appendInt(dst, n.v)
}

func (n Int[T]) Sign() int {
	if n.v == 0 {
		return 0
	} else if n.v < 0 {
		return -1
	}
	return 1
}

func (n Int[T]) Add(m Int[T]) (Int[T], error) {
	s := n.v + m.v
	if (m.v < 0) != (s < n.v) {
		return Int[T]{}, n.arithErr(OpAdd, m, ErrOverflow)
	}
	return Int[T]{v: s}, nil
}

func (n Int[T]) Sub(m Int[T]) (Int[T], error) {
	d := n.v - m.v
	if (m.v < 0) != (d > n.v) {
		return Int[T]{}, n.arithErr(OpSub, m, ErrOverflow)
	}
	return Int[T]{v: d}, nil
}

func (n Int[T]) Mul(m Int[T]) (Int[T], error) {
	if n.v == 0 || m.v == 0 {
		return Int[T]{}, nil
	}
	if n.isMinusOneTimesMin(m) {
		return Int[T]{}, n.arithErr(OpMul, m, ErrOverflow)
	}
	p := n.v * m.v
	if p/m.v != n.v {
		return Int[T]{}, n.arithErr(OpMul, m, ErrOverflow)
	}
	return Int[T]{v: p}, nil
}

// Quo returns n/m truncated toward zero.
func (n Int[T]) Quo(m Int[T]) (Int[T], error) {
	q, _, err := n.quoRem(OpQuo, m)
	return q, err
}

// Rem returns the remainder of n/m, which takes the sign of n. The remainder
// of the signed minimum by -1 is 0.
func (n Int[T]) Rem(m Int[T]) (Int[T], error) {
	if m.v == 0 {
		return Int[T]{}, n.arithErr(OpRem, m, ErrDivideByZero)
	}
	return Int[T]{v: n.v % m.v}, nil
}

// QuoRem implements T-division and modulus (like Go):
//
//	q = n/m      with the result truncated to zero
//	r = n - m*q
func (n Int[T]) QuoRem(m Int[T]) (q, r Int[T], err error) {
	return n.quoRem(OpQuo, m)
}

func (n Int[T]) quoRem(op Op, m Int[T]) (q, r Int[T], err error) {
	if m.v == 0 {
		return q, r, n.arithErr(op, m, ErrDivideByZero)
	}
	if lo, _ := intBounds[T](); lo != 0 && n.v == lo && m.v == ^T(0) {
		return q, r, n.arithErr(op, m, ErrOverflow)
	}
	return Int[T]{v: n.v / m.v}, Int[T]{v: n.v % m.v}, nil
}

// isMinusOneTimesMin reports whether the product is -1 times the signed
// minimum, the one signed product whose overflow the division check misses.
func (n Int[T]) isMinusOneTimesMin(m Int[T]) bool {
	lo, _ := intBounds[T]()
	if lo == 0 {
		return false
	}
	return (n.v == ^T(0) && m.v == lo) || (m.v == ^T(0) && n.v == lo)
}

func (n Int[T]) arithErr(op Op, m Int[T], err error) error {
	return arithErr(n.Kind(), n, op, m, err)
}

// Cmp compares n to m and returns -1, 0 or 1.
func (n Int[T]) Cmp(m Int[T]) int {
	if n.v < m.v {
		return -1
	} else if n.v > m.v {
		return 1
	}
	return 0
}

func (n Int[T]) Equal(m Int[T]) bool            { return n.v == m.v }
func (n Int[T]) LessThan(m Int[T]) bool         { return n.v < m.v }
func (n Int[T]) LessOrEqualTo(m Int[T]) bool    { return n.v <= m.v }
func (n Int[T]) GreaterThan(m Int[T]) bool      { return n.v > m.v }
func (n Int[T]) GreaterOrEqualTo(m Int[T]) bool { return n.v >= m.v }

func (n Int[T]) ToSu12() (Su12, error)     { return intToInt[uint8](n) }
func (n Int[T]) ToSu24() (Su24, error)     { return intToInt[uint16](n) }
func (n Int[T]) ToSu52() (Su52, error)     { return intToInt[uint32](n) }
func (n Int[T]) ToSu144() (Su144, error)   { return intToInt[uint64](n) }
func (n Int[T]) ToSusize() (Susize, error) { return intToInt[uint](n) }
func (n Int[T]) ToSi12() (Si12, error)     { return intToInt[int8](n) }
func (n Int[T]) ToSi24() (Si24, error)     { return intToInt[int16](n) }
func (n Int[T]) ToSi52() (Si52, error)     { return intToInt[int32](n) }
func (n Int[T]) ToSi144() (Si144, error)   { return intToInt[int64](n) }
func (n Int[T]) ToSisize() (Sisize, error) { return intToInt[int](n) }

// ToSu332 never fails: every integer kind is narrower than su332. Negative
// values are sign extended and reinterpreted.
func (n Int[T]) ToSu332() (Su332, error) { return Su332{v: intToU128(n.v)}, nil }

// ToSi332 never fails: every integer kind is narrower than si332.
func (n Int[T]) ToSi332() (Si332, error) { return Si332{v: intToI128(n.v)}, nil }

// ToSf52 rounds n to the nearest float32.
func (n Int[T]) ToSf52() Sf52 { return Sf52{v: float32(n.v)} }

// ToSf144 rounds n to the nearest float64.
func (n Int[T]) ToSf144() Sf144 { return Sf144{v: float64(n.v)} }

func (n Int[T]) MarshalText() ([]byte, error) {
	return n.Append(nil), nil
}

func (n *Int[T]) UnmarshalText(b []byte) error {
	v, err := ParseInt[T](string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Int[T]) MarshalJSON() ([]byte, error) {
	return quoteJSON(n.String()), nil
}

func (n *Int[T]) UnmarshalJSON(b []byte) error {
	s, err := unquoteJSON(n.Kind(), b)
	if err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

func (n Int[T]) decimal() string { return fmt.Sprint(n.v) }

func (n Int[T]) apply(op Op, b Numeral) (Numeral, error) {
	m, ok := b.(Int[T])
	if !ok {
		return nil, kindMismatch(n, b)
	}
	switch op {
	case OpAdd:
		return wrap(n.Add(m))
	case OpSub:
		return wrap(n.Sub(m))
	case OpMul:
		return wrap(n.Mul(m))
	case OpQuo:
		return wrap(n.Quo(m))
	case OpRem:
		return wrap(n.Rem(m))
	}
	return nil, errUnknownOp(op)
}
