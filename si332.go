package seximal

// Si332 is the signed 128-bit numeral, held in an I128.
type Si332 struct {
	v I128
}

func Si332From(v I128) Si332    { return Si332{v: v} }
func Si332From64(v int64) Si332 { return Si332{v: I128From64(v)} }

// ParseSi332 decodes base-6 text into a Si332. The magnitude is accumulated
// as a U128 against the limit for the sign, so MinI128 parses without
// overflow.
func ParseSi332(s string) (Si332, error) {
	neg, digits, _, err := scan(KindSi332, s)
	if err != nil {
		return Si332{}, err
	}

	limit, limitDiv6 := maxI128AsU128, maxI128Div6
	if neg {
		limit, limitDiv6 = minI128AsAbsU128, minI128AbsDiv6
	}
	u, err := decodeU128(KindSi332, s, digits, limit, limitDiv6)
	if err != nil {
		return Si332{}, err
	}

	v := u.AsI128()
	if neg {
		v = v.Neg()
	}
	return Si332{v: v}, nil
}

func MustParseSi332(s string) Si332 {
	n, err := ParseSi332(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Si332) Value() I128  { return n.v }
func (n Si332) Kind() Kind   { return KindSi332 }
func (n Si332) IsZero() bool { return n.v.IsZero() }
func (n Si332) Sign() int    { return n.v.Sign() }

func (n Si332) String() string {
	var buf [maxDigits128 + 1]byte
	return string(appendI128(buf[:0], n.v))
}

func (n Si332) Append(dst []byte) []byte { return appendI128(dst, n.v) }

func (n Si332) Add(m Si332) (Si332, error) {
	v, ok := n.v.addOK(m.v)
	if !ok {
		return Si332{}, arithErr(KindSi332, n, OpAdd, m, ErrOverflow)
	}
	return Si332{v: v}, nil
}

func (n Si332) Sub(m Si332) (Si332, error) {
	v, ok := n.v.subOK(m.v)
	if !ok {
		return Si332{}, arithErr(KindSi332, n, OpSub, m, ErrOverflow)
	}
	return Si332{v: v}, nil
}

func (n Si332) Mul(m Si332) (Si332, error) {
	v, ok := n.v.mulOK(m.v)
	if !ok {
		return Si332{}, arithErr(KindSi332, n, OpMul, m, ErrOverflow)
	}
	return Si332{v: v}, nil
}

func (n Si332) Quo(m Si332) (Si332, error) {
	q, _, err := n.quoRem(OpQuo, m)
	return q, err
}

// Rem returns the remainder of n/m with the sign of n. MinI128 % -1 is 0.
func (n Si332) Rem(m Si332) (Si332, error) {
	if m.v.IsZero() {
		return Si332{}, arithErr(KindSi332, n, OpRem, m, ErrDivideByZero)
	}
	return Si332{v: n.v.Rem(m.v)}, nil
}

func (n Si332) QuoRem(m Si332) (q, r Si332, err error) {
	return n.quoRem(OpQuo, m)
}

var minusOne128 = I128From64(-1)

func (n Si332) quoRem(op Op, m Si332) (q, r Si332, err error) {
	if m.v.IsZero() {
		return q, r, arithErr(KindSi332, n, op, m, ErrDivideByZero)
	}
	if n.v == MinI128 && m.v == minusOne128 {
		return q, r, arithErr(KindSi332, n, op, m, ErrOverflow)
	}
	qv, rv := n.v.QuoRem(m.v)
	return Si332{v: qv}, Si332{v: rv}, nil
}

func (n Si332) Cmp(m Si332) int               { return n.v.Cmp(m.v) }
func (n Si332) Equal(m Si332) bool            { return n.v.Equal(m.v) }
func (n Si332) LessThan(m Si332) bool         { return n.v.LessThan(m.v) }
func (n Si332) LessOrEqualTo(m Si332) bool    { return n.v.LessOrEqualTo(m.v) }
func (n Si332) GreaterThan(m Si332) bool      { return n.v.GreaterThan(m.v) }
func (n Si332) GreaterOrEqualTo(m Si332) bool { return n.v.GreaterOrEqualTo(m.v) }

func (n Si332) ToSu12() (Su12, error)     { return i128ToInt[uint8](n) }
func (n Si332) ToSu24() (Su24, error)     { return i128ToInt[uint16](n) }
func (n Si332) ToSu52() (Su52, error)     { return i128ToInt[uint32](n) }
func (n Si332) ToSu144() (Su144, error)   { return i128ToInt[uint64](n) }
func (n Si332) ToSusize() (Susize, error) { return i128ToInt[uint](n) }
func (n Si332) ToSi12() (Si12, error)     { return i128ToInt[int8](n) }
func (n Si332) ToSi24() (Si24, error)     { return i128ToInt[int16](n) }
func (n Si332) ToSi52() (Si52, error)     { return i128ToInt[int32](n) }
func (n Si332) ToSi144() (Si144, error)   { return i128ToInt[int64](n) }
func (n Si332) ToSisize() (Sisize, error) { return i128ToInt[int](n) }

// ToSu332 reinterprets the bits: negative values become values above
// MaxI128.
func (n Si332) ToSu332() (Su332, error) { return Su332{v: n.v.AsU128()}, nil }
func (n Si332) ToSi332() (Si332, error) { return n, nil }

func (n Si332) ToSf52() Sf52   { return Sf52{v: n.v.AsFloat32()} }
func (n Si332) ToSf144() Sf144 { return Sf144{v: n.v.AsFloat64()} }

func (n Si332) MarshalText() ([]byte, error) { return n.Append(nil), nil }

func (n *Si332) UnmarshalText(b []byte) error {
	v, err := ParseSi332(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Si332) MarshalJSON() ([]byte, error) { return quoteJSON(n.String()), nil }

func (n *Si332) UnmarshalJSON(b []byte) error {
	s, err := unquoteJSON(KindSi332, b)
	if err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

func (n Si332) decimal() string { return n.v.String() }

func (n Si332) apply(op Op, b Numeral) (Numeral, error) {
	m, ok := b.(Si332)
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
