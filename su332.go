package seximal

// Su332 is the unsigned 128-bit numeral. Go has no native 128-bit integer,
// so the value is held in a U128.
type Su332 struct {
	v U128
}

func Su332From(v U128) Su332     { return Su332{v: v} }
func Su332From64(v uint64) Su332 { return Su332{v: U128From64(v)} }

// ParseSu332 decodes base-6 text into a Su332. Text above MaxU128 fails with
// ErrOverflow.
func ParseSu332(s string) (Su332, error) {
	_, digits, _, err := scan(KindSu332, s)
	if err != nil {
		return Su332{}, err
	}
	u, err := decodeU128(KindSu332, s, digits, MaxU128, maxU128Div6)
	if err != nil {
		return Su332{}, err
	}
	return Su332{v: u}, nil
}

func MustParseSu332(s string) Su332 {
	n, err := ParseSu332(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Su332) Value() U128  { return n.v }
func (n Su332) Kind() Kind   { return KindSu332 }
func (n Su332) IsZero() bool { return n.v.IsZero() }

func (n Su332) String() string {
	var buf [maxDigits128]byte
	return string(appendU128(buf[:0], n.v))
}

func (n Su332) Append(dst []byte) []byte { return appendU128(dst, n.v) }

func (n Su332) Add(m Su332) (Su332, error) {
	v, ok := n.v.addOK(m.v)
	if !ok {
		return Su332{}, arithErr(KindSu332, n, OpAdd, m, ErrOverflow)
	}
	return Su332{v: v}, nil
}

func (n Su332) Sub(m Su332) (Su332, error) {
	v, ok := n.v.subOK(m.v)
	if !ok {
		return Su332{}, arithErr(KindSu332, n, OpSub, m, ErrOverflow)
	}
	return Su332{v: v}, nil
}

func (n Su332) Mul(m Su332) (Su332, error) {
	v, ok := n.v.mulOK(m.v)
	if !ok {
		return Su332{}, arithErr(KindSu332, n, OpMul, m, ErrOverflow)
	}
	return Su332{v: v}, nil
}

func (n Su332) Quo(m Su332) (Su332, error) {
	if m.v.IsZero() {
		return Su332{}, arithErr(KindSu332, n, OpQuo, m, ErrDivideByZero)
	}
	return Su332{v: n.v.Quo(m.v)}, nil
}

func (n Su332) Rem(m Su332) (Su332, error) {
	if m.v.IsZero() {
		return Su332{}, arithErr(KindSu332, n, OpRem, m, ErrDivideByZero)
	}
	return Su332{v: n.v.Rem(m.v)}, nil
}

func (n Su332) QuoRem(m Su332) (q, r Su332, err error) {
	if m.v.IsZero() {
		return q, r, arithErr(KindSu332, n, OpQuo, m, ErrDivideByZero)
	}
	qv, rv := n.v.QuoRem(m.v)
	return Su332{v: qv}, Su332{v: rv}, nil
}

func (n Su332) Cmp(m Su332) int               { return n.v.Cmp(m.v) }
func (n Su332) Equal(m Su332) bool            { return n.v.Equal(m.v) }
func (n Su332) LessThan(m Su332) bool         { return n.v.LessThan(m.v) }
func (n Su332) LessOrEqualTo(m Su332) bool    { return n.v.LessOrEqualTo(m.v) }
func (n Su332) GreaterThan(m Su332) bool      { return n.v.GreaterThan(m.v) }
func (n Su332) GreaterOrEqualTo(m Su332) bool { return n.v.GreaterOrEqualTo(m.v) }

func (n Su332) ToSu12() (Su12, error)     { return u128ToInt[uint8](n) }
func (n Su332) ToSu24() (Su24, error)     { return u128ToInt[uint16](n) }
func (n Su332) ToSu52() (Su52, error)     { return u128ToInt[uint32](n) }
func (n Su332) ToSu144() (Su144, error)   { return u128ToInt[uint64](n) }
func (n Su332) ToSusize() (Susize, error) { return u128ToInt[uint](n) }
func (n Su332) ToSi12() (Si12, error)     { return u128ToInt[int8](n) }
func (n Su332) ToSi24() (Si24, error)     { return u128ToInt[int16](n) }
func (n Su332) ToSi52() (Si52, error)     { return u128ToInt[int32](n) }
func (n Su332) ToSi144() (Si144, error)   { return u128ToInt[int64](n) }
func (n Su332) ToSisize() (Sisize, error) { return u128ToInt[int](n) }
func (n Su332) ToSu332() (Su332, error)   { return n, nil }

// ToSi332 reinterprets the bits: values above MaxI128 become negative.
func (n Su332) ToSi332() (Si332, error) { return Si332{v: n.v.AsI128()}, nil }

func (n Su332) ToSf52() Sf52   { return Sf52{v: n.v.AsFloat32()} }
func (n Su332) ToSf144() Sf144 { return Sf144{v: n.v.AsFloat64()} }

func (n Su332) MarshalText() ([]byte, error) { return n.Append(nil), nil }

func (n *Su332) UnmarshalText(b []byte) error {
	v, err := ParseSu332(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Su332) MarshalJSON() ([]byte, error) { return quoteJSON(n.String()), nil }

func (n *Su332) UnmarshalJSON(b []byte) error {
	s, err := unquoteJSON(KindSu332, b)
	if err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

func (n Su332) decimal() string { return n.v.String() }

func (n Su332) apply(op Op, b Numeral) (Numeral, error) {
	m, ok := b.(Su332)
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
