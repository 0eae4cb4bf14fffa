package seximal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Op is one of the binary arithmetic operations shared by every numeral.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpQuo
	OpRem
)

var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpQuo: "/",
	OpRem: "%",
}

func (op Op) String() string {
	if op >= OpAdd && op <= OpRem {
		return opSymbols[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// ParseOp accepts an operator symbol or its name: "+" or "add", "-" or
// "sub", "*" or "mul", "/" or "quo", "%" or "rem".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add":
		return OpAdd, nil
	case "-", "sub":
		return OpSub, nil
	case "*", "x", "mul":
		return OpMul, nil
	case "/", "quo", "div":
		return OpQuo, nil
	case "%", "rem", "mod":
		return OpRem, nil
	}
	return 0, fmt.Errorf("seximal: unknown operator %q", s)
}

// Numeral is implemented by every numeral type in the package: Int, Float,
// Su332 and Si332. It lets callers that only learn the kind at run time
// parse, convert and compute without a type switch.
type Numeral interface {
	Kind() Kind
	String() string
	IsZero() bool

	ToSu12() (Su12, error)
	ToSu24() (Su24, error)
	ToSu52() (Su52, error)
	ToSu144() (Su144, error)
	ToSu332() (Su332, error)
	ToSusize() (Susize, error)
	ToSi12() (Si12, error)
	ToSi24() (Si24, error)
	ToSi52() (Si52, error)
	ToSi144() (Si144, error)
	ToSi332() (Si332, error)
	ToSisize() (Sisize, error)
	ToSf52() Sf52
	ToSf144() Sf144

	decimal() string
	apply(op Op, b Numeral) (Numeral, error)
}

var (
	_ Numeral = Su12{}
	_ Numeral = Su24{}
	_ Numeral = Su52{}
	_ Numeral = Su144{}
	_ Numeral = Su332{}
	_ Numeral = Susize{}
	_ Numeral = Si12{}
	_ Numeral = Si24{}
	_ Numeral = Si52{}
	_ Numeral = Si144{}
	_ Numeral = Si332{}
	_ Numeral = Sisize{}
	_ Numeral = Sf52{}
	_ Numeral = Sf144{}
)

// Parse decodes base-6 text as a numeral of the given kind.
func Parse(kind Kind, s string) (Numeral, error) {
	switch kind {
	case KindSu12:
		return wrap(ParseInt[uint8](s))
	case KindSu24:
		return wrap(ParseInt[uint16](s))
	case KindSu52:
		return wrap(ParseInt[uint32](s))
	case KindSu144:
		return wrap(ParseInt[uint64](s))
	case KindSu332:
		return wrap(ParseSu332(s))
	case KindSusize:
		return wrap(ParseInt[uint](s))
	case KindSi12:
		return wrap(ParseInt[int8](s))
	case KindSi24:
		return wrap(ParseInt[int16](s))
	case KindSi52:
		return wrap(ParseInt[int32](s))
	case KindSi144:
		return wrap(ParseInt[int64](s))
	case KindSi332:
		return wrap(ParseSi332(s))
	case KindSisize:
		return wrap(ParseInt[int](s))
	case KindSf52:
		return wrap(ParseFloat[float32](s))
	case KindSf144:
		return wrap(ParseFloat[float64](s))
	}
	return nil, unknownKind(kind)
}

// New builds a numeral of the given kind from decimal text, as accepted by
// strconv for the native kinds and math/big for the 128-bit ones. Values
// outside the kind's range fail with ErrOverflow.
func New(kind Kind, decimal string) (Numeral, error) {
	switch {
	case !kind.Valid():
		return nil, unknownKind(kind)

	case kind == KindSu332:
		u, accurate, err := U128FromString(decimal)
		if err != nil {
			return nil, decimalErr(kind, decimal, ErrInvalidDigit)
		} else if !accurate {
			return nil, decimalErr(kind, decimal, ErrOverflow)
		}
		return Su332{v: u}, nil

	case kind == KindSi332:
		i, accurate, err := I128FromString(decimal)
		if err != nil {
			return nil, decimalErr(kind, decimal, ErrInvalidDigit)
		} else if !accurate {
			return nil, decimalErr(kind, decimal, ErrOverflow)
		}
		return Si332{v: i}, nil

	case kind.Float():
		f, err := strconv.ParseFloat(decimal, kind.Bits())
		if err != nil {
			return nil, decimalErr(kind, decimal, numErr(err))
		}
		return Convert(Sf144{v: f}, kind)

	case kind.Signed():
		v, err := strconv.ParseInt(decimal, 10, kind.Bits())
		if err != nil {
			return nil, decimalErr(kind, decimal, numErr(err))
		}
		return Convert(Si144{v: v}, kind)

	default:
		v, err := strconv.ParseUint(decimal, 10, kind.Bits())
		if err != nil {
			return nil, decimalErr(kind, decimal, numErr(err))
		}
		return Convert(Su144{v: v}, kind)
	}
}

// Convert converts n to the given kind following RuleFor. Checked rules fail
// with a *ConvError wrapping ErrOverflow.
func Convert(n Numeral, kind Kind) (Numeral, error) {
	switch kind {
	case KindSu12:
		return wrap(n.ToSu12())
	case KindSu24:
		return wrap(n.ToSu24())
	case KindSu52:
		return wrap(n.ToSu52())
	case KindSu144:
		return wrap(n.ToSu144())
	case KindSu332:
		return wrap(n.ToSu332())
	case KindSusize:
		return wrap(n.ToSusize())
	case KindSi12:
		return wrap(n.ToSi12())
	case KindSi24:
		return wrap(n.ToSi24())
	case KindSi52:
		return wrap(n.ToSi52())
	case KindSi144:
		return wrap(n.ToSi144())
	case KindSi332:
		return wrap(n.ToSi332())
	case KindSisize:
		return wrap(n.ToSisize())
	case KindSf52:
		return n.ToSf52(), nil
	case KindSf144:
		return n.ToSf144(), nil
	}
	return nil, unknownKind(kind)
}

// Apply computes a op b. Both operands must be of the same kind.
func Apply(op Op, a, b Numeral) (Numeral, error) {
	if a.Kind() != b.Kind() {
		return nil, kindMismatch(a, b)
	}
	return a.apply(op, b)
}

// Decimal returns the base-10 text of n.
func Decimal(n Numeral) string { return n.decimal() }

func wrap[N Numeral](n N, err error) (Numeral, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}

func kindMismatch(a, b Numeral) error {
	return fmt.Errorf("seximal: %s and %s: %w", a.Kind(), b.Kind(), ErrKindMismatch)
}

func unknownKind(kind Kind) error {
	return fmt.Errorf("seximal: kind %d: %w", uint8(kind), ErrUnknownKind)
}

func errUnknownOp(op Op) error {
	return fmt.Errorf("seximal: unknown operator %s", op)
}

func decimalErr(kind Kind, s string, err error) error {
	return fmt.Errorf("seximal: decimal %q as %s: %w", s, kind, err)
}

func numErr(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrOverflow
	}
	return ErrInvalidDigit
}
