package seximal

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of native integer types an Int can wrap.
type Integer interface {
	constraints.Integer
}

// Floating is the set of native floating point types a Float can wrap.
type Floating interface {
	constraints.Float
}

// Kind describes one numeral type of the family. Kinds are named after their
// bit width written in base 6, so the 8-bit unsigned kind is "su12" and the
// 64-bit float is "sf144".
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSu12
	KindSu24
	KindSu52
	KindSu144
	KindSu332
	KindSusize
	KindSi12
	KindSi24
	KindSi52
	KindSi144
	KindSi332
	KindSisize
	KindSf52
	KindSf144

	kindCount
)

type kindInfo struct {
	name   string
	bits   int
	signed bool
	float  bool
}

var kinds = [kindCount]kindInfo{
	KindInvalid: {name: "invalid"},
	KindSu12:    {name: "su12", bits: 8},
	KindSu24:    {name: "su24", bits: 16},
	KindSu52:    {name: "su52", bits: 32},
	KindSu144:   {name: "su144", bits: 64},
	KindSu332:   {name: "su332", bits: 128},
	KindSusize:  {name: "susize", bits: intSize},
	KindSi12:    {name: "si12", bits: 8, signed: true},
	KindSi24:    {name: "si24", bits: 16, signed: true},
	KindSi52:    {name: "si52", bits: 32, signed: true},
	KindSi144:   {name: "si144", bits: 64, signed: true},
	KindSi332:   {name: "si332", bits: 128, signed: true},
	KindSisize:  {name: "sisize", bits: intSize, signed: true},
	KindSf52:    {name: "sf52", bits: 32, signed: true, float: true},
	KindSf144:   {name: "sf144", bits: 64, signed: true, float: true},
}

// Kinds returns every valid kind, unsigned integers first, then signed
// integers, then floats.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindSu12; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind looks a kind up by name. Names are case-insensitive.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KindSu12; k < kindCount; k++ {
		if kinds[k].name == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("seximal: kind %q: %w", name, ErrUnknownKind)
}

func (k Kind) info() kindInfo {
	if k >= kindCount {
		return kinds[KindInvalid]
	}
	return kinds[k]
}

func (k Kind) Valid() bool { return k > KindInvalid && k < kindCount }

func (k Kind) String() string { return k.info().name }

// Bits is the storage width of the kind's native type.
func (k Kind) Bits() int { return k.info().bits }

// Signed reports whether values of the kind can be negative. Floats are
// signed.
func (k Kind) Signed() bool { return k.info().signed }

func (k Kind) Float() bool { return k.info().float }

// mantissa is the number of significand bits of a float kind.
func (k Kind) mantissa() int {
	if k == KindSf52 {
		return 24
	}
	return 53
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("seximal: kind %d: %w", uint8(k), ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func intKind[T Integer]() Kind {
	// Named types such as `type id int` take the kind of their underlying type.
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Int:
		return KindSisize
	case reflect.Uint, reflect.Uintptr:
		return KindSusize
	case reflect.Int8:
		return KindSi12
	case reflect.Uint8:
		return KindSu12
	case reflect.Int16:
		return KindSi24
	case reflect.Uint16:
		return KindSu24
	case reflect.Int32:
		return KindSi52
	case reflect.Uint32:
		return KindSu52
	case reflect.Int64:
		return KindSi144
	default:
		return KindSu144
	}
}

func floatKind[T Floating]() Kind {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return KindSf52
	}
	return KindSf144
}
