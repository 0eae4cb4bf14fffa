package seximal

import (
	"errors"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestParseSi332(t *testing.T) {
	tt := assert.WrapTB(t)

	n, err := ParseSi332(maxI128Text)
	tt.MustOK(err)
	tt.MustEqual(MaxI128, n.Value())
	tt.MustEqual(maxI128Text, n.String())

	n, err = ParseSi332(minI128Text)
	tt.MustOK(err)
	tt.MustEqual(MinI128, n.Value())
	tt.MustEqual(minI128Text, n.String())
	tt.MustEqual(I128FromRaw(1<<63, 0), n.Value())

	n, err = ParseSi332("-0")
	tt.MustOK(err)
	tt.MustAssert(n.IsZero())

	for _, in := range []string{
		"11324454543055553250455021551551121442554522203132",
		"-11324454543055553250455021551551121442554522203133",
		maxU128Text,
	} {
		_, err := ParseSi332(in)
		tt.MustAssert(errors.Is(err, ErrOverflow), "%q: %v", in, err)
	}

	// An invalid digit is reported even past the point of overflow:
	_, err = ParseSi332(maxU128Text + "9")
	tt.MustAssert(errors.Is(err, ErrInvalidDigit), "%v", err)
}

func TestSi332Arith(t *testing.T) {
	tt := assert.WrapTB(t)

	minv, maxv := Si332From(MinI128), Si332From(MaxI128)
	one, minusOne := Si332From64(1), Si332From64(-1)

	_, err := maxv.Add(one)
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = minv.Sub(one)
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = minv.Mul(minusOne)
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = minv.Quo(minusOne)
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, _, err = minv.QuoRem(minusOne)
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = one.Quo(Si332{})
	tt.MustAssert(errors.Is(err, ErrDivideByZero))
	_, err = one.Rem(Si332{})
	tt.MustAssert(errors.Is(err, ErrDivideByZero))

	r, err := minv.Rem(minusOne)
	tt.MustOK(err)
	tt.MustAssert(r.IsZero())

	n, err := minv.Add(maxv)
	tt.MustOK(err)
	tt.MustEqual("-1", n.String())

	n, err = maxv.Mul(minusOne)
	tt.MustOK(err)
	tt.MustEqual("-"+maxI128Text, n.String())

	q, r, err := Si332From64(-37).QuoRem(Si332From64(6))
	tt.MustOK(err)
	tt.MustEqual("-10", q.String())
	tt.MustEqual("-1", r.String())
	tt.MustEqual(-1, q.Sign())
}

func TestSi332Convert(t *testing.T) {
	tt := assert.WrapTB(t)

	n, err := Convert(Si332From64(-1), KindSu332)
	tt.MustOK(err)
	tt.MustEqual(MaxU128, n.(Su332).Value())

	// Fits 8 bits as a signed value, so the bits are kept and reinterpreted:
	n, err = Convert(Si332From64(-1), KindSu12)
	tt.MustOK(err)
	tt.MustEqual(uint8(255), n.(Su12).Value())

	_, err = Convert(Si332From64(-129), KindSu12)
	tt.MustAssert(errors.Is(err, ErrOverflow))

	_, err = Convert(Si332From(MinI128), KindSi144)
	tt.MustAssert(errors.Is(err, ErrOverflow))

	n, err = Convert(Si332From64(-128), KindSi12)
	tt.MustOK(err)
	tt.MustEqual(int8(-128), n.(Si12).Value())

	tt.MustEqual(-0x1p127, Si332From(MinI128).ToSf144().Value())
}

func TestSi332Cmp(t *testing.T) {
	tt := assert.WrapTB(t)
	a, b := Si332From(MinI128), Si332From64(-1)
	tt.MustEqual(-1, a.Cmp(b))
	tt.MustEqual(1, b.Cmp(a))
	tt.MustAssert(a.LessThan(b) && a.LessOrEqualTo(b))
	tt.MustAssert(b.GreaterThan(a) && b.GreaterOrEqualTo(a))
	tt.MustAssert(a.Equal(a) && !a.Equal(b))
}

func TestSi332MarshalText(t *testing.T) {
	tt := assert.WrapTB(t)

	bts, err := Si332From(MinI128).MarshalText()
	tt.MustOK(err)
	tt.MustEqual(minI128Text, string(bts))

	var n Si332
	tt.MustOK(n.UnmarshalText(bts))
	tt.MustEqual(MinI128, n.Value())

	bts, err = Si332From64(-37).MarshalJSON()
	tt.MustOK(err)
	tt.MustEqual(`"-101"`, string(bts))
	tt.MustOK(n.UnmarshalJSON(bts))
	tt.MustEqual(I128From64(-37), n.Value())
}

func TestSi332TextRoundTripRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 5000; i++ {
		v := RandI128(globalRNG)
		if i%2 == 1 {
			v = v.Neg()
		}
		n := Si332From(v)
		text := n.String()
		tt.MustEqual(v.AsBigInt().Text(6), text)

		back, err := ParseSi332(text)
		tt.MustOK(err)
		tt.MustEqual(n, back)
	}
}
