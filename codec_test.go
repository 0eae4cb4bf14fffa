package seximal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/golib/assert"
)

func TestScanErrors(t *testing.T) {
	for idx, tc := range []struct {
		kind   Kind
		in     string
		offset int
	}{
		{KindSu12, "", 0},
		{KindSu12, "-1", 0},
		{KindSi12, "-", 1},
		{KindSu12, "16", 1},
		{KindSu12, "1.0", 1},
		{KindSi12, " 1", 0},
		{KindSi12, "1 ", 1},
		{KindSi12, "+1", 0},
		{KindSi12, "--1", 1},
		{KindSf144, "1.", 2},
		{KindSf144, ".5", 0},
		{KindSf144, "-.5", 1},
		{KindSf144, "1.2.3", 3},
		{KindSf144, "1e5", 1},
		{KindSf144, "NaN", 0},

		// A bad character is reported even when the digits before it would
		// already overflow:
		{KindSu12, "5555559", 6},
		{KindSu332, strings.Repeat("5", 60) + "x", 60},
	} {
		t.Run(fmt.Sprintf("%d/%s/%q", idx, tc.kind, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, _, _, err := scan(tc.kind, tc.in)

			var perr *ParseError
			tt.MustAssert(errors.As(err, &perr), "%v", err)
			tt.MustAssert(errors.Is(err, ErrInvalidDigit))
			tt.MustEqual(tc.offset, perr.Offset)
			tt.MustEqual(tc.kind, perr.Kind)
			tt.MustEqual(tc.in, perr.Text)
		})
	}
}

func TestScan(t *testing.T) {
	for idx, tc := range []struct {
		kind        Kind
		in          string
		neg         bool
		whole, frac string
	}{
		{KindSu12, "0", false, "0", ""},
		{KindSu12, "00101", false, "00101", ""},
		{KindSi12, "-332", true, "332", ""},
		{KindSf52, "12.3", false, "12", "3"},
		{KindSf144, "-0.0", true, "0", "0"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%q", idx, tc.kind, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			neg, whole, frac, err := scan(tc.kind, tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.neg, neg)
			tt.MustEqual(tc.whole, whole)
			tt.MustEqual(tc.frac, frac)
		})
	}
}

func TestDecodeInt(t *testing.T) {
	for idx, tc := range []struct {
		kind Kind
		in   string
		out  int64
		err  error
	}{
		{KindSu12, "0", 0, nil},
		{KindSu12, "101", 37, nil},
		{KindSu12, "000101", 37, nil},
		{KindSu12, "1103", 255, nil},
		{KindSu12, "1104", 0, ErrOverflow},
		{KindSu12, "11030", 0, ErrOverflow},
		{KindSi12, "331", 127, nil},
		{KindSi12, "332", 0, ErrOverflow},
		{KindSi12, "-332", -128, nil},
		{KindSi12, "-333", 0, ErrOverflow},
		{KindSi12, "-0", 0, nil},
		{KindSu24, "1223223", 65535, nil},
		{KindSi52, "-553032005532", math.MinInt32, nil},
		{KindSi52, "553032005532", 0, ErrOverflow},
		{KindSi144, "1540241003031030222122211", math.MaxInt64, nil},
		{KindSi144, "-1540241003031030222122212", math.MinInt64, nil},
		{KindSi144, "-1540241003031030222122213", 0, ErrOverflow},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.kind, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)

			n, err := Parse(tc.kind, tc.in)
			if tc.err != nil {
				tt.MustAssert(errors.Is(err, tc.err), "%v", err)
				var perr *ParseError
				tt.MustAssert(errors.As(err, &perr))
				return
			}
			tt.MustOK(err)
			tt.MustEqual(strconv.FormatInt(tc.out, 10), Decimal(n))
		})
	}
}

func TestAppendIntRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		v := int64(globalRNG.Uint64()) >> uint(globalRNG.Intn(64))
		tt.MustEqual(strconv.FormatInt(v, 6), string(appendInt(nil, v)))

		u := globalRNG.Uint64() >> uint(globalRNG.Intn(64))
		tt.MustEqual(strconv.FormatUint(u, 6), string(appendInt(nil, u)))
	}

	tt.MustEqual("-1540241003031030222122212", string(appendInt(nil, int64(math.MinInt64))))
	tt.MustEqual("-332", string(appendInt(nil, int8(math.MinInt8))))
}

func TestAppendU128Random(t *testing.T) {
	tt := assert.WrapTB(t)

	scratch := make([]byte, 16)
	for i := 0; i < 5000; i++ {
		u := randU128(scratch)
		tt.MustEqual(u.AsBigInt().Text(6), string(appendU128(nil, u)))

		v := randI128(scratch)
		tt.MustEqual(v.AsBigInt().Text(6), string(appendI128(nil, v)))
	}

	tt.MustEqual(maxBigU128.Text(6), string(appendU128(nil, MaxU128)))
	tt.MustEqual(minBigI128.Text(6), string(appendI128(nil, MinI128)))
	tt.MustEqual(maxBigI128.Text(6), string(appendI128(nil, MaxI128)))
}

func TestAppendFloat(t *testing.T) {
	for idx, tc := range []struct {
		in      float64
		maxFrac int
		out     string
	}{
		{0, FracDigits64, "0"},
		{math.Copysign(0, -1), FracDigits64, "0"},
		{0.5, FracDigits64, "0.3"},
		{0.25, FracDigits64, "0.13"},
		{1.0 / 3, FracDigits64, "0.2"},
		{1.0 / 36, FracDigits64, "0.01"},
		{2.5, FracDigits64, "2.3"},
		{-8.5, FracDigits64, "-12.3"},
		{37, FracDigits64, "101"},
		{0.1, FracDigits64, "0.033333333333333333333"},
		{0.1, 3, "0.033"},
		{0.1, 0, "0"},
		{1e-30, FracDigits64, "0"},
		{math.Pi, FracDigits64, "3.050330051415124105232"},
		{123.456, FracDigits64, "323.242255045213114354001"},
		{1e30, FracDigits64, "240541313523532330120221204220032432424"},
		{math.NaN(), FracDigits64, "NaN"},
		{math.Inf(1), FracDigits64, "+Inf"},
		{math.Inf(-1), FracDigits64, "-Inf"},
	} {
		t.Run(fmt.Sprintf("%d/%g", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, string(appendFloat(nil, tc.in, tc.maxFrac)))
		})
	}
}

func TestDecodeFloat(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out float64
	}{
		{"0", 0},
		{"0.3", 0.5},
		{"0.2", 1.0 / 3},
		{"0.01", 1.0 / 36},
		{"2.3", 2.5},
		{"-12.3", -8.5},
		{"101", 37},
		{"0.13000", 0.25},
		{"224404414114114022452", 0x1p53},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := decodeFloat[float64](tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v)

			v32, err := decodeFloat[float32](tc.in)
			tt.MustOK(err)
			tt.MustEqual(float32(tc.out), v32)
		})
	}
}

func TestDecodeFloatLongFraction(t *testing.T) {
	tt := assert.WrapTB(t)

	// 0.0333... in base 6 approaches 0.1 from below; past the precision of
	// the type the extra digits must not move the result away from it.
	v, err := decodeFloat[float64]("0.0" + strings.Repeat("3", 80))
	tt.MustOK(err)
	tt.MustAssert(math.Abs(v-0.1) < 1e-16, "%v", v)

	v32, err := decodeFloat[float32]("0.0" + strings.Repeat("3", 80))
	tt.MustOK(err)
	tt.MustAssert(math.Abs(float64(v32)-0.1) < 1e-7, "%v", v32)
}

func TestDecodeFloatOverflow(t *testing.T) {
	tt := assert.WrapTB(t)

	// float32 tops out near 6^50, float64 near 6^396:
	_, err := decodeFloat[float32](strings.Repeat("5", 60))
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)

	_, err = decodeFloat[float64](strings.Repeat("5", 60))
	tt.MustOK(err)

	_, err = decodeFloat[float64]("-" + strings.Repeat("5", 400) + ".1")
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)
}

// Values with at most 20 binary fraction digits have a finite base-6
// expansion no longer than one fraction run, so they survive formatting and
// parsing exactly.
func TestFloatRoundTripDyadic(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 20000; i++ {
		m := uint(rng.Intn(21))
		v := float64(rng.Intn(1<<20)) + float64(rng.Int63n(1<<m))/float64(uint64(1)<<m)
		if rng.Intn(2) == 1 {
			v = -v
		}
		n := FloatFrom(v)
		p, err := ParseFloat[float64](n.String())
		tt.MustOK(err)
		tt.MustEqual(v, p.Value(), "%v -> %s", v, n)

		m32 := uint(rng.Intn(10))
		v32 := float32(rng.Intn(1<<10)) + float32(rng.Int63n(1<<m32))/float32(uint64(1)<<m32)
		n32 := FloatFrom(v32)
		p32, err := ParseFloat[float32](n32.String())
		tt.MustOK(err)
		tt.MustEqual(v32, p32.Value(), "%v -> %s", v32, n32)
	}
}

// roundTripSlack is how far a float may move when formatted with fracDigits
// fractional digits and parsed back: the truncated digits plus a few ulps of
// rounding in the parse.
func roundTripSlack(ulp float64, fracDigits int) float64 {
	return math.Pow(6, -float64(fracDigits)) + 4*ulp
}

func ulp64(v float64) float64 {
	v = math.Abs(v)
	return math.Nextafter(v, math.Inf(1)) - v
}

func ulp32(v float32) float64 {
	a := float32(math.Abs(float64(v)))
	return float64(math.Nextafter32(a, float32(math.Inf(1))) - a)
}

func TestFloat64RoundTripExponentRange(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(v float64) {
		n := FloatFrom(v)
		back, err := ParseFloat[float64](n.String())
		tt.MustAssert(err == nil, "%v -> %s: %v", v, n, err)

		if math.Abs(v) >= 1<<52 {
			// No fraction bits left, so the text is exact.
			tt.MustEqual(v, back.Value(), "%v -> %s", v, n)
		} else {
			diff := math.Abs(back.Value() - v)
			tt.MustAssert(diff <= roundTripSlack(ulp64(v), FracDigits64), "%v -> %s -> %v", v, n, back.Value())
		}
	}

	for _, v := range []float64{
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		1e300, 1e30, -1e30, 1 << 53, 1<<53 + 2, 1 << 64, 1 << 128,
		float64(math.MaxFloat32),
	} {
		check(v)
	}

	rng := rand.New(rand.NewSource(fuzzSeed))
	for i := 0; i < 5000; i++ {
		v := math.Ldexp(1+rng.Float64(), rng.Intn(1023+60)-60)
		if math.IsInf(v, 0) {
			continue
		}
		if rng.Intn(2) == 1 {
			v = -v
		}
		check(v)
	}
}

func TestFloat32RoundTripExponentRange(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(v float32) {
		n := FloatFrom(v)
		back, err := ParseFloat[float32](n.String())
		tt.MustAssert(err == nil, "%v -> %s: %v", v, n, err)

		if math.Abs(float64(v)) >= 1<<23 {
			tt.MustEqual(v, back.Value(), "%v -> %s", v, n)
		} else {
			diff := math.Abs(float64(back.Value()) - float64(v))
			tt.MustAssert(diff <= roundTripSlack(ulp32(v), FracDigits32), "%v -> %s -> %v", v, n, back.Value())
		}
	}

	for _, v := range []float32{
		math.MaxFloat32, -math.MaxFloat32,
		math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
		1e30, -1e30, 1 << 24, 1<<24 + 2, 1 << 64,
	} {
		check(v)
	}

	rng := rand.New(rand.NewSource(fuzzSeed))
	for i := 0; i < 5000; i++ {
		v := float32(math.Ldexp(1+rng.Float64(), rng.Intn(127+30)-30))
		if math.IsInf(float64(v), 0) {
			continue
		}
		if rng.Intn(2) == 1 {
			v = -v
		}
		check(v)
	}
}

func TestDecodeFloatWholeRounding(t *testing.T) {
	tt := assert.WrapTB(t)

	// 2^53 + 1 sits halfway between two float64 values and rounds to even.
	v, err := decodeFloat[float64](strconv.FormatUint(1<<53+1, 6))
	tt.MustOK(err)
	tt.MustEqual(float64(1<<53), v)

	v, err = decodeFloat[float64](strconv.FormatUint(1<<53+3, 6))
	tt.MustOK(err)
	tt.MustEqual(float64(1<<53+4), v)

	// Rounded straight to float32, not through float64:
	v32, err := decodeFloat[float32](strconv.FormatUint(1<<24+1, 6))
	tt.MustOK(err)
	tt.MustEqual(float32(1<<24), v32)

	top, _ := new(big.Float).SetFloat64(math.MaxFloat64).Int(nil)
	v, err = decodeFloat[float64](top.Text(6))
	tt.MustOK(err)
	tt.MustEqual(math.MaxFloat64, v)

	over := new(big.Int).Lsh(big.NewInt(1), 1024)
	_, err = decodeFloat[float64](over.Text(6))
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)
}

func FuzzParseInt64(f *testing.F) {
	for _, s := range []string{"0", "101", "-1540241003031030222122212", "1540241003031030222122212", "12x", "-", ""} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		n, err := ParseInt[int64](s)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("%q: error is not a *ParseError: %v", s, err)
			}
			if perr.Offset < 0 || perr.Offset > len(s) {
				t.Fatalf("%q: offset out of range: %s", s, spew.Sdump(perr))
			}
			return
		}

		ref, rerr := strconv.ParseInt(s, 6, 64)
		if rerr != nil || ref != n.Value() {
			t.Fatalf("%q: parsed %s, strconv %d (%v)", s, spew.Sdump(n), ref, rerr)
		}
		if back, err := ParseInt[int64](n.String()); err != nil || back != n {
			t.Fatalf("%q: round trip via %q failed: %v", s, n.String(), err)
		}
	})
}

func FuzzParseSi332(f *testing.F) {
	for _, s := range []string{"0", "-11324454543055553250455021551551121442554522203132", "11324454543055553250455021551551121442554522203132", "5.5"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		n, err := ParseSi332(s)
		if err != nil {
			return
		}
		ref, ok := new(big.Int).SetString(s, 6)
		if !ok || ref.String() != n.Value().String() {
			t.Fatalf("%q: parsed %s, big %v", s, spew.Sdump(n), ref)
		}
	})
}

func FuzzParseFloat(f *testing.F) {
	for _, s := range []string{"0.3", "-12.3", "0.0333333333333333333333333", "1.", strings.Repeat("5", 400)} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		n, err := ParseFloat[float64](s)
		if err != nil {
			return
		}
		if n.IsNaN() || n.IsInf(0) {
			t.Fatalf("%q: parsed to %v", s, n.Value())
		}
		back, err := ParseFloat[float64](n.String())
		if err != nil {
			t.Fatalf("%q: formatted as %q which does not parse: %v", s, n.String(), err)
		}
		v := n.Value()
		if diff := math.Abs(back.Value() - v); diff > roundTripSlack(ulp64(v), FracDigits64) {
			t.Fatalf("%q: %v formatted as %q parsed back as %v", s, v, n.String(), back.Value())
		}
	})
}
