package seximal

import "math"

// intToInt converts between native-backed integer kinds following RuleFor.
// Checked rules require the value to fit the target width in the source's
// signedness; the kept bits are then read in the target's signedness.
func intToInt[D, S Integer](n Int[S]) (Int[D], error) {
	from, to := intKind[S](), intKind[D]()
	if RuleFor(from, to).Checked() {
		var ok bool
		if from.Signed() {
			ok = fitsSigned(int64(n.v), to.Bits())
		} else {
			ok = fitsUnsigned(uint64(n.v), to.Bits())
		}
		if !ok {
			return Int[D]{}, convErr(from, to, n)
		}
	}
	return Int[D]{v: D(n.v)}, nil
}

// floatToInt truncates n toward zero. NaN, the infinities and anything whose
// truncation is outside D's range fail.
func floatToInt[D Integer, S Floating](n Float[S]) (Int[D], error) {
	to := intKind[D]()
	f := float64(n.v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int[D]{}, convErr(n.Kind(), to, n)
	}

	t := math.Trunc(f)
	lo, hi := intBounds[D]()
	if t < float64(lo) || t >= float64(hi)+1 {
		return Int[D]{}, convErr(n.Kind(), to, n)
	}
	return Int[D]{v: D(t)}, nil
}

func intToU128[T Integer](v T) U128 {
	if v < 0 {
		return I128From64(int64(v)).AsU128()
	}
	return U128From64(uint64(v))
}

func intToI128[T Integer](v T) I128 {
	if v < 0 {
		return I128From64(int64(v))
	}
	return I128FromU64(uint64(v))
}

func u128ToInt[D Integer](n Su332) (Int[D], error) {
	to := intKind[D]()
	if !n.v.IsUint64() || !fitsUnsigned(n.v.lo, to.Bits()) {
		return Int[D]{}, convErr(KindSu332, to, n)
	}
	return Int[D]{v: D(n.v.AsUint64())}, nil
}

func i128ToInt[D Integer](n Si332) (Int[D], error) {
	to := intKind[D]()
	if !n.v.IsInt64() || !fitsSigned(n.v.AsInt64(), to.Bits()) {
		return Int[D]{}, convErr(KindSi332, to, n)
	}
	return Int[D]{v: D(n.v.AsInt64())}, nil
}
