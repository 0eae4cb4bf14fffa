package seximal

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64
	wrapU128Float   = 0x1p128                // 1 << 128
	wrapI128Float   = 0x1p127                // 1 << 127

	intSize = 32 << (^uint(0) >> 63)

	// FracDigits32 and FracDigits64 are the fractional-digit budgets used when
	// formatting Sf52 and Sf144: the smallest n for which 6^n exceeds the
	// mantissa range of the precision (2^24 and 2^53).
	FracDigits32 = 10
	FracDigits64 = 21

	// chunk32 and chunk64 are the longest digit runs whose base-6 value and
	// 6^n place value are both exact in the float precision.
	chunk32 = 9
	chunk64 = 20

	// maxDigits128 is the length of MaxU128 in base 6.
	maxDigits128 = 50
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	six128 = U128{lo: 6}

	// maxU128Div6 is the largest accumulator that can be multiplied by 6
	// without overflowing a U128.
	maxU128Div6 = MaxU128.Quo(six128)

	maxI128Div6    = maxI128AsU128.Quo(six128)
	minI128AbsDiv6 = minI128AsAbsU128.Quo(six128)

	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
)
