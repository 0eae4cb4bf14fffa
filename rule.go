package seximal

// Rule is one cell of the conversion matrix: how a value of one kind becomes
// a value of another.
type Rule uint8

const (
	// RuleIdentity: same signedness and width. Always value preserving.
	RuleIdentity Rule = iota

	// RuleWiden: integer to a wider integer of the same signedness. Always
	// value preserving.
	RuleWiden

	// RuleNarrow: integer to a narrower integer of the same signedness.
	// Fails with ErrOverflow unless the value fits.
	RuleNarrow

	// RuleReinterpret: unsigned to signed or back at the same width. The bit
	// pattern is kept, so 255 as su12 becomes -1 as si12. Never fails.
	RuleReinterpret

	// RuleWidenReinterpret: integer to a wider integer of the other
	// signedness. The value is widened in the source's signedness (sign
	// extended when signed) and the result reinterpreted, so it is value
	// preserving for unsigned sources and wraps negative signed sources.
	RuleWidenReinterpret

	// RuleNarrowReinterpret: integer to a narrower integer of the other
	// signedness. The value must fit the target width in the source's
	// signedness or the conversion fails with ErrOverflow; the narrowed bits
	// are then reinterpreted.
	RuleNarrowReinterpret

	// RuleIntToFloat rounds to the nearest representable float. Never fails.
	RuleIntToFloat

	// RuleFloatToInt truncates toward zero. Fails with ErrOverflow for NaN,
	// infinities and values outside the target range.
	RuleFloatToInt

	// RuleFloatWiden is exact.
	RuleFloatWiden

	// RuleFloatNarrow rounds to the nearest representable value. Never fails.
	RuleFloatNarrow
)

var ruleNames = [...]string{
	RuleIdentity:          "identity",
	RuleWiden:             "widen",
	RuleNarrow:            "narrow",
	RuleReinterpret:       "reinterpret",
	RuleWidenReinterpret:  "widen-reinterpret",
	RuleNarrowReinterpret: "narrow-reinterpret",
	RuleIntToFloat:        "int-to-float",
	RuleFloatToInt:        "float-to-int",
	RuleFloatWiden:        "float-widen",
	RuleFloatNarrow:       "float-narrow",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "invalid"
}

// Checked reports whether conversions under r can fail with ErrOverflow.
func (r Rule) Checked() bool {
	return r == RuleNarrow || r == RuleNarrowReinterpret || r == RuleFloatToInt
}

// RuleFor returns the conversion rule from one kind to another. Both kinds
// must be valid.
func RuleFor(from, to Kind) Rule {
	fb, tb := from.Bits(), to.Bits()

	switch {
	case from.Float() && to.Float():
		if fb == tb {
			return RuleIdentity
		} else if fb < tb {
			return RuleFloatWiden
		}
		return RuleFloatNarrow
	case from.Float():
		return RuleFloatToInt
	case to.Float():
		return RuleIntToFloat
	}

	if from.Signed() == to.Signed() {
		if fb == tb {
			return RuleIdentity
		} else if fb < tb {
			return RuleWiden
		}
		return RuleNarrow
	}

	if fb == tb {
		return RuleReinterpret
	} else if fb < tb {
		return RuleWidenReinterpret
	}
	return RuleNarrowReinterpret
}

// Lossless reports whether every value of from converts to to with its value
// unchanged.
func Lossless(from, to Kind) bool {
	switch RuleFor(from, to) {
	case RuleIdentity, RuleWiden, RuleFloatWiden:
		return true
	case RuleWidenReinterpret:
		return !from.Signed()
	case RuleIntToFloat:
		mag := from.Bits()
		if from.Signed() {
			mag--
		}
		return mag <= to.mantissa()
	}
	return false
}
