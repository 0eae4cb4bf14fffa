/*
Package seximal provides fixed-width numerals that read and write base 6.

Each numeral wraps one native numeric type and is named after that type's bit
width written in base 6: 8 bits is "12", 16 is "24", 32 is "52", 64 is "144"
and 128 is "332".

	Su12  Su24  Su52  Su144  Su332  Susize    unsigned integers
	Si12  Si24  Si52  Si144  Si332  Sisize    signed integers
	Sf52  Sf144                               floats

Numerals are value types; all operations return new values.

Simple example:

	a := seximal.MustParseInt[uint8]("101") // 37
	b, _ := a.Add(seximal.IntFrom[uint8](5))
	fmt.Println(b)
	// Output: 110

Integer text is an optional '-' (signed kinds only) followed by the digits 0
to 5. Float text adds an optional '.' and fractional digits. Anything else
fails with ErrInvalidDigit; a value outside the type's range fails with
ErrOverflow. Both arrive wrapped in a *ParseError.

Integer arithmetic is checked: Add, Sub, Mul, Quo and Rem return an error
wrapping ErrOverflow or ErrDivideByZero instead of wrapping around. Float
arithmetic follows IEEE 754.

Conversions between kinds follow a fixed matrix, see RuleFor. Widening never
fails, narrowing and float-to-integer are checked, and conversions that
change signedness at the same width reinterpret the bits.

Go has no 128-bit integers, so Su332 and Si332 are built on the U128 and
I128 types in this package, which also work as plain 128-bit integers:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128FromString(s string) (out U128, accurate bool, err error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	U128FromFloat64(f float64) (out U128, inRange bool)

For callers that learn the kind at run time, Parse, New, Convert and Apply
work on the Numeral interface.
*/
package seximal
