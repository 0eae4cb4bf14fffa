package seximal

import "unsafe"

type RandSource interface {
	Uint64() uint64
}

// intBounds returns the minimum and maximum values of T.
func intBounds[T Integer]() (lo, hi T) {
	var zero T
	hi = ^zero
	if hi > zero {
		return zero, hi
	}
	lo = T(1) << (unsafe.Sizeof(zero)*8 - 1)
	return lo, ^lo
}

// fitsSigned reports whether v is representable in a signed integer of the
// given width.
func fitsSigned(v int64, bits int) bool {
	if bits >= 64 {
		return true
	}
	lim := int64(1) << (bits - 1)
	return v >= -lim && v < lim
}

// fitsUnsigned reports whether v is representable in an unsigned integer of
// the given width.
func fitsUnsigned(v uint64, bits int) bool {
	return bits >= 64 || v < uint64(1)<<bits
}
