package core

import "math/bits"

// Montgomery arithmetic with radix R = 2^64.
//
// Elements re-encoded as x·R mod P admit a cheap modular multiplication: the
// product of two encoded values followed by a single reduction step yields the
// encoded product. The sponge hash keeps its whole state in this domain.

// RModP is R mod P = 2^32 - 1.
const RModP uint64 = 0xffffffff

// R2ModP is R² mod P, the constant used to lift values into the domain.
const R2ModP uint64 = 0xfffffffe00000001

// Montify lifts x into the Montgomery domain, returning x·R mod P.
func Montify(x Belt) Belt {
	return Montiply(x, Belt(R2ModP))
}

// Montiply returns the Montgomery product a·b·R⁻¹ mod P. Both operands must
// be canonical field values.
func Montiply(a, b Belt) Belt {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return MontReduce(hi, lo)
}

// MontReduce computes x·R⁻¹ mod P for x = hi·2^64 + lo, using REDC
// specialized to the shape of P. The input must satisfy x < R·P; callers only
// ever pass products of canonical operands, which are in range by
// construction.
func MontReduce(hi, lo uint64) Belt {
	x0 := lo & mask32
	x1 := lo >> 32
	x2 := hi

	// c = (x0 + x1)·2^32, at most 65 bits wide
	s := x0 + x1
	cLo := s << 32
	f := s >> 32

	// d = c - x1 - f·P fits in 64 bits; when f = 1 fold 2^64 - P = 2^32 - 1
	// into the low word instead of borrowing.
	d := cLo - x1
	if f == 1 {
		d = cLo + mask32 - x1
	}

	r := x2 - d
	if x2 < d {
		r += P
	}
	return Belt(r)
}
