// Package core implements the arithmetic engine of the proving kernel: the
// base prime field and its cubic extension, Montgomery-domain arithmetic,
// polynomial containers and transforms, row-major trace matrices, and the
// sponge hash layered on top of them.
package core

import (
	"fmt"
	"math/bits"
)

// P is the base field modulus, 2^64 - 2^32 + 1.
const P uint64 = 0xffffffff00000001

const mask32 uint64 = 0xffffffff

// Belt is an element of the base prime field. The stored value is always
// canonical, i.e. strictly less than P.
type Belt uint64

// NewBelt reduces an arbitrary uint64 into the field.
func NewBelt(v uint64) Belt {
	if v >= P {
		v -= P
	}
	return Belt(v)
}

// Based reports whether v is a canonical field element.
func Based(v uint64) bool {
	return v < P
}

// Zero returns the additive identity.
func ZeroBelt() Belt { return 0 }

// OneBelt returns the multiplicative identity.
func OneBelt() Belt { return 1 }

// Add performs field addition.
func (a Belt) Add(b Belt) Belt {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || s >= P {
		s -= P
	}
	return Belt(s)
}

// Sub performs field subtraction.
func (a Belt) Sub(b Belt) Belt {
	d, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		d += P
	}
	return Belt(d)
}

// Neg returns the additive inverse.
func (a Belt) Neg() Belt {
	if a == 0 {
		return 0
	}
	return Belt(P - uint64(a))
}

// Mul performs field multiplication.
func (a Belt) Mul(b Belt) Belt {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return Belt(reduce128(hi, lo))
}

// reduce128 reduces a 128-bit value hi·2^64 + lo modulo P.
//
// With 2^64 ≡ 2^32 - 1 and 2^96 ≡ -1 (mod P), the value splits as
// lo + (hi mod 2^32)·(2^32 - 1) - (hi >> 32).
func reduce128(hi, lo uint64) uint64 {
	h0 := hi & mask32
	h1 := hi >> 32

	t, borrow := bits.Sub64(lo, h1, 0)
	if borrow != 0 {
		t -= mask32
	}

	mid := h0 * mask32
	r, carry := bits.Add64(t, mid, 0)
	if carry != 0 {
		r += mask32
	}
	if r >= P {
		r -= P
	}
	return r
}

// Square returns a·a.
func (a Belt) Square() Belt {
	return a.Mul(a)
}

// Pow raises a to the given exponent by binary exponentiation.
func (a Belt) Pow(e uint64) Belt {
	result := Belt(1)
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		e >>= 1
	}
	return result
}

// Inv computes the multiplicative inverse via Fermat's little theorem,
// a^(P-2) mod P.
func (a Belt) Inv() (Belt, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: inverse of zero", ErrPrecondition)
	}
	return a.Pow(P - 2), nil
}

// IsZero reports whether the element is zero.
func (a Belt) IsZero() bool { return a == 0 }

// OrderedRoot returns the canonical root of unity whose multiplicative order
// is exactly order. The order must be a power of two no larger than 2^32.
func OrderedRoot(order uint64) (Belt, error) {
	if order == 0 || order&(order-1) != 0 {
		return 0, fmt.Errorf("%w: root order %d is not a power of two", ErrPrecondition, order)
	}
	log := bits.TrailingZeros64(order)
	if log >= len(orderedRoots) {
		return 0, fmt.Errorf("%w: no root of unity of order %d", ErrPrecondition, order)
	}
	return Belt(orderedRoots[log]), nil
}
