package core

import (
	"fmt"
	"math/big"
)

// Felt is an element of the degree-3 extension of the base field, constructed
// modulo x³ - x + 1. Coefficients are stored least-significant first.
type Felt [3]Belt

// ZeroFelt returns the additive identity.
func ZeroFelt() Felt { return Felt{} }

// OneFelt returns the multiplicative identity.
func OneFelt() Felt { return Felt{1, 0, 0} }

// FeltFromBelt embeds a base field element into the extension.
func FeltFromBelt(b Belt) Felt {
	return Felt{b, 0, 0}
}

// Add lifts addition component-wise.
func (a Felt) Add(b Felt) Felt {
	return Felt{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2])}
}

// Sub lifts subtraction component-wise.
func (a Felt) Sub(b Felt) Felt {
	return Felt{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2])}
}

// Neg lifts negation component-wise.
func (a Felt) Neg() Felt {
	return Felt{a[0].Neg(), a[1].Neg(), a[2].Neg()}
}

// Mul multiplies in the extension ring: full convolution of the coefficient
// triples followed by reduction with x³ = x - 1 (hence x⁴ = x² - x).
func (a Felt) Mul(b Felt) Felt {
	c0 := a[0].Mul(b[0])
	c1 := a[0].Mul(b[1]).Add(a[1].Mul(b[0]))
	c2 := a[0].Mul(b[2]).Add(a[1].Mul(b[1])).Add(a[2].Mul(b[0]))
	c3 := a[1].Mul(b[2]).Add(a[2].Mul(b[1]))
	c4 := a[2].Mul(b[2])

	return Felt{
		c0.Sub(c3),
		c1.Add(c3).Sub(c4),
		c2.Add(c4),
	}
}

// Square returns a·a.
func (a Felt) Square() Felt {
	return a.Mul(a)
}

// Pow raises a to the given exponent by binary exponentiation.
func (a Felt) Pow(e uint64) Felt {
	result := OneFelt()
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

// feltInvExp holds the bits of P³ - 2, most significant first. The extension
// field has P³ elements, so a⁻¹ = a^(P³-2) by Fermat.
var feltInvExp []bool

func init() {
	p := new(big.Int).SetUint64(P)
	e := new(big.Int).Mul(p, p)
	e.Mul(e, p)
	e.Sub(e, big.NewInt(2))
	feltInvExp = make([]bool, e.BitLen())
	for i := range feltInvExp {
		feltInvExp[i] = e.Bit(e.BitLen()-1-i) == 1
	}
}

// Inv computes the multiplicative inverse.
func (a Felt) Inv() (Felt, error) {
	if a.IsZero() {
		return Felt{}, fmt.Errorf("%w: inverse of zero", ErrPrecondition)
	}
	result := OneFelt()
	for _, bit := range feltInvExp {
		result = result.Square()
		if bit {
			result = result.Mul(a)
		}
	}
	return result, nil
}

// Div returns a/b.
func (a Felt) Div(b Felt) (Felt, error) {
	inv, err := b.Inv()
	if err != nil {
		return Felt{}, err
	}
	return a.Mul(inv), nil
}

// IsZero reports whether all coefficients are zero.
func (a Felt) IsZero() bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0
}

// Equal reports coefficient-wise equality.
func (a Felt) Equal(b Felt) bool {
	return a == b
}

// String renders the coefficient triple.
func (a Felt) String() string {
	return fmt.Sprintf("[%d %d %d]", a[0], a[1], a[2])
}
