package core

import (
	"fmt"
	"math/bits"
)

// BPoly is a polynomial over the base field, stored as an ascending
// coefficient sequence: index i holds the coefficient of xⁱ. The canonical
// zero polynomial is the one-element sequence [0]; operations do not otherwise
// trim trailing zeros. Every operation allocates a fresh output and never
// mutates its inputs.
type BPoly []Belt

// ZeroBPoly returns the canonical zero polynomial.
func ZeroBPoly() BPoly { return BPoly{0} }

// OnesBPoly returns the all-ones polynomial of the given length.
func OnesBPoly(n int) BPoly {
	p := make(BPoly, n)
	for i := range p {
		p[i] = 1
	}
	return p
}

// IsZero reports whether the polynomial is empty or has only zero
// coefficients.
func (p BPoly) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (p BPoly) Clone() BPoly {
	out := make(BPoly, len(p))
	copy(out, p)
	return out
}

// Add adds two polynomials; the shorter operand is implicitly zero-padded and
// the result has the length of the longer one.
func (p BPoly) Add(q BPoly) BPoly {
	out := make(BPoly, max(len(p), len(q)))
	for i := range p {
		out[i] = p[i]
	}
	for i := range q {
		out[i] = out[i].Add(q[i])
	}
	return out
}

// Sub subtracts q from p with the same padding rule as Add.
func (p BPoly) Sub(q BPoly) BPoly {
	out := make(BPoly, max(len(p), len(q)))
	for i := range p {
		out[i] = p[i]
	}
	for i := range q {
		out[i] = out[i].Sub(q[i])
	}
	return out
}

// Neg negates every coefficient.
func (p BPoly) Neg() BPoly {
	out := make(BPoly, len(p))
	for i := range p {
		out[i] = p[i].Neg()
	}
	return out
}

// Scale multiplies every coefficient by c.
func (p BPoly) Scale(c Belt) BPoly {
	out := make(BPoly, len(p))
	for i := range p {
		out[i] = c.Mul(p[i])
	}
	return out
}

// Mul is the full convolution product. The result has length
// len(p)+len(q)-1, except that a zero operand yields the canonical zero
// polynomial.
func (p BPoly) Mul(q BPoly) BPoly {
	if p.IsZero() || q.IsZero() {
		return ZeroBPoly()
	}
	out := make(BPoly, len(p)+len(q)-1)
	for i := range p {
		if p[i] == 0 {
			continue
		}
		for j := range q {
			out[i+j] = out[i+j].Add(p[i].Mul(q[j]))
		}
	}
	return out
}

// Hadamard is the index-wise product of two equal-length polynomials.
func (p BPoly) Hadamard(q BPoly) (BPoly, error) {
	if len(p) != len(q) {
		return nil, fmt.Errorf("%w: hadamard length mismatch %d != %d", ErrPrecondition, len(p), len(q))
	}
	out := make(BPoly, len(p))
	for i := range p {
		out[i] = p[i].Mul(q[i])
	}
	return out, nil
}

// Shift returns p(c·x): coefficient i scaled by cⁱ.
func (p BPoly) Shift(c Belt) BPoly {
	out := make(BPoly, len(p))
	power := Belt(1)
	for i := range p {
		out[i] = power.Mul(p[i])
		power = power.Mul(c)
	}
	return out
}

// NTT transforms p with a caller-supplied root of unity whose multiplicative
// order equals len(p): out[k] = Σ p[j]·root^(j·k). The length must be a power
// of two.
func (p BPoly) NTT(root Belt) (BPoly, error) {
	n := len(p)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: transform length %d is not a power of two", ErrPrecondition, n)
	}

	out := make(BPoly, n)
	logN := bits.TrailingZeros(uint(n))
	for i, c := range p {
		out[bits.Reverse(uint(i))>>(bits.UintSize-logN)] = c
	}
	if n == 1 {
		return out, nil
	}

	for span := 2; span <= n; span <<= 1 {
		wSpan := root.Pow(uint64(n / span))
		half := span / 2
		for start := 0; start < n; start += span {
			w := Belt(1)
			for j := 0; j < half; j++ {
				u := out[start+j]
				v := w.Mul(out[start+j+half])
				out[start+j] = u.Add(v)
				out[start+j+half] = u.Sub(v)
				w = w.Mul(wSpan)
			}
		}
	}
	return out, nil
}

// FFT evaluates p at all canonical roots of unity of order len(p).
func (p BPoly) FFT() (BPoly, error) {
	root, err := OrderedRoot(uint64(len(p)))
	if err != nil {
		return nil, err
	}
	return p.NTT(root)
}

// IFFT interpolates evaluations back to coefficient form: the transform with
// the inverse root, scaled by n⁻¹.
func (p BPoly) IFFT() (BPoly, error) {
	n := uint64(len(p))
	root, err := OrderedRoot(n)
	if err != nil {
		return nil, err
	}
	invRoot, err := root.Inv()
	if err != nil {
		return nil, err
	}
	out, err := p.NTT(invRoot)
	if err != nil {
		return nil, err
	}
	invN, err := NewBelt(n).Inv()
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i].Mul(invN)
	}
	return out, nil
}

// Coseword evaluates p over the coset {offset·ωⁱ : i < order}, where ω is the
// canonical root of unity of the given order. Used to extend a trace
// polynomial to a larger evaluation domain.
func (p BPoly) Coseword(offset Belt, order uint32) (BPoly, error) {
	root, err := OrderedRoot(uint64(order))
	if err != nil {
		return nil, err
	}
	shifted := p.Shift(offset)

	// Evaluation only sees exponents mod order: fold x^j onto x^(j mod order).
	folded := make(BPoly, order)
	for j, c := range shifted {
		folded[j%int(order)] = folded[j%int(order)].Add(c)
	}
	return folded.NTT(root)
}
