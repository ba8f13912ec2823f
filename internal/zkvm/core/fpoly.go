package core

import "fmt"

// FPoly is a polynomial over the extension field, stored ascending like
// BPoly. The canonical zero polynomial is the one-element sequence [0].
type FPoly []Felt

// ZeroFPoly returns the canonical zero polynomial.
func ZeroFPoly() FPoly { return FPoly{ZeroFelt()} }

// IsZero reports whether the polynomial is empty or has only zero
// coefficients.
func (p FPoly) IsZero() bool {
	for _, c := range p {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (p FPoly) Clone() FPoly {
	out := make(FPoly, len(p))
	copy(out, p)
	return out
}

// Add adds two polynomials; the shorter operand is implicitly zero-padded.
func (p FPoly) Add(q FPoly) FPoly {
	out := make(FPoly, max(len(p), len(q)))
	for i := range p {
		out[i] = p[i]
	}
	for i := range q {
		out[i] = out[i].Add(q[i])
	}
	return out
}

// Sub subtracts q from p with the same padding rule as Add.
func (p FPoly) Sub(q FPoly) FPoly {
	out := make(FPoly, max(len(p), len(q)))
	for i := range p {
		out[i] = p[i]
	}
	for i := range q {
		out[i] = out[i].Sub(q[i])
	}
	return out
}

// Neg negates every coefficient.
func (p FPoly) Neg() FPoly {
	out := make(FPoly, len(p))
	for i := range p {
		out[i] = p[i].Neg()
	}
	return out
}

// Scale multiplies every coefficient by c.
func (p FPoly) Scale(c Felt) FPoly {
	out := make(FPoly, len(p))
	for i := range p {
		out[i] = c.Mul(p[i])
	}
	return out
}

// Mul is the full convolution product, with the same zero-operand rule as the
// base field version.
func (p FPoly) Mul(q FPoly) FPoly {
	if p.IsZero() || q.IsZero() {
		return ZeroFPoly()
	}
	out := make(FPoly, len(p)+len(q)-1)
	for i := range p {
		if p[i].IsZero() {
			continue
		}
		for j := range q {
			out[i+j] = out[i+j].Add(p[i].Mul(q[j]))
		}
	}
	return out
}

// Hadamard is the index-wise product of two equal-length polynomials.
func (p FPoly) Hadamard(q FPoly) (FPoly, error) {
	if len(p) != len(q) {
		return nil, fmt.Errorf("%w: hadamard length mismatch %d != %d", ErrPrecondition, len(p), len(q))
	}
	out := make(FPoly, len(p))
	for i := range p {
		out[i] = p[i].Mul(q[i])
	}
	return out, nil
}

// Shift returns p(c·x).
func (p FPoly) Shift(c Felt) FPoly {
	out := make(FPoly, len(p))
	power := OneFelt()
	for i := range p {
		out[i] = power.Mul(p[i])
		power = power.Mul(c)
	}
	return out
}

// Eval evaluates p at x by Horner's method.
func (p FPoly) Eval(x Felt) Felt {
	if len(p) == 0 {
		return ZeroFelt()
	}
	result := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		result = result.Mul(x).Add(p[i])
	}
	return result
}

// FFT evaluates p at all canonical roots of unity of order len(p), which must
// be a power of two. The transform is the recursive decimation-in-time
// algorithm: split into even and odd coefficients, transform each half with
// the squared root, then combine with successive root powers. Each recursion
// level allocates fresh halves; that allocation is the dominant cost of the
// transform.
func (p FPoly) FFT() (FPoly, error) {
	n := len(p)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: transform length %d is not a power of two", ErrPrecondition, n)
	}
	root, err := OrderedRoot(uint64(n))
	if err != nil {
		return nil, err
	}
	return fftRecursive(p, FeltFromBelt(root)), nil
}

// IFFT runs the same recursion with the inverse root, then scales every
// output by n⁻¹.
func (p FPoly) IFFT() (FPoly, error) {
	n := len(p)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: transform length %d is not a power of two", ErrPrecondition, n)
	}
	root, err := OrderedRoot(uint64(n))
	if err != nil {
		return nil, err
	}
	invRoot, err := FeltFromBelt(root).Inv()
	if err != nil {
		return nil, err
	}
	out := fftRecursive(p, invRoot)
	invN, err := FeltFromBelt(NewBelt(uint64(n))).Inv()
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i].Mul(invN)
	}
	return out, nil
}

func fftRecursive(p FPoly, root Felt) FPoly {
	n := len(p)
	if n == 1 {
		return p.Clone()
	}
	half := n / 2

	evens := make(FPoly, half)
	odds := make(FPoly, half)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			evens[i/2] = p[i]
		} else {
			odds[i/2] = p[i]
		}
	}

	rootSq := root.Mul(root)
	evensOut := fftRecursive(evens, rootSq)
	oddsOut := fftRecursive(odds, rootSq)

	out := make(FPoly, n)
	power := OneFelt()
	for i := 0; i < n; i++ {
		out[i] = evensOut[i%half].Add(power.Mul(oddsOut[i%half]))
		power = power.Mul(root)
	}
	return out
}

// Interpolate returns the unique polynomial of degree < n passing through the
// n sample points (domain[i], values[i]), by Lagrange interpolation. For each
// sample the basis polynomial Π_{j≠i}(x - domain[j]) is grown one linear
// factor at a time alongside its scalar denominator Π_{j≠i}(domain[i] -
// domain[j]); the result accumulates values[i]/denominator times the basis.
// O(n²) coefficient operations.
func Interpolate(domain, values FPoly) (FPoly, error) {
	if len(domain) != len(values) {
		return nil, fmt.Errorf("%w: interpolation domain length %d != values length %d",
			ErrPrecondition, len(domain), len(values))
	}
	n := len(domain)
	out := make(FPoly, n)

	basis := make(FPoly, 0, n)
	for i := 0; i < n; i++ {
		basis = append(basis[:0], OneFelt())
		denom := OneFelt()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			// basis ← basis·(x - domain[j])
			basis = append(basis, ZeroFelt())
			for k := len(basis) - 1; k >= 1; k-- {
				basis[k] = basis[k-1].Sub(domain[j].Mul(basis[k]))
			}
			basis[0] = domain[j].Neg().Mul(basis[0])
			denom = denom.Mul(domain[i].Sub(domain[j]))
		}
		scale, err := values[i].Div(denom)
		if err != nil {
			return nil, fmt.Errorf("%w: duplicate interpolation point", ErrPrecondition)
		}
		for k := range basis {
			out[k] = out[k].Add(scale.Mul(basis[k]))
		}
	}
	return out, nil
}

// Compose returns p(q(x)) at its full length, (deg p)·(deg q)+1 when both
// operands are nonempty and 0 otherwise.
func (p FPoly) Compose(q FPoly) FPoly {
	return p.ComposeTo(q, composeLen(p, q))
}

// ComposeTo computes p(q(x)) truncated to size coefficients: successive
// powers of q are formed by repeated convolution and accumulated scaled by
// the matching coefficient of p. Excess high-degree terms are silently
// dropped, never an error.
func (p FPoly) ComposeTo(q FPoly, size int) FPoly {
	out := make(FPoly, size)
	if len(p) == 0 || len(q) == 0 || size == 0 {
		return out
	}
	out[0] = p[0]

	qPower := FPoly{OneFelt()}
	for i := 1; i < len(p); i++ {
		qPower = qPower.Mul(q)
		for j := 0; j < len(qPower) && j < size; j++ {
			out[j] = out[j].Add(p[i].Mul(qPower[j]))
		}
	}
	return out
}

func composeLen(p, q FPoly) int {
	if len(p) == 0 || len(q) == 0 {
		return 0
	}
	return (len(p)-1)*(len(q)-1) + 1
}
