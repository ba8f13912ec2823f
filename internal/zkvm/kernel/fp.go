package kernel

import (
	"github.com/djkazic/nockchain/internal/zkvm/core"
	"github.com/djkazic/nockchain/internal/zkvm/noun"
)

// FPAdd adds two extension polynomials. Sample: [p q].
func FPAdd(sam noun.Noun) (noun.Noun, error) {
	const op = "fpadd"
	p, q, err := twoFPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(p.Add(q)), nil
}

// FPSub subtracts the second polynomial from the first. Sample: [p q].
func FPSub(sam noun.Noun) (noun.Noun, error) {
	const op = "fpsub"
	p, q, err := twoFPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(p.Sub(q)), nil
}

// FPNeg negates a polynomial. Sample: a poly handle.
func FPNeg(sam noun.Noun) (noun.Noun, error) {
	const op = "fpneg"
	p, err := noun.FPolyFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(p.Neg()), nil
}

// FPScal scales a polynomial by an extension element. Sample: [c p].
func FPScal(sam noun.Noun) (noun.Noun, error) {
	const op = "fpscal"
	cNoun, pNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	c, err := noun.AsFelt(cNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	p, err := noun.FPolyFromNoun(pNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(p.Scale(c)), nil
}

// FPMul multiplies two extension polynomials. Sample: [p q].
func FPMul(sam noun.Noun) (noun.Noun, error) {
	const op = "fpmul"
	p, q, err := twoFPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(p.Mul(q)), nil
}

// FPEval evaluates a polynomial at a point. Sample: [p x].
func FPEval(sam noun.Noun) (noun.Noun, error) {
	const op = "fp-eval"
	pNoun, xNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	p, err := noun.FPolyFromNoun(pNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	x, err := noun.AsFelt(xNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FeltToNoun(p.Eval(x)), nil
}

// FPFFT evaluates a polynomial at the canonical roots of unity of its
// length. Sample: a poly handle.
func FPFFT(sam noun.Noun) (noun.Noun, error) {
	const op = "fp-fft"
	p, err := noun.FPolyFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := p.FFT()
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(res), nil
}

// FPIFFT interpolates evaluations back to coefficients. Sample: a poly
// handle.
func FPIFFT(sam noun.Noun) (noun.Noun, error) {
	const op = "fp-ifft"
	p, err := noun.FPolyFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := p.IFFT()
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(res), nil
}

// FPInterpolate builds the unique low-degree polynomial through the given
// samples. Sample: [domain values], both poly handles of equal length.
func FPInterpolate(sam noun.Noun) (noun.Noun, error) {
	const op = "fp-interpolate"
	domain, values, err := twoFPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := core.Interpolate(domain, values)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(res), nil
}

// FPCompose computes p(q(x)) at full length. Sample: [p q].
func FPCompose(sam noun.Noun) (noun.Noun, error) {
	const op = "fpcompose"
	p, q, err := twoFPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(p.Compose(q)), nil
}

// InitFPoly builds a poly handle from a 0-terminated list of extension
// element nouns.
func InitFPoly(sam noun.Noun) (noun.Noun, error) {
	const op = "init-fpoly"
	p, err := noun.FPolyFromList(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToNoun(p), nil
}

// FPolyToList renders a poly handle back into list-tree form.
func FPolyToList(sam noun.Noun) (noun.Noun, error) {
	const op = "fpoly-to-list"
	p, err := noun.FPolyFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.FPolyToList(p), nil
}

func twoFPolys(sam noun.Noun) (core.FPoly, core.FPoly, error) {
	pNoun, qNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, nil, err
	}
	p, err := noun.FPolyFromNoun(pNoun)
	if err != nil {
		return nil, nil, err
	}
	q, err := noun.FPolyFromNoun(qNoun)
	if err != nil {
		return nil, nil, err
	}
	return p, q, nil
}
