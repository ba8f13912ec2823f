package kernel

import (
	"fmt"

	"github.com/djkazic/nockchain/internal/zkvm/core"
	"github.com/djkazic/nockchain/internal/zkvm/noun"
)

// BPAdd adds two base polynomials. Sample: [p q], both poly handles.
func BPAdd(sam noun.Noun) (noun.Noun, error) {
	const op = "bpadd"
	p, q, err := twoBPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(p.Add(q)), nil
}

// BPSub subtracts the second polynomial from the first. Sample: [p q].
func BPSub(sam noun.Noun) (noun.Noun, error) {
	const op = "bpsub"
	p, q, err := twoBPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(p.Sub(q)), nil
}

// BPNeg negates a polynomial. Sample: a poly handle.
func BPNeg(sam noun.Noun) (noun.Noun, error) {
	const op = "bpneg"
	p, err := noun.BPolyFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(p.Neg()), nil
}

// BPScal scales a polynomial by a field element. Sample: [c p].
func BPScal(sam noun.Noun) (noun.Noun, error) {
	const op = "bpscal"
	cNoun, pNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	c, err := noun.AsBelt(cNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	p, err := noun.BPolyFromNoun(pNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(p.Scale(c)), nil
}

// BPMul multiplies two base polynomials. Sample: [p q].
func BPMul(sam noun.Noun) (noun.Noun, error) {
	const op = "bpmul"
	p, q, err := twoBPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(p.Mul(q)), nil
}

// BPHadamard is the index-wise product of two equal-length polynomials.
// Sample: [p q].
func BPHadamard(sam noun.Noun) (noun.Noun, error) {
	const op = "bp-hadamard"
	p, q, err := twoBPolys(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := p.Hadamard(q)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(res), nil
}

// BPShift evaluates the substitution x → c·x. Sample: [p c].
func BPShift(sam noun.Noun) (noun.Noun, error) {
	const op = "bp-shift"
	pNoun, cNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	p, err := noun.BPolyFromNoun(pNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	c, err := noun.AsBelt(cNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(p.Shift(c)), nil
}

// BPNTT transforms a polynomial with a caller-supplied root. Sample:
// [p root].
func BPNTT(sam noun.Noun) (noun.Noun, error) {
	const op = "bp-ntt"
	pNoun, rootNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	p, err := noun.BPolyFromNoun(pNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	root, err := noun.AsBelt(rootNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := p.NTT(root)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(res), nil
}

// BPFFT evaluates a polynomial at the canonical roots of unity of its
// length. Sample: a poly handle.
func BPFFT(sam noun.Noun) (noun.Noun, error) {
	const op = "bp-fft"
	p, err := noun.BPolyFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := p.FFT()
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(res), nil
}

// BPIFFT interpolates evaluations back to coefficients. Sample: a poly
// handle.
func BPIFFT(sam noun.Noun) (noun.Noun, error) {
	const op = "bp-ifft"
	p, err := noun.BPolyFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := p.IFFT()
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(res), nil
}

// BPCoseword evaluates a polynomial over a multiplicative coset. Sample:
// [p offset order].
func BPCoseword(sam noun.Noun) (noun.Noun, error) {
	const op = "bp-coseword"
	pNoun, offsetNoun, orderNoun, err := noun.Uncell3(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	p, err := noun.BPolyFromNoun(pNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	offset, err := noun.AsBelt(offsetNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	orderAtom, err := noun.AsAtom(orderNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	order, err := orderAtom.Uint64()
	if err != nil {
		return nil, fail(op, sam, err)
	}
	if order > 1<<32 {
		return nil, fail(op, sam, fmt.Errorf("%w: coset order %d too large", core.ErrPrecondition, order))
	}
	res, err := p.Coseword(offset, uint32(order))
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(res), nil
}

// InitBPoly builds a poly handle from a 0-terminated list of field element
// atoms.
func InitBPoly(sam noun.Noun) (noun.Noun, error) {
	const op = "init-bpoly"
	p, err := noun.BPolyFromList(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(p), nil
}

// BPolyToList renders a poly handle back into list-tree form.
func BPolyToList(sam noun.Noun) (noun.Noun, error) {
	const op = "bpoly-to-list"
	p, err := noun.BPolyFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToList(p), nil
}

func twoBPolys(sam noun.Noun) (core.BPoly, core.BPoly, error) {
	pNoun, qNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, nil, err
	}
	p, err := noun.BPolyFromNoun(pNoun)
	if err != nil {
		return nil, nil, err
	}
	q, err := noun.BPolyFromNoun(qNoun)
	if err != nil {
		return nil, nil, err
	}
	return p, q, nil
}
