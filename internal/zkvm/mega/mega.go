// Package mega evaluates constraint substitutions: weighted sums of symbolic
// monomial terms against concrete trace, challenge, dynamic and commitment
// values. Term factors arrive as packed base field values from partially
// untrusted proof data, so every lookup is checked and reported as an error
// rather than trusted.
package mega

import (
	"errors"
	"fmt"
	"math"

	"github.com/djkazic/nockchain/internal/zkvm/core"
)

// ErrLookup marks a reference into the value sources that cannot be resolved:
// a missing challenge, dynamic or commitment id, or a trace slice outside the
// evaluation buffer.
var ErrLookup = errors.New("substitution lookup failed")

// FactorKind tags the closed set of factor variants.
type FactorKind uint8

const (
	// Var selects a 4·height slice of the trace evaluation buffer.
	Var FactorKind = iota
	// Rnd looks up a scalar in the challenge table.
	Rnd
	// Dyn looks up a scalar in the dynamic value array.
	Dyn
	// Con contributes multiplicatively as 1. The reference behavior treats
	// constants as already folded into the term coefficient; the no-op is
	// preserved here rather than second-guessed.
	Con
	// Com looks up a polynomial in the commitment table.
	Com
)

// Factor is one decoded monomial factor.
type Factor struct {
	Kind  FactorKind
	Index uint64
	Exp   uint64
}

// Factor packing inside a single base field value: bits 0..2 hold the kind
// tag, bits 3..34 the index, bits 35..63 the exponent.
const (
	factorKindBits  = 3
	factorIndexBits = 32
)

// DecodeFactor unpacks a factor from its field value encoding.
func DecodeFactor(v core.Belt) (Factor, error) {
	kind := FactorKind(v & (1<<factorKindBits - 1))
	if kind > Com {
		return Factor{}, fmt.Errorf("%w: unknown factor tag %d", ErrLookup, kind)
	}
	return Factor{
		Kind:  kind,
		Index: uint64(v) >> factorKindBits & (1<<factorIndexBits - 1),
		Exp:   uint64(v) >> (factorKindBits + factorIndexBits),
	}, nil
}

// EncodeFactor packs a factor into its field value encoding.
func EncodeFactor(f Factor) core.Belt {
	return core.Belt(uint64(f.Kind) |
		f.Index<<factorKindBits |
		f.Exp<<(factorKindBits+factorIndexBits))
}

// Term is one weighted monomial: an ordered factor list and its coefficient.
type Term struct {
	Factors []core.Belt
	Coeff   core.Belt
}

// Inputs collects the concrete value sources a substitution is evaluated
// against.
type Inputs struct {
	Terms  []Term
	Trace  core.BPoly
	Height uint64
	Chals  map[uint64]core.Belt
	Dyns   core.BPoly
	Coms   map[uint64]core.BPoly
}

// Substitute computes Σ coefficient·term over the term list, processing terms
// in list order. Terms with a zero coefficient are skipped entirely, which
// also avoids dereferencing slices their factors might point out of range.
func Substitute(in *Inputs) (core.BPoly, error) {
	acc := core.ZeroBPoly()
	for ti := range in.Terms {
		term := &in.Terms[ti]
		if term.Coeff == 0 {
			continue
		}
		res, err := evalTerm(in, term)
		if err != nil {
			return nil, err
		}
		acc = acc.Add(res)
	}
	return acc, nil
}

// evalTerm applies the term's factors in listed order to an accumulator
// initialized to the all-ones polynomial of the term's arity, then scales by
// the coefficient.
func evalTerm(in *Inputs, term *Term) (core.BPoly, error) {
	arity := len(term.Factors)
	if arity == 0 {
		arity = 1
	}
	acc := core.OnesBPoly(arity)

	sliceLen := 4 * in.Height
	for _, raw := range term.Factors {
		f, err := DecodeFactor(raw)
		if err != nil {
			return nil, err
		}
		switch f.Kind {
		case Var:
			// Height and Index arrive in proof data, so every bound is
			// checked in wrap-free form before slicing.
			traceLen := uint64(len(in.Trace))
			if in.Height > math.MaxUint64/4 || sliceLen == 0 || sliceLen > traceLen ||
				f.Index > (traceLen-sliceLen)/sliceLen {
				return nil, fmt.Errorf("%w: trace slice %d of width %d exceeds %d evaluations",
					ErrLookup, f.Index, sliceLen, len(in.Trace))
			}
			start := f.Index * sliceLen
			slice := in.Trace[start : start+sliceLen]
			for e := uint64(0); e < f.Exp; e++ {
				acc = hadamardMin(acc, slice)
			}
		case Rnd:
			rnd, ok := in.Chals[f.Index]
			if !ok {
				return nil, fmt.Errorf("%w: no challenge with id %d", ErrLookup, f.Index)
			}
			acc = acc.Scale(rnd.Pow(f.Exp))
		case Dyn:
			if f.Index >= uint64(len(in.Dyns)) {
				return nil, fmt.Errorf("%w: dynamic index %d exceeds %d values",
					ErrLookup, f.Index, len(in.Dyns))
			}
			acc = acc.Scale(in.Dyns[f.Index].Pow(f.Exp))
		case Con:
			// multiplicative identity, nothing to apply
		case Com:
			com, ok := in.Coms[f.Index]
			if !ok {
				return nil, fmt.Errorf("%w: no commitment with id %d", ErrLookup, f.Index)
			}
			for e := uint64(0); e < f.Exp; e++ {
				acc = hadamardMin(acc, com)
			}
		}
	}
	return acc.Scale(term.Coeff), nil
}

// hadamardMin is the index-wise product truncated to the shorter operand, the
// accumulator-against-slice convention of term evaluation. The public
// equal-length Hadamard lives on BPoly.
func hadamardMin(p, q core.BPoly) core.BPoly {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	out := make(core.BPoly, n)
	for i := 0; i < n; i++ {
		out[i] = p[i].Mul(q[i])
	}
	return out
}
