package kernel

import (
	"fmt"

	"github.com/djkazic/nockchain/internal/zkvm/core"
	"github.com/djkazic/nockchain/internal/zkvm/noun"
)

// Tip5Permutation applies the fixed permutation to a full sponge state.
// Sample: a 0-terminated list of exactly 16 atoms.
func Tip5Permutation(sam noun.Noun) (noun.Noun, error) {
	const op = "tip5-permutation"
	elems, err := noun.Elems(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	if len(elems) != core.StateSize {
		return nil, fail(op, sam, fmt.Errorf("%w: sponge state has %d lanes, want %d",
			noun.ErrDecode, len(elems), core.StateSize))
	}
	var state [core.StateSize]uint64
	for i, e := range elems {
		a, err := noun.AsAtom(e)
		if err != nil {
			return nil, fail(op, sam, err)
		}
		state[i], err = a.Uint64()
		if err != nil {
			return nil, fail(op, sam, err)
		}
	}
	core.Permute(&state)
	out := make([]noun.Noun, core.StateSize)
	for i, v := range state {
		out[i] = noun.D(v)
	}
	return noun.List(out...), nil
}

// Tip5HashVarlen hashes a variable-length list of field elements. Sample: a
// 0-terminated list of atoms in [0,P). Result: the 5-lane digest as a list.
func Tip5HashVarlen(sam noun.Noun) (noun.Noun, error) {
	const op = "tip5-hash-varlen"
	input, err := noun.BPolyFromList(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	digest, err := core.HashVarlen(input)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	out := make([]noun.Noun, core.DigestLength)
	for i, d := range digest {
		out[i] = noun.BeltToNoun(d)
	}
	return noun.List(out...), nil
}
