package kernel

import (
	"fmt"

	"github.com/djkazic/nockchain/internal/zkvm/core"
	"github.com/djkazic/nockchain/internal/zkvm/noun"
)

// Montify lifts a field element into the Montgomery domain. Sample: a belt
// atom.
func Montify(sam noun.Noun) (noun.Noun, error) {
	const op = "montify"
	x, err := noun.AsBelt(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BeltToNoun(core.Montify(x)), nil
}

// Montiply computes the Montgomery product a·b·R⁻¹. Sample: [a b], both belt
// atoms.
func Montiply(sam noun.Noun) (noun.Noun, error) {
	const op = "montiply"
	aNoun, bNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	a, err := noun.AsBelt(aNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	b, err := noun.AsBelt(bNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BeltToNoun(core.Montiply(a, b)), nil
}

// MontReduction computes x·R⁻¹ mod P for an atom x of at most 128 bits with
// x < R·P.
func MontReduction(sam noun.Noun) (noun.Noun, error) {
	const op = "mont-reduction"
	hi, lo, err := noun.AsUint128(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	if !core.Based(hi) {
		return nil, fail(op, sam, fmt.Errorf("%w: %d·2^64 exceeds the reduction range", core.ErrPrecondition, hi))
	}
	return noun.BeltToNoun(core.MontReduce(hi, lo)), nil
}
