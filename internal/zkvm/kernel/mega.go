package kernel

import (
	"context"

	"github.com/djkazic/nockchain/internal/zkvm/core"
	"github.com/djkazic/nockchain/internal/zkvm/mega"
	"github.com/djkazic/nockchain/internal/zkvm/noun"
)

// MPSubstitute evaluates a weighted monomial sum against concrete trace,
// challenge, dynamic and commitment values. Sample:
// [terms trace height chals dyns coms] where terms is an association list
// from term handle to coefficient atom, chals and coms are association lists
// keyed by id atoms, and dyns is a poly handle.
func MPSubstitute(sam noun.Noun) (noun.Noun, error) {
	const op = "mp-substitute"
	in, err := decodeSubstitution(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := mega.Substitute(in)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(res), nil
}

// MPSubstituteParallel is MPSubstitute with concurrent term evaluation. The
// result is identical; only wall-clock time differs.
func MPSubstituteParallel(ctx context.Context, sam noun.Noun) (noun.Noun, error) {
	const op = "mp-substitute-parallel"
	in, err := decodeSubstitution(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := mega.SubstituteParallel(ctx, in)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.BPolyToNoun(res), nil
}

func decodeSubstitution(sam noun.Noun) (*mega.Inputs, error) {
	termsNoun, rest, err := noun.Uncell2(sam)
	if err != nil {
		return nil, err
	}
	traceNoun, rest, err := noun.Uncell2(rest)
	if err != nil {
		return nil, err
	}
	heightNoun, rest, err := noun.Uncell2(rest)
	if err != nil {
		return nil, err
	}
	chalsNoun, dynsNoun, comsNoun, err := noun.Uncell3(rest)
	if err != nil {
		return nil, err
	}

	trace, err := noun.BPolyFromNoun(traceNoun)
	if err != nil {
		return nil, err
	}
	heightAtom, err := noun.AsAtom(heightNoun)
	if err != nil {
		return nil, err
	}
	height, err := heightAtom.Uint64()
	if err != nil {
		return nil, err
	}
	dyns, err := noun.BPolyFromNoun(dynsNoun)
	if err != nil {
		return nil, err
	}

	termPairs, err := noun.Elems(termsNoun)
	if err != nil {
		return nil, err
	}
	terms := make([]mega.Term, 0, len(termPairs))
	for _, pair := range termPairs {
		termNoun, coeffNoun, err := noun.Uncell2(pair)
		if err != nil {
			return nil, err
		}
		factors, err := noun.BPolyFromNoun(termNoun)
		if err != nil {
			return nil, err
		}
		coeff, err := noun.AsBelt(coeffNoun)
		if err != nil {
			return nil, err
		}
		terms = append(terms, mega.Term{Factors: factors, Coeff: coeff})
	}

	chalPairs, err := noun.Elems(chalsNoun)
	if err != nil {
		return nil, err
	}
	chals := make(map[uint64]core.Belt, len(chalPairs))
	for _, pair := range chalPairs {
		idNoun, valNoun, err := noun.Uncell2(pair)
		if err != nil {
			return nil, err
		}
		idAtom, err := noun.AsAtom(idNoun)
		if err != nil {
			return nil, err
		}
		id, err := idAtom.Uint64()
		if err != nil {
			return nil, err
		}
		val, err := noun.AsBelt(valNoun)
		if err != nil {
			return nil, err
		}
		chals[id] = val
	}

	comPairs, err := noun.Elems(comsNoun)
	if err != nil {
		return nil, err
	}
	coms := make(map[uint64]core.BPoly, len(comPairs))
	for _, pair := range comPairs {
		idNoun, polyNoun, err := noun.Uncell2(pair)
		if err != nil {
			return nil, err
		}
		idAtom, err := noun.AsAtom(idNoun)
		if err != nil {
			return nil, err
		}
		id, err := idAtom.Uint64()
		if err != nil {
			return nil, err
		}
		poly, err := noun.BPolyFromNoun(polyNoun)
		if err != nil {
			return nil, err
		}
		coms[id] = poly
	}

	return &mega.Inputs{
		Terms:  terms,
		Trace:  trace,
		Height: height,
		Chals:  chals,
		Dyns:   dyns,
		Coms:   coms,
	}, nil
}
