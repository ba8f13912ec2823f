package kernel

import (
	"github.com/djkazic/nockchain/internal/zkvm/noun"
)

// MaryTranspose transposes a trace table against a cell width. Sample:
// [mary offset].
func MaryTranspose(sam noun.Noun) (noun.Noun, error) {
	const op = "mary-transpose"
	maryNoun, offsetNoun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	m, err := noun.MaryFromNoun(maryNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	offsetAtom, err := noun.AsAtom(offsetNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	offset, err := offsetAtom.Uint64()
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := m.Transpose(int(offset))
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.MaryToNoun(res), nil
}

// TransposeBPolys transposes a table of row polynomials into per-index
// columns, the offset-1 special case. Sample: a mary.
func TransposeBPolys(sam noun.Noun) (noun.Noun, error) {
	const op = "transpose-bpolys"
	m, err := noun.MaryFromNoun(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := m.Transpose(1)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.MaryToNoun(res), nil
}

// MaryWeld concatenates the rows of two tables with identical step. Sample:
// [m1 m2].
func MaryWeld(sam noun.Noun) (noun.Noun, error) {
	const op = "mary-weld"
	m1Noun, m2Noun, err := noun.Uncell2(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	m1, err := noun.MaryFromNoun(m1Noun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	m2, err := noun.MaryFromNoun(m2Noun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := m1.Weld(m2)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.MaryToNoun(res), nil
}

// MarySwag extracts a contiguous row range. Sample: [mary i j].
func MarySwag(sam noun.Noun) (noun.Noun, error) {
	const op = "mary-swag"
	maryNoun, iNoun, jNoun, err := noun.Uncell3(sam)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	m, err := noun.MaryFromNoun(maryNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	iAtom, err := noun.AsAtom(iNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	i, err := iAtom.Uint64()
	if err != nil {
		return nil, fail(op, sam, err)
	}
	jAtom, err := noun.AsAtom(jNoun)
	if err != nil {
		return nil, fail(op, sam, err)
	}
	j, err := jAtom.Uint64()
	if err != nil {
		return nil, fail(op, sam, err)
	}
	res, err := m.Swag(int(i), int(j))
	if err != nil {
		return nil, fail(op, sam, err)
	}
	return noun.MaryToNoun(res), nil
}
