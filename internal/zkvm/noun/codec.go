package noun

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/djkazic/nockchain/internal/zkvm/core"
)

// AsBelt decodes an atom in [0, P) into a base field element.
func AsBelt(n Noun) (core.Belt, error) {
	a, err := AsAtom(n)
	if err != nil {
		return 0, err
	}
	v, err := a.Uint64()
	if err != nil {
		return 0, err
	}
	if !core.Based(v) {
		return 0, fmt.Errorf("%w: %d is not a canonical field element", ErrDecode, v)
	}
	return core.Belt(v), nil
}

// BeltToNoun encodes a base field element.
func BeltToNoun(b core.Belt) Noun {
	return D(uint64(b))
}

// AsFelt decodes an extension field element from either a single atom packing
// the three 64-bit limbs least-significant first (with an optional leading
// guard limb of 1, which preserves the width of high zero limbs), or a cell
// of three separate field-element atoms.
func AsFelt(n Noun) (core.Felt, error) {
	switch v := n.(type) {
	case Atom:
		words, err := atomWords(v, 4)
		if err != nil {
			return core.Felt{}, err
		}
		if words[3] != 0 && words[3] != 1 {
			return core.Felt{}, fmt.Errorf("%w: malformed extension element guard", ErrDecode)
		}
		var f core.Felt
		for i := 0; i < 3; i++ {
			if !core.Based(words[i]) {
				return core.Felt{}, fmt.Errorf("%w: limb %d is not a canonical field element", ErrDecode, i)
			}
			f[i] = core.Belt(words[i])
		}
		return f, nil
	case Cell:
		c0, c1, c2, err := Uncell3(n)
		if err != nil {
			return core.Felt{}, err
		}
		var f core.Felt
		for i, limb := range []Noun{c0, c1, c2} {
			b, err := AsBelt(limb)
			if err != nil {
				return core.Felt{}, err
			}
			f[i] = b
		}
		return f, nil
	default:
		return core.Felt{}, fmt.Errorf("%w: expected extension element", ErrDecode)
	}
}

// FeltToNoun encodes an extension field element as a single atom with the
// guard limb set.
func FeltToNoun(f core.Felt) Noun {
	words := []uint64{uint64(f[0]), uint64(f[1]), uint64(f[2]), 1}
	return wordsAtom(words)
}

// AsUint128 decodes an atom of at most 128 bits into high and low 64-bit
// halves.
func AsUint128(n Noun) (hi, lo uint64, err error) {
	a, err := AsAtom(n)
	if err != nil {
		return 0, 0, err
	}
	words, err := atomWords(a, 2)
	if err != nil {
		return 0, 0, err
	}
	return words[1], words[0], nil
}

// BPolyFromNoun decodes a polynomial handle: a cell [len dat] where dat is an
// atom packing len little-endian 64-bit words.
func BPolyFromNoun(n Noun) (core.BPoly, error) {
	length, dat, err := handleParts(n)
	if err != nil {
		return nil, err
	}
	words, err := atomWords(dat, int(length))
	if err != nil {
		return nil, err
	}
	out := make(core.BPoly, length)
	for i, w := range words {
		if !core.Based(w) {
			return nil, fmt.Errorf("%w: coefficient %d is not a canonical field element", ErrDecode, i)
		}
		out[i] = core.Belt(w)
	}
	return out, nil
}

// BPolyToNoun encodes a polynomial as a [len dat] handle.
func BPolyToNoun(p core.BPoly) Noun {
	words := make([]uint64, len(p))
	for i, c := range p {
		words[i] = uint64(c)
	}
	return T(D(uint64(len(p))), wordsAtom(words))
}

// BPolyFromList decodes a polynomial from a 0-terminated list of field
// element atoms.
func BPolyFromList(n Noun) (core.BPoly, error) {
	elems, err := Elems(n)
	if err != nil {
		return nil, err
	}
	out := make(core.BPoly, len(elems))
	for i, e := range elems {
		b, err := AsBelt(e)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// BPolyToList renders a polynomial back into list-tree form.
func BPolyToList(p core.BPoly) Noun {
	elems := make([]Noun, len(p))
	for i, c := range p {
		elems[i] = BeltToNoun(c)
	}
	return List(elems...)
}

// FPolyFromNoun decodes an extension polynomial handle: [len dat] with three
// 64-bit words per coefficient.
func FPolyFromNoun(n Noun) (core.FPoly, error) {
	length, dat, err := handleParts(n)
	if err != nil {
		return nil, err
	}
	words, err := atomWords(dat, int(length)*3)
	if err != nil {
		return nil, err
	}
	out := make(core.FPoly, length)
	for i := range out {
		for j := 0; j < 3; j++ {
			w := words[i*3+j]
			if !core.Based(w) {
				return nil, fmt.Errorf("%w: coefficient %d limb %d is not a canonical field element", ErrDecode, i, j)
			}
			out[i][j] = core.Belt(w)
		}
	}
	return out, nil
}

// FPolyToNoun encodes an extension polynomial as a [len dat] handle.
func FPolyToNoun(p core.FPoly) Noun {
	words := make([]uint64, len(p)*3)
	for i, f := range p {
		for j := 0; j < 3; j++ {
			words[i*3+j] = uint64(f[j])
		}
	}
	return T(D(uint64(len(p))), wordsAtom(words))
}

// FPolyFromList decodes an extension polynomial from a 0-terminated list of
// extension element nouns.
func FPolyFromList(n Noun) (core.FPoly, error) {
	elems, err := Elems(n)
	if err != nil {
		return nil, err
	}
	out := make(core.FPoly, len(elems))
	for i, e := range elems {
		f, err := AsFelt(e)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// FPolyToList renders an extension polynomial into list-tree form.
func FPolyToList(p core.FPoly) Noun {
	elems := make([]Noun, len(p))
	for i, f := range p {
		elems[i] = FeltToNoun(f)
	}
	return List(elems...)
}

// MaryFromNoun decodes a matrix: a cell [step [len dat]].
func MaryFromNoun(n Noun) (core.Mary, error) {
	stepNoun, handle, err := Uncell2(n)
	if err != nil {
		return core.Mary{}, err
	}
	stepAtom, err := AsAtom(stepNoun)
	if err != nil {
		return core.Mary{}, err
	}
	step, err := stepAtom.Uint64()
	if err != nil {
		return core.Mary{}, err
	}
	length, dat, err := handleParts(handle)
	if err != nil {
		return core.Mary{}, err
	}
	// Step and length are independently bounded, but their product must be
	// checked too before it sizes an allocation.
	if step > maxHandleLen || (length != 0 && step > maxHandleLen/length) {
		return core.Mary{}, fmt.Errorf("%w: mary shape %dx%d exceeds %d entries",
			ErrDecode, step, length, maxHandleLen)
	}
	words, err := atomWords(dat, int(step*length))
	if err != nil {
		return core.Mary{}, err
	}
	buf := make([]core.Belt, len(words))
	for i, w := range words {
		if !core.Based(w) {
			return core.Mary{}, fmt.Errorf("%w: entry %d is not a canonical field element", ErrDecode, i)
		}
		buf[i] = core.Belt(w)
	}
	m, err := core.MaryFromSlice(int(step), int(length), buf)
	if err != nil {
		return core.Mary{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return m, nil
}

// MaryToNoun encodes a matrix as [step [len dat]].
func MaryToNoun(m core.Mary) Noun {
	words := make([]uint64, len(m.Dat))
	for i, c := range m.Dat {
		words[i] = uint64(c)
	}
	return T(D(uint64(m.Step)), T(D(uint64(m.Len)), wordsAtom(words)))
}

// maxHandleLen bounds the element count a handle may claim. The transform
// domain tops out at order 2^32, so no legitimate container exceeds it, and
// the bound keeps handle lengths taken from untrusted trees out of the range
// where slice allocation overflows.
const maxHandleLen = 1 << 32

// handleParts splits a [len dat] handle.
func handleParts(n Noun) (uint64, Atom, error) {
	lenNoun, datNoun, err := Uncell2(n)
	if err != nil {
		return 0, Atom{}, err
	}
	lenAtom, err := AsAtom(lenNoun)
	if err != nil {
		return 0, Atom{}, err
	}
	length, err := lenAtom.Uint64()
	if err != nil {
		return 0, Atom{}, err
	}
	if length > maxHandleLen {
		return 0, Atom{}, fmt.Errorf("%w: handle length %d exceeds %d", ErrDecode, length, maxHandleLen)
	}
	dat, err := AsAtom(datNoun)
	if err != nil {
		return 0, Atom{}, err
	}
	return length, dat, nil
}

// atomWords unpacks an atom into count little-endian 64-bit words. High words
// absent from the atom's value decode as zero.
func atomWords(a Atom, count int) ([]uint64, error) {
	v := a.Big()
	if v.BitLen() > count*64 {
		return nil, fmt.Errorf("%w: atom wider than %d words", ErrDecode, count)
	}
	buf := make([]byte, count*8)
	v.FillBytes(buf)
	words := make([]uint64, count)
	for i := 0; i < count; i++ {
		words[i] = binary.BigEndian.Uint64(buf[(count-1-i)*8 : (count-i)*8])
	}
	return words, nil
}

// wordsAtom packs little-endian 64-bit words into an atom.
func wordsAtom(words []uint64) Atom {
	buf := make([]byte, len(words)*8)
	for i, w := range words {
		binary.BigEndian.PutUint64(buf[(len(words)-1-i)*8:(len(words)-i)*8], w)
	}
	return Atom{v: new(big.Int).SetBytes(buf)}
}
