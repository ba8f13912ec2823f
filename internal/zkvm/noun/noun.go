// Package noun models the host interpreter's value representation: immutable
// binary trees whose leaves are arbitrary-precision unsigned integers (atoms)
// and whose internal nodes are ordered pairs (cells). Kernel entry points
// decode these trees into the core containers and encode results back; a
// decode failure never produces a partial result.
package noun

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDecode marks a value tree that does not match the expected container
// shape: wrong arity, an atom where a cell was expected, an out-of-range
// integer, and so on.
var ErrDecode = errors.New("noun decode failed")

// Noun is either an Atom or a Cell.
type Noun interface {
	isNoun()
}

// Atom is a leaf: a non-negative arbitrary-precision integer.
type Atom struct {
	v *big.Int
}

// Cell is an ordered pair of two nouns.
type Cell struct {
	Head Noun
	Tail Noun
}

func (Atom) isNoun() {}
func (Cell) isNoun() {}

// D builds an atom from a machine word.
func D(v uint64) Atom {
	return Atom{v: new(big.Int).SetUint64(v)}
}

// FromBig builds an atom from a non-negative big integer. The value is
// copied.
func FromBig(v *big.Int) (Atom, error) {
	if v.Sign() < 0 {
		return Atom{}, fmt.Errorf("%w: atom from negative integer", ErrDecode)
	}
	return Atom{v: new(big.Int).Set(v)}, nil
}

// Big returns a copy of the atom's value.
func (a Atom) Big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

// Uint64 returns the atom as a machine word if it fits.
func (a Atom) Uint64() (uint64, error) {
	if a.v == nil {
		return 0, nil
	}
	if !a.v.IsUint64() {
		return 0, fmt.Errorf("%w: atom exceeds 64 bits", ErrDecode)
	}
	return a.v.Uint64(), nil
}

// String renders the atom in decimal.
func (a Atom) String() string {
	return a.Big().String()
}

// T builds a cell.
func T(head, tail Noun) Cell {
	return Cell{Head: head, Tail: tail}
}

// List builds a 0-terminated list tree from the given elements.
func List(elems ...Noun) Noun {
	var out Noun = D(0)
	for i := len(elems) - 1; i >= 0; i-- {
		out = T(elems[i], out)
	}
	return out
}

// AsAtom asserts the noun is a leaf.
func AsAtom(n Noun) (Atom, error) {
	a, ok := n.(Atom)
	if !ok {
		return Atom{}, fmt.Errorf("%w: expected atom, got cell", ErrDecode)
	}
	return a, nil
}

// AsCell asserts the noun is a pair.
func AsCell(n Noun) (Cell, error) {
	c, ok := n.(Cell)
	if !ok {
		return Cell{}, fmt.Errorf("%w: expected cell, got atom", ErrDecode)
	}
	return c, nil
}

// Uncell2 splits [a b].
func Uncell2(n Noun) (Noun, Noun, error) {
	c, err := AsCell(n)
	if err != nil {
		return nil, nil, err
	}
	return c.Head, c.Tail, nil
}

// Uncell3 splits [a b c].
func Uncell3(n Noun) (Noun, Noun, Noun, error) {
	a, rest, err := Uncell2(n)
	if err != nil {
		return nil, nil, nil, err
	}
	b, c, err := Uncell2(rest)
	if err != nil {
		return nil, nil, nil, err
	}
	return a, b, c, nil
}

// Elems walks a 0-terminated list tree and returns its elements.
func Elems(n Noun) ([]Noun, error) {
	var out []Noun
	for {
		if a, ok := n.(Atom); ok {
			if a.v != nil && a.v.Sign() != 0 {
				return nil, fmt.Errorf("%w: list terminated by nonzero atom", ErrDecode)
			}
			return out, nil
		}
		c := n.(Cell)
		out = append(out, c.Head)
		n = c.Tail
	}
}
