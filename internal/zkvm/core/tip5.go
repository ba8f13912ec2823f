package core

import "fmt"

// Sponge hash over 16 base field lanes: inputs are absorbed 10 lanes at a
// time through a fixed permutation and the digest is read from the first 5
// lanes. The state lives in the Montgomery domain throughout, matching the
// multiplication convention of the permutation.
const (
	StateSize    = 16
	Rate         = 10
	DigestLength = 5

	permRounds = 7
	sboxPower  = 7
)

// Permutation parameters are generated once at init instead of shipped as
// constant blobs: round constants come from a Grain LFSR seeded with the
// permutation shape, and the matrix is a Cauchy construction, which is MDS by
// design. Entries are stored in the Montgomery domain.
var (
	permRoundConstants [permRounds][StateSize]Belt
	permMatrix         [StateSize][StateSize]Belt
)

func init() {
	lfsr := newGrainLFSR(64, StateSize, permRounds, sboxPower)
	for r := 0; r < permRounds; r++ {
		for i := 0; i < StateSize; i++ {
			permRoundConstants[r][i] = Montify(lfsr.nextBelt())
		}
	}

	// Cauchy matrix: M[i][j] = 1/(x_i + y_j) with x_i = i, y_j = 16 + j.
	for i := 0; i < StateSize; i++ {
		for j := 0; j < StateSize; j++ {
			inv, err := NewBelt(uint64(i + StateSize + j)).Inv()
			if err != nil {
				panic("tip5: matrix entry not invertible: " + err.Error())
			}
			permMatrix[i][j] = Montify(inv)
		}
	}
}

// Permute applies the fixed permutation to the sponge state in place. Lanes
// are Montgomery-domain residues.
func Permute(state *[StateSize]uint64) {
	var s [StateSize]Belt
	for i := range s {
		s[i] = Belt(state[i])
	}
	for r := 0; r < permRounds; r++ {
		for i := range s {
			s[i] = s[i].Add(permRoundConstants[r][i])
		}
		for i := range s {
			s[i] = montPow7(s[i])
		}
		var next [StateSize]Belt
		for i := 0; i < StateSize; i++ {
			var acc Belt
			for j := 0; j < StateSize; j++ {
				acc = acc.Add(Montiply(permMatrix[i][j], s[j]))
			}
			next[i] = acc
		}
		s = next
	}
	for i := range s {
		state[i] = uint64(s[i])
	}
}

// montPow7 raises a Montgomery-domain value to the 7th power.
func montPow7(x Belt) Belt {
	x2 := Montiply(x, x)
	x3 := Montiply(x2, x)
	x6 := Montiply(x3, x3)
	return Montiply(x6, x)
}

// HashVarlen absorbs a variable-length sequence of canonical base field
// values and returns the 5-lane digest.
//
// The input is 10*-padded: one 1 element followed by enough zeros to reach a
// positive multiple of the rate. Every element is lifted into the Montgomery
// domain, blocks overwrite the first Rate lanes before each permutation call
// (pure absorption, no intermediate squeeze), and the digest lanes are
// reduced back out of the Montgomery domain at the end.
func HashVarlen(input []Belt) ([DigestLength]Belt, error) {
	var digest [DigestLength]Belt
	for _, b := range input {
		if !Based(uint64(b)) {
			return digest, fmt.Errorf("%w: input %d is not a canonical field element", ErrPrecondition, b)
		}
	}

	padded := make([]Belt, 0, len(input)+Rate)
	padded = append(padded, input...)
	padded = append(padded, 1)
	for len(padded)%Rate != 0 {
		padded = append(padded, 0)
	}

	for i := range padded {
		padded[i] = Montify(padded[i])
	}

	var state [StateSize]uint64
	for off := 0; off < len(padded); off += Rate {
		for i := 0; i < Rate; i++ {
			state[i] = uint64(padded[off+i])
		}
		Permute(&state)
	}

	for i := 0; i < DigestLength; i++ {
		digest[i] = MontReduce(0, state[i])
	}
	return digest, nil
}

// grainLFSR generates permutation parameters deterministically from the
// permutation shape, in the style of the Grain stream cipher.
type grainLFSR struct {
	state [80]bool
}

func newGrainLFSR(fieldBits, width, rounds, sbox int) *grainLFSR {
	g := &grainLFSR{}

	// prime field marker
	g.state[0] = true
	g.state[1] = true
	for i := 0; i < 4; i++ {
		g.state[2+i] = (sbox>>i)&1 == 1
	}
	for i := 0; i < 12; i++ {
		g.state[6+i] = (fieldBits>>i)&1 == 1
	}
	for i := 0; i < 12; i++ {
		g.state[18+i] = (width>>i)&1 == 1
	}
	for i := 0; i < 10; i++ {
		g.state[30+i] = (rounds>>i)&1 == 1
	}
	for i := 40; i < 80; i++ {
		g.state[i] = true
	}

	for i := 0; i < 160; i++ {
		g.update()
	}
	return g
}

func (g *grainLFSR) update() {
	newBit := g.state[62] != g.state[51] != g.state[38] != g.state[23] != g.state[13] != g.state[0]
	copy(g.state[:79], g.state[1:])
	g.state[79] = newBit
}

// sampleBit uses rejection sampling in bit pairs: a pair starting with 1
// yields its second bit, a pair starting with 0 is discarded.
func (g *grainLFSR) sampleBit() bool {
	for {
		bit1 := g.state[0]
		g.update()
		bit2 := g.state[0]
		g.update()
		if bit1 {
			return bit2
		}
	}
}

func (g *grainLFSR) nextBelt() Belt {
	var v uint64
	for i := 0; i < 64; i++ {
		if g.sampleBit() {
			v |= 1 << i
		}
	}
	return NewBelt(v)
}
