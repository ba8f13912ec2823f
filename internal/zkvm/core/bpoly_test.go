package core

import (
	"errors"
	"testing"
)

func beltPoly(vs ...uint64) BPoly {
	p := make(BPoly, len(vs))
	for i, v := range vs {
		p[i] = NewBelt(v)
	}
	return p
}

func polysEqual(p, q BPoly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func TestBPolyAddSub(t *testing.T) {
	t.Run("UnevenLengths", func(t *testing.T) {
		got := beltPoly(1, 2, 3).Add(beltPoly(4, 5))
		if !polysEqual(got, beltPoly(5, 7, 3)) {
			t.Errorf("add = %v, want [5 7 3]", got)
		}
	})

	t.Run("Commutative", func(t *testing.T) {
		p, q := beltPoly(1, 2), beltPoly(3, 4, 5)
		if !polysEqual(p.Add(q), q.Add(p)) {
			t.Error("addition should commute")
		}
	})

	t.Run("SubSelf", func(t *testing.T) {
		p := beltPoly(9, 8, 7)
		if !p.Sub(p).IsZero() {
			t.Error("p - p should be zero")
		}
	})

	t.Run("NegIsSubFromZero", func(t *testing.T) {
		p := beltPoly(1, 0, P-1)
		if !polysEqual(p.Neg(), ZeroBPoly().Sub(p)) {
			t.Error("neg disagrees with 0 - p")
		}
	})
}

func TestBPolyMul(t *testing.T) {
	t.Run("Binomial", func(t *testing.T) {
		// (1+x)² = 1 + 2x + x²
		got := beltPoly(1, 1).Mul(beltPoly(1, 1))
		if !polysEqual(got, beltPoly(1, 2, 1)) {
			t.Errorf("(1+x)² = %v, want [1 2 1]", got)
		}
	})

	t.Run("DegreeLaw", func(t *testing.T) {
		p, q := beltPoly(1, 2, 3), beltPoly(4, 5)
		if got := len(p.Mul(q)); got != len(p)+len(q)-1 {
			t.Errorf("product length %d, want %d", got, len(p)+len(q)-1)
		}
	})

	t.Run("ZeroOperand", func(t *testing.T) {
		got := beltPoly(1, 2, 3).Mul(beltPoly(0, 0))
		if !polysEqual(got, ZeroBPoly()) {
			t.Errorf("p·0 = %v, want canonical zero [0]", got)
		}
	})

	t.Run("ScaleMatchesConstantMul", func(t *testing.T) {
		p := beltPoly(3, 1, 4)
		if !polysEqual(p.Scale(7), p.Mul(beltPoly(7))) {
			t.Error("scale disagrees with multiplication by a constant")
		}
	})
}

func TestBPolyHadamard(t *testing.T) {
	got, err := beltPoly(1, 2, 3).Hadamard(beltPoly(4, 5, 6))
	if err != nil {
		t.Fatalf("hadamard: %v", err)
	}
	if !polysEqual(got, beltPoly(4, 10, 18)) {
		t.Errorf("hadamard = %v, want [4 10 18]", got)
	}

	if _, err := beltPoly(1, 2).Hadamard(beltPoly(1)); !errors.Is(err, ErrPrecondition) {
		t.Errorf("length mismatch: got %v, want ErrPrecondition", err)
	}
}

func TestBPolyShift(t *testing.T) {
	// p(2x) for p = 1 + x + x²: [1 2 4]
	got := beltPoly(1, 1, 1).Shift(2)
	if !polysEqual(got, beltPoly(1, 2, 4)) {
		t.Errorf("shift = %v, want [1 2 4]", got)
	}
}

// evalBPoly is a naive reference evaluator for transform cross-checks.
func evalBPoly(p BPoly, x Belt) Belt {
	var acc Belt
	power := Belt(1)
	for _, c := range p {
		acc = acc.Add(c.Mul(power))
		power = power.Mul(x)
	}
	return acc
}

func TestBPolyNTT(t *testing.T) {
	t.Run("MatchesDirectEvaluation", func(t *testing.T) {
		p := beltPoly(3, 1, 4, 1, 5, 9, 2, 6)
		root, err := OrderedRoot(8)
		if err != nil {
			t.Fatal(err)
		}
		got, err := p.NTT(root)
		if err != nil {
			t.Fatalf("ntt: %v", err)
		}
		for k := 0; k < 8; k++ {
			want := evalBPoly(p, root.Pow(uint64(k)))
			if got[k] != want {
				t.Errorf("ntt[%d] = %d, want %d", k, got[k], want)
			}
		}
	})

	t.Run("LengthOne", func(t *testing.T) {
		got, err := beltPoly(42).NTT(1)
		if err != nil {
			t.Fatalf("ntt: %v", err)
		}
		if !polysEqual(got, beltPoly(42)) {
			t.Errorf("ntt of singleton = %v, want [42]", got)
		}
	})

	t.Run("NotPowerOfTwo", func(t *testing.T) {
		if _, err := beltPoly(1, 2, 3).NTT(1); !errors.Is(err, ErrPrecondition) {
			t.Errorf("length 3: got %v, want ErrPrecondition", err)
		}
		if _, err := (BPoly{}).NTT(1); !errors.Is(err, ErrPrecondition) {
			t.Errorf("length 0: got %v, want ErrPrecondition", err)
		}
	})
}

func TestBPolyFFTRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 16, 64} {
		p := make(BPoly, n)
		for i := range p {
			p[i] = NewBelt(uint64(i)*2654435761 + 1)
		}
		evals, err := p.FFT()
		if err != nil {
			t.Fatalf("fft(%d): %v", n, err)
		}
		back, err := evals.IFFT()
		if err != nil {
			t.Fatalf("ifft(%d): %v", n, err)
		}
		if !polysEqual(back, p) {
			t.Errorf("ifft(fft(p)) != p for length %d", n)
		}
	}
}

func TestBPolyCoseword(t *testing.T) {
	t.Run("MatchesDirectEvaluation", func(t *testing.T) {
		p := beltPoly(5, 2, 0, 1)
		offset := Belt(7)
		const order = 8
		got, err := p.Coseword(offset, order)
		if err != nil {
			t.Fatalf("coseword: %v", err)
		}
		root, err := OrderedRoot(order)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < order; i++ {
			want := evalBPoly(p, offset.Mul(root.Pow(uint64(i))))
			if got[i] != want {
				t.Errorf("coseword[%d] = %d, want %d", i, got[i], want)
			}
		}
	})

	t.Run("FoldsHighDegrees", func(t *testing.T) {
		// Degree ≥ order still evaluates correctly on the domain.
		p := beltPoly(1, 0, 0, 0, 0, 3) // 1 + 3x⁵, order 4
		const order = 4
		got, err := p.Coseword(1, order)
		if err != nil {
			t.Fatalf("coseword: %v", err)
		}
		root, err := OrderedRoot(order)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < order; i++ {
			want := evalBPoly(p, root.Pow(uint64(i)))
			if got[i] != want {
				t.Errorf("coseword[%d] = %d, want %d", i, got[i], want)
			}
		}
	})

	t.Run("BadOrder", func(t *testing.T) {
		if _, err := beltPoly(1).Coseword(1, 3); !errors.Is(err, ErrPrecondition) {
			t.Errorf("order 3: got %v, want ErrPrecondition", err)
		}
	})
}
