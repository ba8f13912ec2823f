package core

import (
	"errors"
	"testing"
)

func feltPoly(vs ...uint64) FPoly {
	p := make(FPoly, len(vs))
	for i, v := range vs {
		p[i] = FeltFromBelt(NewBelt(v))
	}
	return p
}

func fpolysEqual(p, q FPoly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

func TestFPolyEval(t *testing.T) {
	// p(x) = 5 + 2x + x³ at x = 3: 5 + 6 + 27 = 38
	p := feltPoly(5, 2, 0, 1)
	got := p.Eval(FeltFromBelt(3))
	if !got.Equal(FeltFromBelt(38)) {
		t.Errorf("p(3) = %v, want 38", got)
	}

	if !(FPoly{}).Eval(FeltFromBelt(3)).IsZero() {
		t.Error("empty polynomial should evaluate to zero")
	}

	// A genuinely extension-valued point.
	x := Felt{1, 1, 0}
	q := FPoly{OneFelt(), OneFelt()} // 1 + x
	if !q.Eval(x).Equal(OneFelt().Add(x)) {
		t.Error("1 + x misevaluated at an extension point")
	}
}

func TestFPolyArithmetic(t *testing.T) {
	t.Run("AddUneven", func(t *testing.T) {
		got := feltPoly(1, 2, 3).Add(feltPoly(4, 5))
		if !fpolysEqual(got, feltPoly(5, 7, 3)) {
			t.Errorf("add = %v, want [5 7 3]", got)
		}
	})

	t.Run("MulBinomial", func(t *testing.T) {
		got := feltPoly(1, 1).Mul(feltPoly(1, 1))
		if !fpolysEqual(got, feltPoly(1, 2, 1)) {
			t.Errorf("(1+x)² = %v, want [1 2 1]", got)
		}
	})

	t.Run("ZeroOperand", func(t *testing.T) {
		got := feltPoly(1, 2).Mul(feltPoly(0))
		if !fpolysEqual(got, ZeroFPoly()) {
			t.Errorf("p·0 = %v, want canonical zero", got)
		}
	})

	t.Run("HadamardMismatch", func(t *testing.T) {
		if _, err := feltPoly(1, 2).Hadamard(feltPoly(1)); !errors.Is(err, ErrPrecondition) {
			t.Errorf("got %v, want ErrPrecondition", err)
		}
	})
}

func TestFPolyFFTRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32} {
		p := make(FPoly, n)
		for i := range p {
			p[i] = Felt{NewBelt(uint64(i) + 1), NewBelt(uint64(i) * 3), NewBelt(uint64(i) * 7)}
		}
		evals, err := p.FFT()
		if err != nil {
			t.Fatalf("fft(%d): %v", n, err)
		}
		back, err := evals.IFFT()
		if err != nil {
			t.Fatalf("ifft(%d): %v", n, err)
		}
		if !fpolysEqual(back, p) {
			t.Errorf("ifft(fft(p)) != p for length %d", n)
		}
	}
}

func TestFPolyFFTMatchesEval(t *testing.T) {
	p := feltPoly(3, 1, 4, 1)
	evals, err := p.FFT()
	if err != nil {
		t.Fatalf("fft: %v", err)
	}
	root, err := OrderedRoot(4)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 4; k++ {
		want := p.Eval(FeltFromBelt(root.Pow(uint64(k))))
		if !evals[k].Equal(want) {
			t.Errorf("fft[%d] = %v, want %v", k, evals[k], want)
		}
	}
}

func TestFPolyFFTBadLength(t *testing.T) {
	if _, err := feltPoly(1, 2, 3).FFT(); !errors.Is(err, ErrPrecondition) {
		t.Errorf("length 3: got %v, want ErrPrecondition", err)
	}
	if _, err := (FPoly{}).IFFT(); !errors.Is(err, ErrPrecondition) {
		t.Errorf("length 0: got %v, want ErrPrecondition", err)
	}
}

func TestInterpolate(t *testing.T) {
	t.Run("HitsSamples", func(t *testing.T) {
		domain := feltPoly(1, 2, 3, 4)
		values := feltPoly(10, 20, 31, 44)
		p, err := Interpolate(domain, values)
		if err != nil {
			t.Fatalf("interpolate: %v", err)
		}
		if len(p) != len(domain) {
			t.Fatalf("result length %d, want %d", len(p), len(domain))
		}
		for i := range domain {
			if got := p.Eval(domain[i]); !got.Equal(values[i]) {
				t.Errorf("p(domain[%d]) = %v, want %v", i, got, values[i])
			}
		}
	})

	t.Run("RecoversKnownPolynomial", func(t *testing.T) {
		// Samples of q(x) = 2 + 3x interpolate back to q padded with zeros.
		q := feltPoly(2, 3)
		domain := feltPoly(5, 9, 11)
		values := make(FPoly, len(domain))
		for i := range domain {
			values[i] = q.Eval(domain[i])
		}
		p, err := Interpolate(domain, values)
		if err != nil {
			t.Fatalf("interpolate: %v", err)
		}
		if !fpolysEqual(p, feltPoly(2, 3, 0)) {
			t.Errorf("interpolated = %v, want [2 3 0]", p)
		}
	})

	t.Run("SinglePoint", func(t *testing.T) {
		p, err := Interpolate(feltPoly(7), feltPoly(13))
		if err != nil {
			t.Fatalf("interpolate: %v", err)
		}
		if !fpolysEqual(p, feltPoly(13)) {
			t.Errorf("constant interpolation = %v, want [13]", p)
		}
	})

	t.Run("DuplicatePoint", func(t *testing.T) {
		_, err := Interpolate(feltPoly(1, 1), feltPoly(2, 3))
		if !errors.Is(err, ErrPrecondition) {
			t.Errorf("got %v, want ErrPrecondition", err)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Interpolate(feltPoly(1, 2), feltPoly(1))
		if !errors.Is(err, ErrPrecondition) {
			t.Errorf("got %v, want ErrPrecondition", err)
		}
	})
}

func TestCompose(t *testing.T) {
	t.Run("IdentityRight", func(t *testing.T) {
		// p(x) composed with q(x) = x gives p back at full length.
		p := feltPoly(4, 0, 2)
		got := p.Compose(feltPoly(0, 1))
		if !fpolysEqual(got, p) {
			t.Errorf("p∘x = %v, want %v", got, p)
		}
	})

	t.Run("MatchesEvaluation", func(t *testing.T) {
		p := feltPoly(1, 2, 3)
		q := feltPoly(5, 7)
		comp := p.Compose(q)
		for _, v := range []uint64{0, 1, 2, 11} {
			x := FeltFromBelt(NewBelt(v))
			want := p.Eval(q.Eval(x))
			if got := comp.Eval(x); !got.Equal(want) {
				t.Errorf("(p∘q)(%d) = %v, want %v", v, got, want)
			}
		}
	})

	t.Run("Truncation", func(t *testing.T) {
		p := feltPoly(1, 2, 3)
		q := feltPoly(5, 7)
		full := p.Compose(q)
		trunc := p.ComposeTo(q, 2)
		if len(trunc) != 2 {
			t.Fatalf("truncated length %d, want 2", len(trunc))
		}
		for i := range trunc {
			if !trunc[i].Equal(full[i]) {
				t.Errorf("truncated[%d] = %v, want %v", i, trunc[i], full[i])
			}
		}
	})

	t.Run("EmptyOperand", func(t *testing.T) {
		if got := (FPoly{}).Compose(feltPoly(1, 2)); len(got) != 0 {
			t.Errorf("empty ∘ q has length %d, want 0", len(got))
		}
	})
}
