package core

import (
	"errors"
	"testing"
)

func TestPermuteDeterministic(t *testing.T) {
	var a, b [StateSize]uint64
	for i := range a {
		a[i] = uint64(i)
		b[i] = uint64(i)
	}
	Permute(&a)
	Permute(&b)
	if a != b {
		t.Error("permutation is not deterministic")
	}

	var zero [StateSize]uint64
	Permute(&zero)
	var allZero [StateSize]uint64
	if zero == allZero {
		t.Error("permuting the zero state should move it")
	}
}

func TestPermuteLaneSensitivity(t *testing.T) {
	var a, b [StateSize]uint64
	b[15] = 1
	Permute(&a)
	Permute(&b)
	if a == b {
		t.Error("states differing in one lane should permute apart")
	}
}

func TestHashVarlen(t *testing.T) {
	t.Run("DigestShape", func(t *testing.T) {
		digest, err := HashVarlen([]Belt{1, 2, 3})
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		for i, d := range digest {
			if !Based(uint64(d)) {
				t.Errorf("digest lane %d = %d is not canonical", i, d)
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := HashVarlen([]Belt{1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		b, err := HashVarlen([]Belt{1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Error("hash is not deterministic")
		}
	})

	t.Run("InputSensitivity", func(t *testing.T) {
		a, err := HashVarlen([]Belt{1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		b, err := HashVarlen([]Belt{1, 2, 4})
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Error("distinct inputs should hash apart")
		}
	})

	t.Run("PaddingDomainSeparation", func(t *testing.T) {
		// The 10* padding makes [x] and [x 0] distinct inputs.
		a, err := HashVarlen([]Belt{5})
		if err != nil {
			t.Fatal(err)
		}
		b, err := HashVarlen([]Belt{5, 0})
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Error("trailing zero should change the digest")
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		if _, err := HashVarlen(nil); err != nil {
			t.Errorf("empty input should hash, got %v", err)
		}
	})

	t.Run("MultiBlock", func(t *testing.T) {
		// More than one rate block absorbs without error and stays
		// prefix-sensitive.
		long := make([]Belt, 3*Rate+1)
		for i := range long {
			long[i] = NewBelt(uint64(i) + 1)
		}
		a, err := HashVarlen(long)
		if err != nil {
			t.Fatal(err)
		}
		long[0] = long[0].Add(1)
		b, err := HashVarlen(long)
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Error("first-block change should alter a multi-block digest")
		}
	})

	t.Run("NonCanonicalInput", func(t *testing.T) {
		if _, err := HashVarlen([]Belt{Belt(P)}); !errors.Is(err, ErrPrecondition) {
			t.Errorf("got %v, want ErrPrecondition", err)
		}
	})
}
