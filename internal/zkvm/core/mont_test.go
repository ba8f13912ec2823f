package core

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

func TestMontgomeryConstants(t *testing.T) {
	// R mod P = 2^64 mod P: check via 2^32·2^32 reduced by the generic path.
	twoTo32 := Belt(1 << 32)
	if got := twoTo32.Mul(twoTo32); got != Belt(RModP) {
		t.Errorf("2^64 mod P = %d, want %#x", got, RModP)
	}
	// R² mod P likewise.
	if got := Belt(RModP).Mul(Belt(RModP)); got != Belt(R2ModP) {
		t.Errorf("R² mod P = %d, want %#x", got, R2ModP)
	}
}

func TestMontifyRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Multiplying an encoded value by 1 strips one factor of R.
	properties.Property("Montiply(Montify(x), 1) == x", prop.ForAll(
		func(x Belt) bool {
			return Montiply(Montify(x), 1) == x
		},
		genBelt(),
	))

	// Montgomery product agrees with the plain product after decoding.
	properties.Property("Montiply(Montify(a), Montify(b)) == Montify(a·b)", prop.ForAll(
		func(a, b Belt) bool {
			return Montiply(Montify(a), Montify(b)) == Montify(a.Mul(b))
		},
		genBelt(), genBelt(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMontReduceEdges(t *testing.T) {
	// 0 stays 0 in and out of the domain.
	if got := Montify(0); got != 0 {
		t.Errorf("Montify(0) = %d, want 0", got)
	}
	// Montify(1) = R mod P.
	if got := Montify(1); got != Belt(RModP) {
		t.Errorf("Montify(1) = %d, want %#x", got, RModP)
	}
	// MontReduce(0, x) decodes x·R⁻¹; feeding R mod P back gives 1.
	if got := MontReduce(0, RModP); got != 1 {
		t.Errorf("MontReduce(0, R mod P) = %d, want 1", got)
	}
	// Largest canonical operands exercise the 65-bit carry path.
	m := Belt(P - 1)
	if got := Montiply(Montify(m), Montify(m)); got != Montify(1) {
		t.Errorf("encoded (P-1)² = %d, want encoded 1", got)
	}
}
