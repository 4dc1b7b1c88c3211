package eccurve

import (
	"math/big"
	"testing"

	"github.com/snormore/zkauth"
)

func mustConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return cfg
}

func TestComputeRegistrationXIsDeterministic(t *testing.T) {
	p := NewProver(mustConfig(t))
	a := p.ComputeRegistrationX("hunter2")
	b := p.ComputeRegistrationX("hunter2")
	if !a.Equal(b) {
		t.Fatalf("ComputeRegistrationX is not deterministic: %v != %v", a, b)
	}
	c := p.ComputeRegistrationX("different")
	if a.Equal(c) {
		t.Fatal("ComputeRegistrationX produced the same x for different passwords")
	}
}

func TestGenerateRegistrationXIsRandom(t *testing.T) {
	p := NewProver(mustConfig(t))
	a := p.GenerateRegistrationX()
	b := p.GenerateRegistrationX()
	if a.Equal(b) {
		t.Fatal("GenerateRegistrationX produced identical scalars twice in a row")
	}
}

func TestHonestVerificationSucceeds(t *testing.T) {
	cfg := mustConfig(t)
	prover := NewProver(cfg)
	verifier := NewVerifier(cfg)

	x := prover.ComputeRegistrationX("correct horse battery staple")
	y1, y2, err := prover.ComputeRegistrationY1Y2(x)
	if err != nil {
		t.Fatal(err)
	}

	k := prover.GenerateChallengeK()
	r1, r2, err := prover.ComputeChallengeCommitmentR1R2(k)
	if err != nil {
		t.Fatal(err)
	}

	c := verifier.GenerateChallengeC()
	s, err := prover.ComputeChallengeResponseS(x, k, c)
	if err != nil {
		t.Fatal(err)
	}

	r1p, r2p, err := verifier.ComputeVerificationR1R2(y1, y2, c, s)
	if err != nil {
		t.Fatal(err)
	}
	if !r1.Equal(r1p) {
		t.Fatalf("r1 mismatch: %v != %v", r1, r1p)
	}
	if !r2.Equal(r2p) {
		t.Fatalf("r2 mismatch: %v != %v", r2, r2p)
	}
}

func TestPerturbedRegistrationFailsVerification(t *testing.T) {
	cfg := mustConfig(t)
	prover := NewProver(cfg)
	verifier := NewVerifier(cfg)

	x := prover.ComputeRegistrationX("correct horse battery staple")
	y1, y2, err := prover.ComputeRegistrationY1Y2(x)
	if err != nil {
		t.Fatal(err)
	}
	otherX := prover.ComputeRegistrationX("wrong password")
	perturbedY1, _, err := prover.ComputeRegistrationY1Y2(otherX)
	if err != nil {
		t.Fatal(err)
	}

	k := prover.GenerateChallengeK()
	r1, r2, err := prover.ComputeChallengeCommitmentR1R2(k)
	if err != nil {
		t.Fatal(err)
	}
	c := verifier.GenerateChallengeC()
	s, err := prover.ComputeChallengeResponseS(x, k, c)
	if err != nil {
		t.Fatal(err)
	}

	r1p, r2p, err := verifier.ComputeVerificationR1R2(perturbedY1, y2, c, s)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Equal(r1p) && r2.Equal(r2p) {
		t.Fatal("verification succeeded against a perturbed y1, expected mismatch")
	}
}

func TestConfigurationRoundTrip(t *testing.T) {
	cfg := mustConfig(t)
	wire := cfg.ToConfiguration()
	if wire.Flavor != zkauth.FlavorEllipticCurve {
		t.Fatalf("expected elliptic-curve flavor, got %d", wire.Flavor)
	}
	round, err := FromConfiguration(wire)
	if err != nil {
		t.Fatal(err)
	}
	if round.G.Equal(cfg.G) != 1 || round.H.Equal(cfg.H) != 1 {
		t.Fatal("round-tripped config points differ from original")
	}
}

func TestFromConfigurationRejectsWrongFlavor(t *testing.T) {
	wire := zkauth.Configuration{
		Flavor:            zkauth.FlavorDiscreteLogarithm,
		DiscreteLogarithm: &zkauth.DiscreteLogarithmParams{},
	}
	if _, err := FromConfiguration(wire); err == nil {
		t.Fatal("expected error converting a discrete-logarithm configuration")
	}
}

func TestEnvelopeToElementRejectsOversizedValue(t *testing.T) {
	// 2^264, which needs 34 bytes and so can never fit in a 32-byte
	// canonical Ristretto255 element encoding.
	v := new(big.Int).Lsh(big.NewInt(1), 264)
	huge := zkauth.ElementFromBigInt(v)
	if _, err := envelopeToElement(huge); err == nil {
		t.Fatal("expected a conversion error for an oversized element")
	}
}
