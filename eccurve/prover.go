package eccurve

import (
	"crypto/sha512"
	"fmt"

	ristretto "github.com/gtank/ristretto255"

	"github.com/snormore/zkauth"
)

// Prover implements zkauth.Prover over a fixed elliptic-curve Config.
type Prover struct {
	cfg *Config
}

// NewProver returns a Prover bound to cfg.
func NewProver(cfg *Config) *Prover {
	return &Prover{cfg: cfg}
}

// GenerateRegistrationX draws a fresh uniform registration secret.
func (p *Prover) GenerateRegistrationX() zkauth.Scalar {
	s, err := randomScalar()
	if err != nil {
		panic(fmt.Sprintf("eccurve: failed to read randomness: %v", err))
	}
	return scalarToEnvelope(s)
}

// ComputeRegistrationX derives x from SHA-512(password), reducing the
// first 32 bytes of the digest modulo the Ristretto255 scalar order the
// same way randomScalar reduces 64 bytes of entropy: the low 32 bytes hold
// the hash, the high 32 bytes are zero, and FromUniformBytes folds the
// result onto a uniform scalar in range.
func (p *Prover) ComputeRegistrationX(password string) zkauth.Scalar {
	sum := sha512.Sum512([]byte(password))
	wide := make([]byte, 64)
	copy(wide[:32], sum[:32])
	x := new(ristretto.Scalar).FromUniformBytes(wide)
	return scalarToEnvelope(x)
}

// ComputeRegistrationY1Y2 computes y1 = x*g, y2 = x*h.
func (p *Prover) ComputeRegistrationY1Y2(x zkauth.Scalar) (zkauth.Element, zkauth.Element, error) {
	xs, err := envelopeToScalar(x)
	if err != nil {
		return zkauth.Element{}, zkauth.Element{}, err
	}
	y1 := new(ristretto.Element).ScalarMult(xs, p.cfg.G)
	y2 := new(ristretto.Element).ScalarMult(xs, p.cfg.H)
	return elementToEnvelope(y1), elementToEnvelope(y2), nil
}

// GenerateChallengeK draws a fresh uniform commitment secret.
func (p *Prover) GenerateChallengeK() zkauth.Scalar {
	s, err := randomScalar()
	if err != nil {
		panic(fmt.Sprintf("eccurve: failed to read randomness: %v", err))
	}
	return scalarToEnvelope(s)
}

// ComputeChallengeCommitmentR1R2 computes r1 = k*g, r2 = k*h.
func (p *Prover) ComputeChallengeCommitmentR1R2(k zkauth.Scalar) (zkauth.Element, zkauth.Element, error) {
	ks, err := envelopeToScalar(k)
	if err != nil {
		return zkauth.Element{}, zkauth.Element{}, err
	}
	r1 := new(ristretto.Element).ScalarMult(ks, p.cfg.G)
	r2 := new(ristretto.Element).ScalarMult(ks, p.cfg.H)
	return elementToEnvelope(r1), elementToEnvelope(r2), nil
}

// ComputeChallengeResponseS computes s = k + c*x, additive unlike dlog's
// subtractive convention, matching the sign convention of the curve
// backend's original formulas.
func (p *Prover) ComputeChallengeResponseS(x, k, c zkauth.Scalar) (zkauth.Scalar, error) {
	xs, err := envelopeToScalar(x)
	if err != nil {
		return zkauth.Scalar{}, err
	}
	ks, err := envelopeToScalar(k)
	if err != nil {
		return zkauth.Scalar{}, err
	}
	cs, err := envelopeToScalar(c)
	if err != nil {
		return zkauth.Scalar{}, err
	}
	cx := new(ristretto.Scalar).Multiply(cs, xs)
	s := new(ristretto.Scalar).Add(ks, cx)
	return scalarToEnvelope(s), nil
}
