package eccurve

import (
	"fmt"

	ristretto "github.com/gtank/ristretto255"

	"github.com/snormore/zkauth"
)

// Verifier implements zkauth.Verifier over a fixed elliptic-curve Config.
type Verifier struct {
	cfg *Config
}

// NewVerifier returns a Verifier bound to cfg.
func NewVerifier(cfg *Config) *Verifier {
	return &Verifier{cfg: cfg}
}

// GenerateChallengeC draws a fresh uniform challenge.
func (v *Verifier) GenerateChallengeC() zkauth.Scalar {
	s, err := randomScalar()
	if err != nil {
		panic(fmt.Sprintf("eccurve: failed to read randomness: %v", err))
	}
	return scalarToEnvelope(s)
}

// ComputeVerificationR1R2 recomputes r1' = s*g - c*y1, r2' = s*h - c*y2.
func (v *Verifier) ComputeVerificationR1R2(y1, y2 zkauth.Element, c, s zkauth.Scalar) (zkauth.Element, zkauth.Element, error) {
	y1e, err := envelopeToElement(y1)
	if err != nil {
		return zkauth.Element{}, zkauth.Element{}, err
	}
	y2e, err := envelopeToElement(y2)
	if err != nil {
		return zkauth.Element{}, zkauth.Element{}, err
	}
	cs, err := envelopeToScalar(c)
	if err != nil {
		return zkauth.Element{}, zkauth.Element{}, err
	}
	ss, err := envelopeToScalar(s)
	if err != nil {
		return zkauth.Element{}, zkauth.Element{}, err
	}

	sg := new(ristretto.Element).ScalarMult(ss, v.cfg.G)
	cy1 := new(ristretto.Element).ScalarMult(cs, y1e)
	r1 := new(ristretto.Element).Subtract(sg, cy1)

	sh := new(ristretto.Element).ScalarMult(ss, v.cfg.H)
	cy2 := new(ristretto.Element).ScalarMult(cs, y2e)
	r2 := new(ristretto.Element).Subtract(sh, cy2)

	return elementToEnvelope(r1), elementToEnvelope(r2), nil
}
