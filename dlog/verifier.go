package dlog

import (
	"math/big"

	"github.com/snormore/zkauth"
)

// Verifier implements zkauth.Verifier over a fixed discrete-logarithm
// Config.
type Verifier struct {
	cfg *Config
}

// NewVerifier returns a Verifier bound to cfg.
func NewVerifier(cfg *Config) *Verifier {
	return &Verifier{cfg: cfg}
}

// GenerateChallengeC draws a fresh uniform challenge.
func (v *Verifier) GenerateChallengeC() zkauth.Scalar {
	return zkauth.ScalarFromBigInt(generateRandomScalar())
}

// ComputeVerificationR1R2 recomputes r1' = g^s * y1^c mod p,
// r2' = h^s * y2^c mod p.
func (v *Verifier) ComputeVerificationR1R2(y1, y2 zkauth.Element, c, s zkauth.Scalar) (zkauth.Element, zkauth.Element, error) {
	y1v, y2v, cv, sv := y1.BigInt(), y2.BigInt(), c.BigInt(), s.BigInt()

	gs := new(big.Int).Exp(v.cfg.G, sv, v.cfg.P)
	y1c := new(big.Int).Exp(y1v, cv, v.cfg.P)
	r1 := new(big.Int).Mod(new(big.Int).Mul(gs, y1c), v.cfg.P)

	hs := new(big.Int).Exp(v.cfg.H, sv, v.cfg.P)
	y2c := new(big.Int).Exp(y2v, cv, v.cfg.P)
	r2 := new(big.Int).Mod(new(big.Int).Mul(hs, y2c), v.cfg.P)

	return zkauth.ElementFromBigInt(r1), zkauth.ElementFromBigInt(r2), nil
}
