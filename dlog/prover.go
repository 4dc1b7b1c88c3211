package dlog

import (
	"crypto/sha512"
	"math/big"

	"github.com/snormore/zkauth"
)

// Prover implements zkauth.Prover over a fixed discrete-logarithm Config.
type Prover struct {
	cfg *Config
}

// NewProver returns a Prover bound to cfg.
func NewProver(cfg *Config) *Prover {
	return &Prover{cfg: cfg}
}

// GenerateRegistrationX draws a fresh uniform registration secret.
func (p *Prover) GenerateRegistrationX() zkauth.Scalar {
	return zkauth.ScalarFromBigInt(generateRandomScalar())
}

// ComputeRegistrationX derives x = SHA-512(password) interpreted as a
// big-endian integer, so registering twice with the same password
// deterministically reproduces the same x.
func (p *Prover) ComputeRegistrationX(password string) zkauth.Scalar {
	sum := sha512.Sum512([]byte(password))
	x := new(big.Int).SetBytes(sum[:])
	return zkauth.ScalarFromBigInt(x)
}

// ComputeRegistrationY1Y2 computes y1 = g^x mod p, y2 = h^x mod p.
func (p *Prover) ComputeRegistrationY1Y2(x zkauth.Scalar) (zkauth.Element, zkauth.Element, error) {
	xv := x.BigInt()
	y1 := new(big.Int).Exp(p.cfg.G, xv, p.cfg.P)
	y2 := new(big.Int).Exp(p.cfg.H, xv, p.cfg.P)
	return zkauth.ElementFromBigInt(y1), zkauth.ElementFromBigInt(y2), nil
}

// GenerateChallengeK draws a fresh uniform commitment secret.
func (p *Prover) GenerateChallengeK() zkauth.Scalar {
	return zkauth.ScalarFromBigInt(generateRandomScalar())
}

// ComputeChallengeCommitmentR1R2 computes r1 = g^k mod p, r2 = h^k mod p.
func (p *Prover) ComputeChallengeCommitmentR1R2(k zkauth.Scalar) (zkauth.Element, zkauth.Element, error) {
	kv := k.BigInt()
	r1 := new(big.Int).Exp(p.cfg.G, kv, p.cfg.P)
	r2 := new(big.Int).Exp(p.cfg.H, kv, p.cfg.P)
	return zkauth.ElementFromBigInt(r1), zkauth.ElementFromBigInt(r2), nil
}

// ComputeChallengeResponseS computes s = (k - c*x) mod q, folded into
// [0, q) since Go's big.Int.Rem can return a negative remainder (it mirrors
// truncating division, like the original implementation's modulo operator).
func (p *Prover) ComputeChallengeResponseS(x, k, c zkauth.Scalar) (zkauth.Scalar, error) {
	xv, kv, cv := x.BigInt(), k.BigInt(), c.BigInt()
	s := new(big.Int).Sub(kv, new(big.Int).Mul(cv, xv))
	s.Rem(s, p.cfg.Q)
	if s.Sign() < 0 {
		s.Add(s, p.cfg.Q)
	}
	return zkauth.ScalarFromBigInt(s), nil
}
