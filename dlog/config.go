// Package dlog implements the discrete-logarithm flavor of the
// Chaum-Pedersen protocol over a safe-prime multiplicative subgroup of
// (Z/pZ)*, the way Tomsons-go-srp builds its mod-p arithmetic on math/big.
package dlog

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/snormore/zkauth"
)

// Config carries the public group parameters: modulus p, subgroup order
// q = (p-1)/2, and two distinct generators g, h of the order-q subgroup.
type Config struct {
	P, Q, G, H *big.Int
}

var one = big.NewInt(1)

// Generate samples a fresh safe prime of the given bit length and derives
// a full Config from it. primeBits must be at least 3 (the smallest safe
// prime, 5 = 2*2+1, needs a 2-bit q).
func Generate(primeBits int) (*Config, error) {
	p, err := generateSafePrime(primeBits)
	if err != nil {
		return nil, fmt.Errorf("dlog: generate safe prime: %w", err)
	}
	return GenerateFromPrime(p)
}

// GenerateFromPrime derives a Config from a caller-supplied safe prime p
// (p prime, q = (p-1)/2 also prime). It does not re-validate primality of
// p; callers that need that guarantee should use Generate.
func GenerateFromPrime(p *big.Int) (*Config, error) {
	q := new(big.Int).Rsh(new(big.Int).Sub(p, one), 1)

	g, err := generateGenerator(p, q)
	if err != nil {
		return nil, fmt.Errorf("dlog: generate g: %w", err)
	}
	var h *big.Int
	for {
		h, err = generateGenerator(p, q)
		if err != nil {
			return nil, fmt.Errorf("dlog: generate h: %w", err)
		}
		if h.Cmp(g) != 0 {
			break
		}
	}

	if g.Cmp(h) > 0 {
		g, h = h, g
	}

	return &Config{P: p, Q: q, G: g, H: h}, nil
}

// generateSafePrime draws a random bits-length safe prime p = 2q+1 by
// repeatedly sampling a (bits-1)-bit prime q via crypto/rand and checking
// 2q+1 for primality. crypto/rand's Miller-Rabin-based prime sampler is
// documented to occasionally panic on pathological internal states for
// very small bit sizes; trySafePrime recovers from that and simply retries,
// the way the original implementation's safe-prime generator is retried on
// failure rather than treated as a hard error.
func generateSafePrime(bits int) (*big.Int, error) {
	if bits < 3 {
		return nil, fmt.Errorf("dlog: prime_bits must be >= 3, got %d", bits)
	}
	for {
		p, err := trySafePrime(bits)
		if err == nil {
			return p, nil
		}
	}
}

func trySafePrime(bits int) (p *big.Int, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("dlog: safe prime sampler panicked: %v", r)
		}
	}()

	q, err := rand.Prime(rand.Reader, bits-1)
	if err != nil {
		return nil, err
	}
	candidate := new(big.Int).Add(new(big.Int).Lsh(q, 1), one)
	if candidate.BitLen() != bits {
		return nil, fmt.Errorf("dlog: candidate has wrong bit length")
	}
	if !candidate.ProbablyPrime(20) {
		return nil, fmt.Errorf("dlog: candidate is not prime")
	}
	return candidate, nil
}

// generateGenerator rejection-samples a random element of (Z/pZ)* until it
// finds one of order exactly q, i.e. x^q ≡ 1 (mod p) for x != 1.
func generateGenerator(p, q *big.Int) (*big.Int, error) {
	pMinusOne := new(big.Int).Sub(p, one)
	for {
		x, err := rand.Int(rand.Reader, pMinusOne)
		if err != nil {
			return nil, err
		}
		x.Add(x, one) // x in [1, p-1]
		if x.Cmp(one) == 0 {
			continue
		}
		if new(big.Int).Exp(x, q, p).Cmp(one) == 0 {
			return x, nil
		}
	}
}

// ToConfiguration renders cfg as a flavor-tagged wire Configuration.
func (c *Config) ToConfiguration() zkauth.Configuration {
	return zkauth.Configuration{
		Flavor: zkauth.FlavorDiscreteLogarithm,
		DiscreteLogarithm: &zkauth.DiscreteLogarithmParams{
			P: zkauth.ElementFromBigInt(c.P),
			Q: zkauth.ElementFromBigInt(c.Q),
			G: zkauth.ElementFromBigInt(c.G),
			H: zkauth.ElementFromBigInt(c.H),
		},
	}
}

// FromConfiguration extracts a dlog Config from a wire Configuration,
// failing if it is not tagged as the discrete-logarithm flavor.
func FromConfiguration(cfg zkauth.Configuration) (*Config, error) {
	if cfg.Flavor != zkauth.FlavorDiscreteLogarithm || cfg.DiscreteLogarithm == nil {
		return nil, fmt.Errorf("dlog: configuration is not a discrete-logarithm configuration")
	}
	params := cfg.DiscreteLogarithm
	return &Config{
		P: params.P.BigInt(),
		Q: params.Q.BigInt(),
		G: params.G.BigInt(),
		H: params.H.BigInt(),
	}, nil
}
