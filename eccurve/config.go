// Package eccurve implements the elliptic-curve flavor of the
// Chaum-Pedersen protocol over the Ristretto255 group, in the style of
// avahowell-occlude's direct use of github.com/gtank/ristretto255 value
// types.
package eccurve

import (
	"crypto/sha512"
	"fmt"

	ristretto "github.com/gtank/ristretto255"

	"github.com/snormore/zkauth"
)

// hDomainString is hashed to derive a second base point H, independent of
// the group's standard base point B, following the same
// FromUniformBytes-over-a-hash pattern the teacher uses to map arbitrary
// byte strings onto the curve (oprfA's H'(x)).
const hDomainString = "Unique value for H"

// Config carries the public group parameters: two distinct non-identity
// base points g, h, related by a shared discrete log unknown to any party
// that only sees this Config.
type Config struct {
	G, H *ristretto.Element
}

// Generate samples a fresh Config: a uniform secret scalar sigma, then
// g := sigma*B (B the group's standard base point) and h := sigma*H,
// where H is a fixed point derived by hashing a domain-separation string.
func Generate() (*Config, error) {
	sigma, err := randomScalar()
	if err != nil {
		return nil, fmt.Errorf("eccurve: draw sigma: %w", err)
	}

	g := new(ristretto.Element).ScalarBaseMult(sigma)

	hSeed := sha512.Sum512([]byte(hDomainString))
	hBase := new(ristretto.Element).FromUniformBytes(hSeed[:])
	h := new(ristretto.Element).ScalarMult(sigma, hBase)

	return &Config{G: g, H: h}, nil
}

// ToConfiguration renders cfg as a flavor-tagged wire Configuration.
func (c *Config) ToConfiguration() zkauth.Configuration {
	return zkauth.Configuration{
		Flavor: zkauth.FlavorEllipticCurve,
		EllipticCurve: &zkauth.EllipticCurveParams{
			G: elementToEnvelope(c.G),
			H: elementToEnvelope(c.H),
		},
	}
}

// FromConfiguration extracts an eccurve Config from a wire Configuration,
// failing if it is not tagged as the elliptic-curve flavor or if either
// point fails to decode as a canonical Ristretto255 element.
func FromConfiguration(cfg zkauth.Configuration) (*Config, error) {
	if cfg.Flavor != zkauth.FlavorEllipticCurve || cfg.EllipticCurve == nil {
		return nil, fmt.Errorf("eccurve: configuration is not an elliptic-curve configuration")
	}
	g, err := envelopeToElement(cfg.EllipticCurve.G)
	if err != nil {
		return nil, fmt.Errorf("eccurve: decode g: %w", err)
	}
	h, err := envelopeToElement(cfg.EllipticCurve.H)
	if err != nil {
		return nil, fmt.Errorf("eccurve: decode h: %w", err)
	}
	return &Config{G: g, H: h}, nil
}
