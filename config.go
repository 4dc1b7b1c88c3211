package zkauth

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flavor selects which algebraic group backend a Configuration describes.
type Flavor int

const (
	FlavorDiscreteLogarithm Flavor = iota
	FlavorEllipticCurve
)

// DiscreteLogarithmParams carries the public parameters of a safe-prime
// multiplicative-subgroup group: modulus p, subgroup order q, and two
// distinct order-q generators g, h.
type DiscreteLogarithmParams struct {
	P, Q, G, H Element
}

// EllipticCurveParams carries the public parameters of the Ristretto255
// group backend: two distinct non-identity base points g, h.
type EllipticCurveParams struct {
	G, H Element
}

// Configuration is the discriminated union persisted to and loaded from a
// configuration file, and returned by the GetConfiguration RPC.
type Configuration struct {
	Flavor             Flavor
	DiscreteLogarithm  *DiscreteLogarithmParams
	EllipticCurve      *EllipticCurveParams
}

type dlogWire struct {
	P string `json:"p"`
	Q string `json:"q"`
	G string `json:"g"`
	H string `json:"h"`
}

type eccurveWire struct {
	G string `json:"g"`
	H string `json:"h"`
}

type configurationWire struct {
	DiscreteLogarithm *dlogWire    `json:"discreteLogarithm,omitempty"`
	EllipticCurve     *eccurveWire `json:"ellipticCurve,omitempty"`
}

// MarshalJSON renders the oneof-style wire schema: exactly one of
// "discreteLogarithm" or "ellipticCurve" is present, each with lowercase
// single-letter field names holding canonical decimal integer strings.
func (c Configuration) MarshalJSON() ([]byte, error) {
	var wire configurationWire
	switch c.Flavor {
	case FlavorDiscreteLogarithm:
		if c.DiscreteLogarithm == nil {
			return nil, fmt.Errorf("zkauth: discrete-logarithm configuration missing params")
		}
		p := c.DiscreteLogarithm
		wire.DiscreteLogarithm = &dlogWire{
			P: p.P.String(),
			Q: p.Q.String(),
			G: p.G.String(),
			H: p.H.String(),
		}
	case FlavorEllipticCurve:
		if c.EllipticCurve == nil {
			return nil, fmt.Errorf("zkauth: elliptic-curve configuration missing params")
		}
		p := c.EllipticCurve
		wire.EllipticCurve = &eccurveWire{
			G: p.G.String(),
			H: p.H.String(),
		}
	default:
		return nil, fmt.Errorf("zkauth: unknown configuration flavor %d", c.Flavor)
	}
	return json.Marshal(wire)
}

// UnmarshalJSON parses the oneof-style wire schema, requiring exactly one
// variant to be present.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var wire configurationWire
	if err := dec.Decode(&wire); err != nil {
		return fmt.Errorf("zkauth: invalid configuration: %w", err)
	}

	switch {
	case wire.DiscreteLogarithm != nil && wire.EllipticCurve != nil:
		return fmt.Errorf("zkauth: configuration must set exactly one flavor, got both")
	case wire.DiscreteLogarithm != nil:
		d := wire.DiscreteLogarithm
		p, err := ParseElement(d.P)
		if err != nil {
			return fmt.Errorf("zkauth: invalid configuration.p: %w", err)
		}
		q, err := ParseElement(d.Q)
		if err != nil {
			return fmt.Errorf("zkauth: invalid configuration.q: %w", err)
		}
		g, err := ParseElement(d.G)
		if err != nil {
			return fmt.Errorf("zkauth: invalid configuration.g: %w", err)
		}
		h, err := ParseElement(d.H)
		if err != nil {
			return fmt.Errorf("zkauth: invalid configuration.h: %w", err)
		}
		c.Flavor = FlavorDiscreteLogarithm
		c.DiscreteLogarithm = &DiscreteLogarithmParams{P: p, Q: q, G: g, H: h}
		c.EllipticCurve = nil
	case wire.EllipticCurve != nil:
		e := wire.EllipticCurve
		g, err := ParseElement(e.G)
		if err != nil {
			return fmt.Errorf("zkauth: invalid configuration.g: %w", err)
		}
		h, err := ParseElement(e.H)
		if err != nil {
			return fmt.Errorf("zkauth: invalid configuration.h: %w", err)
		}
		c.Flavor = FlavorEllipticCurve
		c.EllipticCurve = &EllipticCurveParams{G: g, H: h}
		c.DiscreteLogarithm = nil
	default:
		return fmt.Errorf("zkauth: configuration must set exactly one flavor, got none")
	}
	return nil
}
