// Package zkauth implements the core of a Chaum-Pedersen zero-knowledge
// password authentication protocol: an algebraic group abstraction shared by
// two interchangeable backends, the Prover/Verifier role interfaces, and the
// wire-level Configuration union. The concrete backends live in the dlog and
// eccurve subpackages; the verifier state machine lives in service.
package zkauth

import (
	"fmt"
	"math/big"
)

// ConversionError indicates that a wire envelope value could not be
// converted into a flavor's native group representation - a byte payload
// that doesn't round-trip through the group's canonical decoder.
type ConversionError struct {
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("zkauth: conversion error: %s", e.Reason)
}

// Element is an opaque group element, carried internally and on the wire as
// a canonical base-10 integer string. Flavors convert it to their native
// representation at the group boundary.
type Element struct {
	v *big.Int
}

// Scalar is an opaque group scalar with the same wire contract as Element.
type Scalar struct {
	v *big.Int
}

// ElementFromBigInt wraps a copy of v as an Element envelope; later changes
// to v do not affect it.
func ElementFromBigInt(v *big.Int) Element {
	return Element{v: new(big.Int).Set(v)}
}

// ScalarFromBigInt wraps a copy of v as a Scalar envelope; later changes to
// v do not affect it.
func ScalarFromBigInt(v *big.Int) Scalar {
	return Scalar{v: new(big.Int).Set(v)}
}

// ParseElement parses a canonical base-10 ASCII integer string (no leading
// zeros, non-negative) into an Element.
func ParseElement(s string) (Element, error) {
	v, err := parseCanonicalDecimal(s)
	if err != nil {
		return Element{}, err
	}
	return Element{v: v}, nil
}

// ParseScalar parses a canonical base-10 ASCII integer string into a Scalar.
func ParseScalar(s string) (Scalar, error) {
	v, err := parseCanonicalDecimal(s)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{v: v}, nil
}

func parseCanonicalDecimal(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("zkauth: empty value")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("zkauth: %q is not a base-10 integer", s)
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return nil, fmt.Errorf("zkauth: %q has a leading zero", s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("zkauth: %q is not a valid integer", s)
	}
	return v, nil
}

// BigInt returns a copy of the envelope's underlying integer.
func (e Element) BigInt() *big.Int {
	if e.v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(e.v)
}

// BigInt returns a copy of the envelope's underlying integer.
func (s Scalar) BigInt() *big.Int {
	if s.v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(s.v)
}

// String renders the canonical base-10 decimal representation.
func (e Element) String() string {
	if e.v == nil {
		return "0"
	}
	return e.v.String()
}

// String renders the canonical base-10 decimal representation.
func (s Scalar) String() string {
	if s.v == nil {
		return "0"
	}
	return s.v.String()
}

// Equal reports whether two Elements carry the same integer value.
func (e Element) Equal(o Element) bool {
	return e.BigInt().Cmp(o.BigInt()) == 0
}

// Equal reports whether two Scalars carry the same integer value.
func (s Scalar) Equal(o Scalar) bool {
	return s.BigInt().Cmp(o.BigInt()) == 0
}

// IsZero reports whether the Element carries the integer zero (including
// the unparsed zero Element{}).
func (e Element) IsZero() bool {
	return e.v == nil || e.v.Sign() == 0
}
