package eccurve

import (
	"crypto/rand"
	"fmt"
	"math/big"

	ristretto "github.com/gtank/ristretto255"

	"github.com/snormore/zkauth"
)

// elementSize and scalarSize are the canonical encoding lengths used by
// ristretto255: 32 bytes, little-endian.
const (
	elementSize = 32
	scalarSize  = 32
)

// randomScalar draws 64 bytes of OS entropy and reduces them onto a
// uniform scalar, exactly as the teacher's randomScalar does.
func randomScalar() (*ristretto.Scalar, error) {
	b := make([]byte, 64)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return new(ristretto.Scalar).FromUniformBytes(b), nil
}

// scalarToEnvelope converts a native scalar to its wire envelope by
// encoding it to canonical little-endian bytes and reading those back as a
// little-endian integer. This direction never fails.
func scalarToEnvelope(s *ristretto.Scalar) zkauth.Scalar {
	return zkauth.ScalarFromBigInt(bigIntFromLE(s.Encode(nil)))
}

// elementToEnvelope is the Element analogue of scalarToEnvelope.
func elementToEnvelope(e *ristretto.Element) zkauth.Element {
	return zkauth.ElementFromBigInt(bigIntFromLE(e.Encode(nil)))
}

// envelopeToScalar converts a wire envelope back to a native scalar,
// failing with a zkauth.ConversionError if the value doesn't fit in 32
// bytes or doesn't decode as a canonical scalar encoding.
func envelopeToScalar(s zkauth.Scalar) (*ristretto.Scalar, error) {
	le, err := leBytes(s.BigInt(), scalarSize)
	if err != nil {
		return nil, &zkauth.ConversionError{Reason: err.Error()}
	}
	out := new(ristretto.Scalar)
	if err := out.Decode(le); err != nil {
		return nil, &zkauth.ConversionError{Reason: "non-canonical scalar encoding: " + err.Error()}
	}
	return out, nil
}

// envelopeToElement is the Element analogue of envelopeToScalar.
func envelopeToElement(e zkauth.Element) (*ristretto.Element, error) {
	le, err := leBytes(e.BigInt(), elementSize)
	if err != nil {
		return nil, &zkauth.ConversionError{Reason: err.Error()}
	}
	out := new(ristretto.Element)
	if err := out.Decode(le); err != nil {
		return nil, &zkauth.ConversionError{Reason: "non-canonical element encoding: " + err.Error()}
	}
	return out, nil
}

// bigIntFromLE interprets b as a little-endian byte string and returns the
// corresponding non-negative integer.
func bigIntFromLE(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// leBytes renders v as a fixed-size little-endian byte string, failing if
// v doesn't fit in size bytes.
func leBytes(v *big.Int, size int) ([]byte, error) {
	be := v.Bytes()
	if len(be) > size {
		return nil, fmt.Errorf("value does not fit in %d bytes", size)
	}
	le := make([]byte, size)
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le, nil
}
