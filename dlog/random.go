package dlog

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateRandomScalar draws 32 uniform random bits from crypto/rand,
// interpreted as a big-endian non-negative integer. Scalars (x, k, c) are
// reduced against q by the caller where the protocol requires it.
func generateRandomScalar() *big.Int {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("dlog: failed to read random bytes: %v", err))
	}
	return new(big.Int).SetBytes(b)
}
