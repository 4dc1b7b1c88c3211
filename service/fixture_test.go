package service

import "math/big"

// Fixed small safe-prime group (p=23, q=11, g=4, h=6) used across service
// tests, mirroring the fast fixture in the dlog package's own tests.
func big23() *big.Int { return big.NewInt(23) }
func big11() *big.Int { return big.NewInt(11) }
func big4() *big.Int  { return big.NewInt(4) }
func big6() *big.Int  { return big.NewInt(6) }
