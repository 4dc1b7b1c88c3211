package dlog

import "math/big"

// defaultTestConfig mirrors the original implementation's fixed small-prime
// test fixture: p = 23 (safe prime, q = 11), g = 4, h = 6, both of order 11
// in (Z/23Z)*. It lets property tests run many iterations without paying
// safe-prime generation cost each time.
func defaultTestConfig() *Config {
	return &Config{
		P: big.NewInt(23),
		Q: big.NewInt(11),
		G: big.NewInt(4),
		H: big.NewInt(6),
	}
}
