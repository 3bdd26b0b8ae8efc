package words

import (
	"crypto/rand"
	"math/big"
)

// Rand is the random source used to pick secrets.
// *math/rand/v2.Rand satisfies it; tests pass seeded or scripted sources.
type Rand interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// CryptoRand draws from crypto/rand. It is the production default.
type CryptoRand struct{}

// IntN implements Rand.
func (CryptoRand) IntN(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic("words: crypto/rand: " + err.Error())
	}
	return int(nBig.Int64())
}
