package contest

import (
	"crypto/cipher"
	"io"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

var two = big.NewInt(2)

// CoinFlip picks one of the two competitors uniformly at random.
// It is not safe for concurrent use.
type CoinFlip struct {
	stream cipher.Stream
}

// NewCoinFlip creates a CoinFlip drawing randomness from the given readers,
// or from crypto/rand when none is given.
func NewCoinFlip(readers ...io.Reader) *CoinFlip {
	return &CoinFlip{stream: random.New(readers...)}
}

func (c *CoinFlip) PickWinner(a, b string) string {
	if random.Int(two, c.stream).Sign() == 0 {
		return a
	}
	return b
}
