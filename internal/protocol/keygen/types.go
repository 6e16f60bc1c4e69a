package keygen

import (
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

// KeyPair is a private scalar d in [1, n-1] and its public point Q = d·G.
type KeyPair struct {
	PrivateKey *big.Int
	PublicKey  curves.Point
}

// String never prints the private key.
func (kp *KeyPair) String() string {
	return "KeyPair{PublicKey: " + kp.PublicKey.String() + "}"
}
