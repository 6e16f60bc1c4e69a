//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var cp = ecc.InitCurveParameters()

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECC WASM Initialized")

	js.Global().Set("GoECC", map[string]interface{}{
		"GenerateKeyPair": js.FuncOf(GenerateKeyPair),
		"SharedSecret":    js.FuncOf(SharedSecret),
	})

	<-c
}

// keyPairDTO carries big integers as hex strings so JS does not lose
// precision.
type keyPairDTO struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

// GenerateKeyPair returns a JSON key pair with a compressed SEC 1 public key.
func GenerateKeyPair(this js.Value, args []js.Value) interface{} {
	kp, err := ecc.GenerateKeyPair(cp, nil)
	if err != nil {
		return fmt.Sprintf("error: keygen failed: %v", err)
	}

	b, err := json.Marshal(keyPairDTO{
		PrivateKey: kp.PrivateKey.Text(16),
		PublicKey:  hex.EncodeToString(ecc.MarshalPoint(kp.PublicKey, true, cp)),
	})
	if err != nil {
		return fmt.Sprintf("error: marshal failed: %v", err)
	}
	return string(b)
}

// SharedSecret derives the hex SHA-256 shared key.
// Arguments:
// 0: private key (hex)
// 1: peer public key (hex SEC 1)
func SharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (privateKey, peerPublicKey)"
	}

	d, ok := new(big.Int).SetString(args[0].String(), 16)
	if !ok {
		return "error: invalid private key"
	}
	raw, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex public key: %v", err)
	}
	peer, err := ecc.UnmarshalPoint(raw, cp)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	secret, err := ecc.ComputeSharedSecret(d, peer, cp)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	key, err := ecc.SharedKey(secret, cp)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return hex.EncodeToString(key[:])
}
