package text

import (
	"crypto/subtle"
	"encoding/hex"

	"rcli/internal/crypto"
	"rcli/internal/domain"
)

// blake3Signer signs and verifies with a BLAKE3 keyed hash.
type blake3Signer struct {
	key domain.HashKey
}

func (b blake3Signer) Sign(message []byte) (string, error) {
	sum, err := crypto.KeyedHash(b.key, message)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Verify recomputes the keyed hash and compares in constant time.
func (b blake3Signer) Verify(message []byte, signature string) (bool, error) {
	want, err := crypto.DecodeHex(signature, crypto.KeyedHashSize)
	if err != nil {
		return false, err
	}
	got, err := crypto.KeyedHash(b.key, message)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// ed25519Signer signs with the key expanded from a 32-byte seed.
type ed25519Signer struct {
	seed domain.SigningSeed
}

func (e ed25519Signer) Sign(message []byte) (string, error) {
	return crypto.EncodeSignature(crypto.SignEd25519(e.seed, message)), nil
}

// ed25519Verifier checks signatures against a public key.
type ed25519Verifier struct {
	pub domain.VerifyingKey
}

func (e ed25519Verifier) Verify(message []byte, signature string) (bool, error) {
	sig, err := crypto.DecodeHex(signature, domain.SignatureSize)
	if err != nil {
		return false, err
	}
	return crypto.VerifyEd25519(e.pub, message, sig), nil
}

var (
	_ domain.TextSigner   = blake3Signer{}
	_ domain.TextVerifier = blake3Signer{}
	_ domain.TextSigner   = ed25519Signer{}
	_ domain.TextVerifier = ed25519Verifier{}
)
