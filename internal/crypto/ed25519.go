package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"rcli/internal/domain"
)

// GenerateEd25519 returns a new Ed25519 seed and its public key.
func GenerateEd25519() (seed domain.SigningSeed, pub domain.VerifyingKey, err error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return seed, pub, fmt.Errorf("%w: ed25519 key generation: %v", domain.ErrCrypto, err)
	}
	copy(seed[:], sk.Seed())
	copy(pub[:], pk)
	return seed, pub, nil
}

// PublicEd25519 derives the public key for seed.
func PublicEd25519(seed domain.SigningSeed) domain.VerifyingKey {
	var pub domain.VerifyingKey
	sk := ed25519.NewKeyFromSeed(seed.Slice())
	copy(pub[:], sk.Public().(ed25519.PublicKey))
	return pub
}

// SignEd25519 signs msg with the key expanded from seed.
func SignEd25519(seed domain.SigningSeed, msg []byte) []byte {
	return ed25519.Sign(ed25519.NewKeyFromSeed(seed.Slice()), msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.VerifyingKey, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub.Slice()), msg, sig)
}
