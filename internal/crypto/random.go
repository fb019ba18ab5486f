package crypto

import (
	"crypto/rand"
	"fmt"

	"rcli/internal/domain"
)

// GenerateAEAD returns a fresh ChaCha20-Poly1305 key and nonce.
func GenerateAEAD() (key domain.AEADKey, nonce domain.Nonce, err error) {
	if _, err = rand.Read(key[:]); err != nil {
		return key, nonce, fmt.Errorf("%w: random key: %v", domain.ErrCrypto, err)
	}
	if _, err = rand.Read(nonce[:]); err != nil {
		return key, nonce, fmt.Errorf("%w: random nonce: %v", domain.ErrCrypto, err)
	}
	return key, nonce, nil
}
