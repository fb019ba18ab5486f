package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"rcli/internal/domain"
)

// maxPlaintext is the largest input ChaCha20-Poly1305 accepts for a
// single nonce (2^38 - 64 bytes).
const maxPlaintext = (1 << 38) - 64

// Seal encrypts plaintext with ChaCha20-Poly1305 and no associated data.
// The result is ciphertext followed by the 16-byte tag.
//
// The caller must never reuse nonce with the same key for a different
// plaintext: doing so reveals the XOR of both plaintexts and allows tag
// forgery.
func Seal(key domain.AEADKey, nonce domain.Nonce, plaintext []byte) ([]byte, error) {
	if uint64(len(plaintext)) > maxPlaintext {
		return nil, fmt.Errorf("%w: plaintext too large (%d bytes)", domain.ErrCrypto, len(plaintext))
	}
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	return aead.Seal(nil, nonce.Slice(), plaintext, nil), nil
}

// Open authenticates and decrypts ciphertext produced by Seal. Any tag
// mismatch (tampered data, wrong key or wrong nonce) yields ErrAuthentication.
func Open(key domain.AEADKey, nonce domain.Nonce, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	if len(ciphertext) < aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext shorter than tag", domain.ErrAuthentication)
	}
	pt, err := aead.Open(nil, nonce.Slice(), ciphertext, nil)
	if err != nil {
		return nil, domain.ErrAuthentication
	}
	return pt, nil
}
