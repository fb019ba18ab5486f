package crypto

import (
	"fmt"

	"github.com/zeebo/blake3"

	"rcli/internal/domain"
)

// KeyedHashSize is the BLAKE3 keyed-hash output length in bytes.
const KeyedHashSize = 32

// KeyedHash returns the 32-byte BLAKE3 keyed hash of msg under key.
func KeyedHash(key domain.HashKey, msg []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(key.Slice())
	if err != nil {
		return nil, fmt.Errorf("%w: blake3: %v", domain.ErrCrypto, err)
	}
	_, _ = h.Write(msg)
	return h.Sum(nil), nil
}
