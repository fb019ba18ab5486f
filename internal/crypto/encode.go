package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"rcli/internal/domain"
)

// EncodeEnvelope frames ciphertext as standard base64 without padding.
func EncodeEnvelope(b []byte) string { return base64.RawStdEncoding.EncodeToString(b) }

// DecodeEnvelope reverses EncodeEnvelope.
func DecodeEnvelope(s string) ([]byte, error) {
	b, err := base64.RawStdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not unpadded base64: %v", domain.ErrEncoding, err)
	}
	return b, nil
}

// EncodeSignature renders an Ed25519 signature as upper-case hex.
func EncodeSignature(sig []byte) string { return strings.ToUpper(hex.EncodeToString(sig)) }

// DecodeHex parses a hex string of exactly size bytes (either case).
// Anything else is reported as ErrMalformedSignature.
func DecodeHex(s string, size int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2*size {
		return nil, fmt.Errorf("%w: want %d hex chars, got %d", domain.ErrMalformedSignature, 2*size, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSignature, err)
	}
	return b, nil
}
