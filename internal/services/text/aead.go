package text

import (
	"context"
	"fmt"
	"unicode/utf8"

	"rcli/internal/crypto"
	"rcli/internal/domain"
)

// Encrypt seals the text at input under the key and nonce files and
// returns the ciphertext as unpadded standard base64.
//
// The nonce must be unique per key; reuse is not detected.
func (s *Service) Encrypt(ctx context.Context, input, keyPath, noncePath string) (string, error) {
	key, nonce, err := s.loadAEAD(ctx, keyPath, noncePath)
	if err != nil {
		return "", err
	}
	plaintext, err := s.src.ReadText(ctx, input)
	if err != nil {
		return "", err
	}
	ct, err := crypto.Seal(key, nonce, []byte(plaintext))
	if err != nil {
		return "", err
	}
	s.log.Debug("encrypted input", "input", input, "nonce", noncePath, "bytes", len(plaintext))
	return crypto.EncodeEnvelope(ct), nil
}

// Decrypt reverses Encrypt. Malformed base64 yields ErrEncoding; a tag
// that does not verify yields ErrAuthentication.
func (s *Service) Decrypt(ctx context.Context, input, keyPath, noncePath string) (string, error) {
	key, nonce, err := s.loadAEAD(ctx, keyPath, noncePath)
	if err != nil {
		return "", err
	}
	envelope, err := s.src.ReadText(ctx, input)
	if err != nil {
		return "", err
	}
	ct, err := crypto.DecodeEnvelope(envelope)
	if err != nil {
		return "", err
	}
	pt, err := crypto.Open(key, nonce, ct)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(pt) {
		return "", fmt.Errorf("%w: decrypted plaintext is not valid UTF-8", domain.ErrEncoding)
	}
	return string(pt), nil
}

// GenerateSymmetricKey returns a fresh key and nonce pair.
func (s *Service) GenerateSymmetricKey() (domain.AEADKey, domain.Nonce, error) {
	return crypto.GenerateAEAD()
}

func (s *Service) loadAEAD(ctx context.Context, keyPath, noncePath string) (domain.AEADKey, domain.Nonce, error) {
	key, err := s.keys.LoadAEADKey(ctx, keyPath)
	if err != nil {
		return domain.AEADKey{}, domain.Nonce{}, err
	}
	nonce, err := s.keys.LoadNonce(ctx, noncePath)
	if err != nil {
		return domain.AEADKey{}, domain.Nonce{}, err
	}
	return key, nonce, nil
}
