package text

import (
	"context"
	"fmt"
	"log/slog"

	"rcli/internal/domain"
)

// Service implements domain.TextService. It holds no mutable state; every
// call loads its own keys and discards them on return.
type Service struct {
	src  domain.ByteSource
	keys domain.KeyLoader
	pass domain.PasswordGenerator
	log  *slog.Logger
}

// New returns a text engine reading inputs from src and keys from keys.
func New(
	src domain.ByteSource,
	keys domain.KeyLoader,
	pass domain.PasswordGenerator,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{src: src, keys: keys, pass: pass, log: log}
}

// Sign reads input as text and signs it with the key at keyPath.
func (s *Service) Sign(ctx context.Context, input, keyPath string, alg domain.Algorithm) (string, error) {
	signer, err := s.signerFor(ctx, alg, keyPath)
	if err != nil {
		return "", err
	}
	msg, err := s.src.ReadText(ctx, input)
	if err != nil {
		return "", err
	}
	sig, err := signer.Sign([]byte(msg))
	if err != nil {
		return "", fmt.Errorf("%s sign: %w", alg, err)
	}
	s.log.Debug("signed input", "algorithm", alg, "input", input, "bytes", len(msg))
	return sig, nil
}

// Verify reads input as text and checks signature against it. A
// well-formed signature that does not match returns false and no error.
func (s *Service) Verify(
	ctx context.Context,
	input string,
	keyPath string,
	signature string,
	alg domain.Algorithm,
) (bool, error) {
	verifier, err := s.verifierFor(ctx, alg, keyPath)
	if err != nil {
		return false, err
	}
	msg, err := s.src.ReadText(ctx, input)
	if err != nil {
		return false, err
	}
	ok, err := verifier.Verify([]byte(msg), signature)
	if err != nil {
		return false, fmt.Errorf("%s verify: %w", alg, err)
	}
	s.log.Debug("verified input", "algorithm", alg, "input", input, "valid", ok)
	return ok, nil
}

// GenerateKeys returns fresh key material for alg, secret first.
func (s *Service) GenerateKeys(alg domain.Algorithm) ([][]byte, error) {
	gen, err := s.generatorFor(alg)
	if err != nil {
		return nil, err
	}
	blobs, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("%s generate: %w", alg, err)
	}
	if alg == domain.Blake3 {
		s.log.Warn("blake3 key drawn from the password alphabet; entropy is below a uniform 32-byte key")
	}
	return blobs, nil
}

// Compile-time assertion that Service implements domain.TextService.
var _ domain.TextService = (*Service)(nil)
