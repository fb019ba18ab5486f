package text

import (
	"context"

	"rcli/internal/domain"
)

// File names used when persisting generated keys.
const (
	Blake3KeyFile      = "blake3.txt"
	Ed25519SecretFile  = "ed25519.sk"
	Ed25519PublicFile  = "ed25519.pk"
	SymmetricKeyFile   = "chacha.key"
	SymmetricNonceFile = "chacha.nonce"
)

func unsupported(alg domain.Algorithm) error {
	return &domain.UnsupportedAlgorithmError{Tag: string(alg)}
}

func (s *Service) signerFor(ctx context.Context, alg domain.Algorithm, keyPath string) (domain.TextSigner, error) {
	switch alg {
	case domain.Blake3:
		key, err := s.keys.LoadHashKey(ctx, keyPath)
		if err != nil {
			return nil, err
		}
		return blake3Signer{key: key}, nil
	case domain.Ed25519:
		seed, err := s.keys.LoadSigningSeed(ctx, keyPath)
		if err != nil {
			return nil, err
		}
		return ed25519Signer{seed: seed}, nil
	}
	return nil, unsupported(alg)
}

func (s *Service) verifierFor(ctx context.Context, alg domain.Algorithm, keyPath string) (domain.TextVerifier, error) {
	switch alg {
	case domain.Blake3:
		key, err := s.keys.LoadHashKey(ctx, keyPath)
		if err != nil {
			return nil, err
		}
		return blake3Signer{key: key}, nil
	case domain.Ed25519:
		pub, err := s.keys.LoadVerifyingKey(ctx, keyPath)
		if err != nil {
			return nil, err
		}
		return ed25519Verifier{pub: pub}, nil
	}
	return nil, unsupported(alg)
}

func (s *Service) generatorFor(alg domain.Algorithm) (domain.KeyGenerator, error) {
	switch alg {
	case domain.Blake3:
		return blake3Generator{pass: s.pass}, nil
	case domain.Ed25519:
		return ed25519Generator{}, nil
	}
	return nil, unsupported(alg)
}

// KeyFileNames returns the names under which GenerateKeys output for alg
// is persisted, in the same order as the generated blobs.
func KeyFileNames(alg domain.Algorithm) ([]string, error) {
	switch alg {
	case domain.Blake3:
		return []string{Blake3KeyFile}, nil
	case domain.Ed25519:
		return []string{Ed25519SecretFile, Ed25519PublicFile}, nil
	}
	return nil, unsupported(alg)
}
