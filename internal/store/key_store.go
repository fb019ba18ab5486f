package store

import (
	"context"
	"errors"

	"rcli/internal/domain"
	"rcli/internal/util/memzero"
)

// KeyFileStore loads typed keys from files and saves generated material.
type KeyFileStore struct {
	src domain.ByteSource
}

// NewKeyFileStore returns a KeyFileStore reading through src.
func NewKeyFileStore(src domain.ByteSource) *KeyFileStore {
	return &KeyFileStore{src: src}
}

// LoadHashKey reads a 32-byte BLAKE3 key.
func (s *KeyFileStore) LoadHashKey(ctx context.Context, path string) (domain.HashKey, error) {
	return load(ctx, s.src, path, domain.NewHashKey)
}

// LoadSigningSeed reads a 32-byte Ed25519 seed.
func (s *KeyFileStore) LoadSigningSeed(ctx context.Context, path string) (domain.SigningSeed, error) {
	return load(ctx, s.src, path, domain.NewSigningSeed)
}

// LoadVerifyingKey reads a 32-byte Ed25519 public key.
func (s *KeyFileStore) LoadVerifyingKey(ctx context.Context, path string) (domain.VerifyingKey, error) {
	return load(ctx, s.src, path, domain.NewVerifyingKey)
}

// LoadAEADKey reads a 32-byte ChaCha20-Poly1305 key.
func (s *KeyFileStore) LoadAEADKey(ctx context.Context, path string) (domain.AEADKey, error) {
	return load(ctx, s.src, path, domain.NewAEADKey)
}

// LoadNonce reads a 12-byte ChaCha20-Poly1305 nonce.
func (s *KeyFileStore) LoadNonce(ctx context.Context, path string) (domain.Nonce, error) {
	return load(ctx, s.src, path, domain.NewNonce)
}

// SaveKey writes blob to path with owner-only permissions. The write goes
// through a temp file and rename, so an interrupted save leaves any previous
// key intact.
func (s *KeyFileStore) SaveKey(path string, blob []byte) error {
	return WriteFile(path, blob, 0o600)
}

// load reads raw bytes and hands them to build. The raw buffer is wiped
// once the typed key has been copied out.
func load[K any](
	ctx context.Context,
	src domain.ByteSource,
	path string,
	build func([]byte) (K, error),
) (K, error) {
	var zero K
	raw, err := src.ReadBytes(ctx, path)
	if err != nil {
		return zero, err
	}
	defer memzero.Zero(raw)

	k, err := build(raw)
	if err != nil {
		var kf *domain.KeyFormatError
		if errors.As(err, &kf) {
			kf.Path = path
		}
		return zero, err
	}
	return k, nil
}

// Compile-time assertions that KeyFileStore implements the domain contracts.
var (
	_ domain.KeyLoader = (*KeyFileStore)(nil)
	_ domain.KeyWriter = (*KeyFileStore)(nil)
)
