package interfaces

import (
	"context"

	domaintypes "rcli/internal/domain/types"
)

// ByteSource reads a whole input. The source "-" means standard input.
type ByteSource interface {
	// ReadText validates UTF-8 and trims trailing whitespace.
	ReadText(ctx context.Context, source string) (string, error)
	// ReadBytes returns the raw content unmodified.
	ReadBytes(ctx context.Context, source string) ([]byte, error)
}

// KeyLoader builds typed keys from raw key files, enforcing exact lengths.
type KeyLoader interface {
	LoadHashKey(ctx context.Context, path string) (domaintypes.HashKey, error)
	LoadSigningSeed(ctx context.Context, path string) (domaintypes.SigningSeed, error)
	LoadVerifyingKey(ctx context.Context, path string) (domaintypes.VerifyingKey, error)
	LoadAEADKey(ctx context.Context, path string) (domaintypes.AEADKey, error)
	LoadNonce(ctx context.Context, path string) (domaintypes.Nonce, error)
}

// KeyWriter persists generated key material.
type KeyWriter interface {
	SaveKey(path string, blob []byte) error
}
