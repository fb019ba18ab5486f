package interfaces

import (
	"context"

	domaintypes "rcli/internal/domain/types"
)

// TextSigner produces a textual signature over a message.
type TextSigner interface {
	Sign(message []byte) (string, error)
}

// TextVerifier checks a textual signature. A well-formed but wrong
// signature yields false and a nil error.
type TextVerifier interface {
	Verify(message []byte, signature string) (bool, error)
}

// KeyGenerator produces fresh key material as ordered byte blobs
// (secret first, public second when present).
type KeyGenerator interface {
	Generate() ([][]byte, error)
}

// PasswordGenerator draws a random password from the selected classes.
type PasswordGenerator interface {
	Generate(opts domaintypes.PasswordOptions) (string, error)
}

// TextService is the engine surface consumed by the CLI.
type TextService interface {
	Sign(ctx context.Context, input, keyPath string, alg domaintypes.Algorithm) (string, error)
	Verify(
		ctx context.Context,
		input string,
		keyPath string,
		signature string,
		alg domaintypes.Algorithm,
	) (bool, error)
	GenerateKeys(alg domaintypes.Algorithm) ([][]byte, error)
	Encrypt(ctx context.Context, input, keyPath, noncePath string) (string, error)
	Decrypt(ctx context.Context, input, keyPath, noncePath string) (string, error)
	GenerateSymmetricKey() (domaintypes.AEADKey, domaintypes.Nonce, error)
}
