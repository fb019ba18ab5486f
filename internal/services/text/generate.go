package text

import (
	"rcli/internal/crypto"
	"rcli/internal/domain"
)

// blake3Generator reuses the password generator for key bytes.
type blake3Generator struct {
	pass domain.PasswordGenerator
}

func (g blake3Generator) Generate() ([][]byte, error) {
	pw, err := g.pass.Generate(domain.PasswordOptions{
		Length:    domain.HashKeySize,
		Uppercase: true,
		Lowercase: true,
		Number:    true,
		Symbol:    true,
	})
	if err != nil {
		return nil, err
	}
	return [][]byte{[]byte(pw)}, nil
}

// ed25519Generator returns (seed, public key).
type ed25519Generator struct{}

func (ed25519Generator) Generate() ([][]byte, error) {
	seed, pub, err := crypto.GenerateEd25519()
	if err != nil {
		return nil, err
	}
	return [][]byte{seed.Slice(), pub.Slice()}, nil
}

var (
	_ domain.KeyGenerator = blake3Generator{}
	_ domain.KeyGenerator = ed25519Generator{}
)
