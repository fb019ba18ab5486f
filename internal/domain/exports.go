package domain

import (
	interfaces "rcli/internal/domain/interfaces"
	types "rcli/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Algorithm                 = types.Algorithm
	Fingerprint               = types.Fingerprint
	PasswordOptions           = types.PasswordOptions
	KeyKind                   = types.KeyKind
	HashKey                   = types.HashKey
	SigningSeed               = types.SigningSeed
	VerifyingKey              = types.VerifyingKey
	AEADKey                   = types.AEADKey
	Nonce                     = types.Nonce
	IOError                   = types.IOError
	KeyFormatError            = types.KeyFormatError
	UnsupportedAlgorithmError = types.UnsupportedAlgorithmError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	TextSigner        = interfaces.TextSigner
	TextVerifier      = interfaces.TextVerifier
	KeyGenerator      = interfaces.KeyGenerator
	PasswordGenerator = interfaces.PasswordGenerator
	TextService       = interfaces.TextService
	ByteSource        = interfaces.ByteSource
	KeyLoader         = interfaces.KeyLoader
	KeyWriter         = interfaces.KeyWriter
)

const (
	Blake3  = types.Blake3
	Ed25519 = types.Ed25519

	HashKeySize      = types.HashKeySize
	SigningSeedSize  = types.SigningSeedSize
	VerifyingKeySize = types.VerifyingKeySize
	AEADKeySize      = types.AEADKeySize
	NonceSize        = types.NonceSize
	SignatureSize    = types.SignatureSize
)

// Error sentinels re-exported from the types subpackage.
var (
	ErrIO                   = types.ErrIO
	ErrEncoding             = types.ErrEncoding
	ErrKeyFormat            = types.ErrKeyFormat
	ErrMalformedSignature   = types.ErrMalformedSignature
	ErrAuthentication       = types.ErrAuthentication
	ErrUnsupportedAlgorithm = types.ErrUnsupportedAlgorithm
	ErrCrypto               = types.ErrCrypto
)

// Constructor re-exports.
var (
	ParseAlgorithm  = types.ParseAlgorithm
	Algorithms      = types.Algorithms
	NewHashKey      = types.NewHashKey
	NewSigningSeed  = types.NewSigningSeed
	NewVerifyingKey = types.NewVerifyingKey
	NewAEADKey      = types.NewAEADKey
	NewNonce        = types.NewNonce
)
