package types

// Key sizes in bytes.
const (
	HashKeySize      = 32
	SigningSeedSize  = 32
	VerifyingKeySize = 32
	AEADKeySize      = 32
	NonceSize        = 12
	SignatureSize    = 64
)

// KeyKind names a kind of key material in error messages.
type KeyKind string

const (
	KindHashKey      KeyKind = "blake3 key"
	KindSigningSeed  KeyKind = "ed25519 signing key"
	KindVerifyingKey KeyKind = "ed25519 verifying key"
	KindAEADKey      KeyKind = "chacha20-poly1305 key"
	KindNonce        KeyKind = "chacha20-poly1305 nonce"
)

// HashKey is a BLAKE3 keyed-hash secret.
type HashKey [HashKeySize]byte

// Slice returns the key as a []byte.
func (k HashKey) Slice() []byte { return k[:] }

// SigningSeed is an Ed25519 private key seed.
type SigningSeed [SigningSeedSize]byte

// Slice returns the key as a []byte.
func (k SigningSeed) Slice() []byte { return k[:] }

// VerifyingKey is an Ed25519 public key.
type VerifyingKey [VerifyingKeySize]byte

// Slice returns the key as a []byte.
func (k VerifyingKey) Slice() []byte { return k[:] }

// AEADKey is a ChaCha20-Poly1305 key.
type AEADKey [AEADKeySize]byte

// Slice returns the key as a []byte.
func (k AEADKey) Slice() []byte { return k[:] }

// Nonce is a ChaCha20-Poly1305 nonce. It is not secret but must never be
// reused with the same key for a different plaintext.
type Nonce [NonceSize]byte

// Slice returns the nonce as a []byte.
func (n Nonce) Slice() []byte { return n[:] }

// NewHashKey copies b into a HashKey. b must be exactly HashKeySize bytes.
func NewHashKey(b []byte) (HashKey, error) {
	var k HashKey
	if err := checkLen(KindHashKey, b, HashKeySize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// NewSigningSeed copies b into a SigningSeed.
func NewSigningSeed(b []byte) (SigningSeed, error) {
	var k SigningSeed
	if err := checkLen(KindSigningSeed, b, SigningSeedSize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// NewVerifyingKey copies b into a VerifyingKey.
func NewVerifyingKey(b []byte) (VerifyingKey, error) {
	var k VerifyingKey
	if err := checkLen(KindVerifyingKey, b, VerifyingKeySize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// NewAEADKey copies b into an AEADKey.
func NewAEADKey(b []byte) (AEADKey, error) {
	var k AEADKey
	if err := checkLen(KindAEADKey, b, AEADKeySize); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// NewNonce copies b into a Nonce.
func NewNonce(b []byte) (Nonce, error) {
	var n Nonce
	if err := checkLen(KindNonce, b, NonceSize); err != nil {
		return n, err
	}
	copy(n[:], b)
	return n, nil
}

func checkLen(kind KeyKind, b []byte, want int) error {
	if len(b) != want {
		return &KeyFormatError{Kind: kind, Expected: want, Actual: len(b)}
	}
	return nil
}
