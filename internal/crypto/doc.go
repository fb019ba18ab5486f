// Package crypto exposes the minimal primitives used by rcli.
//
// Contents
//
//   - BLAKE3 keyed hashing (KeyedHash)
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     PublicEd25519, SignEd25519, VerifyEd25519)
//   - ChaCha20-Poly1305 sealing and opening without associated data (Seal,
//     Open) plus key/nonce generation (GenerateAEAD)
//   - Text framing for ciphertext and signatures (EncodeEnvelope,
//     DecodeEnvelope, EncodeSignature, DecodeHex)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// Nothing here implements a primitive; every function delegates to
// crypto/ed25519, golang.org/x/crypto/chacha20poly1305 or
// github.com/zeebo/blake3. Keys are the fixed-size array types from
// internal/domain so a wrong-length key cannot reach a primitive.
//
// Nonce reuse under one ChaCha20-Poly1305 key destroys confidentiality.
// Seal does not track nonces; callers own uniqueness.
package crypto
