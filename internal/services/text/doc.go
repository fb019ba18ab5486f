// Package text is the signing, verification, key generation and
// symmetric encryption engine behind "rcli text".
//
// Two interchangeable signature schemes sit behind the TextSigner and
// TextVerifier contracts:
//
//   - blake3: a BLAKE3 keyed hash (MAC). Signatures are lower-case hex and
//     deterministic; the same key signs and verifies.
//   - ed25519: Ed25519 signatures rendered as upper-case hex. The 32-byte
//     seed signs, the 32-byte public key verifies.
//
// Selecting an implementation happens in one place (dispatch.go). A new
// algorithm needs a case in signerFor, verifierFor, generatorFor and
// KeyFileNames.
//
// Encrypt and Decrypt use ChaCha20-Poly1305 under a 32-byte key and a
// 12-byte nonce supplied by the caller. The ciphertext and tag are framed
// as unpadded standard base64 so they can travel through the same
// text-oriented input path as plaintext. Decrypt expects that framing; the
// envelope carries no header.
//
// # Nonce reuse
//
// The engine does not remember which nonces were used. Encrypting two
// different plaintexts under the same key and nonce leaks their XOR and
// lets an attacker forge tags. Generate a fresh key and nonce pair
// ("rcli text keygen") for every message, or rotate the nonce file
// yourself.
//
// # BLAKE3 key material
//
// BLAKE3 keys are produced by the password generator (32 characters from
// upper, lower, digit and symbol classes) and stored as those raw bytes.
// This keeps key files compatible with earlier releases but gives roughly
// 6 bits of entropy per byte instead of 8. A warning is logged whenever
// such a key is generated.
package text
