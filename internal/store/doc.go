// Package store loads and persists raw key material for rcli.
//
// KeyFileStore turns key files into the fixed-size key types of
// internal/domain. A file whose length differs from the algorithm's
// requirement is rejected with a KeyFormatError naming the expected
// length; input is never padded, truncated or hashed down.
//
// Generated keys are written via a temp file and an atomic rename with
// mode 0600. Key files are stored as plain bytes; there is no encryption
// at rest.
package store
