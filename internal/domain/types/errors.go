package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks. None of them are retried.
var (
	// ErrIO is returned when an input path is missing or unreadable.
	ErrIO = errors.New("i/o error")

	// ErrEncoding is returned for invalid UTF-8 text or malformed base64.
	ErrEncoding = errors.New("invalid encoding")

	// ErrKeyFormat is returned when key or nonce material has the wrong length.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrMalformedSignature is returned when signature text cannot be parsed
	// for the selected algorithm.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrAuthentication is returned when an AEAD tag does not verify.
	ErrAuthentication = errors.New("authentication failed")

	// ErrUnsupportedAlgorithm is returned for unknown algorithm tags.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrCrypto is returned when a primitive rejects an operation for a
	// reason other than authentication.
	ErrCrypto = errors.New("crypto operation failed")
)

// IOError records the path that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause.
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// KeyFormatError reports a key file whose length does not match the
// algorithm's requirement.
type KeyFormatError struct {
	Kind     KeyKind
	Path     string
	Expected int
	Actual   int
}

func (e *KeyFormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: want %d bytes, got %d", e.Kind, e.Path, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: want %d bytes, got %d", e.Kind, e.Expected, e.Actual)
}

// Is reports whether target is ErrKeyFormat.
func (e *KeyFormatError) Is(target error) bool { return target == ErrKeyFormat }

// UnsupportedAlgorithmError carries the rejected tag.
type UnsupportedAlgorithmError struct {
	Tag string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm %q (want %s or %s)", e.Tag, Blake3, Ed25519)
}

// Is reports whether target is ErrUnsupportedAlgorithm.
func (e *UnsupportedAlgorithmError) Is(target error) bool { return target == ErrUnsupportedAlgorithm }
