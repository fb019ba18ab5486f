package types

import "strings"

// Algorithm selects a signing, verification and key generation scheme.
type Algorithm string

const (
	// Blake3 is the keyed-hash (MAC) scheme.
	Blake3 Algorithm = "blake3"
	// Ed25519 is the asymmetric signature scheme.
	Ed25519 Algorithm = "ed25519"
)

// Algorithms lists every supported tag in display order.
func Algorithms() []Algorithm { return []Algorithm{Blake3, Ed25519} }

// ParseAlgorithm maps a user supplied tag to an Algorithm. The descriptive
// aliases "keyed-hash" and "asymmetric-signature" are accepted as well.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blake3", "keyed-hash":
		return Blake3, nil
	case "ed25519", "asymmetric-signature":
		return Ed25519, nil
	}
	return "", &UnsupportedAlgorithmError{Tag: s}
}

// String returns the canonical tag.
func (a Algorithm) String() string { return string(a) }

// Set implements pflag.Value so unknown tags fail during flag parsing.
func (a *Algorithm) Set(s string) error {
	v, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type implements pflag.Value.
func (a *Algorithm) Type() string { return "format" }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// PasswordOptions selects the length and character classes of a generated
// password.
type PasswordOptions struct {
	Length    int  `flag:"length" validate:"min=1,max=255"`
	Uppercase bool
	Lowercase bool
	Number    bool
	Symbol    bool
}
