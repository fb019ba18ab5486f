package genpass

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"rcli/internal/domain"
)

// Character classes. Zero is left out of Number, and Symbol is limited to
// shell-safe punctuation.
const (
	Upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower  = "abcdefghijklmnopqrstuvwxyz"
	Number = "123456789"
	Symbol = "!@#$%^&*_"
)

var (
	// ErrNoCharset is returned when every character class is disabled.
	ErrNoCharset = errors.New("at least one character class must be enabled")
)

// Service draws passwords from a cryptographically secure source.
type Service struct {
	rand io.Reader
}

// New returns a password generator backed by crypto/rand.
func New() *Service { return &Service{rand: rand.Reader} }

// Generate returns a password of opts.Length characters. Every enabled
// class contributes at least one character; the remainder is drawn
// uniformly from the union and the result is shuffled.
func (s *Service) Generate(opts domain.PasswordOptions) (string, error) {
	var classes []string
	if opts.Uppercase {
		classes = append(classes, Upper)
	}
	if opts.Lowercase {
		classes = append(classes, Lower)
	}
	if opts.Number {
		classes = append(classes, Number)
	}
	if opts.Symbol {
		classes = append(classes, Symbol)
	}
	if len(classes) == 0 {
		return "", ErrNoCharset
	}
	if opts.Length < len(classes) {
		return "", fmt.Errorf("length %d is shorter than the %d enabled character classes", opts.Length, len(classes))
	}

	var charset []byte
	password := make([]byte, 0, opts.Length)
	for _, c := range classes {
		charset = append(charset, c...)
		b, err := s.pick(c)
		if err != nil {
			return "", err
		}
		password = append(password, b)
	}
	for len(password) < opts.Length {
		b, err := s.pick(string(charset))
		if err != nil {
			return "", err
		}
		password = append(password, b)
	}
	if err := s.shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func (s *Service) pick(set string) (byte, error) {
	i, err := s.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by the secure source.
func (s *Service) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := s.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (s *Service) intn(n int) (int, error) {
	v, err := rand.Int(s.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: random source: %v", domain.ErrCrypto, err)
	}
	return int(v.Int64()), nil
}

// Compile-time assertion that Service implements domain.PasswordGenerator.
var _ domain.PasswordGenerator = (*Service)(nil)
