// Package jwt signs and verifies HS256 JSON Web Tokens with a key file.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rcli/internal/domain"
)

var (
	// ErrInvalidExpiry is returned for expiry strings ParseExpiry rejects.
	ErrInvalidExpiry = errors.New("invalid expiry")
	// ErrEmptyKey is returned when the key file has no content.
	ErrEmptyKey = errors.New("jwt key is empty")
)

// SignOptions are the claims placed in a new token.
type SignOptions struct {
	Key      string `flag:"key" validate:"required,file"`
	Subject  string `flag:"sub" validate:"required"`
	Audience string `flag:"aud" validate:"required"`
	Expiry   string `flag:"exp" validate:"required"`
}

// Service reads HMAC keys through a ByteSource.
type Service struct {
	src domain.ByteSource
	now func() time.Time
}

// New returns a JWT service using the wall clock.
func New(src domain.ByteSource) *Service {
	return &Service{src: src, now: time.Now}
}

// WithClock returns a copy of s that reads the time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now
	return &c
}

// ParseExpiry converts "<n>d", "<n>m" or "<n>M" into days, minutes or
// weeks respectively.
func ParseExpiry(exp string) (time.Duration, error) {
	exp = strings.TrimSpace(exp)
	if len(exp) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpiry, exp)
	}

	var unit time.Duration
	switch exp[len(exp)-1] {
	case 'd':
		unit = 24 * time.Hour
	case 'm':
		unit = time.Minute
	case 'M':
		unit = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("%w: %q has no d, m or M suffix", ErrInvalidExpiry, exp)
	}

	n, err := strconv.ParseInt(exp[:len(exp)-1], 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpiry, exp)
	}
	return time.Duration(n) * unit, nil
}

// Sign mints an HS256 token carrying sub, aud, iat, exp and a random jti.
func (s *Service) Sign(ctx context.Context, opts SignOptions) (string, error) {
	ttl, err := ParseExpiry(opts.Expiry)
	if err != nil {
		return "", err
	}
	key, err := s.loadKey(ctx, opts.Key)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   opts.Subject,
		Audience:  jwt.ClaimStrings{opts.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.New().String(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify checks the signature and expiry of token and returns its claims.
func (s *Service) Verify(ctx context.Context, keyPath, token string) (jwt.MapClaims, error) {
	key, err := s.loadKey(ctx, keyPath)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token signature or expired: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func (s *Service) loadKey(ctx context.Context, path string) ([]byte, error) {
	key, err := s.src.ReadBytes(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyKey)
	}
	return key, nil
}
