// Package b64 encodes and decodes text inputs as base64.
package b64

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"rcli/internal/domain"
)

// Format selects the base64 alphabet.
type Format string

const (
	// Standard is RFC 4648 base64 with padding.
	Standard Format = "standard"
	// URLSafe is the URL and filename alphabet without padding.
	URLSafe Format = "url_safe"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "url_safe", "urlsafe", "url":
		return URLSafe, nil
	}
	return "", fmt.Errorf("invalid base64 format %q (want standard or url_safe)", s)
}

func (f Format) String() string { return string(f) }

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

func (f Format) encoding() *base64.Encoding {
	if f == URLSafe {
		return base64.RawURLEncoding
	}
	return base64.StdEncoding
}

// Service reads inputs through a ByteSource.
type Service struct {
	src domain.ByteSource
}

// New returns a base64 service.
func New(src domain.ByteSource) *Service { return &Service{src: src} }

// Encode returns the base64 form of the text at input.
func (s *Service) Encode(ctx context.Context, input string, format Format) (string, error) {
	text, err := s.src.ReadText(ctx, input)
	if err != nil {
		return "", err
	}
	return format.encoding().EncodeToString([]byte(text)), nil
}

// Decode reverses Encode. The decoded bytes must be valid UTF-8.
func (s *Service) Decode(ctx context.Context, input string, format Format) (string, error) {
	text, err := s.src.ReadText(ctx, input)
	if err != nil {
		return "", err
	}
	b, err := format.encoding().DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", fmt.Errorf("%w: %s base64: %v", domain.ErrEncoding, format, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: decoded data is not valid UTF-8", domain.ErrEncoding)
	}
	return string(b), nil
}
