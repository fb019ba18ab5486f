package app

import (
	"log/slog"
	"os"

	"rcli/internal/domain"
	"rcli/internal/services/b64"
	"rcli/internal/services/csvconv"
	"rcli/internal/services/genpass"
	jwtsvc "rcli/internal/services/jwt"
	"rcli/internal/services/text"
	"rcli/internal/source"
	"rcli/internal/store"
)

// Wire bundles the reader, key store and services for the CLI.
type Wire struct {
	Log       *slog.Logger
	Source    domain.ByteSource
	Keys      domain.KeyWriter
	Passwords domain.PasswordGenerator
	Text      domain.TextService
	Base64    *b64.Service
	JWT       *jwtsvc.Service
	CSV       *csvconv.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger := NewLogger(cfg)

	// Input reader shared by services and the key store
	src := source.New(cfg.Stdin)
	keyStore := store.NewKeyFileStore(src)

	pass := genpass.New()

	return &Wire{
		Log:       logger,
		Source:    src,
		Keys:      keyStore,
		Passwords: pass,
		Text:      text.New(src, keyStore, pass, logger),
		Base64:    b64.New(src),
		JWT:       jwtsvc.New(src),
		CSV:       csvconv.New(src),
	}, nil
}

// NewLogger returns a text logger writing to cfg.Stderr at cfg.LogLevel.
func NewLogger(cfg Config) *slog.Logger {
	w := cfg.Stderr
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}
