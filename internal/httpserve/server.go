package httpserve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 10 * time.Second

// Config describes what to serve and how to guard it.
type Config struct {
	Dir  string
	Addr string
	// AllowedOrigins enables CORS when non-empty.
	AllowedOrigins []string
	// RateLimit is requests per second per client; zero disables limiting.
	RateLimit float64
	Burst     int
}

// Server is a static file server bound to one directory.
type Server struct {
	cfg  Config
	root string
	log  *slog.Logger
	srv  *http.Server
}

// New checks that cfg.Dir is a directory and builds the router.
func New(cfg Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	fi, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("serve dir: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("serve dir %s: not a directory", cfg.Dir)
	}
	root, err := filepath.Abs(cfg.Dir)
	if err == nil {
		root, err = filepath.EvalSymlinks(root)
	}
	if err != nil {
		return nil, fmt.Errorf("serve dir: %w", err)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 30
	}

	s := &Server{cfg: cfg, root: root, log: log}
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
	return s, nil
}

// Handler returns the routing tree.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	if s.cfg.RateLimit > 0 {
		r.Use(newLimiter(s.cfg.RateLimit, s.cfg.Burst).middleware)
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Range"},
			MaxAge:         300,
		}))
	}

	fh := &fileHandler{root: s.root, log: s.log}
	r.Mount("/tower", http.StripPrefix("/tower", fh.contain(http.FileServer(http.Dir(s.root)))))
	r.Get("/", fh.serveRoot)
	r.Get("/*", fh.serve)
	return r
}

// Run listens on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.log.Info("serving directory", "dir", s.cfg.Dir, "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
