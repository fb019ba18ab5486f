package app

import (
	"net"
	"strconv"

	"rcli/internal/httpserve"
)

// ServeConfig builds the HTTP server settings for dir on port, taking
// CORS and rate limiting from cfg. A zero port falls back to cfg.HTTPPort.
func ServeConfig(cfg Config, dir string, port int) httpserve.Config {
	if port == 0 {
		port = cfg.HTTPPort
	}
	return httpserve.Config{
		Dir:            dir,
		Addr:           net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		AllowedOrigins: cfg.CORSOrigins,
		RateLimit:      cfg.RateLimit,
	}
}
