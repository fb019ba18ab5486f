// Package httpserve serves a directory over HTTP.
//
// Routes
//
//   - GET /          HTML listing of the root directory
//   - GET /*         HTML listing for directories, raw content for files
//   - GET /tower/*   the same tree through http.FileServer (index.html aware)
//
// Requests that resolve outside the root directory get 404, whether they
// escape through ".." or through a symlink. Every request
// passes through request-id, real-ip, structured logging, panic recovery,
// optional CORS and a per-client token bucket.
package httpserve
