// Package commands defines the rcli CLI and wires dependencies for subcommands.
//
// Commands
//
//   - text sign|verify   Sign or verify text with blake3 or ed25519 keys
//   - text generate      Write a new blake3 key or ed25519 key pair
//   - text encrypt|decrypt  ChaCha20-Poly1305 with a key and nonce file
//   - text keygen        Write a new ChaCha20-Poly1305 key and nonce
//   - genpass            Print a random password
//   - base64 encode|decode
//   - jwt sign|verify    HS256 tokens keyed by a file
//   - csv                Convert CSV to JSON or YAML
//   - http serve         Serve a directory over HTTP
//
// # Implementation
//
// The root command loads configuration (flags, RCLI_* environment, .env)
// and builds the dependency graph before any subcommand runs. Inputs named
// "-" are read from standard input. Option structs are checked with
// go-playground/validator before a command touches the services.
package commands
