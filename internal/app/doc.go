// Package app wires application dependencies for the CLI.
//
// LoadConfig resolves settings from the environment (and an optional .env
// file); NewWire builds the concrete reader, key store and services from
// that Config and exposes them for commands to use.
package app
