// Package genpass generates random passwords from a selectable set of
// character classes. It also supplies the raw bytes of BLAKE3 keys, see
// internal/services/text.
package genpass
