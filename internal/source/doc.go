// Package source reads whole inputs for the engine. The name "-" selects
// standard input; anything else is a file path.
//
// ReadText is used for messages, signatures and envelopes: it rejects
// invalid UTF-8 and trims trailing whitespace so a shell-added newline does
// not change a signature. ReadBytes is used for key material and returns
// the content unmodified.
package source
