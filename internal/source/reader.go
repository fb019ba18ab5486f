package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"rcli/internal/domain"
)

// Stdin is the source name that selects standard input.
const Stdin = "-"

// Reader implements domain.ByteSource over the filesystem and a stdin stream.
type Reader struct {
	stdin io.Reader
}

// New returns a Reader that uses stdin for the "-" source. A nil stdin
// falls back to os.Stdin.
func New(stdin io.Reader) *Reader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Reader{stdin: stdin}
}

// ReadBytes returns the full content of source without modification.
func (r *Reader) ReadBytes(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source == Stdin {
		b, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, &domain.IOError{Path: "<stdin>", Err: err}
		}
		return b, nil
	}
	b, err := os.ReadFile(source)
	if err != nil {
		return nil, &domain.IOError{Path: source, Err: err}
	}
	return b, nil
}

// ReadText returns source as UTF-8 text with trailing whitespace removed.
func (r *Reader) ReadText(ctx context.Context, source string) (string, error) {
	b, err := r.ReadBytes(ctx, source)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w: input is not valid UTF-8", displayName(source), domain.ErrEncoding)
	}
	return strings.TrimRightFunc(string(b), unicode.IsSpace), nil
}

func displayName(source string) string {
	if source == Stdin {
		return "<stdin>"
	}
	return source
}

// Compile-time assertion that Reader implements domain.ByteSource.
var _ domain.ByteSource = (*Reader)(nil)
