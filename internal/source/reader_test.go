package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcli/internal/domain"
	"rcli/internal/source"
)

func writeFile(t *testing.T, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestReadText_TrimsTrailingWhitespaceOnly(t *testing.T) {
	path := writeFile(t, "msg.txt", []byte("  hello world \n\t\n"))
	r := source.New(strings.NewReader(""))

	got, err := r.ReadText(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "  hello world", got)
}

func TestReadText_Stdin(t *testing.T) {
	r := source.New(strings.NewReader("piped signature\n"))

	got, err := r.ReadText(context.Background(), source.Stdin)
	require.NoError(t, err)
	assert.Equal(t, "piped signature", got)
}

func TestReadText_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte{0xff, 0xfe, 'a'})
	r := source.New(nil)

	_, err := r.ReadText(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEncoding))
}

func TestReadBytes_Raw(t *testing.T) {
	raw := []byte{0x00, 0xff, '\n', ' '}
	path := writeFile(t, "key.bin", raw)
	r := source.New(nil)

	got, err := r.ReadBytes(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestReadBytes_MissingPath(t *testing.T) {
	r := source.New(nil)
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := r.ReadBytes(context.Background(), missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var ioErr *domain.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, missing, ioErr.Path)
}

func TestReadBytes_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.New(nil).ReadBytes(ctx, source.Stdin)
	assert.ErrorIs(t, err, context.Canceled)
}
