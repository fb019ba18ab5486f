package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcli/cmd/rcli/commands"
	"rcli/internal/crypto"
	"rcli/internal/domain"
)

// run executes the CLI with stdin and returns trimmed stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--env-file", ""}, args...))
	err := root.ExecuteContext(context.Background())
	return strings.TrimSpace(out.String()), err
}

func mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := run(t, stdin, args...)
	require.NoError(t, err, "rcli %s", strings.Join(args, " "))
	return out
}

func TestText_Ed25519SignVerify(t *testing.T) {
	dir := t.TempDir()
	out := mustRun(t, "", "text", "generate", "--format", "ed25519", "-o", dir)
	assert.Contains(t, out, "ed25519.sk")
	assert.Contains(t, out, "Fingerprint: ")

	sk := filepath.Join(dir, "ed25519.sk")
	pk := filepath.Join(dir, "ed25519.pk")
	sig := mustRun(t, "hello world", "text", "sign", "--format", "ed25519", "-k", sk)

	out = mustRun(t, "hello world\n", "text", "verify", "--format", "ed25519", "-k", pk, "-s", sig)
	assert.Equal(t, "✓ Signature verified", out)

	out = mustRun(t, "hello world!", "text", "verify", "--format", "ed25519", "-k", pk, "-s", sig)
	assert.Equal(t, "⚠ Signature not verified", out)
}

func TestText_Blake3FromEnvKeyDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RCLI_KEY_DIR", dir)

	mustRun(t, "", "text", "generate")
	key := filepath.Join(dir, "blake3.txt")
	fi, err := os.Stat(key)
	require.NoError(t, err)
	assert.Equal(t, int64(32), fi.Size())

	sig := mustRun(t, "payload", "text", "sign", "-k", key)
	assert.Len(t, sig, 64)
	assert.Equal(t, "✓ Signature verified", mustRun(t, "payload", "text", "verify", "-k", key, "-s", sig))
}

func TestText_EncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, "", "text", "keygen", "-o", dir)
	key := filepath.Join(dir, "chacha.key")
	nonce := filepath.Join(dir, "chacha.nonce")

	ct := mustRun(t, "test-payload", "text", "encrypt", "-k", key, "-n", nonce)
	pt := mustRun(t, ct, "text", "decrypt", "-k", key, "-n", nonce)
	assert.Equal(t, "test-payload", pt)
}

func TestText_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "x", "text", "sign", "-k", filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--key")

	_, err = run(t, "x", "text", "sign", "--format", "rsa", "-k", filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "unsupported algorithm")

	_, err = run(t, "", "text", "generate", "-o", filepath.Join(dir, "nope"))
	assert.ErrorContains(t, err, "not a directory")
}

func TestGenpass(t *testing.T) {
	out := mustRun(t, "", "genpass", "-l", "20")
	assert.Len(t, out, 20)

	out = mustRun(t, "", "genpass", "-l", "12", "--uppercase=false", "--lowercase=false", "--symbol=false")
	assert.Len(t, out, 12)
	assert.Empty(t, strings.Trim(out, "123456789"))

	_, err := run(t, "", "genpass", "-l", "0")
	assert.ErrorContains(t, err, "--length")
}

func TestBase64(t *testing.T) {
	assert.Equal(t, "aGVsbG8_Pg", mustRun(t, "hello?>", "base64", "encode", "--format", "url_safe"))
	assert.Equal(t, "hello?>", mustRun(t, "aGVsbG8/Pg==", "base64", "decode"))
}

func TestJWT(t *testing.T) {
	key := filepath.Join(t.TempDir(), "jwt.key")
	require.NoError(t, os.WriteFile(key, []byte("secret"), 0o600))

	token := mustRun(t, "", "jwt", "sign", "-k", key, "--sub", "acme", "--aud", "device1", "--exp", "30m")
	out := mustRun(t, "", "jwt", "verify", "-k", key, "-t", token)
	assert.Contains(t, out, `"sub": "acme"`)

	_, err := run(t, "", "jwt", "sign", "-k", key, "--aud", "device1")
	assert.ErrorContains(t, err, "--sub is required")
}

func TestCSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("a;b\n1;2\n"), 0o644))
	outPath := filepath.Join(dir, "out.json")

	mustRun(t, "", "csv", "-i", in, "-o", outPath, "-d", ";")
	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"a":"1","b":"2"}]`, string(b))

	_, err = run(t, "", "csv", "-i", in, "-d", ";;")
	assert.ErrorContains(t, err, "--delimiter")
}

func TestText_Ed25519GeneratePairMatches(t *testing.T) {
	dir := t.TempDir()
	out := mustRun(t, "", "text", "generate", "--format", "ed25519", "-o", dir)

	skBytes, err := os.ReadFile(filepath.Join(dir, "ed25519.sk"))
	require.NoError(t, err)
	pkBytes, err := os.ReadFile(filepath.Join(dir, "ed25519.pk"))
	require.NoError(t, err)

	seed, err := domain.NewSigningSeed(skBytes)
	require.NoError(t, err)
	derived := crypto.PublicEd25519(seed)
	assert.Equal(t, derived.Slice(), pkBytes)
	assert.Contains(t, out, "Fingerprint: "+crypto.Fingerprint(derived).String())
}
