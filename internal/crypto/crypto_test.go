package crypto_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcli/internal/crypto"
	"rcli/internal/domain"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKeyedHash_KnownVector(t *testing.T) {
	var key domain.HashKey
	copy(key[:], "whats the Elvish word for friend")

	sum, err := crypto.KeyedHash(key, nil)
	require.NoError(t, err)
	assert.Equal(t, "92b2b75604ed3c761f9d6f62392c8a9227ad0ea3f09573e783f1498a4ed60d26", hex.EncodeToString(sum))
}

func TestEd25519_RFC8032(t *testing.T) {
	seed, err := domain.NewSigningSeed(mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"))
	require.NoError(t, err)

	pub := crypto.PublicEd25519(seed)
	assert.Equal(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", hex.EncodeToString(pub.Slice()))

	sig := crypto.SignEd25519(seed, nil)
	want := "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
	assert.Equal(t, strings.ToUpper(want), crypto.EncodeSignature(sig))

	assert.True(t, crypto.VerifyEd25519(pub, nil, sig), "valid signature rejected")
	assert.False(t, crypto.VerifyEd25519(pub, []byte{0}, sig), "signature accepted for a different message")
}

func TestGenerateEd25519_Consistent(t *testing.T) {
	seed, pub, err := crypto.GenerateEd25519()
	require.NoError(t, err)
	assert.Equal(t, pub, crypto.PublicEd25519(seed))
	assert.Len(t, crypto.Fingerprint(pub).String(), 20)
}

func TestSealOpen(t *testing.T) {
	key, nonce, err := crypto.GenerateAEAD()
	require.NoError(t, err)

	ct, err := crypto.Seal(key, nonce, []byte("test-payload"))
	require.NoError(t, err)
	assert.Len(t, ct, len("test-payload")+16)

	pt, err := crypto.Open(key, nonce, ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("test-payload"), pt)

	for i := range ct {
		bad := append([]byte(nil), ct...)
		bad[i] ^= 0x80
		_, err := crypto.Open(key, nonce, bad)
		require.ErrorIs(t, err, domain.ErrAuthentication, "flip at %d", i)
	}

	_, err = crypto.Open(key, nonce, ct[:10])
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestEnvelope(t *testing.T) {
	s := crypto.EncodeEnvelope([]byte{0xfb, 0xff})
	assert.Equal(t, "+/8", s)

	b, err := crypto.DecodeEnvelope(s + "\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfb, 0xff}, b)

	_, err = crypto.DecodeEnvelope("+/8=")
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestDecodeHex(t *testing.T) {
	_, err := crypto.DecodeHex("ABcd", 2)
	assert.NoError(t, err)

	for _, s := range []string{"", "abc", "abcdef", "zzzz"} {
		_, err := crypto.DecodeHex(s, 2)
		assert.ErrorIs(t, err, domain.ErrMalformedSignature, "%q", s)
	}
}
