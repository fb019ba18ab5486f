// internal/services/jwt/service_test.go
package jwt_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcli/internal/services/jwt"
	"rcli/internal/source"
)

func writeKey(t *testing.T, key string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jwt.key")
	require.NoError(t, os.WriteFile(path, []byte(key), 0o600))
	return path
}

func TestParseExpiry(t *testing.T) {
	cases := map[string]time.Duration{
		"14d": 14 * 24 * time.Hour,
		"30m": 30 * time.Minute,
		"2M":  14 * 24 * time.Hour,
	}
	for in, want := range cases {
		got, err := jwt.ParseExpiry(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "d", "14", "14h", "xd", "-1d", "0m"} {
		_, err := jwt.ParseExpiry(in)
		assert.ErrorIs(t, err, jwt.ErrInvalidExpiry, in)
	}
}

func TestSignVerify_RoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := jwt.New(source.New(nil)).WithClock(func() time.Time { return now })
	key := writeKey(t, "some-secret")

	token, err := svc.Sign(ctx, jwt.SignOptions{Key: key, Subject: "acme", Audience: "device1", Expiry: "14d"})
	require.NoError(t, err)

	claims, err := svc.Verify(ctx, key, token)
	require.NoError(t, err)
	assert.Equal(t, "acme", claims["sub"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, now.Add(14*24*time.Hour).Unix(), exp.Unix())

	aud, err := claims.GetAudience()
	require.NoError(t, err)
	assert.Equal(t, gojwt.ClaimStrings{"device1"}, aud)

	_, err = uuid.Parse(claims["jti"].(string))
	assert.NoError(t, err)
}

func TestVerify_Rejects(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	svc := jwt.New(source.New(nil)).WithClock(func() time.Time { return now })
	key := writeKey(t, "some-secret")

	token, err := svc.Sign(ctx, jwt.SignOptions{Key: key, Subject: "s", Audience: "a", Expiry: "5m"})
	require.NoError(t, err)

	_, err = svc.Verify(ctx, writeKey(t, "other-secret"), token)
	assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)

	later := svc.WithClock(func() time.Time { return now.Add(10 * time.Minute) })
	_, err = later.Verify(ctx, key, token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": "s"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, key, none)
	assert.Error(t, err)
}

func TestSign_EmptyKey(t *testing.T) {
	svc := jwt.New(source.New(nil))
	_, err := svc.Sign(context.Background(), jwt.SignOptions{
		Key: writeKey(t, ""), Subject: "s", Audience: "a", Expiry: "1d",
	})
	assert.ErrorIs(t, err, jwt.ErrEmptyKey)
}
