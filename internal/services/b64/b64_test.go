package b64_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcli/internal/domain"
	"rcli/internal/services/b64"
	"rcli/internal/source"
)

func svc(stdin string) *b64.Service {
	return b64.New(source.New(strings.NewReader(stdin)))
}

func TestEncode(t *testing.T) {
	ctx := context.Background()

	out, err := svc("hello?>\n").Encode(ctx, source.Stdin, b64.Standard)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8/Pg==", out)

	out, err = svc("hello?>").Encode(ctx, source.Stdin, b64.URLSafe)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8_Pg", out)
}

func TestDecode(t *testing.T) {
	ctx := context.Background()

	out, err := svc("aGVsbG8/Pg==\n").Decode(ctx, source.Stdin, b64.Standard)
	require.NoError(t, err)
	assert.Equal(t, "hello?>", out)

	out, err = svc("aGVsbG8_Pg").Decode(ctx, source.Stdin, b64.URLSafe)
	require.NoError(t, err)
	assert.Equal(t, "hello?>", out)
}

func TestDecode_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := svc("aGVsbG8_Pg").Decode(ctx, source.Stdin, b64.Standard)
	assert.ErrorIs(t, err, domain.ErrEncoding)

	// 0xff 0xff decodes fine but is not UTF-8.
	_, err = svc("//8=").Decode(ctx, source.Stdin, b64.Standard)
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestFormat_Set(t *testing.T) {
	var f b64.Format
	require.NoError(t, f.Set("URL_SAFE"))
	assert.Equal(t, b64.URLSafe, f)
	assert.Error(t, f.Set("hex"))
}
