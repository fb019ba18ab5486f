package csvconv_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"rcli/internal/domain"
	"rcli/internal/services/csvconv"
	"rcli/internal/source"
)

const players = "Name,Position,Kit Number\nWojciech Szczesny,Goalkeeper,1\nMarc-Andre ter Stegen,Goalkeeper,1\n"

func TestRender_JSON(t *testing.T) {
	out, err := csvconv.Render(strings.NewReader(players), csvconv.Options{Format: csvconv.JSON, Header: true})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Name":"Wojciech Szczesny","Position":"Goalkeeper","Kit Number":"1"},
		{"Name":"Marc-Andre ter Stegen","Position":"Goalkeeper","Kit Number":"1"}
	]`, string(out))
	// Keys come out sorted.
	assert.Less(t, strings.Index(string(out), "Kit Number"), strings.Index(string(out), "Name"))
}

func TestRender_YAML(t *testing.T) {
	out, err := csvconv.Render(strings.NewReader(players), csvconv.Options{Format: csvconv.YAML, Header: true})
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Marc-Andre ter Stegen", got[1]["Name"])
}

func TestRender_NoHeaderAndDelimiter(t *testing.T) {
	out, err := csvconv.Render(strings.NewReader("a;b\nc;d\n"), csvconv.Options{
		Format:    csvconv.JSON,
		Delimiter: ';',
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[["a","b"],["c","d"]]`, string(out))
}

func TestRender_Malformed(t *testing.T) {
	_, err := csvconv.Render(strings.NewReader("a,b\n\"unterminated,c\n"), csvconv.Options{Header: true})
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestConvert_WritesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte(players), 0o644))
	out := filepath.Join(dir, "out.yaml")

	svc := csvconv.New(source.New(nil))
	path, err := svc.Convert(context.Background(), csvconv.Options{
		Input: in, Output: out, Format: csvconv.YAML, Header: true,
	})
	require.NoError(t, err)
	assert.Equal(t, out, path)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Position: Goalkeeper")
}

func TestFormat(t *testing.T) {
	var f csvconv.Format
	require.NoError(t, f.Set("YAML"))
	assert.Equal(t, csvconv.YAML, f)
	assert.Equal(t, "output.yaml", csvconv.DefaultOutput(f))
	assert.Error(t, f.Set("toml"))
}
