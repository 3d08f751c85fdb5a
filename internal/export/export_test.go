package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"troywu.dev/internal/content"
	"troywu.dev/internal/models"
	"troywu.dev/internal/render"
)

func TestExport(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "images", "headshot.JPG"), []byte("jpeg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "resume.pdf"), []byte("%PDF"), 0o644))

	p, err := content.Default()
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "site")
	res, err := New(out, static, 200).Export(p)
	require.NoError(t, err)
	assert.Len(t, res.Files, 4)
	assert.Equal(t, 2, res.Copied)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="assets/site.css"`)
	assert.Contains(t, string(index), `data-lookahead="200"`)
	assert.Contains(t, string(index), `src="images/headshot.JPG"`)
	assert.Contains(t, string(index), `href="resume.pdf"`)
	assert.NotContains(t, string(index), `src="/images/`)

	for _, f := range []string{"assets/site.js", "assets/site.css", "images/headshot.JPG", "resume.pdf"} {
		_, err := os.Stat(filepath.Join(out, f))
		assert.NoError(t, err, f)
	}

	data, err := os.ReadFile(filepath.Join(out, "portfolio.json"))
	require.NoError(t, err)
	var got models.Portfolio
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, p.Profile.Name, got.Profile.Name)
	assert.Len(t, got.Projects, len(p.Projects))
}

func TestExportWithoutStaticDir(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)

	res, err := New(t.TempDir(), filepath.Join(t.TempDir(), "missing"), 200).Export(p)
	require.NoError(t, err)
	assert.Zero(t, res.Copied)
}

func TestExportKeepsGeneratedFiles(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("old page"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "assets", "site.js"), []byte("old script"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "portfolio.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "resume.pdf"), []byte("%PDF"), 0o644))

	p, err := content.Default()
	require.NoError(t, err)

	out := t.TempDir()
	res, err := New(out, static, 200).Export(p)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Copied)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(index), "old page")
	assert.Contains(t, string(index), `data-lookahead="200"`)

	script, err := os.ReadFile(filepath.Join(out, "assets", "site.js"))
	require.NoError(t, err)
	assert.Equal(t, string(render.Script()), string(script))

	data, err := os.ReadFile(filepath.Join(out, "portfolio.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), p.Profile.Name)
}
