package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_addr: ":9000"
content_path: content.yaml
watch: false
read_header_timeout: 3s
view:
  lookahead: 150
  row_units: 16
`), 0o644))

	t.Setenv("PORTFOLIO_STATIC_DIR", "public")
	t.Setenv("PORTFOLIO_VIEW__FPS", "30")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, "content.yaml", cfg.ContentPath)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 3*time.Second, cfg.ReadHeaderTimeout)
	assert.Equal(t, 150.0, cfg.View.Lookahead)
	assert.Equal(t, 16.0, cfg.View.RowUnits)
	assert.Equal(t, 30, cfg.View.FPS)
	assert.Equal(t, "dark", cfg.View.GlamourStyle)
}

func TestLoadHonoursLegacyServerAddr(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":7070")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)

	t.Setenv("PORTFOLIO_SERVER_ADDR", ":6060")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.ServerAddr)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.ServerAddr = "" }},
		{"negative lookahead", func(c *Config) { c.View.Lookahead = -1 }},
		{"zero row units", func(c *Config) { c.View.RowUnits = 0 }},
		{"zero fps", func(c *Config) { c.View.FPS = 0 }},
		{"huge fps", func(c *Config) { c.View.FPS = 1000 }},
		{"negative timeout", func(c *Config) { c.ReadHeaderTimeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}
