package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaaray/portfolio/internal/motion"
	"github.com/zaaray/portfolio/internal/nav"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	v, err := newViper("")
	require.NoError(t, err)
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "images", cfg.ImagesDir)
	assert.Equal(t, "dist", cfg.WasmDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Dev)
	assert.Equal(t, nav.DefaultConfig(), cfg.Nav.tracker())
	assert.Equal(t, motion.DefaultConfig(), cfg.Reveal.motion())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SITE_NAV_HEADER_HEIGHT", "72")
	t.Setenv("SITE_REVEAL_DURATION", "750ms")
	t.Setenv("SITE_SITE_URL", "https://example.com/")
	t.Setenv("SITE_DEV", "true")

	v, err := newViper("")
	require.NoError(t, err)
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 72.0, cfg.Nav.HeaderHeight)
	assert.Equal(t, 0.33, cfg.Nav.ProbeFraction)
	assert.Equal(t, 750*time.Millisecond, cfg.Reveal.Duration)
	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.True(t, cfg.Dev)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, "addr: \":7000\"\nnav:\n  probe_fraction: 0.5\nreveal:\n  offset: 12\n")

	v, err := newViper(path)
	require.NoError(t, err)
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, 0.5, cfg.Nav.ProbeFraction)
	assert.Equal(t, 12.0, cfg.Reveal.Offset)
	assert.Equal(t, 80.0, cfg.Reveal.Margin)

	_, err = newViper(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"probe fraction", map[string]string{"SITE_NAV_PROBE_FRACTION": "1.5"}, "nav.probe_fraction"},
		{"header height", map[string]string{"SITE_NAV_HEADER_HEIGHT": "-1"}, "nav.header_height"},
		{"reveal margin", map[string]string{"SITE_REVEAL_MARGIN": "-80"}, "reveal.margin"},
		{"site url", map[string]string{"SITE_SITE_URL": "example.com"}, "site_url"},
		{"addr", map[string]string{"SITE_ADDR": " "}, "addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			v, err := newViper("")
			require.NoError(t, err)
			_, err = loadConfig(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
