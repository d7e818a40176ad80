package config

import (
	"os"
	"path/filepath"
	"testing"

	"dpp/model"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesConstants(t *testing.T) {
	cfg := Default()
	assert.Equal(t, model.Lower, cfg.Grid.Lower)
	assert.Equal(t, model.Upper, cfg.Grid.Upper)
	assert.Equal(t, model.Count, cfg.Grid.Count)
	assert.Equal(t, model.C, cfg.Surface.C)
	assert.Equal(t, model.Colormap, cfg.Render.Colormap)
	assert.False(t, cfg.Server.Enabled)
	assert.Equal(t, log.InfoLevel, cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Equal(t, Default(), cfg)
}

func TestLoadShippedFile(t *testing.T) {
	cfg := Load(filepath.Join("..", Path))
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	body := "[grid]\nCount = 11\n[surface]\nC = 0.25\n[server]\nEnabled = true\nAddr = :9100\n[log]\nLevel = debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg := Load(path)
	assert.Equal(t, 11, cfg.Grid.Count)
	assert.Equal(t, -1.0, cfg.Grid.Lower)
	assert.Equal(t, 0.25, cfg.Surface.C)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, ":9100", cfg.Server.Addr)
	assert.Equal(t, log.DebugLevel, cfg.Log.Level)

	env := cfg.Env()
	assert.Equal(t, 11, env.Count)
	assert.Equal(t, 0.25, env.C)
}
