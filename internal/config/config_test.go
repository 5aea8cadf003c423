package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MINESWEEPER_DEVELOPMENT", "0")
	t.Setenv("DEVELOPMENT", "0")
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, mines.Medium, cfg.Params())
	assert.True(t, cfg.Color)
	assert.Equal(t, '*', cfg.Glyph())
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.False(t, cfg.Development)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
size: small
color: false
mine_glyph: "#"
log_level: warn
`), 0o644))
	t.Setenv("MINESWEEPER_SIZE", "xl")
	t.Setenv("MINESWEEPER_DEVELOPMENT", "1")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, mines.ExtraLarge, cfg.Params())
	assert.False(t, cfg.Color)
	assert.Equal(t, '#', cfg.Glyph())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Development)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, "xl", cfg.Fields()["size"])
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"size", "MINESWEEPER_SIZE", "gigantic"},
		{"glyph", "MINESWEEPER_MINE_GLYPH", "**"},
		{"level", "MINESWEEPER_LOG_LEVEL", "loud"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(test.key, test.val)
			_, err := load(viper.New(), t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestLoadBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("size: [unterminated"), 0o644))
	_, err := load(viper.New(), dir)
	assert.Error(t, err)
}

func TestResolvePathsKeepsExplicit(t *testing.T) {
	cfg := &Config{StatsPath: "/tmp/a.json", LogFile: "/tmp/a.log"}
	require.NoError(t, cfg.ResolvePaths())
	assert.Equal(t, "/tmp/a.json", cfg.StatsPath)
	assert.Equal(t, "/tmp/a.log", cfg.LogFile)
}

func TestDevelopment(t *testing.T) {
	t.Setenv("MINESWEEPER_DEVELOPMENT", "")
	require.NoError(t, os.Unsetenv("MINESWEEPER_DEVELOPMENT"))
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
	t.Setenv("DEVELOPMENT", "yes")
	assert.True(t, Development())
	t.Setenv("MINESWEEPER_DEVELOPMENT", "0")
	assert.False(t, Development(), "prefixed variable wins")
}
