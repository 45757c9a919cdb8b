package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanpadamata/portfolio/internal/i18n"
	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/prefs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")

	cfg, used, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, markup.Structural, cfg.MarkupMode())
	assert.Equal(t, prefs.Snapshot{Language: i18n.English, Theme: prefs.Light}, cfg.Defaults())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, "defaultTheme: dark\nmarkup: linebreaks\noutputDir: dist\nbaseURL: https://example.com\n")
	t.Setenv("PORTFOLIO_OUTPUTDIR", "site")
	t.Setenv("PORT", "9000")

	cfg, used, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, prefs.Dark, cfg.Defaults().Theme)
	assert.Equal(t, markup.LineBreaks, cfg.MarkupMode())
	assert.Equal(t, "site", cfg.OutputDir)
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, ":9000", cfg.Addr())
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, _, err := Load(viper.New(), writeConfig(t, "defaultTheme: sepia\n"))
	assert.ErrorContains(t, err, "defaultTheme")

	_, _, err = Load(viper.New(), writeConfig(t, "markup: wysiwyg\n"))
	assert.ErrorContains(t, err, "markup")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
