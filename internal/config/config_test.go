package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/zentime/internal/models"
	"github.com/balkashynov/zentime/internal/tips"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Timer.FocusMinutes)
	assert.Equal(t, 5, cfg.Timer.ShortBreakMinutes)
	assert.Equal(t, 15, cfg.Timer.LongBreakMinutes)
	assert.False(t, cfg.Timer.AutoStartBreaks)
	assert.False(t, cfg.Timer.AutoStartFocus)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, tips.DefaultModel, cfg.Tips.Model)
	assert.Equal(t, tips.DefaultTimeout, cfg.Tips.Timeout)
	assert.Empty(t, cfg.Path)
	assert.False(t, cfg.TipsAvailable())
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
timer:
  focus_minutes: 50
  short_break_minutes: 10
  long_break_minutes: 30
  auto_start_breaks: true
muted: true
theme: Latte
tips:
  enabled: false
  timeout: 3s
log_file: /tmp/zentime.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 50, cfg.Timer.FocusMinutes)
	assert.Equal(t, 10, cfg.Timer.ShortBreakMinutes)
	assert.Equal(t, 30, cfg.Timer.LongBreakMinutes)
	assert.True(t, cfg.Timer.AutoStartBreaks)
	assert.False(t, cfg.Timer.AutoStartFocus)
	assert.True(t, cfg.Muted)
	assert.Equal(t, "latte", cfg.Theme)
	assert.False(t, cfg.Tips.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Tips.Timeout)
	assert.Equal(t, DefaultTipsModel, cfg.Tips.Model)
	assert.Equal(t, "/tmp/zentime.log", cfg.LogFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "timer: [not, a, map")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config yaml")
}

func TestLoadClampsAndNormalizes(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "clamp.yaml")
	writeFile(t, path, `
timer:
  focus_minutes: 0
  short_break_minutes: -4
  long_break_minutes: 200000000000000000
theme: neon
tips:
  model: ""
  timeout: -1s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Timer.FocusMinutes)
	assert.Equal(t, 1, cfg.Timer.ShortBreakMinutes)
	assert.Equal(t, models.MaxMinutes, cfg.Timer.LongBreakMinutes)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, DefaultTipsModel, cfg.Tips.Model)
	assert.Equal(t, DefaultTipsTimeout, cfg.Tips.Timeout)
}

func TestSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, "home", ".config", "zentime", "config.yaml"), "timer:\n  focus_minutes: 40\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Timer.FocusMinutes)

	writeFile(t, filepath.Join(dir, "xdg", "zentime", "config.yaml"), "timer:\n  focus_minutes: 35\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 35, cfg.Timer.FocusMinutes)

	writeFile(t, filepath.Join(dir, "zentime.yaml"), "timer:\n  focus_minutes: 30\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Timer.FocusMinutes)
	assert.Equal(t, "zentime.yaml", cfg.Path)
}

func TestAPIKeyFromEnv(t *testing.T) {
	isolate(t)

	assert.Empty(t, APIKeyFromEnv())

	t.Setenv("API_KEY", "fallback-key")
	assert.Equal(t, "fallback-key", APIKeyFromEnv())

	t.Setenv("GEMINI_API_KEY", " primary-key ")
	assert.Equal(t, "primary-key", APIKeyFromEnv())
}

func TestDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "API_KEY=from-dotenv\nGEMINI_API_KEY=dotenv-gemini\n")
	t.Setenv("GEMINI_API_KEY", "from-process")
	require.NoError(t, os.Unsetenv("API_KEY"))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-process", cfg.Tips.APIKey)
	assert.Equal(t, "from-dotenv", os.Getenv("API_KEY"))
	assert.True(t, cfg.TipsAvailable())
}

func TestMarshalRoundTripsTimer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timer.FocusMinutes = 45

	out, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), "focus_minutes: 45")
	assert.Contains(t, string(out), "timeout: 10s")
	assert.NotContains(t, string(out), "api_key")
}

func TestValidTheme(t *testing.T) {
	for _, theme := range Themes {
		assert.True(t, ValidTheme(theme), theme)
	}
	assert.False(t, ValidTheme("dracula"))
}
