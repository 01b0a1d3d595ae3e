package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carril-bici/internal/lanes"
	apperrors "carril-bici/internal/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "创建测试配置文件失败")
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvUnits, "")
	t.Setenv(EnvLogLevel, "")

	path := writeConfig(t, `
[registry]
title = "Carriles de prueba"
default_status = "Abierto"

[display]
units = "mi"
style = "dark"

[logging]
level = "debug"
format = "json"
output = "stdout"

[[segments]]
name = "Paseo Marítimo"
length_km = 3.5

[[segments]]
name = "Vía Verde"
length_km = 2.0
status = "Cerrado por obras"
`)

	require.NoError(t, LoadConfig(path))

	cfg := GetConfig()
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "mi", cfg.Display.Units)
	assert.Equal(t, "dark", cfg.Display.Style)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	require.Len(t, cfg.Segments, 2)
	assert.Equal(t, SegmentConfig{Name: "Vía Verde", LengthKm: 2.0, Status: "Cerrado por obras"}, cfg.Segments[1])
	assert.Equal(t, RegistryConfig{Title: "Carriles de prueba", DefaultStatus: "Abierto"}, cfg.Registry)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv(EnvUnits, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(writeConfig(t, "[[segments]]\nname = \"A\"\nlength_km = 1.0\n"))
	require.NoError(t, err)

	assert.Equal(t, "km", cfg.Display.Units)
	assert.Equal(t, "auto", cfg.Display.Style)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, lanes.ReportTitle, cfg.Registry.Title)
	assert.Equal(t, lanes.DefaultStatus, cfg.Registry.DefaultStatus)
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	t.Setenv(EnvUnits, "")
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "默认配置文件应该被创建")
	require.Len(t, cfg.Segments, 2)
	assert.Equal(t, "Paseo Marítimo", cfg.Segments[0].Name)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, lanes.DefaultStatus, cfg.Registry.DefaultStatus)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvUnits, "MI")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(writeConfig(t, "[logging]\nlevel = \"debug\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "mi", cfg.Display.Units)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	t.Setenv(EnvUnits, "")
	t.Setenv(EnvLogLevel, "")
	path := writeConfig(t, "[display]\nunits = \"mi\"\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mi", cfg.Display.Units)
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvUnits, "")
	t.Setenv(EnvLogLevel, "")

	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"bad toml", "[display\nunits = ", apperrors.ErrCodeConfigParseFailed},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n", apperrors.ErrCodeConfigInvalid},
		{"bad log format", "[logging]\nformat = \"xml\"\n", apperrors.ErrCodeConfigInvalid},
		{"bad units", "[display]\nunits = \"furlong\"\n", apperrors.ErrCodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorCode(err, tt.code), "期望错误代码 %s，实际为 %s", tt.code, apperrors.GetErrorCode(err))
		})
	}
}

func TestBuildRegistry(t *testing.T) {
	cfg := &AppConfig{Segments: []SegmentConfig{
		{Name: "Paseo Marítimo", LengthKm: 3.5},
		{Name: "Vía Verde", LengthKm: 2.0, Status: "Cerrado por obras"},
	}}

	reg, err := cfg.BuildRegistry()
	require.NoError(t, err)

	assert.Equal(t, 5.5, reg.TotalLength())
	status, err := reg.Status("Vía Verde")
	require.NoError(t, err)
	assert.Equal(t, "Cerrado por obras", status)
	status, err = reg.Status("Paseo Marítimo")
	require.NoError(t, err)
	assert.Equal(t, lanes.DefaultStatus, status)
}

func TestBuildRegistry_InvalidSegment(t *testing.T) {
	cfg := &AppConfig{Segments: []SegmentConfig{
		{Name: "A", LengthKm: 1},
		{Name: "B", LengthKm: 0},
	}}

	_, err := cfg.BuildRegistry()
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeConfigInvalid))
	assert.ErrorIs(t, err, lanes.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "segments[1]")
}

func TestLoad_RegistrySectionIsRecognized(t *testing.T) {
	t.Setenv(EnvUnits, "")
	t.Setenv(EnvLogLevel, "")

	path := writeConfig(t, "[registry]\ntitle = \"T\"\ndefault_status = \"S\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "T", cfg.Registry.Title)

	var decoded AppConfig
	meta, err := toml.DecodeFile(path, &decoded)
	require.NoError(t, err)
	assert.Empty(t, meta.Undecoded(), "[registry] keys must map onto AppConfig")
}
