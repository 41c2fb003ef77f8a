package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 18, cfg.Sections)
	assert.Equal(t, "", cfg.OutputDir)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, "notty", cfg.Style)
	assert.Equal(t, 4, cfg.ChunkSize)
	assert.Equal(t, 30*time.Millisecond, cfg.Interval)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdfixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections: 5\nstyle: dark\ninterval: 1s\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Sections)
	assert.Equal(t, "dark", cfg.Style)
	assert.Equal(t, time.Second, cfg.Interval)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdfixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections: 5\n"), 0o644))
	t.Setenv("MDFIXTURES_SECTIONS", "7")
	t.Setenv("MDFIXTURES_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Sections)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("MDFIXTURES_SECTIONS", "7")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("sections", 18, "")
	require.NoError(t, fs.Parse([]string{"--sections", "3"}))

	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Sections)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
		field string
	}{
		{name: "negative sections", env: "MDFIXTURES_SECTIONS", value: "-1", field: "Sections"},
		{name: "narrow width", env: "MDFIXTURES_WIDTH", value: "5", field: "Width"},
		{name: "unknown style", env: "MDFIXTURES_STYLE", value: "neon", field: "Style"},
		{name: "zero chunk", env: "MDFIXTURES_CHUNK_SIZE", value: "0", field: "ChunkSize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load(viper.New(), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_UnknownLevelIsKept(t *testing.T) {
	t.Setenv("MDFIXTURES_LOG_LEVEL", "loud")
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=v")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("verbose", &buf)

	assert.Contains(t, buf.String(), "invalid log level configured")
	assert.Contains(t, buf.String(), "configured_level=verbose")

	buf.Reset()
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
