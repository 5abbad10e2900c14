package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoadYAML(t *testing.T) {
	config, err := Load(writeConfig(t, `
input: ./rc.txt
format: json
output: out.json
log:
  level: debug
  color: false
`))
	require.NoError(t, err)
	assert.Equal(t, "./rc.txt", config.Input)
	assert.Equal(t, FormatJSON, config.Format)
	assert.Equal(t, "out.json", config.Output)
	assert.False(t, config.Log.Color)
	assert.Equal(t, slog.LevelDebug, config.Level())
	// 未设置的字段保留默认值
	assert.Equal(t, Default().Plot, config.Plot)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"未知格式", "format: xml\n"},
		{"未知日志级别", "log:\n  level: trace\n"},
		{"图像尺寸", "plot:\n  width: 0\n"},
		{"YAML错误", "input: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrConfig)
			assert.Nil(t, config)
		})
	}
}

func TestValidate(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())
	config.Input = ""
	assert.ErrorIs(t, config.Validate(), ErrConfig)
}

func TestLevelFallback(t *testing.T) {
	config := Default()
	config.Log.Level = "warn"
	assert.Equal(t, slog.LevelWarn, config.Level())
	config.Log.Level = "???"
	assert.Equal(t, slog.LevelInfo, config.Level())
}
