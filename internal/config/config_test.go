package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regequiv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "format: json\nwitness: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Format: FormatJSON, Witness: true}, cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "format: json\nverbose: false\n")
	t.Setenv("REGEQUIV_FORMAT", "text")
	t.Setenv("REGEQUIV_VERBOSE", "true")
	t.Setenv("REGEQUIV_NORMALIZE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Witness)
	assert.True(t, cfg.Normalize)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(writeConfig(t, "formt: json\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})
	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("REGEQUIV_VERBOSE", "maybe")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv("REGEQUIV_FORMAT", "xml")

	cfg, err := Load(writeConfig(t, "normalize: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Format)
	assert.True(t, cfg.Normalize)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)

	cfg.Format = FormatJSON
	assert.NoError(t, cfg.Validate())
}
