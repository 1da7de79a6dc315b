package benchconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 100_000, config.TreeSize)
	assert.Equal(t, "range", config.Workload.Kind)
	assert.Equal(t, 10, config.Cycles)
	assert.True(t, config.Metrics.Enabled)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "teardownbench_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		want := DefaultConfig()
		want.TreeSize = 5000
		want.Workload.Kind = "overlap"
		require.NoError(t, SaveConfig(want, configPath))

		got, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, want.TreeSize, got.TreeSize)
		assert.Equal(t, want.Workload.Kind, got.Workload.Kind)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(os.TempDir(), "does-not-exist-teardownbench.yaml"))
		require.Error(t, err)
	})
}

func TestSaveConfigCreatesDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "teardownbench_config_save_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	nested := filepath.Join(tmpDir, "nested", "config.yaml")
	require.NoError(t, SaveConfig(DefaultConfig(), nested))

	_, statErr := os.Stat(nested)
	assert.NoError(t, statErr)
}
