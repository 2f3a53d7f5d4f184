package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigsCoverAllScenarios(t *testing.T) {
	configs := DefaultConfigs()
	require.Len(t, configs, len(Names()))

	for _, name := range Names() {
		cfg, ok := configs[name]
		require.True(t, ok, "missing config for %s", name)
		assert.NotEmpty(t, cfg.RequiredModules, name)
		assert.NotEmpty(t, cfg.RequiredFunctions, name)
		assert.NotEmpty(t, cfg.WeightAdjustments, name)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Run("valid override replaces one scenario", func(t *testing.T) {
		path := writeYAML(t, `
basic_gpio:
  required_modules: [xgpio_hal]
  optional_modules: [xhw_timer]
  required_functions: [xgpio_init_pin]
`)
		configs, err := LoadOverrides(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"xgpio_init_pin"}, configs["basic_gpio"].RequiredFunctions)
		// Untouched scenarios keep their defaults.
		assert.Equal(t, DefaultConfigs()["motor_control"].RequiredModules,
			configs["motor_control"].RequiredModules)
	})

	t.Run("unknown scenario name is rejected", func(t *testing.T) {
		path := writeYAML(t, `
warp_drive:
  required_modules: [xgpio_hal]
`)
		_, err := LoadOverrides(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownScenario)
	})

	t.Run("malformed YAML is rejected", func(t *testing.T) {
		path := writeYAML(t, "basic_gpio: [not: a: config")
		_, err := LoadOverrides(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
