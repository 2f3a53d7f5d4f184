package scenario

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gpioSample covers the basic_gpio scenario requirements end to end.
const gpioSample = `#include "xgpio_hal.h"
#include "xsoft_timer.h"

#define LED_PIN 13

static xgpio_config_t led_config;

int main(void) {
    if (xgpio_init_pin(&led_config) != 0) {
        return -1;
    }
    for (int i = 0; i < 20; i++) {
        xgpio_write_pin(LED_PIN, XGPIO_PIN_HIGH);
        xsoft_timer_start(500);
        xgpio_write_pin(LED_PIN, XGPIO_PIN_LOW);
        xsoft_timer_start(500);
    }
    xgpio_deinit_pin(LED_PIN);
    return 0;
}
`

func TestEvaluateUnknownScenario(t *testing.T) {
	ev, err := NewEvaluator().Evaluate("warp_drive", "int main(void) {}")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScenario)
	assert.Nil(t, ev)
}

func TestEvaluateRejectsUnknownCustomConfig(t *testing.T) {
	// A config map with a name outside the fixed set must fail at
	// evaluation, not fall through to an empty result.
	configs := DefaultConfigs()
	configs["warp_drive"] = Config{RequiredModules: []string{"xgpio_hal"}}

	ev, err := NewEvaluatorWithConfigs(configs).Evaluate("warp_drive", gpioSample)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScenario)
	assert.Nil(t, ev)
}

func TestEvaluateBasicGPIOSample(t *testing.T) {
	ev, err := NewEvaluator().Evaluate("basic_gpio", gpioSample)
	require.NoError(t, err)

	assert.Contains(t, ev.Analysis.Metrics.ModulesUtilized, "xgpio_hal")
	for _, fn := range []string{"xgpio_init_pin", "xgpio_write_pin", "xgpio_deinit_pin"} {
		assert.Contains(t, ev.Analysis.Metrics.FunctionsUsed, fn)
	}
	assert.Equal(t, 1.0, ev.Result.RequirementCompliance["resource_cleanup"])
	assert.Equal(t, 1.0, ev.Result.RequirementCompliance["timing_implementation"])
	assert.Greater(t, ev.Result.ScenarioScore, 5.0)
	assert.LessOrEqual(t, ev.Result.ScenarioScore, 10.0)

	assert.Contains(t, ev.Report, "## Requirement Compliance")
	assert.Contains(t, ev.Report, "## Performance Analysis")
}

// The aggregate always uses the fixed 0.4/0.3/0.2/0.1 weights; the
// weight_adjustments carried in every scenario config are never consulted.
func TestFixedWeightsRegardlessOfScenario(t *testing.T) {
	evaluator := NewEvaluator()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg, ok := evaluator.Config(name)
			require.True(t, ok)
			require.NotEmpty(t, cfg.WeightAdjustments)

			ev, err := evaluator.Evaluate(name, gpioSample)
			require.NoError(t, err)

			want := ev.Analysis.ModuleUsageScore*0.4 +
				ev.Analysis.FunctionCorrectnessScore*0.3 +
				ev.Analysis.ArchitectureScore*0.2 +
				ev.Analysis.ErrorHandlingScore*0.1
			assert.InDelta(t, want, ev.Analysis.TotalScore, 1e-9)
		})
	}
}

func TestEvaluateAllScenariosOnArbitraryInput(t *testing.T) {
	evaluator := NewEvaluator()

	// Any text input is processed best-effort; non-C content scores near
	// zero but never errors.
	for _, name := range Names() {
		ev, err := evaluator.Evaluate(name, "this is not C code")
		require.NoError(t, err, name)
		assert.GreaterOrEqual(t, ev.Result.ScenarioScore, 0.0)
		assert.LessOrEqual(t, ev.Result.ScenarioScore, 10.0)
	}
}

func TestWriteJSON(t *testing.T) {
	ev, err := NewEvaluator().Evaluate("basic_gpio", gpioSample)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteJSON(path, ev))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var artifact map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &artifact))
	for _, key := range []string{"scenario", "scores", "detailed_metrics", "scenario_analysis", "report"} {
		assert.Contains(t, artifact, key)
	}

	var scores map[string]float64
	require.NoError(t, json.Unmarshal(artifact["scores"], &scores))
	assert.Contains(t, scores, "total_score")
	assert.Contains(t, scores, "scenario_specific_score")
}
