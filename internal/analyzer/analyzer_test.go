package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modeval/internal/catalog"
)

// gpioSample is a well-formed LED blink program exercising the GPIO HAL and
// the soft timer.
const gpioSample = `#include "xgpio_hal.h"
#include "xsoft_timer.h"

#define LED_PIN 13

static xgpio_config_t led_config;

int main(void) {
    if (xgpio_init_pin(&led_config) != 0) {
        return -1;
    }
    for (int i = 0; i < 10; i++) {
        xgpio_write_pin(LED_PIN, XGPIO_PIN_HIGH);
        xsoft_timer_start(500);
        xgpio_write_pin(LED_PIN, XGPIO_PIN_LOW);
        xsoft_timer_start(500);
    }
    xgpio_deinit_pin(LED_PIN);
    return 0;
}
`

func newTestAnalyzer() *Analyzer {
	return New(catalog.Default())
}

func TestAnalyzeNoIncludes(t *testing.T) {
	result := newTestAnalyzer().Analyze("int main(void) { return 0; }", nil)

	assert.Equal(t, 0.0, result.ModuleUsageScore)
	assert.Empty(t, result.Metrics.ModulesUtilized)
	assert.Empty(t, result.Metrics.FunctionsUsed)
}

func TestAnalyzeGPIOSample(t *testing.T) {
	result := newTestAnalyzer().Analyze(gpioSample, nil)

	assert.Contains(t, result.Metrics.ModulesUtilized, "xgpio_hal")
	assert.Contains(t, result.Metrics.ModulesUtilized, "xsoft_timer")
	assert.Contains(t, result.Metrics.FunctionsUsed, "xgpio_init_pin")
	assert.Contains(t, result.Metrics.FunctionsUsed, "xgpio_write_pin")
	assert.Contains(t, result.Metrics.FunctionsUsed, "xgpio_deinit_pin")
	assert.Contains(t, result.Metrics.TypesUsed, "xgpio_config_t")
	assert.Contains(t, result.Metrics.ConstantsUsed, "XGPIO_PIN_HIGH")
	assert.Greater(t, result.TotalScore, 0.0)
}

func TestHeaderMatchingAcceptsEitherIncludeStyle(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("bare header name", func(t *testing.T) {
		result := a.Analyze("#include <xgpio_hal.h>\n", nil)
		assert.Contains(t, result.Metrics.ModulesUtilized, "xgpio_hal")
	})

	t.Run("full relative path", func(t *testing.T) {
		result := a.Analyze(`#include "internal_modules/hal/xgpio_hal.h"`+"\n", nil)
		assert.Contains(t, result.Metrics.ModulesUtilized, "xgpio_hal")
	})
}

func TestModuleUsageStepFunction(t *testing.T) {
	steps := map[int]float64{0: 0.0, 1: 3.0, 2: 3.0, 3: 6.0, 4: 6.0, 5: 8.0, 6: 8.0, 7: 10.0}
	for n, want := range steps {
		m := Metrics{ModulesUtilized: make([]string, n)}
		assert.Equal(t, want, moduleUsageScore(&m, nil), "n=%d", n)
	}
}

func TestErrorHandlingStepFunction(t *testing.T) {
	steps := map[int]float64{0: 0.0, 1: 3.0, 2: 3.0, 3: 6.0, 5: 6.0, 6: 8.0, 8: 8.0, 9: 10.0}
	for n, want := range steps {
		m := Metrics{ErrorPatterns: make([]string, n)}
		assert.Equal(t, want, errorHandlingScore(&m), "n=%d", n)
	}

	// Monotonic non-decreasing in the pattern count.
	prev := 0.0
	for n := 0; n <= 12; n++ {
		m := Metrics{ErrorPatterns: make([]string, n)}
		score := errorHandlingScore(&m)
		require.GreaterOrEqual(t, score, prev, "n=%d", n)
		prev = score
	}
}

func TestFunctionCorrectnessExactRatio(t *testing.T) {
	m := Metrics{FunctionsUsed: []string{"a"}}
	req := &Requirements{RequiredFunctions: []string{"a", "b"}}
	assert.Equal(t, 5.0, functionCorrectnessScore(&m, req))
}

func TestTotalScoreUsesFixedWeights(t *testing.T) {
	req := &Requirements{
		RequiredModules:   []string{"xgpio_hal"},
		OptionalModules:   []string{"xhw_timer", "xsoft_timer"},
		RequiredFunctions: []string{"xgpio_init_pin", "xgpio_write_pin", "xgpio_deinit_pin"},
	}
	result := newTestAnalyzer().Analyze(gpioSample, req)

	want := result.ModuleUsageScore*0.4 +
		result.FunctionCorrectnessScore*0.3 +
		result.ArchitectureScore*0.2 +
		result.ErrorHandlingScore*0.1
	assert.InDelta(t, want, result.TotalScore, 1e-9)
}

func TestArchitectureShortCodePenalty(t *testing.T) {
	// 10 lines, one function definition, no structs/statics/macros/enums:
	// base 5.0 + 1.0 function bonus - 2.0 short-code penalty.
	source := `void app_step(void)
{
}

void unused(void)
{
}


`
	result := newTestAnalyzer().Analyze(source, nil)
	require.LessOrEqual(t, result.Metrics.TotalLines, 19)
	require.Greater(t, result.Metrics.FunctionDefinitions, 0)
	assert.Equal(t, 4.0, result.ArchitectureScore)
}

func TestAllScoresBounded(t *testing.T) {
	sources := []string{
		"",
		"not C at all ééé",
		gpioSample,
		`#include "xgpio_hal.h"
if (a != 0) {} if (b != 0) {} if (c < 0) {} if (d == NULL) {}
if (e != 0) {} if (f < 0) {} if (g == NULL) {} return -1; return -2;
return -3; return -4;`,
	}

	for _, src := range sources {
		result := newTestAnalyzer().Analyze(src, nil)
		for name, score := range map[string]float64{
			"total":                result.TotalScore,
			"module_usage":         result.ModuleUsageScore,
			"function_correctness": result.FunctionCorrectnessScore,
			"architecture":         result.ArchitectureScore,
			"error_handling":       result.ErrorHandlingScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, "%s score below range", name)
			assert.LessOrEqual(t, score, 10.0, "%s score above range", name)
		}
	}
}

func TestReportRendering(t *testing.T) {
	result := newTestAnalyzer().Analyze(gpioSample, nil)
	report := Report(result)

	assert.Contains(t, report, "# Internal Module Usage Analysis Report")
	assert.Contains(t, report, "xgpio_hal")
	assert.Contains(t, report, "### Component Scores:")
}

func TestCommentCounting(t *testing.T) {
	source := `// leading comment
int x; // trailing comments do not count
/* block */
int y;
`
	result := newTestAnalyzer().Analyze(source, nil)
	assert.Equal(t, 2, result.Metrics.CommentLines)
}
