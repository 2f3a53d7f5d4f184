package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolResult(name string, avg float64, outcomes map[string]*ScenarioOutcome) *ToolResult {
	scores := make([]float64, 0, len(outcomes))
	for _, out := range outcomes {
		if !out.Failed() {
			scores = append(scores, out.TotalScore)
		}
	}
	return &ToolResult{
		ToolName:        name,
		ScenarioResults: outcomes,
		SummaryMetrics: SummaryMetrics{
			AverageScore:       avg,
			MedianScore:        avg,
			MinScore:           minOf(scores),
			MaxScore:           maxOf(scores),
			ScoreStdDev:        sampleStdDev(scores),
			ScenariosCompleted: len(scores),
			TotalScenarios:     4,
		},
	}
}

func TestCompareToolsRanking(t *testing.T) {
	strong := toolResult("strong", 7.5, map[string]*ScenarioOutcome{
		"basic_gpio":     {TotalScore: 7.5, ModulesUsed: []string{"xgpio_hal", "xsoft_timer"}},
		"sensor_reading": {TotalScore: 7.5, ModulesUsed: []string{"xtemp_sensor"}},
	})
	weak := toolResult("weak", 6.2, map[string]*ScenarioOutcome{
		"basic_gpio":     {TotalScore: 6.2, ModulesUsed: []string{"xgpio_hal"}},
		"sensor_reading": {TotalScore: 6.2},
	})

	outDir := t.TempDir()
	cmp, err := newTestRunner().CompareTools([]*ToolResult{weak, strong}, outDir)
	require.NoError(t, err)

	require.Len(t, cmp.OverallRanking, 2)
	assert.Equal(t, "strong", cmp.OverallRanking[0].Tool)
	assert.Equal(t, "weak", cmp.OverallRanking[1].Tool)
	assert.NotEmpty(t, cmp.ComparisonID)

	gpio := cmp.ScenarioComparison["basic_gpio"]
	require.Len(t, gpio.Ranking, 2)
	assert.Equal(t, "strong", gpio.Ranking[0].Tool)

	// xgpio_hal was used by both tools, xtemp_sensor by one.
	assert.Equal(t, 1.0, cmp.DetailedAnalysis.ModuleUsage["xgpio_hal"].UsageFrequency)
	assert.Equal(t, 0.5, cmp.DetailedAnalysis.ModuleUsage["xtemp_sensor"].UsageFrequency)
	assert.ElementsMatch(t, []string{"weak", "strong"},
		cmp.DetailedAnalysis.ModuleUsage["xgpio_hal"].UsedByTools)

	_, err = os.Stat(filepath.Join(outDir, "comparison_results.json"))
	assert.NoError(t, err)
}

func TestCompareExcludesFailedOutcomes(t *testing.T) {
	broken := toolResult("broken", 5.0, map[string]*ScenarioOutcome{
		"basic_gpio": {Err: "exploded"},
	})
	fine := toolResult("fine", 5.0, map[string]*ScenarioOutcome{
		"basic_gpio": {TotalScore: 5.0},
	})

	cmp, err := newTestRunner().CompareTools([]*ToolResult{broken, fine}, t.TempDir())
	require.NoError(t, err)

	gpio := cmp.ScenarioComparison["basic_gpio"]
	require.Len(t, gpio.Ranking, 1)
	assert.Equal(t, "fine", gpio.Ranking[0].Tool)
	assert.NotContains(t, gpio.Outcomes, "broken")

	// broken completed zero scenarios, so it never ranks overall.
	require.Len(t, cmp.OverallRanking, 1)
	assert.Equal(t, "fine", cmp.OverallRanking[0].Tool)
}

func TestRankingMarshalsAsTuples(t *testing.T) {
	data, err := json.Marshal(ScenarioRank{Tool: "alpha", Score: 7.5})
	require.NoError(t, err)
	assert.JSONEq(t, `["alpha", 7.5]`, string(data))

	entry := OverallRank{
		Tool:         "alpha",
		AverageScore: 7.5,
		Metrics:      SummaryMetrics{AverageScore: 7.5, ScenariosCompleted: 4, TotalScenarios: 4},
	}
	data, err = json.Marshal(entry)
	require.NoError(t, err)

	var tuple []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &tuple))
	require.Len(t, tuple, 3)
	assert.JSONEq(t, `"alpha"`, string(tuple[0]))
	assert.JSONEq(t, `7.5`, string(tuple[1]))
}

func TestRateConsistency(t *testing.T) {
	cases := map[float64]string{
		0.0: "Very Consistent",
		0.9: "Very Consistent",
		1.0: "Consistent",
		1.9: "Consistent",
		2.0: "Moderately Consistent",
		2.9: "Moderately Consistent",
		3.0: "Inconsistent",
		9.9: "Inconsistent",
	}
	for stdDev, want := range cases {
		assert.Equal(t, want, rateConsistency(stdDev), "std dev %.1f", stdDev)
	}
}

func TestRenderReportSections(t *testing.T) {
	strong := toolResult("strong", 7.5, map[string]*ScenarioOutcome{
		"basic_gpio": {TotalScore: 7.5, ModuleUsageScore: 8.0, ModulesUsed: []string{"xgpio_hal"}},
	})
	weak := toolResult("weak", 6.2, map[string]*ScenarioOutcome{
		"basic_gpio": {TotalScore: 6.2, ModuleUsageScore: 4.0, ModulesUsed: []string{"xgpio_hal"}},
	})

	cmp, err := newTestRunner().CompareTools([]*ToolResult{strong, weak}, t.TempDir())
	require.NoError(t, err)

	report := RenderReport(cmp)
	for _, section := range []string{
		"# AI Tool Evaluation Comparison Report",
		"## Executive Summary",
		"## Overall Rankings",
		"## Scenario-by-Scenario Analysis",
		"## Module Usage Analysis",
		"## Performance by Category",
		"## Consistency Analysis",
		"## Recommendations",
	} {
		assert.Contains(t, report, section)
	}
	assert.Contains(t, report, "**1. strong**")
	assert.Contains(t, report, "Used by 100.0% of tools")

	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, WriteReport(path, cmp))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, report, string(written))
}
