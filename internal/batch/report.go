package batch

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"modeval/internal/logging"
	"modeval/internal/scenario"
)

var categoryTitles = map[string]string{
	"module_usage_score":         "Module Usage",
	"function_correctness_score": "Function Correctness",
	"architecture_score":         "Architecture Quality",
	"error_handling_score":       "Error Handling",
}

// RenderReport renders the comparison as a human-readable markdown report.
func RenderReport(cmp *Comparison) string {
	var b strings.Builder

	b.WriteString("\n# AI Tool Evaluation Comparison Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", cmp.ComparisonTimestamp)
	fmt.Fprintf(&b, "Comparison ID: %s\n\n", cmp.ComparisonID)

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "This report compares the performance of %d AI programming tools across %d embedded systems programming scenarios.\n\n",
		len(cmp.ToolsEvaluated), len(scenario.Names()))
	b.WriteString("### Tools Evaluated:\n")
	for _, tool := range cmp.ToolsEvaluated {
		fmt.Fprintf(&b, "- %s\n", tool)
	}

	b.WriteString("\n## Overall Rankings\n\n")
	for i, entry := range cmp.OverallRanking {
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, entry.Tool)
		fmt.Fprintf(&b, "   - Average Score: %.1f/10.0\n", entry.AverageScore)
		fmt.Fprintf(&b, "   - Scenarios Completed: %d/%d\n",
			entry.Metrics.ScenariosCompleted, entry.Metrics.TotalScenarios)
		fmt.Fprintf(&b, "   - Score Range: %.1f - %.1f\n",
			entry.Metrics.MinScore, entry.Metrics.MaxScore)
		fmt.Fprintf(&b, "   - Consistency: %.1f (std dev)\n\n", entry.Metrics.ScoreStdDev)
	}

	b.WriteString("## Scenario-by-Scenario Analysis\n\n")
	for _, name := range scenario.Names() {
		sc, ok := cmp.ScenarioComparison[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", snakeTitle(name))
		for i, rank := range sc.Ranking {
			fmt.Fprintf(&b, "%d. **%s**: %.1f/10.0\n", i+1, rank.Tool, rank.Score)
		}
		b.WriteString("\n")
	}

	if len(cmp.DetailedAnalysis.ModuleUsage) > 0 {
		b.WriteString("## Module Usage Analysis\n\n")
		b.WriteString("### Most Commonly Used Internal Modules:\n\n")
		for _, mod := range topModules(cmp.DetailedAnalysis.ModuleUsage, 10) {
			usage := cmp.DetailedAnalysis.ModuleUsage[mod]
			fmt.Fprintf(&b, "- **%s**: Used by %.1f%% of tools\n", mod, usage.UsageFrequency*100)
		}
		b.WriteString("\n")
	}

	if len(cmp.DetailedAnalysis.ByCategory) > 0 {
		b.WriteString("## Performance by Category\n\n")
		for _, category := range scoreCategories {
			perTool, ok := cmp.DetailedAnalysis.ByCategory[category]
			if !ok || len(perTool) == 0 {
				continue
			}
			fmt.Fprintf(&b, "### %s\n\n", categoryTitles[category])
			for _, tool := range toolsByAverage(perTool) {
				stats := perTool[tool]
				fmt.Fprintf(&b, "- **%s**: %.1f (±%.1f)\n", tool, stats.Average, stats.StdDev)
			}
			b.WriteString("\n")
		}
	}

	if len(cmp.DetailedAnalysis.Consistency) > 0 {
		b.WriteString("## Consistency Analysis\n\n")
		for _, tool := range toolsByStdDev(cmp.DetailedAnalysis.Consistency) {
			entry := cmp.DetailedAnalysis.Consistency[tool]
			fmt.Fprintf(&b, "- **%s**: %s (σ = %.1f)\n", tool, entry.ConsistencyRating, entry.ScoreStdDev)
		}
		b.WriteString("\n")
	}

	b.WriteString(`
## Recommendations

### For AI Tool Selection:
- Choose tools with high overall scores for general embedded systems programming
- Consider consistency ratings for production use cases
- Evaluate specific category performance based on your primary use cases

### For AI Tool Improvement:
- Focus on increasing internal module usage rates
- Improve error handling implementations
- Enhance code architecture quality for complex scenarios

---
*This report was generated using the Internal Module Evaluation Framework*
`)

	return b.String()
}

// WriteReport renders the comparison report and writes it to path.
func WriteReport(path string, cmp *Comparison) error {
	if err := os.WriteFile(path, []byte(RenderReport(cmp)), 0644); err != nil {
		return fmt.Errorf("write comparison report: %w", err)
	}
	logging.Report("wrote comparison report: %s", path)
	return nil
}

// topModules returns up to max module names, most widely used first. Ties
// break alphabetically so report output is stable.
func topModules(usage map[string]ModuleUsage, max int) []string {
	mods := make([]string, 0, len(usage))
	for mod := range usage {
		mods = append(mods, mod)
	}
	sort.Slice(mods, func(i, j int) bool {
		fi, fj := usage[mods[i]].UsageFrequency, usage[mods[j]].UsageFrequency
		if fi != fj {
			return fi > fj
		}
		return mods[i] < mods[j]
	})
	if len(mods) > max {
		mods = mods[:max]
	}
	return mods
}

func toolsByAverage(stats map[string]CategoryStats) []string {
	tools := make([]string, 0, len(stats))
	for tool := range stats {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		ai, aj := stats[tools[i]].Average, stats[tools[j]].Average
		if ai != aj {
			return ai > aj
		}
		return tools[i] < tools[j]
	})
	return tools
}

func toolsByStdDev(consistency map[string]ConsistencyEntry) []string {
	tools := make([]string, 0, len(consistency))
	for tool := range consistency {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		si, sj := consistency[tools[i]].ScoreStdDev, consistency[tools[j]].ScoreStdDev
		if si != sj {
			return si < sj
		}
		return tools[i] < tools[j]
	})
	return tools
}

// snakeTitle converts a snake_case scenario name to a spaced title.
func snakeTitle(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
