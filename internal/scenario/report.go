package scenario

import (
	"fmt"
	"sort"
	"strings"
)

// renderReport renders the scenario evaluation as a human-readable report
// with fixed section ordering.
func renderReport(ev *Evaluation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n# Scenario Evaluation Report: %s\n\n", titleCase(ev.Scenario))

	b.WriteString("## Overall Performance\n")
	fmt.Fprintf(&b, "- **Total Score**: %.1f/10.0\n", ev.Analysis.TotalScore)
	fmt.Fprintf(&b, "- **Scenario-Specific Score**: %.1f/10.0\n\n", ev.Result.ScenarioScore)

	b.WriteString("## Component Analysis\n")
	fmt.Fprintf(&b, "- **Module Usage**: %.1f/10.0\n", ev.Analysis.ModuleUsageScore)
	fmt.Fprintf(&b, "- **Function Correctness**: %.1f/10.0\n", ev.Analysis.FunctionCorrectnessScore)
	fmt.Fprintf(&b, "- **Architecture Quality**: %.1f/10.0\n", ev.Analysis.ArchitectureScore)
	fmt.Fprintf(&b, "- **Error Handling**: %.1f/10.0\n\n", ev.Analysis.ErrorHandlingScore)

	b.WriteString("## Requirement Compliance\n")
	for _, name := range orderedKeys(ev.Result.RequirementCompliance, ev.Result.ComplianceOrder) {
		score := ev.Result.RequirementCompliance[name]
		fmt.Fprintf(&b, "- **%s**: %.1f%% %s\n", titleCase(name), score*100, statusGlyph(score))
	}

	b.WriteString("\n## Performance Analysis\n")
	for _, name := range orderedKeys(ev.Result.PerformanceAnalysis, ev.Result.PerformanceOrder) {
		fmt.Fprintf(&b, "- **%s**: %.1f%%\n", titleCase(name), ev.Result.PerformanceAnalysis[name]*100)
	}

	if len(ev.Result.Recommendations) > 0 {
		b.WriteString("\n## Recommendations for Improvement\n")
		for _, rec := range ev.Result.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	modules := "None"
	if len(ev.Analysis.Metrics.ModulesUtilized) > 0 {
		modules = strings.Join(ev.Analysis.Metrics.ModulesUtilized, ", ")
	}
	b.WriteString("\n## Module Utilization Details\n")
	fmt.Fprintf(&b, "- **Modules Used**: %s\n", modules)
	fmt.Fprintf(&b, "- **Functions Called**: %d\n", len(ev.Analysis.Metrics.FunctionsUsed))
	fmt.Fprintf(&b, "- **Types Utilized**: %d\n", len(ev.Analysis.Metrics.TypesUsed))
	fmt.Fprintf(&b, "- **Constants Used**: %d\n", len(ev.Analysis.Metrics.ConstantsUsed))

	b.WriteString("\n## Code Quality Metrics\n")
	fmt.Fprintf(&b, "- **Total Lines**: %d\n", ev.Analysis.Metrics.TotalLines)
	fmt.Fprintf(&b, "- **Function Definitions**: %d\n", ev.Analysis.Metrics.FunctionDefinitions)
	fmt.Fprintf(&b, "- **Error Handling Patterns**: %d\n", len(ev.Analysis.Metrics.ErrorPatterns))

	return b.String()
}

// statusGlyph maps a compliance fraction to its three-tier status marker.
func statusGlyph(score float64) string {
	switch {
	case score >= 0.8:
		return "✅"
	case score >= 0.5:
		return "⚠️"
	default:
		return "❌"
	}
}

// titleCase converts a snake_case identifier to a spaced title
// ("resource_cleanup" -> "Resource Cleanup").
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// orderedKeys returns the preferred key order, falling back to sorted keys
// for entries the order list misses.
func orderedKeys(m map[string]float64, preferred []string) []string {
	seen := make(map[string]bool, len(preferred))
	keys := make([]string, 0, len(m))
	for _, k := range preferred {
		if _, ok := m[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
