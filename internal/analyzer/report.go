package analyzer

import (
	"fmt"
	"strings"
)

// Report renders a standalone analysis report for a bare result, without
// scenario context. The scenario package has its own richer renderer.
func Report(r Result) string {
	var b strings.Builder

	b.WriteString("\n# Internal Module Usage Analysis Report\n\n")
	fmt.Fprintf(&b, "## Overall Score: %.1f/10.0\n\n", r.TotalScore)

	b.WriteString("### Component Scores:\n")
	fmt.Fprintf(&b, "- Module Usage: %.1f/10.0\n", r.ModuleUsageScore)
	fmt.Fprintf(&b, "- Function Correctness: %.1f/10.0\n", r.FunctionCorrectnessScore)
	fmt.Fprintf(&b, "- Architecture Quality: %.1f/10.0\n", r.ArchitectureScore)
	fmt.Fprintf(&b, "- Error Handling: %.1f/10.0\n", r.ErrorHandlingScore)

	b.WriteString("\n### Detailed Metrics:\n\n")

	fmt.Fprintf(&b, "#### Modules Utilized (%d):\n", len(r.Metrics.ModulesUtilized))
	for _, mod := range r.Metrics.ModulesUtilized {
		fmt.Fprintf(&b, "- %s\n", mod)
	}

	fmt.Fprintf(&b, "\n#### Functions Used (%d):\n", len(r.Metrics.FunctionsUsed))
	writeTruncatedList(&b, r.Metrics.FunctionsUsed, 10)

	fmt.Fprintf(&b, "\n#### Types Used (%d):\n", len(r.Metrics.TypesUsed))
	writeTruncatedList(&b, r.Metrics.TypesUsed, 10)

	b.WriteString("\n#### Code Statistics:\n")
	fmt.Fprintf(&b, "- Total Lines: %d\n", r.Metrics.TotalLines)
	fmt.Fprintf(&b, "- Comment Lines: %d\n", r.Metrics.CommentLines)
	fmt.Fprintf(&b, "- Function Definitions: %d\n", r.Metrics.FunctionDefinitions)
	fmt.Fprintf(&b, "- Error Handling Patterns: %d\n", len(r.Metrics.ErrorPatterns))

	b.WriteString("\n#### Recommendations:\n")
	if r.ModuleUsageScore < 5.0 {
		b.WriteString("- Increase usage of internal modules instead of standard library functions\n")
	}
	if r.FunctionCorrectnessScore < 5.0 {
		b.WriteString("- Use more diverse API functions from the internal modules\n")
	}
	if r.ArchitectureScore < 5.0 {
		b.WriteString("- Improve code structure with proper data types and organization\n")
	}
	if r.ErrorHandlingScore < 5.0 {
		b.WriteString("- Add more comprehensive error handling and return value checking\n")
	}

	return b.String()
}

func writeTruncatedList(b *strings.Builder, items []string, max int) {
	for i, item := range items {
		if i == max {
			b.WriteString("...\n")
			break
		}
		fmt.Fprintf(b, "- %s\n", item)
	}
}
