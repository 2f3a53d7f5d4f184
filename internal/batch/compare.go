package batch

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"modeval/internal/logging"
	"modeval/internal/scenario"
)

// scoreCategories lists the per-category analysis keys in report order.
var scoreCategories = []string{
	"module_usage_score",
	"function_correctness_score",
	"architecture_score",
	"error_handling_score",
}

func (o *ScenarioOutcome) categoryScore(category string) float64 {
	switch category {
	case "module_usage_score":
		return o.ModuleUsageScore
	case "function_correctness_score":
		return o.FunctionCorrectnessScore
	case "architecture_score":
		return o.ArchitectureScore
	case "error_handling_score":
		return o.ErrorHandlingScore
	}
	return 0
}

// ScenarioRank is one (tool, score) entry of a per-scenario ranking. It
// marshals as a two-element array.
type ScenarioRank struct {
	Tool  string
	Score float64
}

func (r ScenarioRank) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Tool, r.Score})
}

// OverallRank is one entry of the overall ranking, ordered by average score.
// It marshals as a three-element array carrying the tool's full summary.
type OverallRank struct {
	Tool         string
	AverageScore float64
	Metrics      SummaryMetrics
}

func (r OverallRank) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Tool, r.AverageScore, r.Metrics})
}

// ScenarioComparison holds every tool's successful outcome for one scenario
// plus the score-descending ranking. It marshals flat: one key per tool
// alongside a "ranking" key.
type ScenarioComparison struct {
	Outcomes map[string]*ScenarioOutcome
	Ranking  []ScenarioRank
}

func (sc *ScenarioComparison) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(sc.Outcomes)+1)
	for tool, out := range sc.Outcomes {
		obj[tool] = out
	}
	obj["ranking"] = sc.Ranking
	return json.Marshal(obj)
}

// ModuleUsage records how widely one catalog module was adopted across the
// evaluated tools.
type ModuleUsage struct {
	UsageFrequency float64  `json:"usage_frequency"`
	UsedByTools    []string `json:"used_by_tools"`
}

// CategoryStats summarizes one tool's scores in one category across its
// completed scenarios.
type CategoryStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"std_dev"`
}

// ConsistencyEntry buckets a tool's score spread into a coarse rating.
type ConsistencyEntry struct {
	ScoreStdDev       float64 `json:"score_std_dev"`
	ConsistencyRating string  `json:"consistency_rating"`
}

// DetailedAnalysis is the statistical block of the comparison artifact.
type DetailedAnalysis struct {
	ModuleUsage map[string]ModuleUsage              `json:"module_usage_analysis"`
	ByCategory  map[string]map[string]CategoryStats `json:"performance_by_category"`
	Consistency map[string]ConsistencyEntry         `json:"consistency_analysis"`
}

// Comparison is the cross-tool analysis artifact written as
// comparison_results.json.
type Comparison struct {
	ComparisonID        string                         `json:"comparison_id"`
	ComparisonTimestamp string                         `json:"comparison_timestamp"`
	ToolsEvaluated      []string                       `json:"tools_evaluated"`
	ScenarioComparison  map[string]*ScenarioComparison `json:"scenario_comparison"`
	OverallRanking      []OverallRank                  `json:"overall_ranking"`
	DetailedAnalysis    DetailedAnalysis               `json:"detailed_analysis"`
}

// CompareTools builds the cross-tool comparison over the given results and
// writes comparison_results.json to outDir. Failed and missing scenario
// outcomes never contribute to rankings or statistics.
func (r *Runner) CompareTools(results []*ToolResult, outDir string) (*Comparison, error) {
	cmp := &Comparison{
		ComparisonID:        uuid.NewString(),
		ComparisonTimestamp: time.Now().Format(time.RFC3339),
		ScenarioComparison:  make(map[string]*ScenarioComparison),
	}
	for _, res := range results {
		cmp.ToolsEvaluated = append(cmp.ToolsEvaluated, res.ToolName)
	}

	for _, name := range scenario.Names() {
		sc := &ScenarioComparison{Outcomes: make(map[string]*ScenarioOutcome)}
		for _, res := range results {
			out, ok := res.ScenarioResults[name]
			if !ok || out.Failed() {
				continue
			}
			sc.Outcomes[res.ToolName] = out
			sc.Ranking = append(sc.Ranking, ScenarioRank{Tool: res.ToolName, Score: out.TotalScore})
		}
		sort.SliceStable(sc.Ranking, func(i, j int) bool {
			return sc.Ranking[i].Score > sc.Ranking[j].Score
		})
		cmp.ScenarioComparison[name] = sc
	}

	for _, res := range results {
		if res.SummaryMetrics.ScenariosCompleted == 0 {
			continue
		}
		cmp.OverallRanking = append(cmp.OverallRanking, OverallRank{
			Tool:         res.ToolName,
			AverageScore: res.SummaryMetrics.AverageScore,
			Metrics:      res.SummaryMetrics,
		})
	}
	sort.SliceStable(cmp.OverallRanking, func(i, j int) bool {
		return cmp.OverallRanking[i].AverageScore > cmp.OverallRanking[j].AverageScore
	})

	cmp.DetailedAnalysis = detailedAnalysis(results)

	if err := writeJSON(filepath.Join(outDir, "comparison_results.json"), cmp); err != nil {
		return nil, err
	}
	logging.Batch("comparison %s: %d tools ranked", cmp.ComparisonID, len(cmp.OverallRanking))
	return cmp, nil
}

func detailedAnalysis(results []*ToolResult) DetailedAnalysis {
	analysis := DetailedAnalysis{
		ModuleUsage: make(map[string]ModuleUsage),
		ByCategory:  make(map[string]map[string]CategoryStats),
		Consistency: make(map[string]ConsistencyEntry),
	}

	// Module adoption across tools. Frequency is over all evaluated tools,
	// including those that used nothing.
	moduleTools := make(map[string][]string)
	for _, res := range results {
		seen := make(map[string]bool)
		for _, out := range res.ScenarioResults {
			if out.Failed() {
				continue
			}
			for _, mod := range out.ModulesUsed {
				if !seen[mod] {
					seen[mod] = true
					moduleTools[mod] = append(moduleTools[mod], res.ToolName)
				}
			}
		}
	}
	for mod, tools := range moduleTools {
		analysis.ModuleUsage[mod] = ModuleUsage{
			UsageFrequency: float64(len(tools)) / float64(len(results)),
			UsedByTools:    tools,
		}
	}

	for _, category := range scoreCategories {
		perTool := make(map[string]CategoryStats)
		for _, res := range results {
			var scores []float64
			for _, name := range scenario.Names() {
				if out, ok := res.ScenarioResults[name]; ok && !out.Failed() {
					scores = append(scores, out.categoryScore(category))
				}
			}
			if len(scores) == 0 {
				continue
			}
			perTool[res.ToolName] = CategoryStats{
				Average: mean(scores),
				Min:     minOf(scores),
				Max:     maxOf(scores),
				StdDev:  sampleStdDev(scores),
			}
		}
		analysis.ByCategory[category] = perTool
	}

	for _, res := range results {
		if res.SummaryMetrics.ScenariosCompleted == 0 {
			continue
		}
		stdDev := res.SummaryMetrics.ScoreStdDev
		analysis.Consistency[res.ToolName] = ConsistencyEntry{
			ScoreStdDev:       stdDev,
			ConsistencyRating: rateConsistency(stdDev),
		}
	}

	return analysis
}

// rateConsistency buckets a standard deviation of total scores.
func rateConsistency(stdDev float64) string {
	switch {
	case stdDev < 1.0:
		return "Very Consistent"
	case stdDev < 2.0:
		return "Consistent"
	case stdDev < 3.0:
		return "Moderately Consistent"
	default:
		return "Inconsistent"
	}
}
