// Package batch orchestrates multi-tool evaluations: it runs every tool's
// generated code through all scenarios, aggregates summary statistics, and
// produces comparison artifacts and reports.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"modeval/internal/logging"
	"modeval/internal/scenario"
)

// ScenarioOutcome is one tool's result for one scenario. A failed evaluation
// carries only Err; the artifact then collapses to {"error": "..."} and the
// entry is excluded from summary statistics and rankings.
type ScenarioOutcome struct {
	Err string

	TotalScore               float64
	ScenarioScore            float64
	ModuleUsageScore         float64
	FunctionCorrectnessScore float64
	ArchitectureScore        float64
	ErrorHandlingScore       float64
	ModulesUsed              []string
	FunctionsUsedCount       int
	RequirementCompliance    map[string]float64
}

// Failed reports whether this outcome recorded an error instead of scores.
func (o *ScenarioOutcome) Failed() bool { return o.Err != "" }

func (o *ScenarioOutcome) MarshalJSON() ([]byte, error) {
	if o.Failed() {
		return json.Marshal(map[string]string{"error": o.Err})
	}
	return json.Marshal(map[string]any{
		"total_score":                o.TotalScore,
		"scenario_score":             o.ScenarioScore,
		"module_usage_score":         o.ModuleUsageScore,
		"function_correctness_score": o.FunctionCorrectnessScore,
		"architecture_score":         o.ArchitectureScore,
		"error_handling_score":       o.ErrorHandlingScore,
		"modules_used":               o.ModulesUsed,
		"functions_used_count":       o.FunctionsUsedCount,
		"requirement_compliance":     o.RequirementCompliance,
	})
}

// SummaryMetrics aggregates the total scores of one tool's completed
// scenarios. ScenariosCompleted counts only scored outcomes; errors and
// missing files are excluded.
type SummaryMetrics struct {
	AverageScore       float64 `json:"average_score"`
	MedianScore        float64 `json:"median_score"`
	MinScore           float64 `json:"min_score"`
	MaxScore           float64 `json:"max_score"`
	ScoreStdDev        float64 `json:"score_std_dev"`
	ScenariosCompleted int     `json:"scenarios_completed"`
	TotalScenarios     int     `json:"total_scenarios"`
}

// MarshalJSON emits an empty object when no scenario completed, so the
// artifact distinguishes "nothing ran" from a legitimate all-zero summary.
func (s SummaryMetrics) MarshalJSON() ([]byte, error) {
	if s.ScenariosCompleted == 0 {
		return []byte("{}"), nil
	}
	type plain SummaryMetrics
	return json.Marshal(plain(s))
}

// ToolResult is the full evaluation record for one tool across all scenarios.
type ToolResult struct {
	ToolName            string                      `json:"tool_name"`
	EvaluationTimestamp string                      `json:"evaluation_timestamp"`
	ScenarioResults     map[string]*ScenarioOutcome `json:"scenario_results"`
	SummaryMetrics      SummaryMetrics              `json:"summary_metrics"`
}

// CompletedScores returns the total scores of successful outcomes in
// scenario evaluation order.
func (t *ToolResult) CompletedScores() []float64 {
	var scores []float64
	for _, name := range scenario.Names() {
		if out, ok := t.ScenarioResults[name]; ok && !out.Failed() {
			scores = append(scores, out.TotalScore)
		}
	}
	return scores
}

// Runner drives batch evaluations. With Parallel set, the per-scenario
// evaluations of each tool fan out concurrently; outcomes are identical to a
// sequential run because the evaluator is stateless and each scenario reads
// its own file.
type Runner struct {
	evaluator *scenario.Evaluator
	Parallel  bool
}

// NewRunner creates a batch runner over the given evaluator.
func NewRunner(ev *scenario.Evaluator) *Runner {
	return &Runner{evaluator: ev}
}

// EvaluateTool runs every scenario against <codeDir>/<scenario>.c and writes
// <outDir>/<toolName>_results.json. Missing code files are skipped with a
// warning; per-scenario evaluation failures are recorded in the result
// rather than aborting the batch.
func (r *Runner) EvaluateTool(toolName, codeDir, outDir string) (*ToolResult, error) {
	result := &ToolResult{
		ToolName:            toolName,
		EvaluationTimestamp: time.Now().Format(time.RFC3339),
		ScenarioResults:     make(map[string]*ScenarioOutcome),
	}

	names := scenario.Names()
	outcomes := make([]*ScenarioOutcome, len(names))

	if r.Parallel {
		var g errgroup.Group
		for i, name := range names {
			g.Go(func() error {
				outcomes[i] = r.evaluateOne(toolName, name, codeDir)
				return nil
			})
		}
		// Evaluation errors are captured per outcome; the group never fails.
		_ = g.Wait()
	} else {
		for i, name := range names {
			outcomes[i] = r.evaluateOne(toolName, name, codeDir)
		}
	}

	var scores []float64
	for i, name := range names {
		out := outcomes[i]
		if out == nil {
			continue // code file missing
		}
		result.ScenarioResults[name] = out
		if !out.Failed() {
			scores = append(scores, out.TotalScore)
		}
	}

	if len(scores) > 0 {
		result.SummaryMetrics = SummaryMetrics{
			AverageScore:       mean(scores),
			MedianScore:        median(scores),
			MinScore:           minOf(scores),
			MaxScore:           maxOf(scores),
			ScoreStdDev:        sampleStdDev(scores),
			ScenariosCompleted: len(scores),
			TotalScenarios:     len(names),
		}
	}

	path := filepath.Join(outDir, toolName+"_results.json")
	if err := writeJSON(path, result); err != nil {
		return nil, err
	}
	logging.Batch("evaluated %s: %d/%d scenarios, average %.1f",
		toolName, len(scores), len(names), result.SummaryMetrics.AverageScore)
	return result, nil
}

// evaluateOne returns nil when the scenario's code file does not exist.
func (r *Runner) evaluateOne(toolName, name, codeDir string) *ScenarioOutcome {
	path := filepath.Join(codeDir, name+".c")
	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.BatchWarn("code file not found for %s - %s", toolName, name)
			return nil
		}
		return &ScenarioOutcome{Err: err.Error()}
	}

	ev, err := r.evaluator.Evaluate(name, string(source))
	if err != nil {
		logging.BatchError("evaluating %s - %s: %v", toolName, name, err)
		return &ScenarioOutcome{Err: err.Error()}
	}

	return &ScenarioOutcome{
		TotalScore:               ev.Analysis.TotalScore,
		ScenarioScore:            ev.Result.ScenarioScore,
		ModuleUsageScore:         ev.Analysis.ModuleUsageScore,
		FunctionCorrectnessScore: ev.Analysis.FunctionCorrectnessScore,
		ArchitectureScore:        ev.Analysis.ArchitectureScore,
		ErrorHandlingScore:       ev.Analysis.ErrorHandlingScore,
		ModulesUsed:              ev.Analysis.Metrics.ModulesUtilized,
		FunctionsUsedCount:       len(ev.Analysis.Metrics.FunctionsUsed),
		RequirementCompliance:    ev.Result.RequirementCompliance,
	}
}

// EvaluateAll evaluates every subdirectory of toolsDir as one tool, in
// lexical order. A tool whose evaluation fails outright (artifact write
// error) is logged and skipped, matching the per-tool isolation of the rest
// of the batch layer.
func (r *Runner) EvaluateAll(toolsDir, outDir string) ([]*ToolResult, error) {
	entries, err := os.ReadDir(toolsDir)
	if err != nil {
		return nil, fmt.Errorf("read tools directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var results []*ToolResult
	for _, name := range names {
		res, err := r.EvaluateTool(name, filepath.Join(toolsDir, name), outDir)
		if err != nil {
			logging.BatchError("tool %s failed: %v", name, err)
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
