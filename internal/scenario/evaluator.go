package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"modeval/internal/analyzer"
	"modeval/internal/catalog"
	"modeval/internal/logging"
)

// ErrUnknownScenario is returned for scenario names outside the fixed set.
var ErrUnknownScenario = errors.New("unknown scenario")

// Result holds the scenario-specific evaluation outcome. Compliance and
// performance fractions are in [0, 1] by construction.
type Result struct {
	ScenarioScore         float64            `json:"scenario_score"`
	RequirementCompliance map[string]float64 `json:"requirement_compliance"`
	PerformanceAnalysis   map[string]float64 `json:"performance_analysis"`
	Recommendations       []string           `json:"recommendations"`

	// Insertion order of the compliance / performance keys, used by the
	// report renderer. Not part of the JSON artifact.
	ComplianceOrder  []string `json:"-"`
	PerformanceOrder []string `json:"-"`
}

// Evaluation bundles the generic analysis, the scenario result, and the
// rendered report for one (scenario, source) pair.
type Evaluation struct {
	Scenario string
	Analysis analyzer.Result
	Result   Result
	Report   string
}

// Evaluator dispatches source text to the analyzer and the matching
// scenario scoring routine.
type Evaluator struct {
	analyzer *analyzer.Analyzer
	configs  map[string]Config
}

// NewEvaluator creates an evaluator with the built-in scenario configs.
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithConfigs(DefaultConfigs())
}

// NewEvaluatorWithConfigs creates an evaluator over custom configs, e.g.
// loaded via LoadOverrides.
func NewEvaluatorWithConfigs(configs map[string]Config) *Evaluator {
	return &Evaluator{
		analyzer: analyzer.New(catalog.Default()),
		configs:  configs,
	}
}

// Config returns the configuration for a scenario name.
func (e *Evaluator) Config(name string) (Config, bool) {
	cfg, ok := e.configs[name]
	return cfg, ok
}

// Evaluate analyzes source against the named scenario. Unknown names fail
// hard with ErrUnknownScenario and produce no partial result.
func (e *Evaluator) Evaluate(name, source string) (*Evaluation, error) {
	cfg, ok := e.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}

	analysis := e.analyzer.Analyze(source, &analyzer.Requirements{
		RequiredModules:   cfg.RequiredModules,
		OptionalModules:   cfg.OptionalModules,
		RequiredFunctions: cfg.RequiredFunctions,
	})

	var result Result
	switch name {
	case "basic_gpio":
		result = evaluateBasicGPIO(&analysis, cfg)
	case "sensor_reading":
		result = evaluateSensorReading(&analysis, cfg)
	case "motor_control":
		result = evaluateMotorControl(&analysis, cfg)
	case "protocol_gateway":
		result = evaluateProtocolGateway(&analysis, cfg)
	default:
		// A custom config map may carry names the dispatch does not know.
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}

	logging.Scenario("evaluated %s: total %.1f, scenario %.1f",
		name, analysis.TotalScore, result.ScenarioScore)

	ev := &Evaluation{
		Scenario: name,
		Analysis: analysis,
		Result:   result,
	}
	ev.Report = renderReport(ev)
	return ev, nil
}

// jsonArtifact is the on-disk shape of a single-scenario evaluation.
type jsonArtifact struct {
	Scenario        string             `json:"scenario"`
	Scores          map[string]float64 `json:"scores"`
	DetailedMetrics analyzer.Metrics   `json:"detailed_metrics"`
	Analysis        Result             `json:"scenario_analysis"`
	Report          string             `json:"report"`
}

// WriteJSON writes the evaluation to path as an indented JSON document.
func WriteJSON(path string, ev *Evaluation) error {
	artifact := jsonArtifact{
		Scenario: ev.Scenario,
		Scores: map[string]float64{
			"total_score":                ev.Analysis.TotalScore,
			"module_usage_score":         ev.Analysis.ModuleUsageScore,
			"function_correctness_score": ev.Analysis.FunctionCorrectnessScore,
			"architecture_score":         ev.Analysis.ArchitectureScore,
			"error_handling_score":       ev.Analysis.ErrorHandlingScore,
			"scenario_specific_score":    ev.Result.ScenarioScore,
		},
		DetailedMetrics: ev.Analysis.Metrics,
		Analysis:        ev.Result,
		Report:          ev.Report,
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal evaluation: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write evaluation: %w", err)
	}
	logging.Report("wrote scenario artifact: %s", path)
	return nil
}
