// Package analyzer implements the lexical analysis engine that scores
// generated C/C++ source against the internal module catalog. All signals
// are derived from regex matching over raw text - there is deliberately no
// AST or compiler frontend, so the scoring stays calibrated to the same
// loose heuristics the evaluation framework was tuned on.
package analyzer

import (
	"regexp"
	"strings"

	"modeval/internal/catalog"
	"modeval/internal/logging"
)

// Score weights for the aggregate. These are fixed: scenario configs carry
// weight_adjustments, but the aggregate never consults them (see the
// scenario package).
const (
	weightModuleUsage         = 0.4
	weightFunctionCorrectness = 0.3
	weightArchitecture        = 0.2
	weightErrorHandling       = 0.1
)

// ArchPattern records one architecture pattern category found in the source.
type ArchPattern struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Examples []string `json:"examples"` // first 3 literal matches
}

// Metrics is the raw signal record built during one analysis pass. Symbol
// hits are appended per module check and are not deduplicated across
// modules; each symbol is recorded at most once per owning module
// (presence, not frequency).
type Metrics struct {
	IncludesFound       []string      `json:"includes_found"`
	FunctionsUsed       []string      `json:"functions_used"`
	TypesUsed           []string      `json:"types_used"`
	ConstantsUsed       []string      `json:"constants_used"`
	ModulesUtilized     []string      `json:"modules_utilized"`
	ErrorPatterns       []string      `json:"error_handling_patterns"`
	ArchPatterns        []ArchPattern `json:"architecture_patterns"`
	TotalLines          int           `json:"total_lines"`
	CommentLines        int           `json:"comment_lines"`
	FunctionDefinitions int           `json:"function_definitions"`
}

// HasModule reports whether the named module was judged utilized.
func (m *Metrics) HasModule(name string) bool {
	for _, mod := range m.ModulesUtilized {
		if mod == name {
			return true
		}
	}
	return false
}

// HasFunction reports whether the named function was recorded as used.
func (m *Metrics) HasFunction(name string) bool {
	for _, fn := range m.FunctionsUsed {
		if fn == name {
			return true
		}
	}
	return false
}

// Result bundles the four sub-scores, the weighted aggregate, and the raw
// metrics of one analysis run. All scores are in [0.0, 10.0].
type Result struct {
	TotalScore               float64 `json:"total_score"`
	ModuleUsageScore         float64 `json:"module_usage_score"`
	FunctionCorrectnessScore float64 `json:"function_correctness_score"`
	ArchitectureScore        float64 `json:"architecture_score"`
	ErrorHandlingScore       float64 `json:"error_handling_score"`
	Metrics                  Metrics `json:"detailed_metrics"`
}

// Requirements narrows scoring to a specific capability set. When nil, the
// analyzer falls back to generic count-based scoring.
type Requirements struct {
	RequiredModules   []string
	OptionalModules   []string
	RequiredFunctions []string
}

// Analyzer scans source text against the module catalog. It is stateless
// across calls and safe for concurrent use.
type Analyzer struct {
	catalog *catalog.Catalog

	// Per-symbol patterns, compiled once at construction.
	funcPatterns   map[string]*regexp.Regexp
	symbolPatterns map[string]*regexp.Regexp
}

// New creates an analyzer bound to the given catalog.
func New(c *catalog.Catalog) *Analyzer {
	a := &Analyzer{
		catalog:        c,
		funcPatterns:   make(map[string]*regexp.Regexp),
		symbolPatterns: make(map[string]*regexp.Regexp),
	}
	for _, mod := range c.All() {
		for _, fn := range mod.Functions {
			if _, ok := a.funcPatterns[fn]; !ok {
				a.funcPatterns[fn] = regexp.MustCompile(`\b` + regexp.QuoteMeta(fn) + `\s*\(`)
			}
		}
		for _, sym := range append(append([]string{}, mod.Types...), mod.Constants...) {
			if _, ok := a.symbolPatterns[sym]; !ok {
				a.symbolPatterns[sym] = regexp.MustCompile(`\b` + regexp.QuoteMeta(sym) + `\b`)
			}
		}
	}
	return a
}

// Analyze scans source for module usage, error-handling idioms, and
// architecture idioms, then derives the four sub-scores and the weighted
// total. Any text input is processed best-effort; non-C content simply
// scores near zero.
func (a *Analyzer) Analyze(source string, req *Requirements) Result {
	m := Metrics{
		IncludesFound:   []string{},
		FunctionsUsed:   []string{},
		TypesUsed:       []string{},
		ConstantsUsed:   []string{},
		ModulesUtilized: []string{},
		ErrorPatterns:   []string{},
		ArchPatterns:    []ArchPattern{},
	}

	// Basic code statistics. Comment counting is a lexical heuristic: a
	// line "counts" when its trimmed content starts with // or /*, so
	// continuation lines of block comments are missed and comment markers
	// inside string literals are miscounted.
	lines := strings.Split(source, "\n")
	m.TotalLines = len(lines)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
			m.CommentLines++
		}
	}
	m.FunctionDefinitions = len(funcDefPattern.FindAllString(source, -1))

	// Included headers.
	for _, match := range includePattern.FindAllStringSubmatch(source, -1) {
		m.IncludesFound = append(m.IncludesFound, match[1])
	}

	// Module utilization plus per-module symbol presence. A symbol match is
	// word-bounded but not call-aware: it fires anywhere in the text,
	// including comments and string literals.
	for _, mod := range a.catalog.All() {
		if !headerIncluded(mod, m.IncludesFound) {
			continue
		}
		m.ModulesUtilized = append(m.ModulesUtilized, mod.Name)

		for _, fn := range mod.Functions {
			if a.funcPatterns[fn].MatchString(source) {
				m.FunctionsUsed = append(m.FunctionsUsed, fn)
			}
		}
		for _, typ := range mod.Types {
			if a.symbolPatterns[typ].MatchString(source) {
				m.TypesUsed = append(m.TypesUsed, typ)
			}
		}
		for _, c := range mod.Constants {
			if a.symbolPatterns[c].MatchString(source) {
				m.ConstantsUsed = append(m.ConstantsUsed, c)
			}
		}
	}

	// Error-handling idioms. Overlapping matches across the four patterns
	// are all counted; this measures density, not distinct guard sites.
	for _, pattern := range errorPatterns {
		m.ErrorPatterns = append(m.ErrorPatterns, pattern.FindAllString(source, -1)...)
	}

	// Architecture idioms, with up to 3 literal examples per category.
	for _, ap := range archPatterns {
		matches := ap.re.FindAllString(source, -1)
		if len(matches) == 0 {
			continue
		}
		examples := matches
		if len(examples) > 3 {
			examples = examples[:3]
		}
		m.ArchPatterns = append(m.ArchPatterns, ArchPattern{
			Category: ap.category,
			Count:    len(matches),
			Examples: examples,
		})
	}

	result := Result{
		ModuleUsageScore:         moduleUsageScore(&m, req),
		FunctionCorrectnessScore: functionCorrectnessScore(&m, req),
		ArchitectureScore:        architectureScore(&m),
		ErrorHandlingScore:       errorHandlingScore(&m),
		Metrics:                  m,
	}
	result.TotalScore = result.ModuleUsageScore*weightModuleUsage +
		result.FunctionCorrectnessScore*weightFunctionCorrectness +
		result.ArchitectureScore*weightArchitecture +
		result.ErrorHandlingScore*weightErrorHandling

	logging.AnalyzerDebug("analyzed %d lines: %d modules, %d functions, total %.1f",
		m.TotalLines, len(m.ModulesUtilized), len(m.FunctionsUsed), result.TotalScore)

	return result
}

// headerIncluded reports whether any captured include path references the
// module header, by basename or full path. Containment is intentionally
// loose ("xgpio_hal.h" matches both <xgpio_hal.h> and
// "internal_modules/hal/xgpio_hal.h") to accept either include style.
func headerIncluded(mod catalog.Descriptor, includes []string) bool {
	basename := mod.Header
	if idx := strings.LastIndex(basename, "/"); idx >= 0 {
		basename = basename[idx+1:]
	}
	for _, inc := range includes {
		if strings.Contains(inc, basename) || strings.Contains(inc, mod.Header) {
			return true
		}
	}
	return false
}
