package analyzer

// moduleUsageScore scores internal module adoption. Without requirements it
// is a step function of the utilized-module count; with requirements it is
// 8 points of required coverage plus 2 points of optional coverage.
func moduleUsageScore(m *Metrics, req *Requirements) float64 {
	if req == nil {
		switch n := len(m.ModulesUtilized); {
		case n == 0:
			return 0.0
		case n <= 2:
			return 3.0
		case n <= 4:
			return 6.0
		case n <= 6:
			return 8.0
		default:
			return 10.0
		}
	}

	var requiredScore, optionalScore float64
	if len(req.RequiredModules) > 0 {
		found := 0
		for _, mod := range req.RequiredModules {
			if m.HasModule(mod) {
				found++
			}
		}
		requiredScore = float64(found) / float64(len(req.RequiredModules)) * 8.0
	}
	if len(req.OptionalModules) > 0 {
		found := 0
		for _, mod := range req.OptionalModules {
			if m.HasModule(mod) {
				found++
			}
		}
		optionalScore = float64(found) / float64(len(req.OptionalModules)) * 2.0
	}

	return min10(requiredScore + optionalScore)
}

// functionCorrectnessScore scores API usage. When required functions are
// specified it is exactly the found/required ratio scaled to 10; otherwise
// a diversity proxy over distinct function/type/constant hits.
func functionCorrectnessScore(m *Metrics, req *Requirements) float64 {
	if req != nil && len(req.RequiredFunctions) > 0 {
		found := 0
		for _, fn := range req.RequiredFunctions {
			if m.HasFunction(fn) {
				found++
			}
		}
		return float64(found) / float64(len(req.RequiredFunctions)) * 10.0
	}

	diversity := float64(len(m.FunctionsUsed))*0.5 +
		float64(len(m.TypesUsed))*0.3 +
		float64(len(m.ConstantsUsed))*0.2
	return min10(diversity)
}

// architectureScore starts at a 5.0 base and awards structure bonuses, with
// a penalty for trivially short submissions.
func architectureScore(m *Metrics) float64 {
	score := 5.0

	if m.FunctionDefinitions > 0 {
		score += 1.0
	}

	counts := make(map[string]int, len(m.ArchPatterns))
	for _, p := range m.ArchPatterns {
		counts[p.Category] = p.Count
	}
	if counts["struct_definitions"] > 0 {
		score += 1.0
	}
	if counts["static_variables"] > 0 {
		score += 0.5
	}
	if counts["macro_definitions"] > 0 {
		score += 0.5
	}
	if counts["enum_definitions"] > 0 {
		score += 1.0
	}

	// Likely incomplete submission.
	if m.TotalLines < 20 {
		score -= 2.0
	}

	return clamp(score, 0.0, 10.0)
}

// errorHandlingScore is a step function of the total error-pattern count.
func errorHandlingScore(m *Metrics) float64 {
	switch n := len(m.ErrorPatterns); {
	case n == 0:
		return 0.0
	case n <= 2:
		return 3.0
	case n <= 5:
		return 6.0
	case n <= 8:
		return 8.0
	default:
		return 10.0
	}
}

func min10(v float64) float64 {
	if v > 10.0 {
		return 10.0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
