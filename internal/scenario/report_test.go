package scenario

import "testing"

func TestStatusGlyph(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{1.0, "✅"},
		{0.8, "✅"},
		{0.79, "⚠️"},
		{0.5, "⚠️"},
		{0.49, "❌"},
		{0.0, "❌"},
	}
	for _, tc := range cases {
		if got := statusGlyph(tc.score); got != tc.want {
			t.Errorf("statusGlyph(%.2f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"resource_cleanup": "Resource Cleanup",
		"basic_gpio":       "Basic Gpio",
		"timing_accuracy":  "Timing Accuracy",
		"alert_system":     "Alert System",
		"single":           "Single",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
