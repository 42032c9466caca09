package bias

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{0.0, Low},
		{0.03, Low},
		{0.0999, Low},
		{0.10, Medium}, // lower bound is closed
		{0.15, Medium},
		{0.1999, Medium},
		{0.20, High}, // lower bound is closed
		{0.25, High},
		{1.0, High},
		{3.7, High},
	}
	for _, tt := range tests {
		got := Classify(tt.score)
		if got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyNegative(t *testing.T) {
	// Negative scores fall below every threshold.
	for _, s := range []float64{-0.01, -1, -100} {
		if got := Classify(s); got != Low {
			t.Errorf("Classify(%v) = %s, want Low", s, got)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Low, "Low Bias"},
		{Medium, "Medium Bias"},
		{High, "High Bias"},
	}
	for _, tt := range tests {
		if got := tt.level.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestColorDistinctPerLevel(t *testing.T) {
	seen := map[string]Level{}
	for _, l := range []Level{Low, Medium, High} {
		c := l.Color()
		if c == "" {
			t.Errorf("%s.Color() is empty", l)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("levels %s and %s share color %s", prev, l, c)
		}
		seen[c] = l
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.08, 0.08},
		{1, 1},
		{1.3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
