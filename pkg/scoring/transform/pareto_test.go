package transform

import (
	"math"
	"testing"
)

// TestPareto_EightyPercentLevel checks the calibration property: the raw
// score equal to the configured level maps to exactly 80% of the max.
func TestPareto_EightyPercentLevel(t *testing.T) {
	tr := NewPareto[string](100, 10, 0)

	if got := tr.Transform("item", 10); got != 80 {
		t.Errorf("expected 80 at the eighty percent level, got %d", got)
	}
}

// TestPareto_EightyPercentProperty verifies the calibration holds across
// configurations, within rounding tolerance of 1.
func TestPareto_EightyPercentProperty(t *testing.T) {
	configs := []struct {
		maxScore int
		level    int
	}{
		{100, 10},
		{1000, 250},
		{50, 7},
		{10, 1},
		{500, 365},
	}

	for _, c := range configs {
		tr := NewPareto[string](c.maxScore, c.level, 0)

		want := int(math.Round(0.8 * float64(c.maxScore)))
		got := tr.Transform("item", c.level)
		if got < want-1 || got > want+1 {
			t.Errorf("expected ~%d at level %d with max %d, got %d", want, c.level, c.maxScore, got)
		}
	}
}

func TestPareto_Zero(t *testing.T) {
	tr := NewPareto[string](100, 10, 0)

	if got := tr.Transform("item", 0); got != 0 {
		t.Errorf("expected 0 at raw score 0, got %d", got)
	}
}

// TestPareto_AsymptoticBound checks that very large raw scores saturate at
// the maximum.
func TestPareto_AsymptoticBound(t *testing.T) {
	tr := NewPareto[string](100, 10, 0)

	if got := tr.Transform("item", 1000); got != 100 {
		t.Errorf("expected max score 100 at raw score 1000, got %d", got)
	}
}

// TestPareto_Monotonic checks the function is non-decreasing and stays in
// [0, maxScore] for nonnegative raw scores.
func TestPareto_Monotonic(t *testing.T) {
	tr := NewPareto[string](100, 10, 0)

	prev := -1
	for x := 0; x <= 200; x++ {
		v := tr.Transform("item", x)
		if v < prev {
			t.Errorf("expected non-decreasing output, got %d after %d at raw score %d", v, prev, x)
		}
		if v < 0 || v > 100 {
			t.Errorf("expected output in [0, 100], got %d at raw score %d", v, x)
		}
		prev = v
	}
}

func TestPareto_MinimumThreshold(t *testing.T) {
	tr := NewPareto[string](100, 10, 5)

	if got := tr.Transform("item", 4); got != 0 {
		t.Errorf("expected 0 below the minimum threshold, got %d", got)
	}

	// At the threshold the formula applies as usual.
	want := int(math.Round(100 * (1 - math.Exp(-math.Log(5)/10*5))))
	if got := tr.Transform("item", 5); got != want {
		t.Errorf("expected %d at the minimum threshold, got %d", want, got)
	}
}

// TestPareto_ItemIgnored checks that the item carries no weight in the
// computation; it exists for interface uniformity with other strategies.
func TestPareto_ItemIgnored(t *testing.T) {
	tr := NewPareto[string](100, 10, 0)

	if a, b := tr.Transform("first", 10), tr.Transform("second", 10); a != b {
		t.Errorf("expected identical outputs regardless of item, got %d and %d", a, b)
	}
}
