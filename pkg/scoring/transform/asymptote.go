package transform

import (
	"fmt"
	"math"
)

// fitSteps bounds the bisection when fitting the growth parameter.
const fitSteps = 50

// Asymptote bounds a raw score with a logarithmic curve that approaches its
// limit much more slowly than Pareto, leaving headroom for outliers:
//
//	f(x) = limit * ln(1 + k*x) / (1 + ln(1 + k*x))
//
// The growth parameter k is fitted at construction so that the configured
// eighty-percent level maps to ~80% of the limit.
type Asymptote[T any] struct {
	limit            int
	k                float64
	minimumThreshold int
}

// NewAsymptote fits k by bisection. It fails when no curve can hit the 80%
// target, i.e. when limit or eightyPercentLevel is not positive.
func NewAsymptote[T any](limit, eightyPercentLevel, minimumThreshold int) (Asymptote[T], error) {
	if limit <= 0 {
		return Asymptote[T]{}, fmt.Errorf("limit must be positive, got %d", limit)
	}

	k := fitGrowthRate(float64(eightyPercentLevel), 0.8, 1.0, fitSteps)
	if k <= 0 {
		return Asymptote[T]{}, fmt.Errorf("fit growth rate for eighty percent level %d", eightyPercentLevel)
	}

	return Asymptote[T]{
		limit:            limit,
		k:                k,
		minimumThreshold: minimumThreshold,
	}, nil
}

func (t Asymptote[T]) Transform(_ T, score int) int {
	if score < t.minimumThreshold {
		return 0
	}

	return int(math.Round(float64(t.limit) * logAsymptote(float64(score), 1.0, t.k)))
}

// logAsymptote computes a logarithmic growth curve that asymptotically
// approaches limit. At x = 0 it is 0; it increases monotonically and never
// exceeds limit. Negative inputs are clamped to zero.
func logAsymptote(x, limit, k float64) float64 {
	if x < 0 {
		x = 0
	}

	ln := math.Log(1 + k*x)
	return limit * ln / (1 + ln)
}

// fitGrowthRate finds a growth parameter k for logAsymptote so that a given
// raw input x maps to the desired normalized target. Returns -1 when the
// input is infeasible (x <= 0 or target outside (0, limit)).
func fitGrowthRate(x, target, limit float64, steps int) float64 {
	if x <= 0 || target <= 0 || target >= limit {
		return -1
	}

	// Binary search bounds for k
	low := 1e-9     // very flat growth
	high := 10.0    // very steep growth
	epsilon := 1e-9 // convergence tolerance

	for i := 0; i < steps; i++ {
		mid := (low + high) / 2
		value := logAsymptote(x, limit, mid)

		if math.Abs(value-target) < epsilon {
			return mid
		}

		if value < target {
			low = mid // increase k to steepen curve
		} else {
			high = mid // decrease k to flatten curve
		}
	}

	return (low + high) / 2
}
