package transform

import "math"

// Pareto bounds a raw score with an exponential saturation curve:
//
//	f(x) = maxScore * (1 - e^(-alpha*x)), where alpha = ln(5)/h
//
// and h is the raw score that should map to 80% of maxScore. The curve
// models diminishing returns: early raw points move the output a lot,
// later ones barely at all.
//
// Example:
//
//	Max score 100, 80% reached at 10 upvotes
//	=> t := NewPareto[Post](100, 10, 0)
//
//	t.Transform(post, 10)
//	=> 80
//
// Raw scores below minimumThreshold map to 0, suppressing noise from
// negligible signals.
type Pareto[T any] struct {
	maxScore           int
	eightyPercentLevel int
	minimumThreshold   int
}

// NewPareto constructs the transformer. eightyPercentLevel must be nonzero;
// it is not validated here, and a zero value produces a meaningless result.
func NewPareto[T any](maxScore, eightyPercentLevel, minimumThreshold int) Pareto[T] {
	return Pareto[T]{
		maxScore:           maxScore,
		eightyPercentLevel: eightyPercentLevel,
		minimumThreshold:   minimumThreshold,
	}
}

func (t Pareto[T]) Transform(_ T, score int) int {
	if score < t.minimumThreshold {
		return 0
	}

	alpha := math.Log(5) / float64(t.eightyPercentLevel)
	exp := math.Exp(-alpha * float64(score))
	return int(math.Round(float64(t.maxScore) * (1 - exp)))
}
