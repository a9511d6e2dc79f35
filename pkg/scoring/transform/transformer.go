package transform

// ScoreTransformer reshapes or bounds a raw score produced for an item.
//
// Implementations are immutable after construction, so a single instance is
// safe for concurrent use. The item is opaque to the transformer; strategies
// that only look at the numeric score ignore it.
type ScoreTransformer[T any] interface {
	Transform(item T, score int) int
}

// Identity is the no-transformation strategy: scores pass through unchanged.
type Identity[T any] struct{}

func NewIdentity[T any]() Identity[T] {
	return Identity[T]{}
}

func (Identity[T]) Transform(_ T, score int) int {
	return score
}
