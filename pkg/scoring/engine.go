package scoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/recoforge/recoforge/pkg/scoring/transform"
)

// Scorer produces a raw, unbounded score for an item from a single signal.
type Scorer[T any] interface {
	Name() string
	Score(ctx context.Context, item T) (int, error)
}

// Recommendation is a ranked item with its total score and the bounded
// contribution of each signal, keyed by scorer name.
type Recommendation[T any] struct {
	Item  T              `json:"item"`
	Score int            `json:"score"`
	Parts map[string]int `json:"parts"`
}

type strategy[T any] struct {
	scorer      Scorer[T]
	transformer transform.ScoreTransformer[T]
}

// Engine ranks candidate items by applying every registered scoring
// strategy in order and summing the transformed partial scores.
// Evaluation is strictly sequential. Once registration is done, an Engine
// is safe for concurrent Rank calls.
type Engine[T any] struct {
	logger     *zerolog.Logger
	strategies []strategy[T]
}

func NewEngine[T any](logger *zerolog.Logger) *Engine[T] {
	return &Engine[T]{logger: logger}
}

// Register adds a scoring strategy. A nil transformer means the raw score
// is used as-is.
func (e *Engine[T]) Register(scorer Scorer[T], transformer transform.ScoreTransformer[T]) {
	if transformer == nil {
		transformer = transform.NewIdentity[T]()
	}

	e.strategies = append(e.strategies, strategy[T]{
		scorer:      scorer,
		transformer: transformer,
	})
}

// Rank scores all candidates and returns them ordered by total score,
// highest first. A non-positive limit returns all candidates.
func (e *Engine[T]) Rank(ctx context.Context, items []T, limit int) ([]Recommendation[T], error) {
	recs := make([]Recommendation[T], 0, len(items))

	for _, item := range items {
		rec := Recommendation[T]{
			Item:  item,
			Parts: make(map[string]int, len(e.strategies)),
		}

		for _, s := range e.strategies {
			raw, err := s.scorer.Score(ctx, item)
			if err != nil {
				return nil, fmt.Errorf("score with %s: %w", s.scorer.Name(), err)
			}

			bounded := s.transformer.Transform(item, raw)
			rec.Parts[s.scorer.Name()] = bounded
			rec.Score += bounded
		}

		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	e.logger.Debug().
		Int("candidates", len(items)).
		Int("returned", len(recs)).
		Msg("Ranked candidates")

	return recs, nil
}
