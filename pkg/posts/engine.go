package posts

import (
	"github.com/rs/zerolog"

	"github.com/recoforge/recoforge/pkg/scoring"
	"github.com/recoforge/recoforge/pkg/scoring/transform"
)

// NewEngine wires the engagement and freshness scorers with Pareto
// transformers built from cfg.
func NewEngine(logger *zerolog.Logger, cfg *Config) *scoring.Engine[Post] {
	engine := scoring.NewEngine[Post](logger)

	engine.Register(
		UpvoteScorer{},
		transform.NewPareto[Post](cfg.MaxScore, cfg.UpvoteEightyPercentLevel, cfg.MinimumThreshold),
	)
	engine.Register(
		CommentScorer{},
		transform.NewPareto[Post](cfg.MaxScore, cfg.CommentEightyPercentLevel, cfg.MinimumThreshold),
	)
	// Freshness is not an engagement signal, so the noise threshold
	// does not apply to it.
	engine.Register(
		NewFreshnessScorer(cfg.FreshnessWindowHours),
		transform.NewPareto[Post](cfg.MaxScore, cfg.FreshnessEightyPercentLevel, 0),
	)

	return engine
}
