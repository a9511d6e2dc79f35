package posts

// Config carries the scoring parameters for the post ranking engine.
//
// The eighty-percent levels must be positive: the Pareto transformer itself
// does not guard against a zero level, so the configuration boundary is
// where that constraint is enforced.
type Config struct {
	// MaxScore is the asymptotic upper bound each signal contributes.
	MaxScore int `env:"SCORING_MAX_SCORE,default=100" validate:"gt=0"`
	// UpvoteEightyPercentLevel is the upvote count at which the upvote
	// signal reaches 80% of MaxScore.
	UpvoteEightyPercentLevel int `env:"SCORING_UPVOTE_EIGHTY_PERCENT_LEVEL,default=200" validate:"gt=0"`
	// CommentEightyPercentLevel is the comment count at which the comment
	// signal reaches 80% of MaxScore.
	CommentEightyPercentLevel int `env:"SCORING_COMMENT_EIGHTY_PERCENT_LEVEL,default=50" validate:"gt=0"`
	// FreshnessWindowHours is how long a post keeps earning freshness score.
	FreshnessWindowHours int `env:"SCORING_FRESHNESS_WINDOW_HOURS,default=48" validate:"gt=0"`
	// FreshnessEightyPercentLevel is the remaining-hours value at which the
	// freshness signal reaches 80% of MaxScore.
	FreshnessEightyPercentLevel int `env:"SCORING_FRESHNESS_EIGHTY_PERCENT_LEVEL,default=24" validate:"gt=0"`
	// MinimumThreshold suppresses engagement signals below this raw value.
	MinimumThreshold int `env:"SCORING_MINIMUM_THRESHOLD,default=0" validate:"gte=0"`
	// ResultLimit caps how many ranked posts are returned.
	ResultLimit int `env:"SCORING_RESULT_LIMIT,default=50" validate:"gt=0"`
}
