package posts

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testConfig() Config {
	return Config{
		MaxScore:                    100,
		UpvoteEightyPercentLevel:    200,
		CommentEightyPercentLevel:   50,
		FreshnessWindowHours:        48,
		FreshnessEightyPercentLevel: 24,
		MinimumThreshold:            0,
		ResultLimit:                 50,
	}
}

func TestNewEngine_RanksByEngagementAndFreshness(t *testing.T) {
	logger := zerolog.Nop()
	cfg := testConfig()
	engine := NewEngine(&logger, &cfg)

	hot := Post{ID: "hot", Upvotes: 1500, Comments: 300, CreatedAt: time.Now()}
	stale := Post{ID: "stale", Upvotes: 2, Comments: 0, CreatedAt: time.Now().Add(-30 * 24 * time.Hour)}

	recs, err := engine.Rank(context.Background(), []Post{stale, hot}, 0)
	if err != nil {
		t.Fatalf("expected rank to succeed: %v", err)
	}

	if recs[0].Item.ID != "hot" {
		t.Errorf("expected hot post first, got %q", recs[0].Item.ID)
	}

	// Three signals, each bounded to [0, 100]
	for _, rec := range recs {
		if rec.Score < 0 || rec.Score > 300 {
			t.Errorf("expected total score in [0, 300] for %q, got %d", rec.Item.ID, rec.Score)
		}
		if len(rec.Parts) != 3 {
			t.Errorf("expected 3 part scores for %q, got %d", rec.Item.ID, len(rec.Parts))
		}
	}
}

func TestNewEngine_MinimumThresholdSuppressesNoise(t *testing.T) {
	logger := zerolog.Nop()
	cfg := testConfig()
	cfg.MinimumThreshold = 5
	engine := NewEngine(&logger, &cfg)

	quiet := Post{ID: "quiet", Upvotes: 3, Comments: 2, CreatedAt: time.Now().Add(-100 * 24 * time.Hour)}

	recs, err := engine.Rank(context.Background(), []Post{quiet}, 0)
	if err != nil {
		t.Fatalf("expected rank to succeed: %v", err)
	}

	if got := recs[0].Score; got != 0 {
		t.Errorf("expected below-threshold engagement to score 0, got %d", got)
	}
}
