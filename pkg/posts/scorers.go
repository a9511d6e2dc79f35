package posts

import (
	"context"
	"time"
)

// UpvoteScorer reports a post's raw upvote count.
type UpvoteScorer struct{}

func (UpvoteScorer) Name() string { return "upvotes" }

func (UpvoteScorer) Score(_ context.Context, post Post) (int, error) {
	return post.Upvotes, nil
}

// CommentScorer reports a post's raw comment count.
type CommentScorer struct{}

func (CommentScorer) Name() string { return "comments" }

func (CommentScorer) Score(_ context.Context, post Post) (int, error) {
	return post.Comments, nil
}

// FreshnessScorer reports the hours a post has left inside the freshness
// window. Newer posts score higher; anything older than the window scores 0.
type FreshnessScorer struct {
	windowHours int
	now         func() time.Time
}

func NewFreshnessScorer(windowHours int) *FreshnessScorer {
	return &FreshnessScorer{
		windowHours: windowHours,
		now:         time.Now,
	}
}

func (s *FreshnessScorer) Name() string { return "freshness" }

func (s *FreshnessScorer) Score(_ context.Context, post Post) (int, error) {
	age := s.now().Sub(post.CreatedAt)

	remaining := s.windowHours - int(age.Hours())
	if remaining < 0 {
		return 0, nil
	}

	return remaining, nil
}
