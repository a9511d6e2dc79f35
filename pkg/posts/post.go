package posts

import "time"

// Post is a candidate item: a social post with the raw engagement counters
// produced by an upstream signal computation.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Upvotes   int       `json:"upvotes"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}
