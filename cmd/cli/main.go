package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"

	"github.com/recoforge/recoforge/pkg/lib"
	"github.com/recoforge/recoforge/pkg/posts"
)

// Reads a JSON array of posts from stdin and writes the ranked
// recommendations to stdout. Logs go to stderr so the output stays
// machine-readable.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	var cfg posts.Config
	if err := envdecode.Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("Failed to decode scoring config")
	}
	if err := lib.ValidateStruct(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("Failed to validate scoring config")
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read posts from stdin")
	}

	var items []posts.Post
	if err := json.Unmarshal(input, &items); err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse posts")
	}

	engine := posts.NewEngine(&logger, &cfg)

	results, err := engine.Rank(context.Background(), items, cfg.ResultLimit)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to rank posts")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		logger.Fatal().Err(err).Msg("Failed to write results")
	}
}
