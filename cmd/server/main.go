package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/recoforge/recoforge/pkg/api"
	"github.com/recoforge/recoforge/pkg/config"
	"github.com/recoforge/recoforge/pkg/lib/log"
	"github.com/recoforge/recoforge/pkg/posts"
)

func main() {
	err := run()
	if err != nil {
		panic(err)
	}
}

func run() error {
	err := godotenv.Load()
	if err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := log.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	engine := posts.NewEngine(logger, &cfg.Scoring)
	server := api.NewServer(logger, &cfg.API, engine, cfg.Scoring.ResultLimit)

	logger.Info().
		Str("host", cfg.API.Host).
		Uint16("port", cfg.API.Port).
		Msg("Starting server")

	if err := server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return nil
}
