package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"

	"github.com/recoforge/recoforge/pkg/api"
	"github.com/recoforge/recoforge/pkg/lib"
	"github.com/recoforge/recoforge/pkg/lib/log"
	"github.com/recoforge/recoforge/pkg/posts"
)

type Config struct {
	API     api.Config   `env:""`
	Log     log.Config   `env:""`
	Scoring posts.Config `env:""`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := lib.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
