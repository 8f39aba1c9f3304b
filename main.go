package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/adrianliechti/llmstxt/config"
	"github.com/adrianliechti/llmstxt/pkg/otel"
	"github.com/adrianliechti/llmstxt/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	godotenv.Load()

	ctx := context.Background()

	if err := otel.Setup(ctx, "llmstxt", version); err != nil {
		panic(err)
	}

	configPath := flag.String("config", "", "configuration file")
	flag.Parse()

	path := *configPath

	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}

	cfg, err := config.Parse(path)

	if err != nil {
		panic(err)
	}

	s, err := server.New(cfg)

	if err != nil {
		panic(err)
	}

	slog.InfoContext(ctx, "starting server", "address", cfg.Address)

	if err := s.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}
