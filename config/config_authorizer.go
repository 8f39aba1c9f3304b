package config

import (
	"os"

	"github.com/adrianliechti/llmstxt/pkg/auth/static"
)

func (cfg *Config) registerAuthorizers(f *configFile) error {
	token := f.Token

	if token == "" {
		token = os.Getenv("API_TOKEN")
	}

	if token == "" {
		return nil
	}

	p, err := static.New(token)

	if err != nil {
		return err
	}

	cfg.Authorizers = append(cfg.Authorizers, p)

	return nil
}
