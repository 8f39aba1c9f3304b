package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adrianliechti/llmstxt/pkg/limiter"
	"github.com/adrianliechti/llmstxt/pkg/summarizer"
	"github.com/adrianliechti/llmstxt/pkg/summarizer/anthropic"
	"github.com/adrianliechti/llmstxt/pkg/summarizer/openai"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterSummarizer(id string, p summarizer.Provider) {
	if cfg.summarizer == nil {
		cfg.summarizer = make(map[string]summarizer.Provider)
	}

	if _, ok := cfg.summarizer[""]; !ok {
		cfg.summarizer[""] = p
	}

	cfg.summarizer[id] = p
}

func (cfg *Config) Summarizer(id string) (summarizer.Provider, error) {
	if cfg.summarizer != nil {
		if p, ok := cfg.summarizer[id]; ok {
			return p, nil
		}
	}

	return nil, summarizer.ErrNotConfigured
}

type summarizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`
}

type summarizerContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerSummarizers(f *configFile) error {
	var configs map[string]summarizerConfig

	if err := f.Summarizers.Decode(&configs); err != nil && len(f.Summarizers.Content) > 0 {
		return err
	}

	for _, node := range f.Summarizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := summarizerContext{
			Limiter: createLimiter(config.Limit),
		}

		s, err := createSummarizer(config, context)

		if err != nil {
			return err
		}

		cfg.RegisterSummarizer(id, s)
	}

	if len(cfg.summarizer) == 0 {
		return cfg.registerEnvSummarizer()
	}

	return nil
}

// registerEnvSummarizer keeps the zero-config path working: an API key
// in the environment is enough to enable LLM summaries.
func (cfg *Config) registerEnvSummarizer() error {
	delay := summaryDelay()

	if token := os.Getenv("OPENAI_API_KEY"); token != "" {
		s, err := openai.New("", envModel("OPENAI_MODEL", "gpt-4o-mini"), openai.WithToken(token))

		if err != nil {
			return err
		}

		cfg.RegisterSummarizer("openai", limiter.NewSummarizer(delay, s))
		return nil
	}

	if token := os.Getenv("ANTHROPIC_API_KEY"); token != "" {
		s, err := anthropic.New("", envModel("ANTHROPIC_MODEL", "claude-haiku-4-5"), anthropic.WithToken(token))

		if err != nil {
			return err
		}

		cfg.RegisterSummarizer("anthropic", limiter.NewSummarizer(delay, s))
		return nil
	}

	return nil
}

func createSummarizer(config summarizerConfig, context summarizerContext) (summarizer.Provider, error) {
	switch strings.ToLower(config.Type) {

	case "openai":
		return openaiSummarizer(config, context)

	case "anthropic":
		return anthropicSummarizer(config, context)

	default:
		return nil, errors.New("invalid summarizer type: " + config.Type)
	}
}

func openaiSummarizer(config summarizerConfig, context summarizerContext) (summarizer.Provider, error) {
	var options []openai.Option

	if config.Token != "" {
		options = append(options, openai.WithToken(config.Token))
	}

	s, err := openai.New(config.URL, config.Model, options...)

	if err != nil {
		return nil, err
	}

	return limiter.NewSummarizer(context.Limiter, s), nil
}

func anthropicSummarizer(config summarizerConfig, context summarizerContext) (summarizer.Provider, error) {
	var options []anthropic.Option

	if config.Token != "" {
		options = append(options, anthropic.WithToken(config.Token))
	}

	s, err := anthropic.New(config.URL, config.Model, options...)

	if err != nil {
		return nil, err
	}

	return limiter.NewSummarizer(context.Limiter, s), nil
}

func envModel(name, fallback string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}

	return fallback
}

// summaryDelay converts the SUMMARY_DELAY seconds value into a rate
// limiter pacing consecutive summarizer calls.
func summaryDelay() *rate.Limiter {
	val, err := strconv.ParseFloat(os.Getenv("SUMMARY_DELAY"), 64)

	if err != nil || val <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Every(time.Duration(val*float64(time.Second))), 1)
}
