package config

import (
	"bytes"
	"os"
	"strconv"
	"time"

	"github.com/adrianliechti/llmstxt/pkg/auth"
	"github.com/adrianliechti/llmstxt/pkg/crawler"
	"github.com/adrianliechti/llmstxt/pkg/fetch"
	"github.com/adrianliechti/llmstxt/pkg/limiter"
	"github.com/adrianliechti/llmstxt/pkg/robots"
	"github.com/adrianliechti/llmstxt/pkg/sitemap"
	"github.com/adrianliechti/llmstxt/pkg/summarizer"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Timeout time.Duration
	Workers int

	UserAgent string

	Authorizers []auth.Provider

	fetchLimiter *rate.Limiter

	summarizer map[string]summarizer.Provider
}

func Parse(path string) (*Config, error) {
	file := new(configFile)

	if path != "" {
		parsed, err := parseFile(path)

		if err != nil {
			return nil, err
		}

		file = parsed
	}

	c := &Config{
		Address: addressFromEnv(),

		Timeout: durationFromEnv("REQUEST_TIMEOUT", 10*time.Second),
		Workers: intFromEnv("CONCURRENT_WORKERS", 5),

		UserAgent: "llmstxt",

		fetchLimiter: fetchDelay(),
	}

	if file.Timeout > 0 {
		c.Timeout = time.Duration(file.Timeout) * time.Second
	}

	if file.Workers > 0 {
		c.Workers = file.Workers
	}

	if file.UserAgent != "" {
		c.UserAgent = file.UserAgent
	}

	if file.FetchDelay > 0 {
		c.fetchLimiter = rate.NewLimiter(rate.Every(time.Duration(file.FetchDelay*float64(time.Second))), 1)
	}

	if err := c.registerSummarizers(file); err != nil {
		return nil, err
	}

	if err := c.registerAuthorizers(file); err != nil {
		return nil, err
	}

	return c, nil
}

// Crawler assembles a crawler from the configured transport,
// permission checker, sitemap finder and summarizer.
func (cfg *Config) Crawler() *crawler.Crawler {
	var fetcher crawler.Fetcher = fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithAgent(cfg.UserAgent),
	)

	if cfg.fetchLimiter != nil {
		fetcher = limiter.NewFetcher(cfg.fetchLimiter, fetcher)
	}

	options := []crawler.Option{
		crawler.WithFetcher(fetcher),
		crawler.WithPermissions(robots.New(
			robots.WithAgent(cfg.UserAgent),
		)),
		crawler.WithSitemaps(sitemap.New(
			sitemap.WithAgent(cfg.UserAgent),
		)),
		crawler.WithWorkers(cfg.Workers),
	}

	if p, err := cfg.Summarizer(""); err == nil {
		options = append(options, crawler.WithSummarizer(p))
	}

	return crawler.New(options...)
}

type configFile struct {
	Timeout int `yaml:"timeout"`
	Workers int `yaml:"workers"`

	FetchDelay float64 `yaml:"fetch_delay"`

	UserAgent string `yaml:"user_agent"`

	Token string `yaml:"token"`

	Summarizers yaml.Node `yaml:"summarizers"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func addressFromEnv() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}

	return ":8080"
}

func intFromEnv(name string, fallback int) int {
	if val, err := strconv.Atoi(os.Getenv(name)); err == nil && val > 0 {
		return val
	}

	return fallback
}

func durationFromEnv(name string, fallback time.Duration) time.Duration {
	if val, err := strconv.Atoi(os.Getenv(name)); err == nil && val > 0 {
		return time.Duration(val) * time.Second
	}

	return fallback
}

// fetchDelay converts the FETCH_DELAY seconds value into a rate
// limiter pacing consecutive page fetches.
func fetchDelay() *rate.Limiter {
	val, err := strconv.ParseFloat(os.Getenv("FETCH_DELAY"), 64)

	if err != nil || val <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Every(time.Duration(val*float64(time.Second))), 1)
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
