package limiter

import (
	"context"

	"golang.org/x/time/rate"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type LimitedFetcher interface {
	Limiter
	Fetcher
}

type limitedFetcher struct {
	limiter  *rate.Limiter
	provider Fetcher
}

func NewFetcher(l *rate.Limiter, p Fetcher) LimitedFetcher {
	return &limitedFetcher{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedFetcher) limiterSetup() {
}

func (p *limitedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Fetch(ctx, url)
}
