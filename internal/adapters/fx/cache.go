package fx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
)

// CachingProvider decorates a RateProvider with a Redis read-through cache.
// Rates move slowly, so a short TTL keeps forecast collection from hammering
// the external provider when a trip mixes many currencies. Cache failures are
// not fatal; the wrapped provider is always the source of truth.
type CachingProvider struct {
	next portssvc.RateProvider
	rdb  *redis.Client
	ttl  time.Duration
}

// NewCachingProvider wraps a rate provider with a Redis cache.
func NewCachingProvider(next portssvc.RateProvider, rdb *redis.Client, ttl time.Duration) *CachingProvider {
	return &CachingProvider{next: next, rdb: rdb, ttl: ttl}
}

func (p *CachingProvider) FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	key := fmt.Sprintf("fxrate:%s:%s", from, to)

	cached, err := p.rdb.Get(ctx, key).Result()
	if err == nil {
		rate, parseErr := decimal.NewFromString(cached)
		if parseErr == nil {
			return rate, nil
		}
		// A corrupt entry falls through to the provider and gets overwritten.
	}

	rate, err := p.next.FetchRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	p.rdb.Set(ctx, key, rate.String(), p.ttl)
	return rate, nil
}

var _ portssvc.RateProvider = (*CachingProvider)(nil)
