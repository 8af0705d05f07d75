package estimator

import (
	"context"
	"strings"
	"time"

	"github.com/inovacc/macromind/internal/model"
	"github.com/patrickmn/go-cache"
)

// CachedEstimator remembers successful estimates by normalized description.
type CachedEstimator struct {
	next  Estimator
	cache *cache.Cache
}

// Cached wraps next with an in-memory cache. A negative ttl disables
// caching and returns next unchanged.
func Cached(next Estimator, ttl time.Duration) Estimator {
	if ttl < 0 {
		return next
	}

	return &CachedEstimator{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CachedEstimator) Estimate(ctx context.Context, description string) (model.Nutrition, error) {
	if err := checkDescription(description); err != nil {
		return model.Nutrition{}, err
	}

	key := cacheKey(description)

	if v, found := c.cache.Get(key); found {
		if n, ok := v.(model.Nutrition); ok {
			return n, nil
		}
	}

	n, err := c.next.Estimate(ctx, description)
	if err != nil {
		return model.Nutrition{}, err
	}

	c.cache.Set(key, n, cache.DefaultExpiration)

	return n, nil
}

func cacheKey(description string) string {
	return strings.ToLower(strings.Join(strings.Fields(description), " "))
}
