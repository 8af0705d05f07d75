package estimator

import (
	"context"
	"fmt"

	"github.com/inovacc/macromind/internal/model"
	"golang.org/x/time/rate"
)

// LimitedEstimator throttles calls to the wrapped estimator.
type LimitedEstimator struct {
	next    Estimator
	limiter *rate.Limiter
}

// Limited allows at most perSecond calls per second with the given burst.
func Limited(next Estimator, perSecond float64, burst int) *LimitedEstimator {
	return &LimitedEstimator{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (l *LimitedEstimator) Estimate(ctx context.Context, description string) (model.Nutrition, error) {
	if err := checkDescription(description); err != nil {
		return model.Nutrition{}, err
	}

	if err := l.limiter.Wait(ctx); err != nil {
		return model.Nutrition{}, fmt.Errorf("rate limit: %w", err)
	}

	return l.next.Estimate(ctx, description)
}
