package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/metrics"
	"github.com/amankaushik/achilles-workout-tracker/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=rate_limiting_mocks_test.go -package=middleware_test

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits requests of the given methods (all when none given) per client IP.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
	methods ...string,
) func(next http.Handler) http.Handler {
	limitedMethods := make(map[string]bool, len(methods))
	for _, m := range methods {
		limitedMethods[m] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(limitedMethods) > 0 && !limitedMethods[r.Method] {
				next.ServeHTTP(w, r)
				return
			}

			clientIP, err := pkg.ReadUserIP(r)
			if err != nil {
				clientIP = "unknown"
			}

			res, err := rateLimiter.Allow(
				r.Context(),
				fmt.Sprintf("%s||%s", routerName, clientIP),
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limit [%s]: %s", routerName, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(
				w,
				fmt.Sprintf("retry after %d seconds", retryAfter),
				http.StatusTooManyRequests,
			)
		})
	}
}
