package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// GetRedisClientAndCtx connects to the redis at REDIS_HOST:REDIS_PORT (localhost:6379 by default)
// and closes the client when the test is done. REDIS_PASS is used when set.
func GetRedisClientAndCtx(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	redisPort := os.Getenv("REDIS_PORT")
	if redisPort == "" {
		redisPort = "6379"
	}
	t.Logf("using redis: [%s:%s]", redisHost, redisPort)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(redisHost, redisPort),
		Password: os.Getenv("REDIS_PASS"),
		DB:       0, // use default DB
	})
	t.Cleanup(func() {
		if err := rdb.Close(); err != nil {
			t.Logf("close redis client: %s", err)
		}
	})

	pingRes, err := rdb.Ping(ctx).Result()
	require.NoError(t, err)
	t.Logf("redis ping res: %s", pingRes)

	return ctx, rdb
}
