package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMirrorEmpty = errors.New("no mirrored workout log")

const mirrorKeyPrefix = "achilles-workout-log"

// Mirror keeps the latest workout log snapshot of every session in redis,
// so stats can still be served when postgres is not reachable.
type Mirror struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMirror(rdb *redis.Client, ttl time.Duration) *Mirror {
	return &Mirror{
		rdb: rdb,
		ttl: ttl,
	}
}

func MirrorKey(sessionID string) string {
	return fmt.Sprintf("%s||%s", mirrorKeyPrefix, sessionID)
}

func (m *Mirror) Store(ctx context.Context, sessionID string, log WorkoutLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mirror.workouts.store")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	logJson, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("marshal workout log: %w", err)
	}

	if err := m.rdb.Set(ctx, MirrorKey(sessionID), string(logJson), m.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (m *Mirror) Load(ctx context.Context, sessionID string) (_ WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mirror.workouts.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	logJson, err := m.rdb.Get(ctx, MirrorKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMirrorEmpty
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var log WorkoutLog
	if err := json.Unmarshal([]byte(logJson), &log); err != nil {
		return nil, fmt.Errorf("unmarshal workout log: %w", err)
	}
	if log == nil {
		log = WorkoutLog{}
	}

	return log, nil
}
