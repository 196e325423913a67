//go:build integration_test || all_tests

package workouts_test

import (
	"testing"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/workouts"
	testingpkg "github.com/amankaushik/achilles-workout-tracker/pkg/testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror_Redis(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)
	mirror := workouts.NewMirror(rdb, time.Minute)

	sessionID := gofakeit.UUID()
	t.Cleanup(func() {
		rdb.Del(ctx, workouts.MirrorKey(sessionID))
	})

	_, err := mirror.Load(ctx, sessionID)
	require.ErrorIs(t, err, workouts.ErrMirrorEmpty)

	log := testLog()
	require.NoError(t, mirror.Store(ctx, sessionID, log))

	ttl, err := rdb.TTL(ctx, workouts.MirrorKey(sessionID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	loaded, err := mirror.Load(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, loaded, len(log))
	for key, entry := range log {
		require.Contains(t, loaded, key)
		assert.Equal(t, entry.Exercises, loaded[key].Exercises)
		assert.Equal(t, entry.Completed, loaded[key].Completed)
		assert.True(t, entry.SavedAt.Equal(loaded[key].SavedAt))
	}
}
