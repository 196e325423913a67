package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/metrics"
	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/tracing"
	"github.com/amankaushik/achilles-workout-tracker/internal/workouts"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNoMostImproved   = errors.New("no exercise with enough data to compare")
)

const (
	megabyte = 1024 * 1024
	// freecache refuses entries over 1/1024 of its size, so 64MB holds overviews up to 64KB
	DefaultCacheSize       = 64 * megabyte
	defaultCacheTTL        = time.Minute
	overviewCacheKeyPrefix = "overview"
)

// SnapshotSource provides the full workout log of a session.
type SnapshotSource interface {
	Snapshot(ctx context.Context, sessionID string) (workouts.WorkoutLog, error)
}

type Analyzer struct {
	source         SnapshotSource
	cache          *freecache.Cache
	cacheSize      int
	cacheTTL       time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time

	// bumped by Invalidate, an overview computed under an older generation is not stored
	generationsMu sync.Mutex
	generations   map[string]uint64
}

type AnalyzerOption func(*Analyzer)

func WithClock(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		a.now = now
	}
}

func WithMetrics(metricsManager *metrics.Manager) AnalyzerOption {
	return func(a *Analyzer) {
		a.metricsManager = metricsManager
	}
}

// WithCache sets the overview cache size and entry TTL. A TTL under one second disables the cache.
// A single cached overview can take up to 1/1024 of the size.
func WithCache(sizeBytes int, ttl time.Duration) AnalyzerOption {
	return func(a *Analyzer) {
		a.cacheSize = sizeBytes
		a.cacheTTL = ttl
	}
}

func NewAnalyzer(source SnapshotSource, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		source:      source,
		cacheSize:   DefaultCacheSize,
		cacheTTL:    defaultCacheTTL,
		now:         time.Now,
		generations: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.cacheTTL < time.Second {
		a.cacheTTL = 0
		return a
	}
	a.cache = freecache.NewCache(a.cacheSize)
	return a
}

type cachedOverview struct {
	Day      string   `json:"day"`
	Overview Overview `json:"overview"`
}

func overviewCacheKey(sessionID string) []byte {
	return []byte(fmt.Sprintf("%s::%s", overviewCacheKeyPrefix, sessionID))
}

// Overview computes everything the stats screen shows. Results are cached per session
// for the current calendar day, until the TTL runs out or the session is invalidated.
func (a *Analyzer) Overview(ctx context.Context, sessionID string) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	now := a.now()
	day := dateKey(now, now.Location())
	generation := a.generation(sessionID)

	if cached, ok := a.cachedOverview(sessionID, day); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	workoutLog, err := a.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	overview := ComputeOverview(workoutLog, now)
	if a.metricsManager != nil {
		a.metricsManager.HistStatsComputeDuration.Observe(time.Since(started).Seconds())
	}

	a.storeOverview(sessionID, day, generation, overview)
	return &overview, nil
}

func (a *Analyzer) Progression(ctx context.Context, sessionID, exerciseName string, windowDays int) (_ *Progression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("exercise", exerciseName),
		attribute.Int("window_days", windowDays),
	)

	workoutLog, err := a.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	progression := ExerciseProgression(workoutLog, exerciseName, windowDays, a.now())
	return &progression, nil
}

func (a *Analyzer) Weekly(ctx context.Context, sessionID string, weekCount int) (_ []WeekBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID), attribute.Int("weeks", weekCount))

	workoutLog, err := a.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return WeeklyFrequency(workoutLog, weekCount, a.now()), nil
}

func (a *Analyzer) Calendar(ctx context.Context, sessionID string, dayCount int) (_ []CalendarDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID), attribute.Int("days", dayCount))

	workoutLog, err := a.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return WorkoutCalendar(workoutLog, dayCount, a.now()), nil
}

func (a *Analyzer) Streak(ctx context.Context, sessionID string) (_ *StreakInfo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	workoutLog, err := a.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	return &StreakInfo{
		CurrentStreak:  CurrentStreak(workoutLog, now),
		ThisWeek:       ThisWeekWorkoutCount(workoutLog, now),
		TotalCompleted: TotalCompletedWorkouts(workoutLog),
	}, nil
}

// ExerciseRecord returns the best and latest weight of an exercise
// that appears in at least one completed workout.
func (a *Analyzer) ExerciseRecord(ctx context.Context, sessionID, exerciseName string) (_ *ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.exercise-record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID), attribute.String("exercise", exerciseName))

	workoutLog, err := a.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for _, record := range PersonalRecords(workoutLog) {
		if record.Name == exerciseName {
			return &record, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrExerciseNotFound, exerciseName)
}

func (a *Analyzer) MostImproved(ctx context.Context, sessionID string) (_ *ImprovedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.most-improved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	workoutLog, err := a.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	improved, ok := MostImprovedExercise(workoutLog, a.now())
	if !ok {
		return nil, ErrNoMostImproved
	}
	return &improved, nil
}

func (a *Analyzer) Exercises(ctx context.Context, sessionID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	workoutLog, err := a.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return UniqueExerciseNames(workoutLog), nil
}

// Invalidate drops the cached overview of the session. Overviews being computed
// from a snapshot taken before the call will not be cached.
func (a *Analyzer) Invalidate(sessionID string) {
	if a.cache == nil {
		return
	}

	a.generationsMu.Lock()
	defer a.generationsMu.Unlock()
	a.generations[sessionID]++
	if a.cache.Del(overviewCacheKey(sessionID)) {
		log.Tracef("stats overview cache of %s invalidated", sessionID)
	}
}

func (a *Analyzer) generation(sessionID string) uint64 {
	a.generationsMu.Lock()
	defer a.generationsMu.Unlock()
	return a.generations[sessionID]
}

func (a *Analyzer) snapshot(ctx context.Context, sessionID string) (workouts.WorkoutLog, error) {
	workoutLog, err := a.source.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("snapshot of %s: %w", sessionID, err)
	}
	return workoutLog, nil
}

func (a *Analyzer) cachedOverview(sessionID, day string) (*Overview, bool) {
	if a.cache == nil {
		return nil, false
	}

	cachedBytes, err := a.cache.Get(overviewCacheKey(sessionID))
	if err != nil {
		a.countCacheMiss()
		return nil, false
	}

	var cached cachedOverview
	if err := json.Unmarshal(cachedBytes, &cached); err != nil {
		log.Errorf("unmarshal cached stats overview of %s: %s", sessionID, err)
		a.countCacheMiss()
		return nil, false
	}
	// computed yesterday, day based stats moved on
	if cached.Day != day {
		a.countCacheMiss()
		return nil, false
	}

	if a.metricsManager != nil {
		a.metricsManager.CounterStatsCacheHits.Inc()
	}
	return &cached.Overview, true
}

func (a *Analyzer) storeOverview(sessionID, day string, generation uint64, overview Overview) {
	if a.cache == nil {
		return
	}

	cachedBytes, err := json.Marshal(cachedOverview{Day: day, Overview: overview})
	if err != nil {
		log.Errorf("marshal stats overview of %s: %s", sessionID, err)
		return
	}

	// held until the entry is set, so a concurrent Invalidate either runs first or deletes it
	a.generationsMu.Lock()
	defer a.generationsMu.Unlock()
	if a.generations[sessionID] != generation {
		log.Tracef("stats overview of %s invalidated while computing, not cached", sessionID)
		return
	}

	err = a.cache.Set(overviewCacheKey(sessionID), cachedBytes, int(a.cacheTTL.Seconds()))
	switch {
	case errors.Is(err, freecache.ErrLargeEntry):
		log.Debugf("stats overview of %s too large to cache (%d bytes)", sessionID, len(cachedBytes))
		a.countCacheMiss()
	case err != nil:
		log.Errorf("cache stats overview of %s: %s", sessionID, err)
	}
}

func (a *Analyzer) countCacheMiss() {
	if a.metricsManager != nil {
		a.metricsManager.CounterStatsCacheMisses.Inc()
	}
}
