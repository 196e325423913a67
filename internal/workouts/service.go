package workouts

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/metrics"
	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Save(ctx context.Context, entry WorkoutLogEntry) error
	Get(ctx context.Context, sessionID string, phase, week, workoutNum int) (*WorkoutLogEntry, error)
	Delete(ctx context.Context, sessionID string, phase, week, workoutNum int) error
	List(ctx context.Context, sessionID string, limit int) ([]WorkoutHeader, error)
	Snapshot(ctx context.Context, sessionID string) (WorkoutLog, error)
	WeekWorkoutsCount(ctx context.Context, sessionID string, phase, week int) (int, error)
}

type snapshotMirror interface {
	Store(ctx context.Context, sessionID string, log WorkoutLog) error
	Load(ctx context.Context, sessionID string) (WorkoutLog, error)
}

// ChangeListener is called after a workout of the session has been saved or deleted.
type ChangeListener func(ctx context.Context, sessionID string)

type Service struct {
	repo           workoutsRepo
	mirror         snapshotMirror
	metricsManager *metrics.Manager
	now            func() time.Time

	listenersMu sync.RWMutex
	listeners   []ChangeListener
}

type ServiceOption func(*Service)

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func WithMetrics(metricsManager *metrics.Manager) ServiceOption {
	return func(s *Service) {
		s.metricsManager = metricsManager
	}
}

// NewService creates the workouts service. The mirror is optional.
func NewService(repo workoutsRepo, mirror snapshotMirror, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		mirror: mirror,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) OnChange(listener ChangeListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// SaveWorkout stores the workout in its slot, replacing what was there.
// Completed workouts get their completion time stamped (if not set already);
// workouts that are not completed never keep one.
func (s *Service) SaveWorkout(ctx context.Context, sessionID string, entry WorkoutLogEntry) (_ *WorkoutLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	entry.SessionID = sessionID
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("key", entry.Key()),
		attribute.Bool("completed", entry.Completed),
	)

	now := normalizeTime(s.now())
	entry.SavedAt = now
	if entry.Completed {
		if entry.CompletedAt == nil {
			entry.CompletedAt = &now
		} else {
			completedAt := normalizeTime(*entry.CompletedAt)
			entry.CompletedAt = &completedAt
		}
	} else {
		entry.CompletedAt = nil
	}
	if entry.Exercises == nil {
		entry.Exercises = make([]ExerciseLog, 0)
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("save workout %s: %w", entry.Key(), err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsSaved.WithLabelValues(strconv.FormatBool(entry.Completed)).Inc()
	}
	log.Debugf("workout %s saved for session %s, completed: %t", entry.Key(), sessionID, entry.Completed)

	s.afterChange(ctx, sessionID)
	return &entry, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, sessionID, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID), attribute.String("key", key))

	if err := ValidateSessionID(sessionID); err != nil {
		return err
	}
	phase, week, workoutNum, err := ParseKey(key)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sessionID, phase, week, workoutNum); err != nil {
		return fmt.Errorf("delete workout %s: %w", key, err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsDeleted.Inc()
	}
	log.Debugf("workout %s deleted for session %s", key, sessionID)

	s.afterChange(ctx, sessionID)
	return nil
}

func (s *Service) GetWorkout(ctx context.Context, sessionID, key string) (_ *WorkoutLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID), attribute.String("key", key))

	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	phase, week, workoutNum, err := ParseKey(key)
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, sessionID, phase, week, workoutNum)
}

func (s *Service) ListWorkouts(ctx context.Context, sessionID string, limit int) (_ []WorkoutHeader, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}

	return s.repo.List(ctx, sessionID, limit)
}

// Snapshot returns the full workout log of the session. When the database cannot be read,
// the last mirrored snapshot is returned instead, if there is one.
func (s *Service) Snapshot(ctx context.Context, sessionID string) (_ WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}

	workoutLog, repoErr := s.repo.Snapshot(ctx, sessionID)
	if repoErr == nil {
		s.storeMirror(ctx, sessionID, workoutLog)
		return workoutLog, nil
	}

	if s.mirror == nil {
		return nil, repoErr
	}

	mirrored, mirrorErr := s.mirror.Load(ctx, sessionID)
	if mirrorErr != nil {
		if !errors.Is(mirrorErr, ErrMirrorEmpty) {
			log.Errorf("load mirrored workout log of %s: %s", sessionID, mirrorErr)
		}
		return nil, repoErr
	}

	log.Warnf("workout log of %s served from mirror, repo error: %s", sessionID, repoErr)
	span.SetAttributes(attribute.Bool("from_mirror", true))
	if s.metricsManager != nil {
		s.metricsManager.CounterSnapshotFallbacks.Inc()
	}
	return mirrored, nil
}

// HasWeekData tells if any workout (1..WorkoutsPerWeek) of the program week is logged.
func (s *Service) HasWeekData(ctx context.Context, sessionID string, phase, week int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.has-week-data")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateSessionID(sessionID); err != nil {
		return false, err
	}
	if phase < 1 || week < 1 {
		return false, fmt.Errorf("%w: phase and week must be positive", ErrInvalidWorkout)
	}

	count, err := s.repo.WeekWorkoutsCount(ctx, sessionID, phase, week)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Service) afterChange(ctx context.Context, sessionID string) {
	if s.mirror != nil {
		workoutLog, err := s.repo.Snapshot(ctx, sessionID)
		if err != nil {
			log.Errorf("refresh mirror of %s: %s", sessionID, err)
		} else {
			s.storeMirror(ctx, sessionID, workoutLog)
		}
	}

	s.listenersMu.RLock()
	listeners := make([]ChangeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, sessionID)
	}
}

func (s *Service) storeMirror(ctx context.Context, sessionID string, workoutLog WorkoutLog) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Store(ctx, sessionID, workoutLog); err != nil {
		log.Errorf("store mirrored workout log of %s: %s", sessionID, err)
	}
}
