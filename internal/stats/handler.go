package stats

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/tracing"
	"github.com/amankaushik/achilles-workout-tracker/internal/workouts"
	"github.com/amankaushik/achilles-workout-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

const (
	maxDays  = 365
	maxWeeks = 52
)

type statsAnalyzer interface {
	Overview(ctx context.Context, sessionID string) (*Overview, error)
	Progression(ctx context.Context, sessionID, exerciseName string, windowDays int) (*Progression, error)
	Weekly(ctx context.Context, sessionID string, weekCount int) ([]WeekBucket, error)
	Calendar(ctx context.Context, sessionID string, dayCount int) ([]CalendarDay, error)
	Streak(ctx context.Context, sessionID string) (*StreakInfo, error)
	ExerciseRecord(ctx context.Context, sessionID, exerciseName string) (*ExerciseRecord, error)
	MostImproved(ctx context.Context, sessionID string) (*ImprovedExercise, error)
	Exercises(ctx context.Context, sessionID string) ([]string, error)
}

type ExercisesResponse struct {
	Exercises []string `json:"exercises"`
}

type Handler struct {
	analyzer statsAnalyzer
}

func NewHandler(analyzer statsAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.overview")
	defer span.End()

	overview, err := handler.analyzer.Overview(ctx, mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, "stats overview", err)
		return
	}
	pkg.WriteJSONResponseOK(w, overview)
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.exercises")
	defer span.End()

	names, err := handler.analyzer.Exercises(ctx, mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, "list exercises", err)
		return
	}
	pkg.WriteJSONResponseOK(w, ExercisesResponse{Exercises: names})
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progression")
	defer span.End()

	days, err := intQueryParam(r, "days", DefaultProgressionDays, maxDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	progression, err := handler.analyzer.Progression(ctx, vars["sid"], vars["name"], days)
	if err != nil {
		writeError(w, "exercise progression", err)
		return
	}
	pkg.WriteJSONResponseOK(w, progression)
}

func (handler *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.record")
	defer span.End()

	vars := mux.Vars(r)
	record, err := handler.analyzer.ExerciseRecord(ctx, vars["sid"], vars["name"])
	if err != nil {
		writeError(w, "exercise record", err)
		return
	}
	pkg.WriteJSONResponseOK(w, record)
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weekly")
	defer span.End()

	weeks, err := intQueryParam(r, "weeks", DefaultWeeks, maxWeeks)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	weekly, err := handler.analyzer.Weekly(ctx, mux.Vars(r)["sid"], weeks)
	if err != nil {
		writeError(w, "weekly frequency", err)
		return
	}
	pkg.WriteJSONResponseOK(w, weekly)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.calendar")
	defer span.End()

	days, err := intQueryParam(r, "days", DefaultCalendarDays, maxDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	calendar, err := handler.analyzer.Calendar(ctx, mux.Vars(r)["sid"], days)
	if err != nil {
		writeError(w, "workout calendar", err)
		return
	}
	pkg.WriteJSONResponseOK(w, calendar)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.streak")
	defer span.End()

	streak, err := handler.analyzer.Streak(ctx, mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, "streak", err)
		return
	}
	pkg.WriteJSONResponseOK(w, streak)
}

func (handler *Handler) HandleMostImproved(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.most-improved")
	defer span.End()

	improved, err := handler.analyzer.MostImproved(ctx, mux.Vars(r)["sid"])
	if err != nil {
		writeError(w, "most improved exercise", err)
		return
	}
	pkg.WriteJSONResponseOK(w, improved)
}

// intQueryParam reads a positive int query param, not bigger than maxValue. Missing param gives def.
func intQueryParam(r *http.Request, name string, def, maxValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("error, %s NaN", name)
	}
	if value < 1 || value > maxValue {
		return 0, fmt.Errorf("error, %s must be between 1 and %d", name, maxValue)
	}
	return value, nil
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, workouts.ErrInvalidSession):
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrNoMostImproved):
		http.Error(w, "not enough data", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}
