package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/tracing"
	"github.com/amankaushik/achilles-workout-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type workoutService interface {
	SaveWorkout(ctx context.Context, sessionID string, entry WorkoutLogEntry) (*WorkoutLogEntry, error)
	DeleteWorkout(ctx context.Context, sessionID, key string) error
	GetWorkout(ctx context.Context, sessionID, key string) (*WorkoutLogEntry, error)
	ListWorkouts(ctx context.Context, sessionID string, limit int) ([]WorkoutHeader, error)
	HasWeekData(ctx context.Context, sessionID string, phase, week int) (bool, error)
}

type DeleteWorkoutResponse struct {
	DeletedKey string `json:"deletedKey"`
}

type HasWeekDataResponse struct {
	Phase   int  `json:"phase"`
	Week    int  `json:"week"`
	HasData bool `json:"hasData"`
}

type Handler struct {
	service workoutService
}

func NewHandler(service workoutService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
	defer span.End()

	vars := mux.Vars(r)
	sessionID, key := vars["sid"], vars["key"]
	span.SetAttributes(attribute.String("session_id", sessionID), attribute.String("key", key))

	phase, week, workoutNum, err := ParseKey(key)
	if err != nil {
		http.Error(w, "error, invalid workout key", http.StatusBadRequest)
		return
	}

	var entry WorkoutLogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("save workout, unmarshal json body: %s", err)
		http.Error(w, "error, invalid workout body", http.StatusBadRequest)
		return
	}

	// zero values are taken from the path
	if entry.Phase == 0 && entry.Week == 0 && entry.WorkoutNum == 0 {
		entry.Phase, entry.Week, entry.WorkoutNum = phase, week, workoutNum
	}
	if entry.Key() != key {
		http.Error(w, "error, workout key does not match body", http.StatusBadRequest)
		return
	}

	saved, err := handler.service.SaveWorkout(ctx, sessionID, entry)
	if err != nil {
		handler.writeError(w, "save workout", err)
		return
	}

	pkg.WriteJSONResponseOK(w, saved)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	entry, err := handler.service.GetWorkout(ctx, vars["sid"], vars["key"])
	if err != nil {
		handler.writeError(w, "get workout", err)
		return
	}

	pkg.WriteJSONResponseOK(w, entry)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	key := vars["key"]
	if err := handler.service.DeleteWorkout(ctx, vars["sid"], key); err != nil {
		handler.writeError(w, "delete workout", err)
		return
	}

	pkg.WriteJSONResponseOK(w, DeleteWorkoutResponse{DeletedKey: key})
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	limit := defaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > maxListLimit {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	headers, err := handler.service.ListWorkouts(ctx, mux.Vars(r)["sid"], limit)
	if err != nil {
		handler.writeError(w, "list workouts", err)
		return
	}

	pkg.WriteJSONResponseOK(w, headers)
}

func (handler *Handler) HandleHasWeekData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.has-week-data")
	defer span.End()

	vars := mux.Vars(r)
	phase, err := strconv.Atoi(vars["phase"])
	if err != nil {
		http.Error(w, "error, phase NaN", http.StatusBadRequest)
		return
	}
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		http.Error(w, "error, week NaN", http.StatusBadRequest)
		return
	}

	hasData, err := handler.service.HasWeekData(ctx, vars["sid"], phase, week)
	if err != nil {
		handler.writeError(w, "has week data", err)
		return
	}

	pkg.WriteJSONResponseOK(w, HasWeekDataResponse{Phase: phase, Week: week, HasData: hasData})
}

func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidKey), errors.Is(err, ErrInvalidWorkout), errors.Is(err, ErrInvalidSession):
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}
