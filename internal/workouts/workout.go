package workouts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrInvalidWorkout  = errors.New("invalid workout")
	ErrInvalidKey      = errors.New("invalid workout key")
	ErrInvalidSession  = errors.New("invalid session id")
)

const maxSessionIDLen = 128

// WorkoutsPerWeek is the number of workout slots a program week has.
const WorkoutsPerWeek = 5

type SetData struct {
	Weight    string `json:"weight"`
	Reps      string `json:"reps"`
	Completed *bool  `json:"completed,omitempty"`
}

type ExerciseLog struct {
	Name       string    `json:"name"`
	TargetSets int       `json:"targetSets"`
	TargetReps string    `json:"targetReps"`
	Sets       []SetData `json:"sets"`
	Notes      string    `json:"notes"`
}

// WorkoutLogEntry is a single logged session slot (phase, week, workout number).
// CompletedAt is only set when Completed is true.
type WorkoutLogEntry struct {
	SessionID   string        `json:"sessionId"`
	Phase       int           `json:"phase"`
	Week        int           `json:"week"`
	WorkoutNum  int           `json:"workoutNum"`
	WorkoutName string        `json:"workoutName"`
	Focus       string        `json:"focus"`
	Exercises   []ExerciseLog `json:"exercises"`
	SavedAt     time.Time     `json:"savedAt"`
	Completed   bool          `json:"completed"`
	CompletedAt *time.Time    `json:"completedAt"`
}

func (e WorkoutLogEntry) Key() string {
	return Key(e.Phase, e.Week, e.WorkoutNum)
}

// IsComplete reports whether the entry counts towards stats.
func (e WorkoutLogEntry) IsComplete() bool {
	return e.Completed && e.CompletedAt != nil
}

func (e WorkoutLogEntry) Validate() error {
	if e.Phase < 1 || e.Week < 1 || e.WorkoutNum < 1 {
		return fmt.Errorf("%w: phase, week and workout number must be positive", ErrInvalidWorkout)
	}
	for i, ex := range e.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("%w: exercise %d has no name", ErrInvalidWorkout, i)
		}
	}
	return nil
}

// WorkoutLog maps "phase-week-workoutNum" keys to entries.
type WorkoutLog map[string]WorkoutLogEntry

// WorkoutHeader is a workout log row without its exercises.
type WorkoutHeader struct {
	SessionID   string     `json:"sessionId"`
	Phase       int        `json:"phase"`
	Week        int        `json:"week"`
	WorkoutNum  int        `json:"workoutNum"`
	WorkoutName string     `json:"workoutName"`
	Focus       string     `json:"focus"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	SavedAt     time.Time  `json:"savedAt"`
}

func ValidateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" || len(sessionID) > maxSessionIDLen {
		return fmt.Errorf("%w: %q", ErrInvalidSession, sessionID)
	}
	return nil
}

func Key(phase, week, workoutNum int) string {
	return fmt.Sprintf("%d-%d-%d", phase, week, workoutNum)
}

func ParseKey(key string) (phase, week, workoutNum int, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 1 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nil
}

func (e WorkoutLogEntry) Header() WorkoutHeader {
	return WorkoutHeader{
		SessionID:   e.SessionID,
		Phase:       e.Phase,
		Week:        e.Week,
		WorkoutNum:  e.WorkoutNum,
		WorkoutName: e.WorkoutName,
		Focus:       e.Focus,
		Completed:   e.Completed,
		CompletedAt: e.CompletedAt,
		SavedAt:     e.SavedAt,
	}
}
