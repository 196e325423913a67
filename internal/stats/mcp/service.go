package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/stats"
)

// statsAnalyzer computes the workout stats of a session.
type statsAnalyzer interface {
	Overview(ctx context.Context, sessionID string) (*stats.Overview, error)
	Progression(ctx context.Context, sessionID, exerciseName string, windowDays int) (*stats.Progression, error)
	Weekly(ctx context.Context, sessionID string, weekCount int) ([]stats.WeekBucket, error)
	Calendar(ctx context.Context, sessionID string, dayCount int) ([]stats.CalendarDay, error)
	Streak(ctx context.Context, sessionID string) (*stats.StreakInfo, error)
	ExerciseRecord(ctx context.Context, sessionID, exerciseName string) (*stats.ExerciseRecord, error)
	MostImproved(ctx context.Context, sessionID string) (*stats.ImprovedExercise, error)
	Exercises(ctx context.Context, sessionID string) ([]string, error)
}

// contextService provides the workout log schema and stats. Used by Handler for testability.
type contextService interface {
	statsAnalyzer
	GetSchema(ctx context.Context) (string, error)
	GetSessionStorage(ctx context.Context, sessionID string) (string, error)
}

// ContextService holds dependencies and implements the stats context business logic.
type ContextService struct {
	statsAnalyzer
	store WorkoutLogStore
}

func NewContextService(store WorkoutLogStore, analyzer statsAnalyzer) *ContextService {
	return &ContextService{
		statsAnalyzer: analyzer,
		store:         store,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the workout log tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.store.Columns(ctx)
	if err != nil {
		return "", err
	}
	return formatWorkoutLogSchema(cols), nil
}

// GetSessionStorage returns how many workout, exercise and set rows the session has stored.
func (s *ContextService) GetSessionStorage(ctx context.Context, sessionID string) (string, error) {
	counts, err := s.store.SessionRowCounts(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return formatSessionStorage(sessionID, counts), nil
}

func formatSessionStorage(sessionID string, counts SessionRowCounts) string {
	if counts.Workouts == 0 {
		return fmt.Sprintf("# Stored Workout Log of %s\n\nNothing stored for this session.\n", sessionID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Stored Workout Log of %s\n\n", sessionID)
	b.WriteString("| Table | Rows |\n|-------|------|\n")
	fmt.Fprintf(&b, "| workout_logs | %d (%d completed) |\n", counts.Workouts, counts.CompletedWorkouts)
	fmt.Fprintf(&b, "| exercise_logs | %d |\n", counts.Exercises)
	fmt.Fprintf(&b, "| set_logs | %d |\n", counts.Sets)
	if counts.LastSavedAt != nil {
		fmt.Fprintf(&b, "\nLast saved: %s\n", counts.LastSavedAt.UTC().Format(time.RFC3339))
	}
	return b.String()
}

func formatWorkoutLogSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Workout Log DB Schema\n\nNo workout log tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Workout Log DB Schema\n\n")
	b.WriteString("Tables: workout_logs, exercise_logs, set_logs (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}
