package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var workoutLogTables = []string{"workout_logs", "exercise_logs", "set_logs"}

// WorkoutLogStore describes the workout log tables and how much of them a session fills.
type WorkoutLogStore interface {
	Columns(ctx context.Context) ([]SchemaColumn, error)
	SessionRowCounts(ctx context.Context, sessionID string) (SessionRowCounts, error)
}

// SchemaColumn is one information_schema.columns row of a workout log table.
type SchemaColumn struct {
	TableName  string
	ColumnName string
	DataType   string
	IsNullable string
	ColumnDef  *string
}

// SessionRowCounts is the number of rows one session owns in each workout log table.
type SessionRowCounts struct {
	Workouts          int
	CompletedWorkouts int
	Exercises         int
	Sets              int
	LastSavedAt       *time.Time
}

type pgWorkoutLogStore struct {
	pool *pgxpool.Pool
}

func NewWorkoutLogStore(pool *pgxpool.Pool) WorkoutLogStore {
	return &pgWorkoutLogStore{pool: pool}
}

func (s *pgWorkoutLogStore) Columns(ctx context.Context) ([]SchemaColumn, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT table_name, column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ANY($1)
		ORDER BY table_name, ordinal_position`,
		workoutLogTables,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout log columns: %w", err)
	}

	columns, err := pgx.CollectRows(rows, pgx.RowToStructByPos[SchemaColumn])
	if err != nil {
		return nil, fmt.Errorf("collect workout log columns: %w", err)
	}
	return columns, nil
}

func (s *pgWorkoutLogStore) SessionRowCounts(ctx context.Context, sessionID string) (SessionRowCounts, error) {
	var counts SessionRowCounts
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT w.id),
		       COUNT(DISTINCT w.id) FILTER (WHERE w.completed),
		       COUNT(DISTINCT e.id),
		       COUNT(st.id),
		       MAX(w.saved_at)
		FROM workout_logs w
		LEFT JOIN exercise_logs e ON e.workout_log_id = w.id
		LEFT JOIN set_logs st ON st.exercise_log_id = e.id
		WHERE w.session_id = $1`,
		sessionID,
	).Scan(&counts.Workouts, &counts.CompletedWorkouts, &counts.Exercises, &counts.Sets, &counts.LastSavedAt)
	if err != nil {
		return SessionRowCounts{}, fmt.Errorf("count rows of session %s: %w", sessionID, err)
	}
	return counts, nil
}
