package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save inserts or replaces the workout in the (session, phase, week, workout number) slot,
// together with all of its exercises and sets.
func (r *Repo) Save(ctx context.Context, entry WorkoutLogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session_id", entry.SessionID),
		attribute.String("key", entry.Key()),
	)

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var workoutLogID int
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO workout_logs
				(session_id, phase, week, workout_num, workout_name, focus, completed, completed_at, saved_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (session_id, phase, week, workout_num) DO UPDATE SET
				workout_name = EXCLUDED.workout_name,
				focus = EXCLUDED.focus,
				completed = EXCLUDED.completed,
				completed_at = EXCLUDED.completed_at,
				saved_at = EXCLUDED.saved_at
			RETURNING id;`,
		entry.SessionID, entry.Phase, entry.Week, entry.WorkoutNum, entry.WorkoutName, entry.Focus,
		entry.Completed, entry.CompletedAt, entry.SavedAt,
	).Scan(&workoutLogID); err != nil {
		return fmt.Errorf("upsert workout log: %w", err)
	}

	// sets go with their exercises (on delete cascade)
	if _, err := tx.Exec(ctx, `DELETE FROM exercise_logs WHERE workout_log_id = $1`, workoutLogID); err != nil {
		return fmt.Errorf("delete old exercises: %w", err)
	}

	for i, ex := range entry.Exercises {
		var exerciseLogID int
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO exercise_logs
					(workout_log_id, position, name, target_sets, target_reps, notes)
					VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id;`,
			workoutLogID, i, ex.Name, ex.TargetSets, ex.TargetReps, ex.Notes,
		).Scan(&exerciseLogID); err != nil {
			return fmt.Errorf("insert exercise %s: %w", ex.Name, err)
		}

		if len(ex.Sets) == 0 {
			continue
		}

		batch := &pgx.Batch{}
		for j, set := range ex.Sets {
			batch.Queue(
				`INSERT INTO set_logs (exercise_log_id, position, weight, reps, completed) VALUES ($1, $2, $3, $4, $5)`,
				exerciseLogID, j, set.Weight, set.Reps, set.Completed,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert sets of %s: %w", ex.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	span.SetAttributes(attribute.Int("workout_log.id", workoutLogID))
	return nil
}

func (r *Repo) Get(ctx context.Context, sessionID string, phase, week, workoutNum int) (_ *WorkoutLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("key", Key(phase, week, workoutNum)),
	)

	log, err := r.load(ctx, sessionID, &slot{phase: phase, week: week, workoutNum: workoutNum})
	if err != nil {
		return nil, err
	}

	entry, ok := log[Key(phase, week, workoutNum)]
	if !ok {
		return nil, ErrWorkoutNotFound
	}
	return &entry, nil
}

func (r *Repo) Delete(ctx context.Context, sessionID string, phase, week, workoutNum int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("key", Key(phase, week, workoutNum)),
	)

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_logs WHERE session_id = $1 AND phase = $2 AND week = $3 AND workout_num = $4`,
		sessionID, phase, week, workoutNum,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// List returns the workout headers of the session, most recently saved first.
func (r *Repo) List(ctx context.Context, sessionID string, limit int) (_ []WorkoutHeader, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session_id", sessionID),
		attribute.Int("limit", limit),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT phase, week, workout_num, workout_name, focus, completed, completed_at, saved_at
			FROM workout_logs
			WHERE session_id = $1
			ORDER BY saved_at DESC, id DESC
			LIMIT $2;`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	headers := make([]WorkoutHeader, 0)
	for rows.Next() {
		h := WorkoutHeader{SessionID: sessionID}
		if err := rows.Scan(
			&h.Phase, &h.Week, &h.WorkoutNum, &h.WorkoutName, &h.Focus,
			&h.Completed, &h.CompletedAt, &h.SavedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		headers = append(headers, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return headers, nil
}

// Snapshot returns every logged workout of the session, keyed by "phase-week-workoutNum".
func (r *Repo) Snapshot(ctx context.Context, sessionID string) (_ WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	log, err := r.load(ctx, sessionID, nil)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts", len(log)))
	return log, nil
}

// WeekWorkoutsCount counts the logged workout slots (1..WorkoutsPerWeek) of a program week.
func (r *Repo) WeekWorkoutsCount(ctx context.Context, sessionID string, phase, week int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.week-count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_logs
			WHERE session_id = $1 AND phase = $2 AND week = $3 AND workout_num BETWEEN 1 AND $4;`,
		sessionID, phase, week, WorkoutsPerWeek,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

type slot struct {
	phase      int
	week       int
	workoutNum int
}

// load reads the workouts of a session (or of a single slot) with their exercises and sets.
func (r *Repo) load(ctx context.Context, sessionID string, only *slot) (WorkoutLog, error) {
	var s slot
	if only != nil {
		s = *only
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, phase, week, workout_num, workout_name, focus, completed, completed_at, saved_at
			FROM workout_logs
			WHERE session_id = $1
				AND ($2::int = 0 OR (phase = $2 AND week = $3 AND workout_num = $4));`,
		sessionID, s.phase, s.week, s.workoutNum,
	)
	if err != nil {
		return nil, err
	}

	id2entry := make(map[int]*WorkoutLogEntry)
	for rows.Next() {
		var id int
		entry := WorkoutLogEntry{SessionID: sessionID, Exercises: make([]ExerciseLog, 0)}
		if err := rows.Scan(
			&id, &entry.Phase, &entry.Week, &entry.WorkoutNum, &entry.WorkoutName, &entry.Focus,
			&entry.Completed, &entry.CompletedAt, &entry.SavedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		id2entry[id] = &entry
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(id2entry) > 0 {
		if err := r.loadExercises(ctx, sessionID, s, id2entry); err != nil {
			return nil, err
		}
	}

	log := make(WorkoutLog, len(id2entry))
	for _, entry := range id2entry {
		log[entry.Key()] = *entry
	}
	return log, nil
}

func (r *Repo) loadExercises(ctx context.Context, sessionID string, s slot, id2entry map[int]*WorkoutLogEntry) error {
	rows, err := r.db.Query(
		ctx,
		`SELECT e.workout_log_id, e.id, e.name, e.target_sets, e.target_reps, e.notes,
				st.weight, st.reps, st.completed
			FROM exercise_logs e
			JOIN workout_logs w ON w.id = e.workout_log_id
			LEFT JOIN set_logs st ON st.exercise_log_id = e.id
			WHERE w.session_id = $1
				AND ($2::int = 0 OR (w.phase = $2 AND w.week = $3 AND w.workout_num = $4))
			ORDER BY e.workout_log_id, e.position, st.position;`,
		sessionID, s.phase, s.week, s.workoutNum,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	lastExerciseID := -1
	for rows.Next() {
		var (
			workoutLogID, exerciseLogID int
			ex                          ExerciseLog
			weight, reps                *string
			setCompleted                *bool
		)
		if err := rows.Scan(
			&workoutLogID, &exerciseLogID, &ex.Name, &ex.TargetSets, &ex.TargetReps, &ex.Notes,
			&weight, &reps, &setCompleted,
		); err != nil {
			return fmt.Errorf("rows scan: %w", err)
		}

		entry, ok := id2entry[workoutLogID]
		if !ok {
			continue
		}

		if exerciseLogID != lastExerciseID {
			ex.Sets = make([]SetData, 0)
			entry.Exercises = append(entry.Exercises, ex)
			lastExerciseID = exerciseLogID
		}

		// exercise without sets
		if weight == nil && reps == nil {
			continue
		}

		current := &entry.Exercises[len(entry.Exercises)-1]
		current.Sets = append(current.Sets, SetData{
			Weight:    deref(weight),
			Reps:      deref(reps),
			Completed: setCompleted,
		})
	}

	return rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalizeTime drops the monotonic clock reading and sub-microsecond precision,
// which postgres does not keep.
func normalizeTime(t time.Time) time.Time {
	return t.Round(0).Truncate(time.Microsecond)
}
