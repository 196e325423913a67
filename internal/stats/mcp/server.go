package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with workout stats tools: schema, stored rows, overview, progression,
// weekly frequency, calendar, streak, exercise records, most improved exercise, exercise names.
// Mounted by the main backend at /mcp.
func NewServer(pool *pgxpool.Pool, analyzer statsAnalyzer) *mcp.Server {
	return newServer(NewContextService(NewWorkoutLogStore(pool), analyzer))
}

func newServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "achilles-stats",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_log_context",
		Description: "Returns the DB schema of the workout log tables (workout_logs, exercise_logs, set_logs): table names, columns, types, nullable, default.",
	}, h.GetWorkoutLogContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_session_storage",
		Description: "Returns how many workout_logs, exercise_logs and set_logs rows a session has stored, and when it last saved. Arg: session_id. Use before querying the tables directly.",
	}, h.GetSessionStorageTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_stats_overview",
		Description: "Returns the whole stats screen of a session: total completed workouts, current streak, workouts this week, most improved exercise, 30 day progressions, 4 week frequency, 28 day calendar and per exercise records. Arg: session_id.",
	}, h.GetStatsOverviewTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progression",
		Description: "Returns the per day average weight of an exercise over the last N days (default 30). Args: session_id, exercise; optional: days. Use when you need to see how a lift progressed.",
	}, h.GetExerciseProgressionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_frequency",
		Description: "Returns completed workouts per Monday based week, for the last N weeks (default 4). Args: session_id; optional: weeks.",
	}, h.GetWeeklyFrequencyTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_calendar",
		Description: "Returns completed workouts per day for the last N days (default 28), rest days included with zero. Args: session_id; optional: days.",
	}, h.GetWorkoutCalendarTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_streak",
		Description: "Returns the current streak of consecutive workout days, workouts this week and total completed workouts. Arg: session_id.",
	}, h.GetStreakTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_record",
		Description: "Returns the best single set weight and the latest average weight of an exercise. Args: session_id, exercise.",
	}, h.GetExerciseRecordTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_most_improved_exercise",
		Description: "Returns the exercise whose average weight grew the most (percent, first vs last logged day) in the last 90 days. Arg: session_id.",
	}, h.GetMostImprovedTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the sorted names of all exercises in completed workouts. Arg: session_id.",
	}, h.ListExercisesTool())

	return s
}
